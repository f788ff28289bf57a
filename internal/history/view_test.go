package history_test

import (
	"testing"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/history"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

func day(n int) time.Time {
	return time.Date(2026, 8, n, 12, 0, 0, 0, time.UTC)
}

func mergedFixture() []history.Entry {
	jobs := []*model.Job{
		{ID: "job-1", JobTitle: "Physics tutor", Location: "Uttara", Status: "open", CreatedAt: day(3)},
		{ID: "job-2", JobTitle: "English coach", Location: "Banani", Status: "completed", CreatedAt: day(1)},
	}
	requests := []*model.HireRequest{
		{ID: "hr-1", JobTitle: "Math tutor", TutorName: "Ayesha Rahman", Address: "Dhanmondi",
			HourlyRate: 2000, WeeklyHours: 6, TotalBill: 12000,
			Status: model.HireStatusPending, CreatedAt: day(5)},
		{ID: "hr-2", JobTitle: "Chemistry help", TutorName: "Bashir Khan", Address: "Mirpur",
			HourlyRate: 1600, WeeklyHours: 4, TotalBill: 6400,
			Status: model.HireStatusCompleted, CreatedAt: day(2)},
	}
	return history.Merge(jobs, requests)
}

// ── Merge ──────────────────────────────────────────────────────────────────

func TestMerge_SortedByCreationDescendingWithKinds(t *testing.T) {
	entries := mergedFixture()

	wantOrder := []string{"hr-1", "job-1", "hr-2", "job-2"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("merged %d entries, want %d", len(entries), len(wantOrder))
	}
	for i, id := range wantOrder {
		if entries[i].ID != id {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].ID, id)
		}
	}
	if entries[0].Kind != history.KindHireRequest || entries[1].Kind != history.KindJob {
		t.Error("kind tags must follow the entry source")
	}
}

func TestEntryFromHireRequest_CarriesSchedule(t *testing.T) {
	req := &model.HireRequest{
		ID:           "hr-9",
		JobTitle:     "Math tutor",
		SelectedDays: map[string]bool{"monday": true},
		DayTimes:     map[string]model.DayWindow{"monday": {Start: "2:00 pm", End: "4:30 pm"}},
	}

	e := history.EntryFromHireRequest(req)
	if !e.SelectedDays["monday"] {
		t.Error("selected days not carried onto the entry")
	}
	if w := e.DayTimes["monday"]; w.Start != "2:00 pm" || w.End != "4:30 pm" {
		t.Errorf("monday window = %+v, want 2:00 pm – 4:30 pm", w)
	}
}

// ── Filter pipeline ────────────────────────────────────────────────────────

func TestFiltered_StatusThenText(t *testing.T) {
	v := history.NewView(mergedFixture())

	v.SetStatusFilter("COMPLETED") // case-insensitive equality
	filtered := v.Filtered()
	if len(filtered) != 2 {
		t.Fatalf("status filter kept %d entries, want 2", len(filtered))
	}

	v.SetQuery("bashir") // tutor name, case-insensitive substring
	filtered = v.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "hr-2" {
		t.Fatalf("pipeline result = %+v, want only hr-2", filtered)
	}
}

func TestFiltered_TextCoversAllFields(t *testing.T) {
	v := history.NewView(mergedFixture())
	cases := []struct {
		query string
		want  string
	}{
		{"physics", "job-1"},  // title
		{"AYESHA", "hr-1"},    // tutor name
		{"dhanmondi", "hr-1"}, // location
	}
	for _, c := range cases {
		v.SetQuery(c.query)
		got := v.Filtered()
		if len(got) != 1 || got[0].ID != c.want {
			t.Errorf("query %q: got %d entries, want exactly %s", c.query, len(got), c.want)
		}
	}
}

func TestFilterChanges_ResetPage(t *testing.T) {
	v := history.NewView(mergedFixture())
	v.ItemsPerPage = 1
	v.SetPage(3)

	v.SetQuery("tutor")
	if v.Page != 1 {
		t.Errorf("page after query change = %d, want 1", v.Page)
	}

	v.SetPage(2)
	v.SetStatusFilter("open")
	if v.Page != 1 {
		t.Errorf("page after status change = %d, want 1", v.Page)
	}
}

// ── View mode ──────────────────────────────────────────────────────────────

func TestToggleMode_DoesNotChangeData(t *testing.T) {
	v := history.NewView(mergedFixture())
	v.SetQuery("tutor")
	before := v.PageEntries()

	v.ToggleMode()
	if v.Mode != history.ViewGrid {
		t.Errorf("mode = %v, want grid", v.Mode)
	}
	after := v.PageEntries()

	if len(before) != len(after) {
		t.Fatal("view mode toggled the data, must be presentation only")
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Errorf("entry %d changed across mode toggle", i)
		}
	}
}

// ── Pagination ─────────────────────────────────────────────────────────────

func TestPageEntries_SliceBounds(t *testing.T) {
	v := history.NewView(mergedFixture())
	v.ItemsPerPage = 3

	if v.TotalPages() != 2 {
		t.Fatalf("TotalPages = %d, want 2", v.TotalPages())
	}
	v.SetPage(2)
	if got := len(v.PageEntries()); got != 1 {
		t.Errorf("last page has %d entries, want 1", got)
	}
	v.SetPage(9)
	if v.Page != 2 {
		t.Errorf("page = %d, want clamp to 2", v.Page)
	}
}

// ── Replace ────────────────────────────────────────────────────────────────

func TestReplace_UpdatesMasterList(t *testing.T) {
	v := history.NewView(mergedFixture())
	entry, ok := v.Find("hr-1")
	if !ok {
		t.Fatal("fixture entry missing")
	}
	entry.Status = "cancelled"

	if !v.Replace(entry) {
		t.Fatal("Replace reported no match")
	}
	got, _ := v.Find("hr-1")
	if got.Status != "cancelled" {
		t.Errorf("status after replace = %s, want cancelled", got.Status)
	}
	if v.Replace(history.Entry{ID: "missing"}) {
		t.Error("Replace of unknown id must report false")
	}
}
