package hireform_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

func validForm() *hireform.Form {
	f := hireform.New("tutor-1", "Ayesha Rahman")
	f.JobTitle = "Math tutor needed"
	f.SetHourlyRate(2000)
	f.StudyLevel = "Secondary"
	f.SubjectAreas = []string{"Math", "Physics"}
	f.Address = "House 12, Dhanmondi"
	f.ContactPhone = "01700000000"
	f.SetDayWindow(model.Monday, model.TimeOfDay{Hour: 14}, model.TimeOfDay{Hour: 16, Minute: 30})
	return f
}

// ── Guards ─────────────────────────────────────────────────────────────────

func TestToReview_AcceptsRateBounds(t *testing.T) {
	for _, rate := range []int{1500, 3000} {
		f := validForm()
		f.SetHourlyRate(rate)
		if err := f.ToReview(true); err != nil {
			t.Errorf("rate %d: unexpected guard failure: %v", rate, err)
		}
		if f.Step != hireform.StepReview {
			t.Errorf("rate %d: step = %v, want StepReview", rate, f.Step)
		}
	}
}

func TestToReview_BlocksOutOfRangeRate(t *testing.T) {
	for _, rate := range []int{1499, 3001, 0} {
		f := validForm()
		f.SetHourlyRate(rate)
		if err := f.ToReview(true); err == nil {
			t.Errorf("rate %d: guard should block", rate)
		}
		if f.Step != hireform.StepForm {
			t.Errorf("rate %d: step moved off Form", rate)
		}
	}
}

func TestToReview_LatestGuardFailureWins(t *testing.T) {
	f := hireform.New("", "")
	f.SetHourlyRate(100) // rate guard also fails

	err := f.ToReview(false)
	if err != hireform.ErrNoTutorSelected {
		t.Errorf("err = %v, want the last guard (no tutor selected)", err)
	}
	if f.GuardError != hireform.ErrNoTutorSelected.Error() {
		t.Errorf("GuardError = %q, messages must not accumulate", f.GuardError)
	}
}

func TestToReview_RequiresAuthentication(t *testing.T) {
	f := validForm()
	if err := f.ToReview(false); err != hireform.ErrNotAuthenticated {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

// ── Rate field ─────────────────────────────────────────────────────────────

func TestSetHourlyRate_InlineErrorDoesNotBlockEdits(t *testing.T) {
	f := validForm()
	f.SetHourlyRate(100)
	if f.RateError == "" {
		t.Error("out-of-range rate must set an inline message")
	}
	// The field stays editable; a corrected value clears the message.
	f.SetHourlyRate(1800)
	if f.RateError != "" {
		t.Errorf("RateError = %q after valid rate, want cleared", f.RateError)
	}
}

// ── Child list ─────────────────────────────────────────────────────────────

func TestChildren_MinimumOneEntry(t *testing.T) {
	f := hireform.New("tutor-1", "A")
	if len(f.Children) != 1 || !f.Children[0].IsBlank() {
		t.Fatalf("new form children = %+v, want one blank entry", f.Children)
	}

	if err := f.RemoveChild(0); err == nil {
		t.Error("removing index 0 must be rejected")
	}

	idx := f.AddChild()
	if idx != 1 {
		t.Errorf("AddChild index = %d, want 1", idx)
	}
	if err := f.SetChild(1, model.ChildAttachment{Name: "Rafi", Age: 9, Grade: "4"}); err != nil {
		t.Errorf("SetChild: %v", err)
	}
	if err := f.RemoveChild(1); err != nil {
		t.Errorf("RemoveChild(1): %v", err)
	}
	if len(f.Children) != 1 {
		t.Errorf("children length = %d, want 1", len(f.Children))
	}
}

// ── Reset ──────────────────────────────────────────────────────────────────

func TestReset_ClearsEveryFieldAndCollapsesChildren(t *testing.T) {
	f := validForm()
	f.AddChild()
	f.SetChild(1, model.ChildAttachment{Name: "Rafi", Age: 9, Grade: "4"})
	if err := f.ToReview(true); err != nil {
		t.Fatalf("ToReview: %v", err)
	}

	f.Reset()

	if f.JobTitle != "" {
		t.Errorf("JobTitle = %q after reset, want empty", f.JobTitle)
	}
	if len(f.Children) != 1 || !f.Children[0].IsBlank() {
		t.Errorf("children after reset = %+v, want one blank entry", f.Children)
	}
	if f.Step != hireform.StepForm {
		t.Error("step after reset must be Form")
	}
	if f.WeeklyHours() != 0 {
		t.Error("schedule must be cleared by reset")
	}
}

// ── Review recap / payload ─────────────────────────────────────────────────

func TestBackToForm_KeepsData(t *testing.T) {
	f := validForm()
	if err := f.ToReview(true); err != nil {
		t.Fatalf("ToReview: %v", err)
	}
	f.BackToForm()
	if f.JobTitle == "" || f.HourlyRate != 2000 {
		t.Error("Back must not lose form data")
	}
}

func TestBuildRequest_FormatsOnlySelectedDays(t *testing.T) {
	f := validForm()
	f.SetDayWindow(model.Friday, model.TimeOfDay{Hour: 9, Minute: 5}, model.TimeOfDay{Hour: 11})
	f.Schedule.Toggle(model.Sunday) // selected but no window

	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	req := f.BuildRequest(now)

	if !strings.HasPrefix(req.ID, "hr-") {
		t.Errorf("id %q must carry the hire-request prefix", req.ID)
	}
	// Monday 150m + Friday 115m = 265m -> round-half-up(4.42h) = 4h.
	if req.WeeklyHours != 4 {
		t.Errorf("weeklyHours = %d, want 4", req.WeeklyHours)
	}
	if req.DayTimes["monday"] != (model.DayWindow{Start: "2:00 pm", End: "4:30 pm"}) {
		t.Errorf("monday window = %+v", req.DayTimes["monday"])
	}
	if req.DayTimes["friday"] != (model.DayWindow{Start: "9:05 am", End: "11:00 am"}) {
		t.Errorf("friday window = %+v", req.DayTimes["friday"])
	}
	if _, ok := req.DayTimes["sunday"]; ok {
		t.Error("day without a complete window must not be formatted")
	}
	if !req.SelectedDays["sunday"] || req.SelectedDays["tuesday"] {
		t.Errorf("selectedDays map wrong: %+v", req.SelectedDays)
	}
	if req.TotalBill != req.HourlyRate*req.WeeklyHours {
		t.Errorf("totalBill = %d, want rate × hours", req.TotalBill)
	}
	if req.Status != model.HireStatusPending {
		t.Errorf("status = %s, want pending", req.Status)
	}
}

// ── Busy flag ──────────────────────────────────────────────────────────────

func TestBeginSubmit_PreventsReentrantSubmit(t *testing.T) {
	f := validForm()
	if err := f.BeginSubmit(); err != nil {
		t.Fatalf("first BeginSubmit: %v", err)
	}
	if err := f.BeginSubmit(); err != hireform.ErrSubmitInFlight {
		t.Errorf("second BeginSubmit err = %v, want ErrSubmitInFlight", err)
	}
	f.EndSubmit()
	if err := f.BeginSubmit(); err != nil {
		t.Errorf("BeginSubmit after EndSubmit: %v", err)
	}
}
