package directory_test

import (
	"fmt"
	"testing"

	"github.com/Freeeeeet/tutorhub_bot/internal/directory"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

func makeTutors(n int) []*model.Tutor {
	tutors := make([]*model.Tutor, n)
	for i := range tutors {
		tutors[i] = &model.Tutor{ID: fmt.Sprintf("t%d", i), FullName: fmt.Sprintf("Tutor %d", i)}
	}
	return tutors
}

func freshState(tutors []*model.Tutor, requests []directory.Applicant) *directory.State {
	s := directory.NewState()
	s.ApplyFetch(s.NextFetchToken(), tutors, requests, nil)
	return s
}

// ── Pagination ─────────────────────────────────────────────────────────────

func TestPagination_PagesCoverFilteredListExactly(t *testing.T) {
	s := freshState(makeTutors(10), nil)

	if got := s.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	seen := map[string]bool{}
	total := 0
	for page := 1; page <= s.TotalPages(); page++ {
		s.SetPage(page)
		visible := s.PageTutors()
		if len(visible) > s.ItemsPerPage {
			t.Errorf("page %d shows %d items, itemsPerPage is %d", page, len(visible), s.ItemsPerPage)
		}
		for _, tutor := range visible {
			if seen[tutor.ID] {
				t.Errorf("tutor %s shown on more than one page", tutor.ID)
			}
			seen[tutor.ID] = true
		}
		total += len(visible)
	}
	if total != 10 {
		t.Errorf("union of pages has %d tutors, want 10 (no omissions)", total)
	}
}

func TestPagination_PageClamped(t *testing.T) {
	s := freshState(makeTutors(5), nil)

	s.SetPage(99)
	if s.Page != 2 {
		t.Errorf("Page = %d, want clamp to 2", s.Page)
	}
	s.SetPage(-3)
	if s.Page != 1 {
		t.Errorf("Page = %d, want clamp to 1", s.Page)
	}
}

func TestPagination_EmptyListHasOnePage(t *testing.T) {
	s := freshState(nil, nil)
	if got := s.TotalPages(); got != 1 {
		t.Errorf("TotalPages of empty list = %d, want 1", got)
	}
	if got := len(s.PageTutors()); got != 0 {
		t.Errorf("PageTutors of empty list has %d items", got)
	}
}

// ── Tab switching and search resets ────────────────────────────────────────

func TestSetActiveTab_ResetsPage(t *testing.T) {
	s := freshState(makeTutors(12), nil)
	s.SetPage(3)

	s.SetActiveTab(directory.TabUpcoming)
	if s.Page != 1 {
		t.Errorf("Page after tab switch = %d, want 1", s.Page)
	}
}

func TestSetSearchResults_OverridesRecommendedAndResetsPage(t *testing.T) {
	tutors := makeTutors(9)
	s := freshState(tutors, nil)
	s.SetPage(2)

	s.SetSearchResults("tutor 1", tutors[1:2])
	if s.Page != 1 {
		t.Errorf("Page after search = %d, want 1", s.Page)
	}
	if got := s.FilteredCount(); got != 1 {
		t.Errorf("FilteredCount = %d, want 1 (search override)", got)
	}

	// Empty query restores the full recommended list.
	s.SetSearchResults("", nil)
	if got := s.FilteredCount(); got != 9 {
		t.Errorf("FilteredCount after clear = %d, want 9", got)
	}
}

func TestSearchResults_OnlyAffectRecommendedTab(t *testing.T) {
	tutors := makeTutors(6)
	s := freshState(tutors, nil)
	s.Upcoming = tutors[:3]
	s.SetSearchResults("tutor", tutors[:1])

	s.SetActiveTab(directory.TabUpcoming)
	if got := s.FilteredCount(); got != 3 {
		t.Errorf("Upcoming tab count = %d, want 3 (search must not leak)", got)
	}
}

// ── Accept / decline local transitions ─────────────────────────────────────

func requestFixture() (*directory.State, []*model.Tutor) {
	tutors := makeTutors(4)
	requests := []directory.Applicant{
		{Tutor: tutors[0], JobID: "job-1"},
		{Tutor: tutors[1], JobID: "job-1"},
		{Tutor: tutors[2], JobID: "job-1"},
		{Tutor: tutors[3], JobID: "job-2"},
	}
	return freshState(tutors, requests), tutors
}

func TestApplyAccept_RemovesEveryApplicantOfTheJob(t *testing.T) {
	s, tutors := requestFixture()

	s.ApplyAccept("job-1", tutors[1].ID)

	if len(s.MyRequests) != 1 {
		t.Fatalf("MyRequests has %d entries, want 1 (all job-1 applicants removed)", len(s.MyRequests))
	}
	if s.MyRequests[0].JobID != "job-2" {
		t.Errorf("surviving request is for %s, want job-2", s.MyRequests[0].JobID)
	}
	if len(s.Upcoming) != 1 || s.Upcoming[0].ID != tutors[1].ID {
		t.Errorf("accepted tutor must move to Upcoming, got %+v", s.Upcoming)
	}
}

func TestApplyDecline_RemovesOnlyTheDeclinedTutor(t *testing.T) {
	s, tutors := requestFixture()

	s.ApplyDecline("job-1", tutors[1].ID)

	if len(s.MyRequests) != 3 {
		t.Fatalf("MyRequests has %d entries, want 3", len(s.MyRequests))
	}
	for _, req := range s.MyRequests {
		if req.Tutor.ID == tutors[1].ID {
			t.Error("declined tutor still present in MyRequests")
		}
	}
	if len(s.Upcoming) != 0 {
		t.Error("decline must not touch Upcoming")
	}
}

// ── Fetch tokens ───────────────────────────────────────────────────────────

func TestApplyFetch_DiscardsStaleResponses(t *testing.T) {
	s := directory.NewState()

	first := s.NextFetchToken()
	second := s.NextFetchToken()

	if !s.ApplyFetch(second, makeTutors(3), nil, nil) {
		t.Fatal("newest response must apply")
	}
	if s.ApplyFetch(first, makeTutors(8), nil, nil) {
		t.Error("stale response must be discarded")
	}
	if len(s.Tutors) != 3 {
		t.Errorf("master list has %d tutors, want the 3 from the newer fetch", len(s.Tutors))
	}
}
