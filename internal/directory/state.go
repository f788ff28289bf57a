// Package directory holds the tutor-listing view state: one master tutor
// list, three tab-scoped derived subsets, debounced search and page-of-4
// pagination. The state is single-flow; callers serialize access (the
// controller keeps one state per chat behind the session lock).
package directory

import "github.com/Freeeeeet/tutorhub_bot/internal/model"

// Tab identifies which derived list feeds the visible page.
type Tab int

const (
	TabRecommended Tab = iota
	TabMyRequests
	TabUpcoming
	TabHistory
)

// Title returns the display name of the tab.
func (t Tab) Title() string {
	switch t {
	case TabRecommended:
		return "Recommended"
	case TabMyRequests:
		return "My Requests"
	case TabUpcoming:
		return "Upcoming Sessions"
	case TabHistory:
		return "History"
	}
	return "?"
}

// DefaultItemsPerPage is the fixed page size of the directory.
const DefaultItemsPerPage = 4

// Applicant is one pending application: a tutor together with the job the
// tutor applied to. Accept/decline need both ids.
type Applicant struct {
	Tutor *model.Tutor
	JobID string
}

// State is the directory view state for one chat.
type State struct {
	ActiveTab    Tab
	Query        string
	Page         int // 1-based
	ItemsPerPage int

	// Master list plus tab-scoped derived subsets, replaced wholesale by
	// ApplyFetch and patched locally after accept/decline writes resolve.
	Tutors      []*model.Tutor
	Recommended []*model.Tutor
	MyRequests  []Applicant
	Upcoming    []*model.Tutor

	// Search results override Recommended while a query is active.
	results []*model.Tutor

	// Fetch tokens: responses older than the last applied one are dropped.
	issuedToken  uint64
	appliedToken uint64
}

// NewState creates an empty directory state on the Recommended tab.
func NewState() *State {
	return &State{
		ActiveTab:    TabRecommended,
		Page:         1,
		ItemsPerPage: DefaultItemsPerPage,
	}
}

// NextFetchToken issues a token for an outgoing fetch. Tokens increase
// monotonically; ApplyFetch uses them to discard stale responses.
func (s *State) NextFetchToken() uint64 {
	s.issuedToken++
	return s.issuedToken
}

// ApplyFetch installs a fetched snapshot. A response carrying a token older
// than one already applied is ignored and false is returned.
func (s *State) ApplyFetch(token uint64, tutors []*model.Tutor, requests []Applicant, upcoming []*model.Tutor) bool {
	if token <= s.appliedToken {
		return false
	}
	s.appliedToken = token
	s.Tutors = tutors
	s.Recommended = tutors
	s.MyRequests = requests
	s.Upcoming = upcoming
	s.clampPage()
	return true
}

// SetActiveTab switches the derived list feeding the page and resets
// pagination. Switching back to Recommended keeps active search results.
func (s *State) SetActiveTab(tab Tab) {
	s.ActiveTab = tab
	s.Page = 1
}

// SetSearchResults installs results for a query. An empty query clears the
// override and restores the full recommended list. Either way the page
// resets to 1: the filtered list changed.
func (s *State) SetSearchResults(query string, results []*model.Tutor) {
	s.Query = query
	if query == "" {
		s.results = nil
	} else {
		s.results = results
	}
	s.Page = 1
}

// FilteredTutors returns the tutor list behind the active tab, derived on
// read. The MyRequests tab is addressed via FilteredRequests instead.
func (s *State) FilteredTutors() []*model.Tutor {
	switch s.ActiveTab {
	case TabRecommended:
		if s.Query != "" {
			return s.results
		}
		return s.Recommended
	case TabUpcoming:
		return s.Upcoming
	}
	return nil
}

// FilteredRequests returns the applicant list when MyRequests is active.
func (s *State) FilteredRequests() []Applicant {
	if s.ActiveTab != TabMyRequests {
		return nil
	}
	return s.MyRequests
}

// FilteredCount returns the length of the active filtered list.
func (s *State) FilteredCount() int {
	if s.ActiveTab == TabMyRequests {
		return len(s.MyRequests)
	}
	return len(s.FilteredTutors())
}

// TotalPages returns ceil(filtered / itemsPerPage), at least 1.
func (s *State) TotalPages() int {
	n := s.FilteredCount()
	pages := (n + s.ItemsPerPage - 1) / s.ItemsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPage moves to a page, clamped to [1, TotalPages]. Changing the page
// never alters the filtered list.
func (s *State) SetPage(page int) {
	s.Page = page
	s.clampPage()
}

func (s *State) clampPage() {
	if s.Page < 1 {
		s.Page = 1
	}
	if max := s.TotalPages(); s.Page > max {
		s.Page = max
	}
}

// pageBounds returns the [lo, hi) slice bounds of the current page.
func (s *State) pageBounds() (int, int) {
	n := s.FilteredCount()
	lo := (s.Page - 1) * s.ItemsPerPage
	if lo > n {
		lo = n
	}
	hi := lo + s.ItemsPerPage
	if hi > n {
		hi = n
	}
	return lo, hi
}

// PageTutors returns the visible slice of the active tutor list.
func (s *State) PageTutors() []*model.Tutor {
	lo, hi := s.pageBounds()
	return s.FilteredTutors()[lo:hi]
}

// PageRequests returns the visible slice of the applicant list.
func (s *State) PageRequests() []Applicant {
	lo, hi := s.pageBounds()
	return s.FilteredRequests()[lo:hi]
}

// ApplyAccept patches local state after a successful accept write: the
// accepted tutor moves to Upcoming, and every applicant of the same job
// leaves MyRequests — the job no longer accepts other applicants.
func (s *State) ApplyAccept(jobID, tutorID string) {
	kept := s.MyRequests[:0:0]
	for _, req := range s.MyRequests {
		if req.JobID == jobID {
			if req.Tutor != nil && req.Tutor.ID == tutorID {
				s.Upcoming = append(s.Upcoming, req.Tutor)
			}
			continue
		}
		kept = append(kept, req)
	}
	s.MyRequests = kept
	s.clampPage()
}

// ApplyDecline patches local state after a successful decline write:
// only the declined tutor leaves MyRequests.
func (s *State) ApplyDecline(jobID, tutorID string) {
	kept := s.MyRequests[:0:0]
	for _, req := range s.MyRequests {
		if req.JobID == jobID && req.Tutor != nil && req.Tutor.ID == tutorID {
			continue
		}
		kept = append(kept, req)
	}
	s.MyRequests = kept
	s.clampPage()
}

// FindRequest locates a pending applicant by job and tutor id.
func (s *State) FindRequest(jobID, tutorID string) (Applicant, bool) {
	for _, req := range s.MyRequests {
		if req.JobID == jobID && req.Tutor != nil && req.Tutor.ID == tutorID {
			return req, true
		}
	}
	return Applicant{}, false
}

// FindTutor locates a tutor in the master list.
func (s *State) FindTutor(tutorID string) (*model.Tutor, bool) {
	for _, tutor := range s.Tutors {
		if tutor.ID == tutorID {
			return tutor, true
		}
	}
	return nil, false
}
