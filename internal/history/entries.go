// Package history implements the job-history surface: directly-posted jobs
// and parent-embedded hire requests merged into one list, with status/text
// filtering, pagination and an edit session.
//
// The two sources are distinguished by an explicit kind tag. Downstream
// edit/save logic dispatches on the tag, never on id conventions.
package history

import (
	"sort"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/billing"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// EntryKind tags the source of a merged entry.
type EntryKind int

const (
	KindJob EntryKind = iota
	KindHireRequest
)

// Label returns the display name of the kind.
func (k EntryKind) Label() string {
	if k == KindHireRequest {
		return "Hire Request"
	}
	return "Job Post"
}

// Entry is one row of the merged history list.
type Entry struct {
	Kind         EntryKind
	ID           string
	JobTitle     string
	TutorName    string
	Location     string
	SubjectAreas []string
	Status       string
	HourlyRate   int
	WeeklyHours  int
	TotalBill    int
	CreatedAt    time.Time

	// Persisted weekly schedule, hire requests only. Shown in the edit
	// dialog; not editable there.
	SelectedDays map[string]bool
	DayTimes     map[string]model.DayWindow
}

// EntryFromJob converts a posted job.
func EntryFromJob(j *model.Job) Entry {
	return Entry{
		Kind:         KindJob,
		ID:           j.ID,
		JobTitle:     j.JobTitle,
		Location:     j.Location,
		SubjectAreas: j.SubjectAreas,
		Status:       j.Status,
		HourlyRate:   j.HourlyRate,
		CreatedAt:    j.CreatedAt,
	}
}

// EntryFromHireRequest converts an embedded hire request.
func EntryFromHireRequest(r *model.HireRequest) Entry {
	return Entry{
		Kind:         KindHireRequest,
		ID:           r.ID,
		JobTitle:     r.JobTitle,
		TutorName:    r.TutorName,
		Location:     r.Address,
		SubjectAreas: r.SubjectAreas,
		Status:       string(r.Status),
		HourlyRate:   r.HourlyRate,
		WeeklyHours:  r.WeeklyHours,
		TotalBill:    r.TotalBill,
		CreatedAt:    r.CreatedAt,
		SelectedDays: r.SelectedDays,
		DayTimes:     r.DayTimes,
	}
}

// Merge combines both sources ordered by creation time descending.
// The sort is stable so fetch order decides ties.
func Merge(jobs []*model.Job, requests []*model.HireRequest) []Entry {
	entries := make([]Entry, 0, len(jobs)+len(requests))
	for _, j := range jobs {
		entries = append(entries, EntryFromJob(j))
	}
	for _, r := range requests {
		entries = append(entries, EntryFromHireRequest(r))
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].CreatedAt.After(entries[b].CreatedAt)
	})
	return entries
}

// RecomputeBill derives the bill from the entry's rate and stored weekly
// hours. Hours are not independently editable.
func (e *Entry) RecomputeBill() {
	e.TotalBill = billing.Bill(e.HourlyRate, e.WeeklyHours)
}
