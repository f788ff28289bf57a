// Package hireform holds the hire-request wizard state: a two-screen
// machine (Form → Review) with validation gates, a repeatable child list
// and the weekly schedule feeding the billing calculator.
package hireform

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Freeeeeet/tutorhub_bot/internal/billing"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// Step is the wizard screen currently shown.
type Step int

const (
	StepForm Step = iota
	StepReview
)

// StudyLevel choices offered on the form.
var StudyLevels = []string{"Primary", "Secondary", "Higher Secondary", "Admission"}

// Guard failure messages. The latest failing guard wins; messages are not
// accumulated.
var (
	ErrRateOutOfRange   = fmt.Errorf("hourly rate must be between ৳%d and ৳%d", billing.MinHourlyRate, billing.MaxHourlyRate)
	ErrNotAuthenticated = errors.New("you must be signed in to hire a tutor")
	ErrNoTutorSelected  = errors.New("no tutor selected for this request")
	ErrCannotRemoveLast = errors.New("the first child entry cannot be removed")
	ErrSubmitInFlight   = errors.New("a submission is already in progress")
)

// Form is one wizard session targeting a single tutor.
type Form struct {
	Step Step

	TutorID   string
	TutorName string

	JobTitle     string
	HourlyRate   int
	StudyLevel   string
	SubjectAreas []string
	Address      string
	ContactPhone string
	Children     []model.ChildAttachment
	Schedule     model.WeekSchedule

	// RateError is the inline range message. It never blocks further edits
	// to the rate field; only ToReview enforces the range.
	RateError string

	// GuardError is the latest Form→Review guard failure.
	GuardError string

	submitting bool
}

// New starts a wizard session for a tutor, with one blank child entry.
func New(tutorID, tutorName string) *Form {
	f := &Form{TutorID: tutorID, TutorName: tutorName}
	f.Reset()
	f.TutorID = tutorID
	f.TutorName = tutorName
	return f
}

// Reset clears every field back to defaults and collapses the child list
// to a single blank entry. Called on every wizard exit path.
func (f *Form) Reset() {
	*f = Form{
		Step:     StepForm,
		Children: []model.ChildAttachment{{}},
	}
}

// SetHourlyRate stores the rate and refreshes the inline range message.
func (f *Form) SetHourlyRate(rate int) {
	f.HourlyRate = rate
	if err := billing.ValidateRate(rate); err != nil {
		f.RateError = ErrRateOutOfRange.Error()
	} else {
		f.RateError = ""
	}
}

// WeeklyHours derives the billable hours from the current schedule.
func (f *Form) WeeklyHours() int {
	return billing.WeeklyHours(&f.Schedule)
}

// TotalBill derives the weekly bill from the current rate and schedule.
func (f *Form) TotalBill() int {
	return billing.Bill(f.HourlyRate, f.WeeklyHours())
}

// AddChild appends a blank child entry and returns its index.
func (f *Form) AddChild() int {
	f.Children = append(f.Children, model.ChildAttachment{})
	return len(f.Children) - 1
}

// SetChild replaces the entry at index.
func (f *Form) SetChild(index int, child model.ChildAttachment) error {
	if index < 0 || index >= len(f.Children) {
		return fmt.Errorf("child index %d out of range", index)
	}
	f.Children[index] = child
	return nil
}

// RemoveChild deletes the entry at index. Index 0 is not removable: the
// form always keeps at least one child.
func (f *Form) RemoveChild(index int) error {
	if index == 0 {
		return ErrCannotRemoveLast
	}
	if index < 0 || index >= len(f.Children) {
		return fmt.Errorf("child index %d out of range", index)
	}
	f.Children = append(f.Children[:index], f.Children[index+1:]...)
	return nil
}

// SetDayWindow installs a validated time window for one day.
func (f *Form) SetDayWindow(day model.Weekday, start, end model.TimeOfDay) {
	if day < 0 || day >= model.DaysInWeek {
		return
	}
	f.Schedule[day].Selected = true
	f.Schedule[day].Start = &start
	f.Schedule[day].End = &end
}

// ToReview runs the transition guards. All guards are evaluated; the last
// failure is kept as GuardError and the step stays at Form.
func (f *Form) ToReview(authenticated bool) error {
	var failed error
	if err := billing.ValidateRate(f.HourlyRate); err != nil {
		failed = ErrRateOutOfRange
	}
	if !authenticated {
		failed = ErrNotAuthenticated
	}
	if f.TutorID == "" {
		failed = ErrNoTutorSelected
	}

	if failed != nil {
		f.GuardError = failed.Error()
		return failed
	}

	f.GuardError = ""
	f.Step = StepReview
	return nil
}

// BackToForm returns from Review without losing any data.
func (f *Form) BackToForm() {
	f.Step = StepForm
}

// BeginSubmit marks the form busy. Returns ErrSubmitInFlight when a
// submission is already running, so a double tap cannot write twice.
func (f *Form) BeginSubmit() error {
	if f.submitting {
		return ErrSubmitInFlight
	}
	f.submitting = true
	return nil
}

// EndSubmit clears the busy flag, success or not.
func (f *Form) EndSubmit() {
	f.submitting = false
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// BuildRequest assembles the full hire-request payload. Only selected days
// with a complete window are formatted into DayTimes ("2:00 pm" style);
// the id is time-based with a short uuid suffix for uniqueness.
func (f *Form) BuildRequest(now time.Time) *model.HireRequest {
	hours := f.WeeklyHours()

	selected := make(map[string]bool, model.DaysInWeek)
	times := make(map[string]model.DayWindow)
	for d := model.Monday; d < model.DaysInWeek; d++ {
		day := f.Schedule[d]
		selected[d.Key()] = day.Selected
		if day.Selected && day.Start != nil && day.End != nil {
			times[d.Key()] = model.DayWindow{
				Start: day.Start.FormatAmPm(),
				End:   day.End.FormatAmPm(),
			}
		}
	}

	return &model.HireRequest{
		ID:           fmt.Sprintf("hr-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		TutorID:      f.TutorID,
		TutorName:    f.TutorName,
		JobTitle:     f.JobTitle,
		HourlyRate:   f.HourlyRate,
		WeeklyHours:  hours,
		TotalBill:    billing.Bill(f.HourlyRate, hours),
		StudyLevel:   f.StudyLevel,
		SubjectAreas: append([]string(nil), f.SubjectAreas...),
		Address:      f.Address,
		ContactPhone: f.ContactPhone,
		SelectedDays: selected,
		DayTimes:     times,
		Children:     append([]model.ChildAttachment(nil), f.Children...),
		Status:       model.HireStatusPending,
		CreatedAt:    now.UTC(),
	}
}
