package model

import "time"

// HireStatus is the lifecycle status of a hire request.
type HireStatus string

const (
	HireStatusPending   HireStatus = "pending"
	HireStatusAccepted  HireStatus = "accepted"
	HireStatusCompleted HireStatus = "completed"
	HireStatusCancelled HireStatus = "cancelled"
	HireStatusOpen      HireStatus = "open"
)

// DayWindow is a formatted start/end pair for one selected day,
// e.g. {"2:00 pm", "4:30 pm"}. Only selected days appear in a request.
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ChildAttachment describes one child the tutoring is for. The list is
// bound to the hire form session and persisted with the request.
type ChildAttachment struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Grade string `json:"grade"`
}

// IsBlank reports whether the entry has not been filled in yet.
func (c ChildAttachment) IsBlank() bool {
	return c.Name == "" && c.Age == 0 && c.Grade == ""
}

// HireRequest is a direct, parent-initiated offer to a specific tutor with
// a proposed weekly schedule and rate. Created by the hire wizard and
// persisted under the parent document on submit.
type HireRequest struct {
	ID           string               `json:"id"`
	TutorID      string               `json:"tutorId"`
	TutorName    string               `json:"tutorName"`
	JobTitle     string               `json:"jobTitle"`
	HourlyRate   int                  `json:"hourlyRate"`
	WeeklyHours  int                  `json:"weeklyHours"` // derived, see billing
	TotalBill    int                  `json:"totalBill"`   // hourlyRate × weeklyHours
	StudyLevel   string               `json:"studyLevel"`
	SubjectAreas []string             `json:"subjectAreas"`
	Address      string               `json:"address"`
	ContactPhone string               `json:"contactPhone"`
	SelectedDays map[string]bool      `json:"selectedDays"` // weekday key -> on/off
	DayTimes     map[string]DayWindow `json:"dayTimes"`     // only selected days
	Children     []ChildAttachment    `json:"children"`
	Status       HireStatus           `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}
