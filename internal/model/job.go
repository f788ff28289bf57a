package model

import "time"

// Job is a standing request for a tutor, open to applications.
type Job struct {
	ID              string    `json:"id"`
	PostedBy        string    `json:"postedBy"` // parent document id
	JobTitle        string    `json:"jobTitle"`
	Location        string    `json:"location"`
	SubjectAreas    []string  `json:"subjectAreas"`
	HourlyRate      int       `json:"hourlyRate"`
	AppliedTutors   []string  `json:"appliedTutors"` // tutor ids
	AcceptedTutorID string    `json:"acceptedTutorId,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IsFilled reports whether the job already has an accepted tutor.
// A filled job no longer accepts other applicants.
func (j *Job) IsFilled() bool {
	return j.AcceptedTutorID != ""
}

// HasApplicant checks if the tutor is in the applicant list.
func (j *Job) HasApplicant(tutorID string) bool {
	for _, id := range j.AppliedTutors {
		if id == tutorID {
			return true
		}
	}
	return false
}

// WithoutApplicant returns the applicant list with one tutor removed.
// The filter happens client-side before the write is issued.
func (j *Job) WithoutApplicant(tutorID string) []string {
	filtered := make([]string, 0, len(j.AppliedTutors))
	for _, id := range j.AppliedTutors {
		if id != tutorID {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
