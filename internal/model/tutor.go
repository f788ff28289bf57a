package model

import "time"

// Tutor is a service-provider profile listed in the directory.
// Profiles are created on the marketplace side and fetched read-only.
type Tutor struct {
	ID                string     `json:"id"`
	FullName          string     `json:"fullName"`
	Location          string     `json:"location"`
	HourlyRate        int        `json:"hourlyRate"` // Taka per hour
	YearsOfExperience int        `json:"yearsOfExperience"`
	Bio               string     `json:"bio"`
	Specializations   []string   `json:"specializations"`
	PreviousSchools   []string   `json:"previousSchools"`
	LastActive        *time.Time `json:"lastActive,omitempty"`
	ProfilePicture    string     `json:"profilePicture,omitempty"` // opaque media reference
}
