package history_test

import (
	"testing"

	"github.com/Freeeeeet/tutorhub_bot/internal/history"
)

func hireEntry() history.Entry {
	return history.Entry{
		Kind:        history.KindHireRequest,
		ID:          "hr-1",
		JobTitle:    "Math tutor",
		Status:      "pending",
		HourlyRate:  2000,
		WeeklyHours: 6,
		TotalBill:   12000,
	}
}

func TestEditSession_RateChangeRecomputesBillLive(t *testing.T) {
	s := history.NewEditSession(hireEntry())

	s.SetHourlyRate(2500)
	if s.Entry.TotalBill != 15000 {
		t.Errorf("totalBill = %d, want 15000 before any save", s.Entry.TotalBill)
	}
	if s.Entry.WeeklyHours != 6 {
		t.Error("weekly hours must not change with the rate")
	}

	// Original copy is untouched until a save replaces the entry.
	if s.Original.TotalBill != 12000 {
		t.Errorf("original bill mutated: %d", s.Original.TotalBill)
	}
}

func TestEditSession_Dirty(t *testing.T) {
	s := history.NewEditSession(hireEntry())
	if s.Dirty() {
		t.Error("fresh session must not be dirty")
	}
	s.SetJobTitle("Math and Physics tutor")
	if !s.Dirty() {
		t.Error("title edit must mark the session dirty")
	}
}

func TestFields_DispatchOnKind(t *testing.T) {
	hire := history.NewEditSession(hireEntry())
	hire.SetHourlyRate(1800)
	fields := hire.Fields()
	if fields["totalBill"] != 1800*6 {
		t.Errorf("hire fields totalBill = %v, want %d", fields["totalBill"], 1800*6)
	}
	if _, ok := fields["location"]; ok {
		t.Error("hire-request payload must not carry job-only fields")
	}

	job := history.NewEditSession(history.Entry{
		Kind: history.KindJob, ID: "job-1", JobTitle: "Physics tutor",
		Location: "Uttara", Status: "open", HourlyRate: 1700,
	})
	fields = job.Fields()
	if fields["location"] != "Uttara" {
		t.Errorf("job fields location = %v, want Uttara", fields["location"])
	}
	if _, ok := fields["totalBill"]; ok {
		t.Error("job payload must not carry hire-request-only fields")
	}
}
