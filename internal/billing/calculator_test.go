package billing_test

import (
	"testing"

	"github.com/Freeeeeet/tutorhub_bot/internal/billing"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

func at(hour, minute int) *model.TimeOfDay {
	return &model.TimeOfDay{Hour: hour, Minute: minute}
}

// ── WeeklyHours ────────────────────────────────────────────────────────────

func TestWeeklyHours_SingleDayRoundsHalfUp(t *testing.T) {
	// Monday 14:00-16:30 = 150 minutes, round(2.5h) = 3h (half up).
	var ws model.WeekSchedule
	ws[model.Monday] = model.DaySchedule{Selected: true, Start: at(14, 0), End: at(16, 30)}

	if got := billing.WeeklyHours(&ws); got != 3 {
		t.Errorf("WeeklyHours = %d, want 3", got)
	}
	if got := billing.Bill(2000, billing.WeeklyHours(&ws)); got != 6000 {
		t.Errorf("Bill(2000, hours) = %d, want 6000", got)
	}
}

func TestWeeklyHours_RoundsOverTotalNotPerDay(t *testing.T) {
	// Two days of 1h20m each: 160 minutes total -> round(2.67h) = 3h.
	// Per-day flooring would give 2h.
	var ws model.WeekSchedule
	ws[model.Monday] = model.DaySchedule{Selected: true, Start: at(9, 0), End: at(10, 20)}
	ws[model.Thursday] = model.DaySchedule{Selected: true, Start: at(9, 0), End: at(10, 20)}

	if got := billing.WeeklyHours(&ws); got != 3 {
		t.Errorf("WeeklyHours = %d, want 3", got)
	}
}

func TestWeeklyHours_SkipsNonQualifyingDays(t *testing.T) {
	var ws model.WeekSchedule
	// Selected but missing end.
	ws[model.Monday] = model.DaySchedule{Selected: true, Start: at(9, 0)}
	// Selected but end before start.
	ws[model.Tuesday] = model.DaySchedule{Selected: true, Start: at(15, 0), End: at(14, 0)}
	// Selected with zero-length window.
	ws[model.Wednesday] = model.DaySchedule{Selected: true, Start: at(9, 0), End: at(9, 0)}
	// Complete window but not selected.
	ws[model.Friday] = model.DaySchedule{Selected: false, Start: at(9, 0), End: at(11, 0)}
	// The only qualifying day.
	ws[model.Saturday] = model.DaySchedule{Selected: true, Start: at(10, 0), End: at(12, 0)}

	if got := billing.WeeklyHours(&ws); got != 2 {
		t.Errorf("WeeklyHours = %d, want 2 (only Saturday qualifies)", got)
	}
}

func TestWeeklyHours_EmptySchedule(t *testing.T) {
	var ws model.WeekSchedule
	if got := billing.WeeklyHours(&ws); got != 0 {
		t.Errorf("WeeklyHours of empty schedule = %d, want 0", got)
	}
}

// ── RoundHours ─────────────────────────────────────────────────────────────

func TestRoundHours(t *testing.T) {
	cases := []struct {
		minutes int
		want    int
	}{
		{0, 0},
		{29, 0},
		{30, 1}, // half rounds up
		{59, 1},
		{60, 1},
		{89, 1},
		{90, 2},
		{150, 3},
		{-10, 0},
	}
	for _, c := range cases {
		if got := billing.RoundHours(c.minutes); got != c.want {
			t.Errorf("RoundHours(%d) = %d, want %d", c.minutes, got, c.want)
		}
	}
}

// ── Bill invariant ─────────────────────────────────────────────────────────

// The bill must equal rate × rounded hours after any schedule mutation.
func TestBillForSchedule_HoldsAfterEveryChange(t *testing.T) {
	var ws model.WeekSchedule
	mutations := []func(){
		func() { ws[model.Monday] = model.DaySchedule{Selected: true, Start: at(8, 0), End: at(10, 0)} },
		func() { ws[model.Monday].End = at(9, 45) },
		func() { ws.Toggle(model.Sunday) },
		func() { ws[model.Sunday].Start, ws[model.Sunday].End = at(18, 0), at(19, 30) },
		func() { ws.Toggle(model.Monday) },
	}
	for i, mutate := range mutations {
		mutate()
		hours, bill := billing.BillForSchedule(1800, &ws)
		if bill != 1800*hours {
			t.Errorf("after mutation %d: bill = %d, want %d", i, bill, 1800*hours)
		}
		if hours != billing.RoundHours(billing.WeeklyMinutes(&ws)) {
			t.Errorf("after mutation %d: hours not derived from total minutes", i)
		}
	}
}

// ── ValidateRate ───────────────────────────────────────────────────────────

func TestValidateRate_Bounds(t *testing.T) {
	for _, rate := range []int{1500, 2000, 3000} {
		if err := billing.ValidateRate(rate); err != nil {
			t.Errorf("ValidateRate(%d) unexpected error: %v", rate, err)
		}
	}
	for _, rate := range []int{0, 1499, 3001, -100} {
		if err := billing.ValidateRate(rate); err == nil {
			t.Errorf("ValidateRate(%d) expected error, got nil", rate)
		}
	}
}

// ── ParseWindow ────────────────────────────────────────────────────────────

func TestParseWindow(t *testing.T) {
	start, end, err := billing.ParseWindow("14:00-16:30")
	if err != nil {
		t.Fatalf("ParseWindow unexpected error: %v", err)
	}
	if start != (model.TimeOfDay{Hour: 14, Minute: 0}) {
		t.Errorf("start = %+v", start)
	}
	if end != (model.TimeOfDay{Hour: 16, Minute: 30}) {
		t.Errorf("end = %+v", end)
	}

	for _, bad := range []string{"", "14:00", "9-11", "25:00-26:00", "10:70-11:00", "abc"} {
		if _, _, err := billing.ParseWindow(bad); err == nil {
			t.Errorf("ParseWindow(%q) expected error, got nil", bad)
		}
	}
}
