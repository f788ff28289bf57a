// Package billing computes weekly tutoring hours and cost from a week
// schedule and an hourly rate.
//
// Policy: minutes are accumulated across all qualifying days first, then the
// total is rounded to whole hours (round-half-up). The bill reuses the
// rounded hours, not the exact minutes.
package billing

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// Hourly rate bounds in Taka. The closed range is accepted at both ends.
const (
	MinHourlyRate = 1500
	MaxHourlyRate = 3000
)

// ErrRateOutOfRange is returned when the hourly rate falls outside
// [MinHourlyRate, MaxHourlyRate].
var ErrRateOutOfRange = fmt.Errorf(
	"hourly rate must be between %d and %d", MinHourlyRate, MaxHourlyRate)

// ValidateRate checks the hourly rate against the allowed range.
// Rate edits themselves are never blocked; only the review/submit
// transition enforces this.
func ValidateRate(rate int) error {
	if rate < MinHourlyRate || rate > MaxHourlyRate {
		return ErrRateOutOfRange
	}
	return nil
}

// WeeklyMinutes sums the minutes of every qualifying day. A day qualifies
// when it is selected, both times are present and end is after start.
// Anything else contributes zero, silently.
func WeeklyMinutes(ws *model.WeekSchedule) int {
	total := 0
	for d := model.Monday; d < model.DaysInWeek; d++ {
		day := ws[d]
		if !day.Selected || day.Start == nil || day.End == nil {
			continue
		}
		minutes := day.End.MinuteOfDay() - day.Start.MinuteOfDay()
		if minutes <= 0 {
			continue
		}
		total += minutes
	}
	return total
}

// WeeklyHours converts the schedule to whole weekly hours:
// round-half-up(total minutes / 60), rounded once over the weekly total
// rather than per day.
func WeeklyHours(ws *model.WeekSchedule) int {
	return RoundHours(WeeklyMinutes(ws))
}

// RoundHours rounds non-negative minutes to whole hours, half up.
func RoundHours(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return (minutes + 30) / 60
}

// Bill is the weekly cost at the given rate and rounded hours.
func Bill(hourlyRate, weeklyHours int) int {
	return hourlyRate * weeklyHours
}

// BillForSchedule recomputes hours and bill in one step. Used wherever
// rate, selection or times changed.
func BillForSchedule(hourlyRate int, ws *model.WeekSchedule) (hours, bill int) {
	hours = WeeklyHours(ws)
	return hours, Bill(hourlyRate, hours)
}

// ErrInvalidWindow is returned when parsing a time window that is not of
// the form "HH:MM-HH:MM".
var ErrInvalidWindow = errors.New("invalid time window")

// ParseWindow parses a "14:00-16:30" style window into start and end times.
func ParseWindow(s string) (start, end model.TimeOfDay, err error) {
	var sh, sm, eh, em int
	if _, perr := fmt.Sscanf(s, "%d:%d-%d:%d", &sh, &sm, &eh, &em); perr != nil {
		return start, end, ErrInvalidWindow
	}
	if sh < 0 || sh > 23 || eh < 0 || eh > 23 || sm < 0 || sm > 59 || em < 0 || em > 59 {
		return start, end, ErrInvalidWindow
	}
	return model.TimeOfDay{Hour: sh, Minute: sm}, model.TimeOfDay{Hour: eh, Minute: em}, nil
}
