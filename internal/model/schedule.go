package model

import "fmt"

// Weekday indexes the seven days of a weekly schedule, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	DaysInWeek = 7
)

var weekdayKeys = [DaysInWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var weekdayNames = [DaysInWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Key returns the lowercase document key for the day.
func (d Weekday) Key() string {
	if d < 0 || d >= DaysInWeek {
		return "?"
	}
	return weekdayKeys[d]
}

// Name returns the display name of the day.
func (d Weekday) Name() string {
	if d < 0 || d >= DaysInWeek {
		return "?"
	}
	return weekdayNames[d]
}

// ShortName returns the three-letter display name of the day.
func (d Weekday) ShortName() string {
	return d.Name()[:3]
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int `json:"hour"`   // 0-23
	Minute int `json:"minute"` // 0-59
}

// MinuteOfDay returns minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// FormatAmPm formats the time in 12-hour form, e.g. "2:30 pm".
func (t TimeOfDay) FormatAmPm() string {
	suffix := "am"
	hour := t.Hour
	if hour >= 12 {
		suffix = "pm"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, suffix)
}

// Format24 formats the time as "15:04".
func (t TimeOfDay) Format24() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DaySchedule is one day's on/off selection plus an optional time window.
// Start and End stay nil until the parent picks a window.
type DaySchedule struct {
	Selected bool       `json:"selected"`
	Start    *TimeOfDay `json:"start,omitempty"`
	End      *TimeOfDay `json:"end,omitempty"`
}

// WeekSchedule holds the per-day selections for one week, Monday first.
type WeekSchedule [DaysInWeek]DaySchedule

// SelectedDays returns the days currently switched on.
func (w *WeekSchedule) SelectedDays() []Weekday {
	var days []Weekday
	for d := Monday; d < DaysInWeek; d++ {
		if w[d].Selected {
			days = append(days, d)
		}
	}
	return days
}

// Toggle flips one day's selection.
func (w *WeekSchedule) Toggle(d Weekday) {
	if d < 0 || d >= DaysInWeek {
		return
	}
	w[d].Selected = !w[d].Selected
}
