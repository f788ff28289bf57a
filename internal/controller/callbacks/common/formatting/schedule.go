package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// ScheduleSummary renders the selected days with their windows, one day
// per line. Days without a window yet show "time not set".
func ScheduleSummary(week *model.WeekSchedule) string {
	var b strings.Builder
	for d := model.Monday; d < model.DaysInWeek; d++ {
		day := week[d]
		if !day.Selected {
			continue
		}
		if day.Start != nil && day.End != nil {
			fmt.Fprintf(&b, "  • %s: %s – %s\n", d.Name(), day.Start.FormatAmPm(), day.End.FormatAmPm())
		} else {
			fmt.Fprintf(&b, "  • %s: time not set\n", d.Name())
		}
	}
	if b.Len() == 0 {
		return "  • no days selected\n"
	}
	return b.String()
}

// DayTimesSummary renders the persisted day windows of a hire request.
func DayTimesSummary(selected map[string]bool, times map[string]model.DayWindow) string {
	var b strings.Builder
	for d := model.Monday; d < model.DaysInWeek; d++ {
		key := d.Key()
		if !selected[key] {
			continue
		}
		if window, ok := times[key]; ok {
			fmt.Fprintf(&b, "  • %s: %s – %s\n", d.Name(), window.Start, window.End)
		} else {
			fmt.Fprintf(&b, "  • %s\n", d.Name())
		}
	}
	if b.Len() == 0 {
		return "  • no days selected\n"
	}
	return b.String()
}
