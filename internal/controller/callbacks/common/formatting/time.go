package formatting

import (
	"fmt"
	"time"
)

// FormatDate formats only the date.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateTime formats date and time.
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatLastActive renders a tutor's last-seen time relative to now.
func FormatLastActive(lastActive *time.Time) string {
	if lastActive == nil {
		return "a while ago"
	}

	d := time.Since(*lastActive)
	switch {
	case d < time.Hour:
		return "just now"
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case d < 48*time.Hour:
		return "yesterday"
	default:
		days := int(d.Hours() / 24)
		return fmt.Sprintf("%d days ago", days)
	}
}
