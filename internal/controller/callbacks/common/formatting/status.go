package formatting

import "strings"

// StatusDisplay pairs an emoji with the status text shown to the user.
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetStatusDisplay maps a job or hire-request status to its display pair.
func GetStatusDisplay(status string) StatusDisplay {
	displays := map[string]StatusDisplay{
		"pending":   {"⏳", "Pending"},
		"accepted":  {"✅", "Accepted"},
		"completed": {"✔️", "Completed"},
		"cancelled": {"❌", "Cancelled"},
		"open":      {"📢", "Open"},
	}

	if display, ok := displays[strings.ToLower(status)]; ok {
		return display
	}

	return StatusDisplay{"❓", status}
}

// StatusLine renders "⏳ Pending".
func StatusLine(status string) string {
	d := GetStatusDisplay(status)
	return d.Emoji + " " + d.Text
}
