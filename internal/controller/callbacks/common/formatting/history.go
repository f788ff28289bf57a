package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/tutorhub_bot/internal/history"
)

// EntryLine renders one history row in list mode.
func EntryLine(e history.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s <b>%s</b> · %s\n", kindEmoji(e.Kind), e.JobTitle, e.Kind.Label())
	if e.TutorName != "" {
		fmt.Fprintf(&b, "   👨‍🏫 %s\n", e.TutorName)
	}
	fmt.Fprintf(&b, "   %s · %s", StatusLine(e.Status), FormatRate(e.HourlyRate))
	if e.TotalBill > 0 {
		fmt.Fprintf(&b, " · %s/week", FormatTaka(e.TotalBill))
	}
	fmt.Fprintf(&b, "\n   📅 %s", FormatDate(e.CreatedAt))

	return b.String()
}

// EntryCard renders one history row in grid mode: a compact card.
func EntryCard(e history.Entry) string {
	return fmt.Sprintf("%s <b>%s</b>\n   %s · %s",
		kindEmoji(e.Kind), e.JobTitle, StatusLine(e.Status), FormatRate(e.HourlyRate))
}

func kindEmoji(k history.EntryKind) string {
	if k == history.KindHireRequest {
		return "🤝"
	}
	return "📢"
}
