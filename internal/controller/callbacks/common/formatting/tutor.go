package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// TutorLine renders one directory row: name, rate, location.
func TutorLine(t *model.Tutor) string {
	return fmt.Sprintf("👨‍🏫 <b>%s</b> — %s\n📍 %s", t.FullName, FormatRate(t.HourlyRate), t.Location)
}

// TutorProfileText renders the full profile screen body.
func TutorProfileText(t *model.Tutor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "👨‍🏫 <b>%s</b>\n\n", t.FullName)
	fmt.Fprintf(&b, "📍 Location: %s\n", t.Location)
	fmt.Fprintf(&b, "💰 Rate: %s\n", FormatRate(t.HourlyRate))
	fmt.Fprintf(&b, "🎓 Experience: %d years\n", t.YearsOfExperience)
	fmt.Fprintf(&b, "🕐 Last active: %s\n", FormatLastActive(t.LastActive))

	if len(t.Specializations) > 0 {
		fmt.Fprintf(&b, "\n📚 Specializations: %s\n", strings.Join(t.Specializations, ", "))
	}
	if len(t.PreviousSchools) > 0 {
		fmt.Fprintf(&b, "🏫 Previous schools: %s\n", strings.Join(t.PreviousSchools, ", "))
	}
	if t.Bio != "" {
		fmt.Fprintf(&b, "\n📝 %s\n", t.Bio)
	}

	return b.String()
}
