package common

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/tutorhub_bot/internal/directory"
	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
	"github.com/Freeeeeet/tutorhub_bot/internal/history"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Screen builders: each assembles the text plus keyboard of one screen
// from the view state, so callbacks and command handlers render the same
// thing.

var directoryTabs = []directory.Tab{
	directory.TabRecommended,
	directory.TabMyRequests,
	directory.TabUpcoming,
	directory.TabHistory,
}

// BuildDirectoryScreen renders the tutor directory for its current tab,
// query and page.
func BuildDirectoryScreen(s *directory.State) (string, *models.InlineKeyboardMarkup) {
	var b strings.Builder
	kb := keyboard.NewBuilder()

	fmt.Fprintf(&b, "🎓 <b>Tutor Directory — %s</b>\n", s.ActiveTab.Title())
	if s.Query != "" {
		fmt.Fprintf(&b, "🔍 Search: <i>%s</i>\n", s.Query)
	}
	b.WriteString("\n")

	// Tab row, active tab marked.
	var tabRow []models.InlineKeyboardButton
	for _, tab := range directoryTabs {
		label := tab.Title()
		if tab == s.ActiveTab {
			label = "· " + label + " ·"
		}
		tabRow = append(tabRow, keyboard.Button(label, fmt.Sprintf("dir_tab:%d", int(tab))))
	}
	kb.Row(tabRow[0], tabRow[1])
	kb.Row(tabRow[2], tabRow[3])

	switch s.ActiveTab {
	case directory.TabMyRequests:
		requests := s.PageRequests()
		if len(requests) == 0 {
			b.WriteString("No pending applications.\n")
		}
		for _, req := range requests {
			fmt.Fprintf(&b, "%s\n\n", formatting.TutorLine(req.Tutor))
			kb.Row(
				keyboard.Button("✅ Accept "+firstName(req.Tutor.FullName), fmt.Sprintf("req_accept:%s:%s", req.JobID, req.Tutor.ID)),
				keyboard.Button("❌ Decline", fmt.Sprintf("req_decline:%s:%s", req.JobID, req.Tutor.ID)),
			)
		}
	case directory.TabHistory:
		b.WriteString("Open the full history with /history.\n")
	default:
		tutors := s.PageTutors()
		if len(tutors) == 0 {
			if s.Query != "" {
				b.WriteString("No tutors match your search.\n")
			} else {
				b.WriteString("Nothing here yet.\n")
			}
		}
		for _, tutor := range tutors {
			fmt.Fprintf(&b, "%s\n\n", formatting.TutorLine(tutor))
			kb.Row(keyboard.Button("👤 "+tutor.FullName, "view_tutor:"+tutor.ID))
		}
	}

	kb.AddPagination("dir_page:", s.Page, s.TotalPages())

	if s.ActiveTab == directory.TabRecommended {
		if s.Query != "" {
			kb.Row(
				keyboard.Button("🔍 New search", "dir_search"),
				keyboard.Button("✖️ Clear", "dir_clear"),
			)
		} else {
			kb.Row(keyboard.Button("🔍 Search tutors", "dir_search"))
		}
	}

	return b.String(), kb.Build()
}

// BuildTutorProfileScreen renders one tutor profile with the hire entry
// point.
func BuildTutorProfileScreen(t *model.Tutor) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🤝 Hire "+firstName(t.FullName), "hire_start:"+t.ID)).
		Row(keyboard.Button("⬅️ Back to directory", "back_to_dir"))

	return formatting.TutorProfileText(t), kb.Build()
}

// BuildConfirmScreen renders the first phase of accept/decline: nothing
// has been written yet, the user must confirm.
func BuildConfirmScreen(action string, req directory.Applicant) (string, *models.InlineKeyboardMarkup) {
	verb := "accept"
	yes := fmt.Sprintf("req_accept_yes:%s:%s", req.JobID, req.Tutor.ID)
	if action == "decline" {
		verb = "decline"
		yes = fmt.Sprintf("req_decline_yes:%s:%s", req.JobID, req.Tutor.ID)
	}

	text := fmt.Sprintf(
		"❓ <b>Confirm</b>\n\nDo you want to %s <b>%s</b>'s application?\n\n%s",
		verb, req.Tutor.FullName, formatting.TutorLine(req.Tutor),
	)
	if action == "accept" {
		text += "\n\nAccepting fills the job and dismisses its other applicants."
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Yes", yes),
			keyboard.Button("⬅️ No, go back", "req_cancel"),
		)

	return text, kb.Build()
}

// BuildHireFormScreen renders the wizard's Form step.
func BuildHireFormScreen(f *hireform.Form) (string, *models.InlineKeyboardMarkup) {
	var b strings.Builder

	fmt.Fprintf(&b, "📝 <b>Hire Request — %s</b>\n\n", f.TutorName)
	fmt.Fprintf(&b, "📋 Title: %s\n", orDash(f.JobTitle))
	fmt.Fprintf(&b, "💰 Rate: %s\n", rateLine(f))
	fmt.Fprintf(&b, "🎓 Study level: %s\n", orDash(f.StudyLevel))
	fmt.Fprintf(&b, "📚 Subjects: %s\n", orDash(strings.Join(f.SubjectAreas, ", ")))
	fmt.Fprintf(&b, "🏠 Address: %s\n", orDash(f.Address))
	fmt.Fprintf(&b, "📞 Phone: %s\n", orDash(f.ContactPhone))

	b.WriteString("\n👧 Children:\n")
	for i, child := range f.Children {
		if child.IsBlank() {
			fmt.Fprintf(&b, "  %d. (not filled in)\n", i+1)
		} else {
			fmt.Fprintf(&b, "  %d. %s, %d, %s\n", i+1, child.Name, child.Age, child.Grade)
		}
	}

	b.WriteString("\n📅 Weekly schedule:\n")
	b.WriteString(formatting.ScheduleSummary(&f.Schedule))
	fmt.Fprintf(&b, "\n⏱ Weekly hours: %d\n", f.WeeklyHours())
	fmt.Fprintf(&b, "💵 Total per week: %s\n", formatting.FormatTaka(f.TotalBill()))

	if f.GuardError != "" {
		fmt.Fprintf(&b, "\n⚠️ %s\n", f.GuardError)
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📋 Title", "hire_title"),
			keyboard.Button("💰 Rate", "hire_rate"),
		).
		Row(
			keyboard.Button("📚 Subjects", "hire_subjects"),
			keyboard.Button("🎓 Level", "hire_level_menu"),
		).
		Row(
			keyboard.Button("🏠 Address", "hire_address"),
			keyboard.Button("📞 Phone", "hire_phone"),
		)

	// One toggle button per weekday, selected days marked.
	var dayRow []models.InlineKeyboardButton
	for d := model.Monday; d < model.DaysInWeek; d++ {
		label := d.ShortName()
		if f.Schedule[d].Selected {
			label = "✅" + label
		}
		dayRow = append(dayRow, keyboard.Button(label, fmt.Sprintf("hire_day:%d", int(d))))
		if len(dayRow) == 4 {
			kb.Row(dayRow...)
			dayRow = nil
		}
	}
	kb.Row(dayRow...)

	childRow := []models.InlineKeyboardButton{
		keyboard.Button("👧 Add child", "hire_child_add"),
	}
	if len(f.Children) > 1 {
		childRow = append(childRow, keyboard.Button("➖ Remove last", fmt.Sprintf("hire_child_rm:%d", len(f.Children)-1)))
	}
	kb.AddRow(childRow)

	var editRow []models.InlineKeyboardButton
	for i := range f.Children {
		editRow = append(editRow, keyboard.Button(fmt.Sprintf("✏️ Child %d", i+1), fmt.Sprintf("hire_child_edit:%d", i)))
	}
	kb.AddRow(editRow)

	kb.Row(keyboard.Button("➡️ Review", "hire_review")).
		Row(keyboard.Button("✖️ Cancel", "hire_cancel"))

	return b.String(), kb.Build()
}

// BuildLevelMenuScreen renders the study-level choices.
func BuildLevelMenuScreen(f *hireform.Form) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()
	for i, level := range hireform.StudyLevels {
		label := level
		if level == f.StudyLevel {
			label = "✅ " + label
		}
		kb.Row(keyboard.Button(label, fmt.Sprintf("hire_level:%d", i)))
	}
	kb.Row(keyboard.Button("⬅️ Back", "hire_form"))

	return "🎓 <b>Study level</b>\n\nPick the level the tutoring is for:", kb.Build()
}

// BuildReviewScreen renders the wizard's Review step.
func BuildReviewScreen(f *hireform.Form) (string, *models.InlineKeyboardMarkup) {
	var b strings.Builder

	fmt.Fprintf(&b, "🧾 <b>Review — hire %s</b>\n\n", f.TutorName)
	fmt.Fprintf(&b, "📋 %s\n", orDash(f.JobTitle))
	fmt.Fprintf(&b, "🎓 %s · 📚 %s\n", orDash(f.StudyLevel), orDash(strings.Join(f.SubjectAreas, ", ")))
	fmt.Fprintf(&b, "🏠 %s · 📞 %s\n\n", orDash(f.Address), orDash(f.ContactPhone))

	b.WriteString("📅 Schedule:\n")
	b.WriteString(formatting.ScheduleSummary(&f.Schedule))

	fmt.Fprintf(&b, "\n💰 %s × %d hrs = <b>%s per week</b>\n",
		formatting.FormatRate(f.HourlyRate), f.WeeklyHours(), formatting.FormatTaka(f.TotalBill()))
	b.WriteString("\nEverything correct?")

	confirmLabel := "✅ Confirm & send"
	if f.Submitting() {
		confirmLabel = "⏳ Sending..."
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button(confirmLabel, "hire_confirm")).
		Row(
			keyboard.Button("⬅️ Back to form", "hire_back"),
			keyboard.Button("✖️ Cancel", "hire_cancel"),
		)

	return b.String(), kb.Build()
}

// BuildHistoryScreen renders the merged history for its current filters,
// page and presentation mode.
func BuildHistoryScreen(v *history.View) (string, *models.InlineKeyboardMarkup) {
	var b strings.Builder

	b.WriteString("📜 <b>Job History</b>\n")
	if v.StatusFilter != "" {
		fmt.Fprintf(&b, "Filter: %s\n", formatting.StatusLine(v.StatusFilter))
	}
	if v.Query != "" {
		fmt.Fprintf(&b, "🔍 Search: <i>%s</i>\n", v.Query)
	}
	b.WriteString("\n")

	entries := v.PageEntries()
	if len(entries) == 0 {
		b.WriteString("Nothing to show.\n")
	}

	kb := keyboard.NewBuilder()
	for _, e := range entries {
		if v.Mode == history.ViewGrid {
			fmt.Fprintf(&b, "%s\n\n", formatting.EntryCard(e))
		} else {
			fmt.Fprintf(&b, "%s\n\n", formatting.EntryLine(e))
		}
		kb.Row(keyboard.Button("✏️ "+e.JobTitle, "hist_edit:"+e.ID))
	}

	kb.AddPagination("hist_page:", v.Page, v.TotalPages())

	modeLabel := "🔲 Grid view"
	if v.Mode == history.ViewGrid {
		modeLabel = "📃 List view"
	}
	kb.Row(
		keyboard.Button(modeLabel, "hist_mode"),
		keyboard.Button("🔍 Search", "hist_search"),
	)

	statusRow := []models.InlineKeyboardButton{
		keyboard.Button(statusFilterLabel(v, ""), "hist_status:all"),
		keyboard.Button(statusFilterLabel(v, "open"), "hist_status:open"),
		keyboard.Button(statusFilterLabel(v, "pending"), "hist_status:pending"),
	}
	kb.AddRow(statusRow)
	kb.Row(
		keyboard.Button(statusFilterLabel(v, "accepted"), "hist_status:accepted"),
		keyboard.Button(statusFilterLabel(v, "completed"), "hist_status:completed"),
		keyboard.Button(statusFilterLabel(v, "cancelled"), "hist_status:cancelled"),
	)

	return b.String(), kb.Build()
}

func statusFilterLabel(v *history.View, status string) string {
	label := "All"
	if status != "" {
		label = formatting.GetStatusDisplay(status).Text
	}
	if v.StatusFilter == status {
		label = "· " + label + " ·"
	}
	return label
}

// BuildEditScreen renders the history edit dialog with the live bill.
func BuildEditScreen(s *history.EditSession, errText string) (string, *models.InlineKeyboardMarkup) {
	e := s.Entry
	var b strings.Builder

	fmt.Fprintf(&b, "✏️ <b>Edit %s</b>\n\n", e.Kind.Label())
	fmt.Fprintf(&b, "📋 Title: %s\n", e.JobTitle)
	if e.Kind == history.KindJob {
		fmt.Fprintf(&b, "📍 Location: %s\n", orDash(e.Location))
	}
	fmt.Fprintf(&b, "💰 Rate: %s\n", formatting.FormatRate(e.HourlyRate))
	if e.Kind == history.KindHireRequest {
		fmt.Fprintf(&b, "⏱ Weekly hours: %d\n", e.WeeklyHours)
		fmt.Fprintf(&b, "💵 Total per week: %s\n", formatting.FormatTaka(e.TotalBill))
		b.WriteString("📅 Schedule:\n")
		b.WriteString(formatting.DayTimesSummary(e.SelectedDays, e.DayTimes))
	}
	fmt.Fprintf(&b, "📊 Status: %s\n", formatting.StatusLine(e.Status))
	fmt.Fprintf(&b, "🗓 Created: %s\n", formatting.FormatDateTime(e.CreatedAt))

	if errText != "" {
		fmt.Fprintf(&b, "\n⚠️ %s\n", errText)
	} else if s.Dirty() {
		b.WriteString("\nUnsaved changes.\n")
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📋 Title", "edit_title"),
			keyboard.Button("💰 Rate", "edit_rate"),
		)

	statuses := []string{"open", "pending", "accepted", "completed", "cancelled"}
	var row []models.InlineKeyboardButton
	for _, status := range statuses {
		label := formatting.GetStatusDisplay(status).Emoji
		if strings.EqualFold(e.Status, status) {
			label = "·" + label + "·"
		}
		row = append(row, keyboard.Button(label, "edit_status:"+status))
	}
	kb.AddRow(row)

	kb.Row(keyboard.Button("💾 Save", "edit_save")).
		Row(keyboard.Button("✖️ Close", "edit_close"))

	return b.String(), kb.Build()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func rateLine(f *hireform.Form) string {
	if f.HourlyRate == 0 {
		return "—"
	}
	line := formatting.FormatRate(f.HourlyRate)
	if f.RateError != "" {
		line += " ⚠️ " + f.RateError
	}
	return line
}

func firstName(full string) string {
	if idx := strings.IndexByte(full, ' '); idx > 0 {
		return full[:idx]
	}
	return full
}
