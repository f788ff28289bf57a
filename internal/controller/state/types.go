package state

// UserState marks which dialog input the next text message feeds.
type UserState string

const (
	StateNone UserState = "" // no active dialog

	// Directory search
	StateSearchTutors UserState = "search_tutors"

	// Hire wizard text steps
	StateHireJobTitle  UserState = "hire_job_title"
	StateHireRate      UserState = "hire_rate"
	StateHireSubjects  UserState = "hire_subjects"
	StateHireAddress   UserState = "hire_address"
	StateHirePhone     UserState = "hire_phone"
	StateHireChild     UserState = "hire_child"      // data: child_index
	StateHireDayWindow UserState = "hire_day_window" // data: day

	// History view
	StateHistorySearch UserState = "history_search"
	StateEditTitle     UserState = "edit_title"
	StateEditRate      UserState = "edit_rate"
)

// UserData keeps the dialog position plus scratch values for the current
// dialog.
type UserData struct {
	State UserState
	Data  map[string]interface{}
}
