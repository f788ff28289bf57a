package common

import "errors"

// Shared handler errors.
var (
	ErrParentNotFound   = errors.New("parent not found")
	ErrTutorNotFound    = errors.New("tutor not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrRequestNotFound  = errors.New("hire request not found")
	ErrEntryNotFound    = errors.New("history entry not found")
	ErrNoMessage        = errors.New("no message in callback")
	ErrInvalidFormat    = errors.New("invalid callback format")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoOpenForm       = errors.New("no hire form in progress")
	ErrNoOpenEdit       = errors.New("no edit dialog open")
)

// ErrorMessage maps a handler error to the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrParentNotFound):
		return "❌ You are not registered yet. Use /start"
	case errors.Is(err, ErrTutorNotFound):
		return "❌ Tutor not found"
	case errors.Is(err, ErrJobNotFound):
		return "❌ Job not found"
	case errors.Is(err, ErrRequestNotFound):
		return "❌ Hire request not found"
	case errors.Is(err, ErrEntryNotFound):
		return "❌ Entry not found"
	case errors.Is(err, ErrNoMessage):
		return "❌ Failed to process the message"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.Is(err, ErrNotAuthenticated):
		return "❌ Please sign in first. Use /start"
	case errors.Is(err, ErrNoOpenForm):
		return "❌ No hire request in progress. Open a tutor profile first"
	case errors.Is(err, ErrNoOpenEdit):
		return "❌ No edit dialog open"
	default:
		return "❌ Something went wrong"
	}
}
