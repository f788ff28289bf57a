package history

// EditSession holds a full mutable copy of one entry while the edit dialog
// is open. The bill is re-derived on every rate change, before any save.
type EditSession struct {
	Original Entry
	Entry    Entry
}

// NewEditSession copies the entry into a session.
func NewEditSession(entry Entry) *EditSession {
	return &EditSession{Original: entry, Entry: entry}
}

// SetJobTitle edits the title.
func (s *EditSession) SetJobTitle(title string) {
	s.Entry.JobTitle = title
}

// SetStatus edits the status.
func (s *EditSession) SetStatus(status string) {
	s.Entry.Status = status
}

// SetHourlyRate edits the rate and immediately recomputes the total bill
// from the currently stored weekly hours. The total is read-only.
func (s *EditSession) SetHourlyRate(rate int) {
	s.Entry.HourlyRate = rate
	s.Entry.RecomputeBill()
}

// Dirty reports whether any editable field changed against the original.
func (s *EditSession) Dirty() bool {
	return s.Entry.JobTitle != s.Original.JobTitle ||
		s.Entry.Status != s.Original.Status ||
		s.Entry.HourlyRate != s.Original.HourlyRate ||
		s.Entry.Location != s.Original.Location
}

// Fields returns the partial-update payload for the entry's source type.
// Jobs and hire requests live in different document shapes, so the field
// sets differ.
func (s *EditSession) Fields() map[string]interface{} {
	switch s.Entry.Kind {
	case KindHireRequest:
		return map[string]interface{}{
			"jobTitle":   s.Entry.JobTitle,
			"hourlyRate": s.Entry.HourlyRate,
			"totalBill":  s.Entry.TotalBill,
			"status":     s.Entry.Status,
		}
	default:
		return map[string]interface{}{
			"jobTitle":   s.Entry.JobTitle,
			"location":   s.Entry.Location,
			"hourlyRate": s.Entry.HourlyRate,
			"status":     s.Entry.Status,
		}
	}
}
