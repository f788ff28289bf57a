package history

import "strings"

// ViewMode is a pure presentation toggle; list and grid render the same
// filtered, paginated data.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewGrid
)

// ItemsPerPage is the fixed page size of the history view.
const ItemsPerPage = 4

// View is the history view state for one chat.
type View struct {
	Entries      []Entry // master, sorted newest first
	StatusFilter string  // empty = all
	Query        string
	Page         int
	Mode         ViewMode
	ItemsPerPage int
}

// NewView wraps a merged entry list.
func NewView(entries []Entry) *View {
	return &View{
		Entries:      entries,
		Page:         1,
		ItemsPerPage: ItemsPerPage,
	}
}

// SetStatusFilter installs a status-equality filter and resets the page.
func (v *View) SetStatusFilter(status string) {
	v.StatusFilter = status
	v.Page = 1
}

// SetQuery installs a free-text filter and resets the page.
func (v *View) SetQuery(query string) {
	v.Query = strings.TrimSpace(query)
	v.Page = 1
}

// ToggleMode flips between list and grid rendering. The filtered data is
// untouched.
func (v *View) ToggleMode() {
	if v.Mode == ViewList {
		v.Mode = ViewGrid
	} else {
		v.Mode = ViewList
	}
}

// Filtered applies the pipeline in order: status equality, then free-text
// substring over title, tutor name, location and subject areas. Both are
// case-insensitive. Recomputed on read.
func (v *View) Filtered() []Entry {
	entries := v.Entries

	if v.StatusFilter != "" {
		status := strings.ToLower(v.StatusFilter)
		var byStatus []Entry
		for _, e := range entries {
			if strings.ToLower(e.Status) == status {
				byStatus = append(byStatus, e)
			}
		}
		entries = byStatus
	}

	if v.Query != "" {
		q := strings.ToLower(v.Query)
		var byText []Entry
		for _, e := range entries {
			if entryMatches(e, q) {
				byText = append(byText, e)
			}
		}
		entries = byText
	}

	return entries
}

func entryMatches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.JobTitle), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.TutorName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Location), q) {
		return true
	}
	for _, subject := range e.SubjectAreas {
		if strings.Contains(strings.ToLower(subject), q) {
			return true
		}
	}
	return false
}

// TotalPages returns ceil(filtered / itemsPerPage), at least 1.
func (v *View) TotalPages() int {
	n := len(v.Filtered())
	pages := (n + v.ItemsPerPage - 1) / v.ItemsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPage moves to a page, clamped to [1, TotalPages].
func (v *View) SetPage(page int) {
	v.Page = page
	if v.Page < 1 {
		v.Page = 1
	}
	if max := v.TotalPages(); v.Page > max {
		v.Page = max
	}
}

// PageEntries returns the visible slice of the filtered list.
func (v *View) PageEntries() []Entry {
	filtered := v.Filtered()
	lo := (v.Page - 1) * v.ItemsPerPage
	if lo > len(filtered) {
		lo = len(filtered)
	}
	hi := lo + v.ItemsPerPage
	if hi > len(filtered) {
		hi = len(filtered)
	}
	return filtered[lo:hi]
}

// Find locates an entry by id.
func (v *View) Find(id string) (Entry, bool) {
	for _, e := range v.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Replace swaps the stored entry with the same id. Used after a successful
// edit save so both the master list and every derived read pick up the
// saved fields.
func (v *View) Replace(entry Entry) bool {
	for i, e := range v.Entries {
		if e.ID == entry.ID {
			v.Entries[i] = entry
			return true
		}
	}
	return false
}
