// Package session keeps the per-chat view state: the directory state with
// its searcher, the history view, the open hire form and the open edit
// dialog. One session per chat; the session lock serializes every state
// transition of that chat, which is the only concurrency the UI model has.
package session

import (
	"sync"

	"github.com/Freeeeeet/tutorhub_bot/internal/directory"
	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
	"github.com/Freeeeeet/tutorhub_bot/internal/history"
)

// Session is the view state of one chat.
type Session struct {
	mu sync.Mutex

	Directory *directory.State
	Searcher  *directory.Searcher
	History   *history.View
	HireForm  *hireform.Form
	Edit      *history.EditSession

	// Message ids of the screens currently on display, so callbacks and
	// dialog handlers can edit in place.
	DirectoryMsgID int
	HistoryMsgID   int
	WizardMsgID    int
}

// Lock serializes access to the session's state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// CloseWizard drops the hire form, resetting every field (one blank child
// entry survives). Runs on success, cancel and explicit close alike.
func (s *Session) CloseWizard() {
	if s.HireForm != nil {
		s.HireForm.Reset()
	}
	s.HireForm = nil
}

// CloseEdit drops the open edit dialog.
func (s *Session) CloseEdit() {
	s.Edit = nil
}

// Manager hands out sessions by chat id.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the chat's session, creating it on first use.
func (m *Manager) Get(telegramID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[telegramID]
	if !ok {
		s = &Session{
			Directory: directory.NewState(),
			Searcher:  directory.NewSearcher(),
		}
		m.sessions[telegramID] = s
	}
	return s
}

// Drop forgets a chat's session entirely (sign-out).
func (m *Manager) Drop(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, telegramID)
}
