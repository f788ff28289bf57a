package session_test

import (
	"testing"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
)

func TestGetCreatesOnce(t *testing.T) {
	m := session.NewManager()

	a := m.Get(42)
	if a == nil || a.Directory == nil || a.Searcher == nil {
		t.Fatal("fresh session missing directory state or searcher")
	}

	if b := m.Get(42); b != a {
		t.Fatal("second Get returned a different session")
	}
	if c := m.Get(43); c == a {
		t.Fatal("distinct chats share a session")
	}
}

func TestCloseWizardResetsForm(t *testing.T) {
	m := session.NewManager()
	s := m.Get(42)

	f := hireform.New("t-1", "Rahim Uddin")
	f.JobTitle = "Math tutor"
	s.HireForm = f

	s.CloseWizard()

	if s.HireForm != nil {
		t.Fatal("wizard still open after close")
	}
	// the form object itself was reset, so a stale reference holds no data
	if f.JobTitle != "" || f.TutorID != "" {
		t.Fatalf("form kept data after close: %q %q", f.JobTitle, f.TutorID)
	}
	if len(f.Children) != 1 || !f.Children[0].IsBlank() {
		t.Fatalf("children = %v, want one blank entry", f.Children)
	}
}

func TestDropForgetsSession(t *testing.T) {
	m := session.NewManager()

	a := m.Get(42)
	a.HistoryMsgID = 10

	m.Drop(42)

	if b := m.Get(42); b == a || b.HistoryMsgID != 0 {
		t.Fatal("session survived Drop")
	}
}
