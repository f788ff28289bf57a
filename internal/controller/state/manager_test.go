package state_test

import (
	"testing"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
)

func TestStateRoundTrip(t *testing.T) {
	m := state.NewManager()

	if got := m.GetState(42); got != state.StateNone {
		t.Fatalf("fresh chat state = %q, want none", got)
	}

	m.SetState(42, state.StateHireRate)
	if got := m.GetState(42); got != state.StateHireRate {
		t.Fatalf("state = %q, want %q", got, state.StateHireRate)
	}

	// other chats untouched
	if got := m.GetState(43); got != state.StateNone {
		t.Fatalf("other chat state = %q, want none", got)
	}
}

func TestSetStateNoneDropsRecord(t *testing.T) {
	m := state.NewManager()

	m.SetState(42, state.StateHireChild)
	m.SetData(42, "child_index", 1)

	m.SetState(42, state.StateNone)

	if got := m.GetState(42); got != state.StateNone {
		t.Fatalf("state after none = %q", got)
	}
	if _, ok := m.GetData(42, "child_index"); ok {
		t.Fatal("scratch data survived StateNone")
	}
}

func TestDataFollowsDialog(t *testing.T) {
	m := state.NewManager()

	m.SetState(7, state.StateHireDayWindow)
	m.SetData(7, "day", 3)

	raw, ok := m.GetData(7, "day")
	if !ok {
		t.Fatal("day not stored")
	}
	if n, _ := raw.(int); n != 3 {
		t.Fatalf("day = %v, want 3", raw)
	}

	m.ClearState(7)
	if _, ok := m.GetData(7, "day"); ok {
		t.Fatal("data survived ClearState")
	}
}

func TestGetAllDataReturnsCopy(t *testing.T) {
	m := state.NewManager()

	m.SetState(7, state.StateHireChild)
	m.SetData(7, "child_index", 2)

	data := m.GetAllData(7)
	data["child_index"] = 99

	raw, _ := m.GetData(7, "child_index")
	if n, _ := raw.(int); n != 2 {
		t.Fatalf("stored value mutated through copy: %v", raw)
	}
}
