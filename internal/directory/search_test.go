package directory_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/directory"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

func searchFixture() []*model.Tutor {
	return []*model.Tutor{
		{ID: "a", FullName: "Ayesha Rahman", Location: "Dhanmondi, Dhaka", Specializations: []string{"Math"}, Bio: "Loves algebra"},
		{ID: "b", FullName: "Bashir Khan", Location: "Uttara", Specializations: []string{"Art"}, Bio: "Watercolor and sketching"},
		{ID: "c", FullName: "Farhana Akter", Location: "Chattogram", Specializations: []string{"English", "mathematics"}, Bio: ""},
	}
}

func TestMatchTutors_CaseInsensitiveSubstring(t *testing.T) {
	tutors := searchFixture()

	results := directory.MatchTutors(tutors, "math")
	if len(results) != 2 {
		t.Fatalf("query 'math' matched %d tutors, want 2", len(results))
	}
	if results[0].ID != "a" || results[1].ID != "c" {
		t.Errorf("matched %s and %s, want a and c", results[0].ID, results[1].ID)
	}
}

func TestMatchTutors_FieldCoverage(t *testing.T) {
	tutors := searchFixture()
	cases := []struct {
		query string
		want  string
	}{
		{"AYESHA", "a"},     // full name
		{"uttara", "b"},     // location
		{"waterCOLOR", "b"}, // bio
		{"english", "c"},    // specialization
	}
	for _, c := range cases {
		results := directory.MatchTutors(tutors, c.query)
		if len(results) != 1 || results[0].ID != c.want {
			t.Errorf("query %q: got %d results, want exactly tutor %s", c.query, len(results), c.want)
		}
	}
}

func TestMatchTutors_EmptyQuery(t *testing.T) {
	if got := directory.MatchTutors(searchFixture(), "   "); got != nil {
		t.Errorf("blank query returned %d results, want none", len(got))
	}
}

// ── Debounce ───────────────────────────────────────────────────────────────

func TestSearcher_CoalescesRapidQueries(t *testing.T) {
	tutors := searchFixture()
	s := directory.NewSearcherWithDelay(20 * time.Millisecond)

	delivered := make(chan string, 4)
	deliver := func(query string, _ []*model.Tutor) {
		delivered <- query
	}

	// Rapid typing: only the last query may run a match pass.
	s.Search("m", tutors, deliver)
	s.Search("ma", tutors, deliver)
	s.Search("math", tutors, deliver)

	select {
	case q := <-delivered:
		if q != "math" {
			t.Errorf("delivered query %q, want the latest (%q)", q, "math")
		}
	case <-time.After(time.Second):
		t.Fatal("debounced search never delivered")
	}

	select {
	case q := <-delivered:
		t.Errorf("superseded query %q must not deliver", q)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSearcher_EmptyQueryDeliversImmediately(t *testing.T) {
	s := directory.NewSearcherWithDelay(time.Hour) // would never fire on its own

	done := make(chan struct{})
	s.Search("  ", nil, func(query string, results []*model.Tutor) {
		if query != "" || results != nil {
			t.Errorf("clear delivered (%q, %d results), want empty", query, len(results))
		}
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("empty query must bypass the debounce")
	}
}

func TestSearcher_ClearDeliveryRunsUnlocked(t *testing.T) {
	s := directory.NewSearcherWithDelay(time.Hour)

	done := make(chan struct{})
	go s.Search("  ", nil, func(string, []*model.Tutor) {
		// A handler may call Cancel from inside its own critical section,
		// so delivery must not hold the searcher lock.
		s.Cancel()
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clear delivery blocked on the searcher lock")
	}
}

func TestSearcher_ClearConcurrentWithCancel(t *testing.T) {
	s := directory.NewSearcherWithDelay(time.Hour)

	// sessionMu stands in for the per-chat session lock: one goroutine
	// holds it around Cancel, the other takes it inside the clear delivery.
	var sessionMu sync.Mutex
	var cleared int
	done := make(chan struct{}, 2)

	go func() {
		for i := 0; i < 1000; i++ {
			sessionMu.Lock()
			s.Cancel()
			sessionMu.Unlock()
		}
		done <- struct{}{}
	}()
	go func() {
		for i := 0; i < 1000; i++ {
			s.Search("", nil, func(string, []*model.Tutor) {
				sessionMu.Lock()
				cleared++
				sessionMu.Unlock()
			})
		}
		done <- struct{}{}
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("searcher and session locks deadlocked")
		}
	}
	if cleared == 0 {
		t.Fatal("no clear delivery ran")
	}
}

func TestSearcher_RepeatedQueryServedFromCache(t *testing.T) {
	tutors := searchFixture()
	s := directory.NewSearcherWithDelay(time.Millisecond)

	run := func(query string, list []*model.Tutor) []*model.Tutor {
		out := make(chan []*model.Tutor, 1)
		s.Search(query, list, func(_ string, results []*model.Tutor) { out <- results })
		select {
		case r := <-out:
			return r
		case <-time.After(time.Second):
			t.Fatalf("search %q timed out", query)
			return nil
		}
	}

	first := run("math", tutors)
	if len(first) != 2 {
		t.Fatalf("first pass matched %d tutors, want 2", len(first))
	}

	// Identical query against an empty list: a cache hit returns the result
	// computed the first time, a miss would match nothing.
	second := run("math", nil)
	if len(second) != len(first) {
		t.Fatalf("repeated query not served from cache: %d then %d results", len(first), len(second))
	}
}
