package directory

import (
	"container/list"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// DebounceInterval is how long typing must stay idle before a match pass
// runs. Rapid input coalesces into at most one pass per interval.
const DebounceInterval = 300 * time.Millisecond

// SearchCacheSize bounds the per-chat query cache. The old dashboard kept
// an unbounded map keyed by query string; an LRU keeps the same hit
// behavior without growing for the whole session.
const SearchCacheSize = 64

// MatchTutors runs a case-insensitive substring match of query against
// full name, location, every specialization and the bio.
func MatchTutors(tutors []*model.Tutor, query string) []*model.Tutor {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matched []*model.Tutor
	for _, tutor := range tutors {
		if tutorMatches(tutor, q) {
			matched = append(matched, tutor)
		}
	}
	return matched
}

func tutorMatches(t *model.Tutor, q string) bool {
	if strings.Contains(strings.ToLower(t.FullName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Location), q) {
		return true
	}
	for _, spec := range t.Specializations {
		if strings.Contains(strings.ToLower(spec), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(t.Bio), q)
}

// Searcher debounces queries and caches results by exact query string.
// One Searcher lives per chat next to its State.
type Searcher struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	cache *queryCache
}

// NewSearcher creates a searcher with the standard debounce interval.
func NewSearcher() *Searcher {
	return NewSearcherWithDelay(DebounceInterval)
}

// NewSearcherWithDelay creates a searcher with a custom interval.
func NewSearcherWithDelay(delay time.Duration) *Searcher {
	return &Searcher{
		delay: delay,
		cache: newQueryCache(SearchCacheSize),
	}
}

// Search schedules a match pass for the query. A newer call cancels any
// pending one, so only the latest query is delivered. Empty queries
// deliver immediately: clearing must not lag behind the debounce.
//
// deliver always runs with the searcher unlocked, the immediate clear
// included. Callers take their own locks inside the callback, and those
// locks may be held by a goroutine blocked in Cancel.
func (s *Searcher) Search(query string, tutors []*model.Tutor, deliver func(query string, results []*model.Tutor)) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if query != "" {
		s.timer = time.AfterFunc(s.delay, func() {
			deliver(query, s.lookup(query, tutors))
		})
	}
	s.mu.Unlock()

	if query == "" {
		deliver("", nil)
	}
}

// Cancel drops any pending match pass.
func (s *Searcher) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) lookup(query string, tutors []*model.Tutor) []*model.Tutor {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache.get(query); ok {
		return cached
	}
	results := MatchTutors(tutors, query)
	s.cache.put(query, results)
	return results
}

// queryCache is a small LRU keyed by exact query string.
type queryCache struct {
	capacity int
	order    *list.List // front = most recent
	entries  map[string]*list.Element
}

type cacheEntry struct {
	query   string
	results []*model.Tutor
}

func newQueryCache(capacity int) *queryCache {
	return &queryCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

func (c *queryCache) get(query string) ([]*model.Tutor, bool) {
	el, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).results, true
}

func (c *queryCache) put(query string, results []*model.Tutor) {
	if el, ok := c.entries[query]; ok {
		el.Value.(*cacheEntry).results = results
		c.order.MoveToFront(el)
		return
	}
	c.entries[query] = c.order.PushFront(&cacheEntry{query: query, results: results})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).query)
	}
}
