package requestlog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultMaxEntries is the capacity used when NewMemoryStore is given zero.
const DefaultMaxEntries = 1000

// Logger is the minimal interface for recording entries.
type Logger interface {
	Log(entry *Entry)
}

// Store defines request history storage.
type Store interface {
	Logger

	// Get retrieves an entry by ID.
	Get(id string) *Entry

	// List returns entries newest first, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all entries.
	Clear()

	// Count returns the number of entries.
	Count() int

	// CountByStubID returns the number of entries answered by the stub.
	CountByStubID(id string) int
}

// Filter defines criteria for listing entries.
type Filter struct {
	// Method filters by HTTP method.
	Method string

	// URLPrefix filters by URL prefix.
	URLPrefix string

	// StubID filters by matched stub ID.
	StubID string

	// Matched filters by whether a stub answered.
	Matched *bool

	// Limit is the maximum number of entries to return.
	Limit int
}

func (f *Filter) matches(e *Entry) bool {
	if f.Method != "" && !strings.EqualFold(e.Method, f.Method) {
		return false
	}
	if f.URLPrefix != "" && !strings.HasPrefix(e.URL, f.URLPrefix) {
		return false
	}
	if f.StubID != "" && e.StubID != f.StubID {
		return false
	}
	if f.Matched != nil && e.Matched() != *f.Matched {
		return false
	}
	return true
}

// Subscriber is a channel that receives new entries.
type Subscriber chan *Entry

// MemoryStore is a Store backed by a bounded in-memory buffer. The oldest
// entry is evicted once the buffer is full.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    []*Entry
	maxEntries int
	nextID     int64

	subMu       sync.RWMutex
	subscribers map[Subscriber]struct{}
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding at most maxEntries entries.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		entries:     make([]*Entry, 0, min(maxEntries, 64)),
		maxEntries:  maxEntries,
		subscribers: make(map[Subscriber]struct{}),
	}
}

// Log records an entry, assigning an ID and timestamp if missing.
func (s *MemoryStore) Log(entry *Entry) {
	if entry == nil {
		return
	}

	s.mu.Lock()
	if entry.ID == "" {
		s.nextID++
		entry.ID = fmt.Sprintf("req-%d", s.nextID)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if n := len(s.entries); n >= s.maxEntries {
		// Evicted slots are cleared before reuse.
		copy(s.entries, s.entries[n-s.maxEntries+1:])
		clear(s.entries[s.maxEntries-1:])
		s.entries = s.entries[:s.maxEntries-1]
	}
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.subMu.RLock()
	for sub := range s.subscribers {
		select {
		case sub <- entry:
		default:
			// slow subscriber
		}
	}
	s.subMu.RUnlock()
}

// Get retrieves an entry by ID, or nil.
func (s *MemoryStore) Get(id string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// List returns entries newest first.
func (s *MemoryStore) List(filter *Filter) []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if filter != nil && !filter.matches(e) {
			continue
		}
		result = append(result, e)
		if filter != nil && filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	clear(s.entries)
	s.entries = s.entries[:0]
	s.mu.Unlock()
}

// Count returns the number of entries.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CountByStubID returns the number of entries answered by stub id.
func (s *MemoryStore) CountByStubID(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entries {
		if e.StubID == id {
			n++
		}
	}
	return n
}

// Subscribe registers a subscriber for new entries. Entries are dropped
// for subscribers that do not keep up. Call the returned function to
// unsubscribe.
func (s *MemoryStore) Subscribe() (Subscriber, func()) {
	sub := make(Subscriber, 16)

	s.subMu.Lock()
	s.subscribers[sub] = struct{}{}
	s.subMu.Unlock()

	var once sync.Once
	return sub, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, sub)
			s.subMu.Unlock()
			close(sub)
		})
	}
}
