package stub

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/getmockd/stubd/pkg/logging"
)

// Registry holds stubs in registration order. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	stubs []*Stub
	log   *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{log: logging.Nop()}
}

// SetLogger sets the logger.
func (r *Registry) SetLogger(log *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log != nil {
		r.log = log
	}
}

// Add registers s. If a stub with an equal request is already registered it
// is replaced in place and Add reports true. A missing ID is generated.
func (r *Registry) Add(s *Stub) (replaced bool, err error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := s.Request.Hash()
	for i, existing := range r.stubs {
		if existing.Request.Hash() != h || !existing.Request.Equal(&s.Request) {
			continue
		}
		if r.indexOfLocked(s.ID) >= 0 && existing.ID != s.ID {
			return false, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		r.stubs[i] = s
		r.log.Debug("replaced stub", "id", s.ID, "previous", existing.ID, "url", s.Request.URL.String())
		return true, nil
	}

	if r.indexOfLocked(s.ID) >= 0 {
		return false, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
	}
	r.stubs = append(r.stubs, s)
	r.log.Debug("added stub", "id", s.ID, "method", s.Request.Method, "url", s.Request.URL.String())
	return false, nil
}

// Remove deletes the stub with the given ID. It returns false if not found.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfLocked(id)
	if i < 0 {
		return false
	}
	r.stubs = append(r.stubs[:i], r.stubs[i+1:]...)
	r.log.Debug("removed stub", "id", id)
	return true
}

// Get returns the stub with the given ID, or nil.
func (r *Registry) Get(id string) *Stub {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOfLocked(id); i >= 0 {
		return r.stubs[i]
	}
	return nil
}

// List returns all stubs in registration order.
func (r *Registry) List() []*Stub {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Stub, len(r.stubs))
	copy(out, r.stubs)
	return out
}

// Len returns the number of registered stubs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stubs)
}

// Clear removes all stubs.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stubs = nil
}

// Match returns the first registered stub whose request matches in.
func (r *Registry) Match(in *Incoming) (*Stub, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stubs {
		if s.Request.Matches(in) {
			return s, true
		}
	}
	return nil, false
}

func (r *Registry) indexOfLocked(id string) int {
	for i, s := range r.stubs {
		if s.ID == id {
			return i
		}
	}
	return -1
}
