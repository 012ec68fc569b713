package stubtest

import (
	"strings"
	"testing"

	"github.com/getmockd/stubd/pkg/requestlog"
)

// AssertCalled asserts that the stub answered at least one request.
func (s *Server) AssertCalled(t testing.TB, id string) {
	t.Helper()

	if s.journal.CountByStubID(id) == 0 {
		t.Errorf("expected stub %q to be called, but it was not\n%s", id, s.describe())
	}
}

// AssertNotCalled asserts that the stub answered no request.
func (s *Server) AssertNotCalled(t testing.TB, id string) {
	t.Helper()

	if n := s.journal.CountByStubID(id); n > 0 {
		t.Errorf("expected stub %q not to be called, but it was called %d times", id, n)
	}
}

// AssertCalledTimes asserts that the stub answered exactly n requests.
// An empty id counts unmatched requests.
func (s *Server) AssertCalledTimes(t testing.TB, id string, n int) {
	t.Helper()

	if got := s.journal.CountByStubID(id); got != n {
		t.Errorf("expected stub %q to be called %d times, got %d\n%s", id, n, got, s.describe())
	}
}

// AssertAllMatched asserts that no request went unanswered.
func (s *Server) AssertAllMatched(t testing.TB) {
	t.Helper()

	unmatched := false
	if misses := s.journal.List(&requestlog.Filter{Matched: &unmatched}); len(misses) > 0 {
		var b strings.Builder
		for _, e := range misses {
			b.WriteString("  " + e.Method + " " + e.URL + "\n")
		}
		t.Errorf("expected every request to match a stub, %d did not:\n%s", len(misses), b.String())
	}
}

// LastRequest returns the most recent request answered by the stub, or
// nil. An empty id returns the most recent request of any kind.
func (s *Server) LastRequest(id string) *requestlog.Entry {
	entries := s.journal.List(&requestlog.Filter{StubID: id, Limit: 1})
	if len(entries) == 0 {
		return nil
	}
	return entries[0]
}

func (s *Server) describe() string {
	entries := s.journal.List(nil)
	if len(entries) == 0 {
		return "no requests were recorded"
	}
	var b strings.Builder
	b.WriteString("recorded requests:\n")
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		stub := e.StubID
		if stub == "" {
			stub = "(no match)"
		}
		b.WriteString("  " + e.Method + " " + e.URL + " -> " + stub + "\n")
	}
	return b.String()
}
