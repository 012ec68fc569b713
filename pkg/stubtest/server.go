package stubtest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getmockd/stubd/pkg/config"
	"github.com/getmockd/stubd/pkg/requestlog"
	"github.com/getmockd/stubd/pkg/stub"
)

// Server is a stub HTTP server for tests. It is closed when the test ends.
type Server struct {
	t        testing.TB
	registry *stub.Registry
	journal  *requestlog.MemoryStore
	httpSrv  *httptest.Server
}

// New starts a server with an empty registry.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		t:        t,
		registry: stub.NewRegistry(),
		journal:  requestlog.NewMemoryStore(0),
	}
	h := stub.NewHandler(s.registry)
	h.SetRequestLog(s.journal)
	s.httpSrv = httptest.NewServer(h)
	t.Cleanup(s.Close)
	return s
}

// Close stops the server. It is safe to call more than once.
func (s *Server) Close() {
	if s.httpSrv != nil {
		s.httpSrv.Close()
	}
}

// URL returns the base URL of the server.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

// Registry returns the registry the server answers from.
func (s *Server) Registry() *stub.Registry {
	return s.registry
}

// Requests returns the journal of handled requests.
func (s *Server) Requests() requestlog.Store {
	return s.journal
}

// Stub builds and registers a stub, failing the test on error.
func (s *Server) Stub(b *stub.Builder) *stub.Stub {
	s.t.Helper()

	st, err := b.Build()
	if err != nil {
		s.t.Fatalf("stubtest: build stub: %v", err)
		return nil
	}
	if _, err := s.registry.Add(st); err != nil {
		s.t.Fatalf("stubtest: add stub: %v", err)
		return nil
	}
	return st
}

// Load registers the stubs of a stub file, failing the test on error.
func (s *Server) Load(path string) {
	s.t.Helper()

	f, err := config.LoadFile(path)
	if err != nil {
		s.t.Fatalf("stubtest: load %s: %v", path, err)
		return
	}
	if err := f.Apply(s.registry); err != nil {
		s.t.Fatalf("stubtest: apply %s: %v", path, err)
	}
}

// Client returns a client answered in-process by the registry, whatever
// host it addresses. Its requests are recorded in the same journal.
func (s *Server) Client() *http.Client {
	tr := stub.NewTransport(s.registry)
	tr.SetRequestLog(s.journal)
	return &http.Client{Transport: tr}
}

// Reset removes all stubs and recorded requests.
func (s *Server) Reset() {
	s.registry.Clear()
	s.journal.Clear()
}
