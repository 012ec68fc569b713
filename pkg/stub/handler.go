package stub

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getmockd/stubd/pkg/httputil"
	"github.com/getmockd/stubd/pkg/logging"
	"github.com/getmockd/stubd/pkg/requestlog"
)

// Handler serves requests from a Registry.
type Handler struct {
	registry *Registry
	journal  requestlog.Logger
	log      *slog.Logger
}

// NewHandler creates a handler backed by reg.
func NewHandler(reg *Registry) *Handler {
	return &Handler{registry: reg, log: logging.Nop()}
}

// SetLogger sets the logger.
func (h *Handler) SetLogger(log *slog.Logger) {
	if log != nil {
		h.log = log
	}
}

// SetRequestLog records every handled request in l.
func (h *Handler) SetRequestLog(l requestlog.Logger) {
	h.journal = l
}

// ServeHTTP implements http.Handler.
// Unmatched requests get 404, stubs that simulate a failure get 502.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	in, err := NewIncoming(r)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	s, ok := h.registry.Match(in)
	if !ok {
		h.log.Info("no stub matched", "method", in.Method, "url", in.URL)
		httputil.WriteErrorWithDetails(w, http.StatusNotFound, "no_match", ErrNoMatch.Error(), map[string]string{
			"method": in.Method,
			"url":    in.URL,
		})
		record(h.journal, in, start, nil, http.StatusNotFound, ErrNoMatch)
		return
	}

	h.log.Debug("stub matched", "id", s.ID, "method", in.Method, "url", in.URL)
	if err := wait(r.Context(), s.Response.Delay); err != nil {
		// The client went away; nobody is left to answer.
		record(h.journal, in, start, s, 0, err)
		return
	}
	if s.Response.Err != nil {
		httputil.WriteError(w, http.StatusBadGateway, "stub_failure", s.Response.Err.Error())
		record(h.journal, in, start, s, http.StatusBadGateway, s.Response.Err)
		return
	}

	for name, values := range s.Response.Headers {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.WriteHeader(s.Response.Status())
	if _, err := w.Write(s.Response.Body); err != nil && !errors.Is(err, http.ErrBodyNotAllowed) {
		h.log.Warn("failed to write stub response", "id", s.ID, "error", err)
	}
	record(h.journal, in, start, s, s.Response.Status(), nil)
}
