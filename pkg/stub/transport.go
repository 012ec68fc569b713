package stub

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/getmockd/stubd/pkg/logging"
	"github.com/getmockd/stubd/pkg/requestlog"
)

// Transport is an http.RoundTripper that answers requests from a Registry.
type Transport struct {
	registry *Registry

	// Fallback receives requests no stub matches. When nil, unmatched
	// requests fail with an error wrapping ErrNoMatch.
	Fallback http.RoundTripper

	journal requestlog.Logger
	log     *slog.Logger
}

// NewTransport creates a transport backed by reg.
func NewTransport(reg *Registry) *Transport {
	return &Transport{registry: reg, log: logging.Nop()}
}

// SetLogger sets the logger.
func (t *Transport) SetLogger(log *slog.Logger) {
	if log != nil {
		t.log = log
	}
}

// SetRequestLog records every round trip in l.
func (t *Transport) SetRequestLog(l requestlog.Logger) {
	t.journal = l
}

// Intercept routes the client's requests through t and returns a function
// that restores the previous transport.
func (t *Transport) Intercept(c *http.Client) (restore func()) {
	prev := c.Transport
	c.Transport = t
	return func() { c.Transport = prev }
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	in, err := NewIncoming(req)
	if err != nil {
		return nil, err
	}

	s, ok := t.registry.Match(in)
	if !ok {
		if t.Fallback != nil {
			t.log.Debug("no stub matched, using fallback", "method", in.Method, "url", in.URL)
			resp, err := t.Fallback.RoundTrip(req)
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			record(t.journal, in, start, nil, status, err)
			return resp, err
		}
		t.log.Info("no stub matched", "method", in.Method, "url", in.URL)
		err := fmt.Errorf("%w: %s %s", ErrNoMatch, in.Method, in.URL)
		record(t.journal, in, start, nil, 0, err)
		return nil, err
	}

	t.log.Debug("stub matched", "id", s.ID, "method", in.Method, "url", in.URL)
	if err := wait(req.Context(), s.Response.Delay); err != nil {
		record(t.journal, in, start, s, 0, err)
		return nil, err
	}
	if s.Response.Err != nil {
		record(t.journal, in, start, s, 0, s.Response.Err)
		return nil, s.Response.Err
	}
	record(t.journal, in, start, s, s.Response.Status(), nil)
	return newHTTPResponse(req, &s.Response), nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func newHTTPResponse(req *http.Request, r *Response) *http.Response {
	code := r.Status()
	header := r.Headers.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set("Content-Length", strconv.Itoa(len(r.Body)))
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", code, http.StatusText(code)),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}
}
