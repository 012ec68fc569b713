package stub

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// Incoming is a snapshot of a request as seen by the matchers.
type Incoming struct {
	Method string
	URL    string
	Header http.Header
	// Body is nil when the request had no body.
	Body []byte
}

// NewIncoming reads r into a snapshot. The request body is consumed and
// replaced with an equivalent reader, so r can still be sent or served.
func NewIncoming(r *http.Request) (*Incoming, error) {
	in := &Incoming{
		Method: r.Method,
		URL:    requestURL(r),
		Header: r.Header,
	}
	if in.Method == "" {
		in.Method = http.MethodGet
	}
	if r.Body == nil || r.Body == http.NoBody {
		return in, nil
	}
	body, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	in.Body = body
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return in, nil
}

// Text returns the body as text, or nil when the body is absent or is not
// valid UTF-8.
func (in *Incoming) Text() *string {
	if in.Body == nil || !utf8.Valid(in.Body) {
		return nil
	}
	s := string(in.Body)
	return &s
}

// requestURL returns the absolute URL of r. Server side requests only carry
// the request URI, so scheme and host are filled in from the connection.
func requestURL(r *http.Request) string {
	if r.URL == nil {
		return ""
	}
	if r.URL.IsAbs() {
		return r.URL.String()
	}
	u := *r.URL
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	u.Host = r.Host
	return u.String()
}
