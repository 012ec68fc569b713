package stub

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/getmockd/stubd/pkg/matcher"
)

// Common errors.
var (
	ErrNoMatch     = errors.New("no stub matches request")
	ErrInvalidStub = errors.New("invalid stub")
	ErrDuplicateID = errors.New("stub with this ID already exists")
)

// Request describes the requests a stub answers.
type Request struct {
	// Method is the HTTP method. Empty matches any method.
	Method string

	// URL is matched against the full request URL as text.
	URL matcher.Matcher

	// Headers must all be present on the request with exactly these values.
	Headers map[string]string

	// Body is matched against the request body. Nil matches any body.
	Body matcher.Matcher
}

// Matches reports whether in satisfies the request description.
func (r *Request) Matches(in *Incoming) bool {
	if in == nil || r.URL == nil {
		return false
	}
	if r.Method != "" && !strings.EqualFold(r.Method, in.Method) {
		return false
	}
	if !r.URL.MatchesText(matcher.Text(in.URL)) {
		return false
	}
	for name, value := range r.Headers {
		values, ok := in.Header[http.CanonicalHeaderKey(name)]
		if !ok || !containsValue(values, value) {
			return false
		}
	}
	if r.Body == nil {
		return true
	}
	return r.Body.MatchesText(in.Text()) || r.Body.MatchesBytes(in.Body)
}

func containsValue(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Equal reports whether two request descriptions are the same rule.
func (r *Request) Equal(o *Request) bool {
	if r == nil || o == nil {
		return r == o
	}
	if strings.ToUpper(r.Method) != strings.ToUpper(o.Method) {
		return false
	}
	if !matcher.Equal(r.URL, o.URL) || !matcher.Equal(r.Body, o.Body) {
		return false
	}
	return maps.Equal(canonicalHeaders(r.Headers), canonicalHeaders(o.Headers))
}

func canonicalHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}

// Hash returns a hash consistent with Equal.
func (r *Request) Hash() uint64 {
	if r == nil {
		return 0
	}
	return matcher.Combine(
		xxhash.Sum64String(strings.ToUpper(r.Method)),
		matcher.Hash(r.URL),
		headersHash(r.Headers),
		matcher.Hash(r.Body),
	)
}

func headersHash(raw map[string]string) uint64 {
	h := canonicalHeaders(raw)
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := xxhash.New()
	for _, k := range keys {
		_, _ = d.WriteString(k)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(h[k])
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Response is the canned answer of a stub.
type Response struct {
	// StatusCode defaults to 200 when zero.
	StatusCode int

	Headers http.Header
	Body    []byte

	// Delay is waited before answering. The wait ends early if the
	// request is cancelled.
	Delay time.Duration

	// Err, when set, simulates a transport failure instead of a response.
	Err error
}

// Status returns the effective status code.
func (r *Response) Status() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

// Stub is a registered request description and its response.
type Stub struct {
	ID        string
	Request   Request
	Response  Response
	CreatedAt time.Time
}

// Validate checks that the stub can be registered.
func (s *Stub) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: stub cannot be nil", ErrInvalidStub)
	}
	if s.Request.URL == nil {
		return fmt.Errorf("%w: request URL matcher is required", ErrInvalidStub)
	}
	if s.Response.StatusCode != 0 && (s.Response.StatusCode < 100 || s.Response.StatusCode > 999) {
		return fmt.Errorf("%w: status code must be between 100 and 999", ErrInvalidStub)
	}
	if s.Response.Delay < 0 {
		return fmt.Errorf("%w: delay cannot be negative", ErrInvalidStub)
	}
	return nil
}
