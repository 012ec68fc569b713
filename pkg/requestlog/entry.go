package requestlog

import "time"

// MaxBodySize is the number of body bytes kept on an entry.
const MaxBodySize = 10 * 1024

// Entry captures one handled request and its outcome.
type Entry struct {
	// ID is a unique identifier for the entry.
	ID string `json:"id"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp"`

	Method  string              `json:"method"`
	URL     string              `json:"url"`
	Headers map[string][]string `json:"headers,omitempty"`

	// Body is the request body, truncated to MaxBodySize.
	Body string `json:"body,omitempty"`

	// BodySize is the original body size in bytes.
	BodySize int `json:"bodySize"`

	// StubID is the ID of the stub that matched. Empty if none did.
	StubID string `json:"stubId,omitempty"`

	// Status is the response status code, 0 when no response was produced.
	Status int `json:"status"`

	// DurationMs is the handling time in milliseconds, delays included.
	DurationMs int64 `json:"durationMs"`

	// Error is set when the request failed.
	Error string `json:"error,omitempty"`
}

// Matched reports whether a stub answered the request.
func (e *Entry) Matched() bool {
	return e.StubID != ""
}

// TruncateBody returns b as a string cut to MaxBodySize.
func TruncateBody(b []byte) string {
	if len(b) > MaxBodySize {
		b = b[:MaxBodySize]
	}
	return string(b)
}
