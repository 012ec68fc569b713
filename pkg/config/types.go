package config

import "encoding/json"

// File is a parsed stub file.
type File struct {
	Version string      `json:"version,omitempty"`
	Name    string      `json:"name,omitempty"`
	Stubs   []StubEntry `json:"stubs"`
}

// StubEntry is one stub in a file.
type StubEntry struct {
	ID       string        `json:"id,omitempty"`
	Request  RequestEntry  `json:"request"`
	Response ResponseEntry `json:"response,omitempty"`
}

// RequestEntry describes the requests a stub answers.
type RequestEntry struct {
	Method     string            `json:"method,omitempty"`
	URL        string            `json:"url,omitempty"`
	URLPattern string            `json:"urlPattern,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       *BodyEntry        `json:"body,omitempty"`
}

// BodyEntry holds at most one body criterion.
type BodyEntry struct {
	Equals  *string         `json:"equals,omitempty"`
	Pattern string          `json:"pattern,omitempty"`
	Base64  string          `json:"base64,omitempty"`
	JSON    json.RawMessage `json:"json,omitempty"`
}

// ResponseEntry is the canned response of a stub.
type ResponseEntry struct {
	Status  int               `json:"status,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
	JSON    json.RawMessage   `json:"json,omitempty"`
	Base64  string            `json:"base64,omitempty"`
	// Delay is a Go duration, e.g. "250ms".
	Delay string `json:"delay,omitempty"`
	// Error makes the stub fail with this message instead of responding.
	Error string `json:"error,omitempty"`
}
