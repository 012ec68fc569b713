package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getmockd/stubd/pkg/matcher"
)

// Builder assembles a Stub step by step. Errors are collected and reported
// by Build.
type Builder struct {
	stub Stub
	err  error
}

// NewBuilder starts a new stub.
func NewBuilder() *Builder {
	return &Builder{}
}

// ID sets the stub ID. A random ID is assigned on registration otherwise.
func (b *Builder) ID(id string) *Builder {
	b.stub.ID = id
	return b
}

// Method sets the HTTP method to match.
func (b *Builder) Method(method string) *Builder {
	b.stub.Request.Method = strings.ToUpper(method)
	return b
}

// URL sets the URL matcher. v is anything matcher.From accepts.
func (b *Builder) URL(v any) *Builder {
	m, err := matcher.From(v)
	if err != nil {
		b.fail(fmt.Errorf("url: %w", err))
		return b
	}
	b.stub.Request.URL = m
	return b
}

// Header adds a request header that must be present.
func (b *Builder) Header(name, value string) *Builder {
	if b.stub.Request.Headers == nil {
		b.stub.Request.Headers = make(map[string]string)
	}
	b.stub.Request.Headers[http.CanonicalHeaderKey(name)] = value
	return b
}

// Body sets the body matcher. v is anything matcher.From accepts.
func (b *Builder) Body(v any) *Builder {
	m, err := matcher.From(v)
	if err != nil {
		b.fail(fmt.Errorf("body: %w", err))
		return b
	}
	b.stub.Request.Body = m
	return b
}

// Respond sets the response status code.
func (b *Builder) Respond(status int) *Builder {
	b.stub.Response.StatusCode = status
	return b
}

// WithHeader adds a response header.
func (b *Builder) WithHeader(name, value string) *Builder {
	if b.stub.Response.Headers == nil {
		b.stub.Response.Headers = make(http.Header)
	}
	b.stub.Response.Headers.Add(name, value)
	return b
}

// WithBody sets the response body.
func (b *Builder) WithBody(body []byte) *Builder {
	b.stub.Response.Body = body
	return b
}

// WithJSON marshals v as the response body and sets the content type.
func (b *Builder) WithJSON(v any) *Builder {
	data, err := json.Marshal(v)
	if err != nil {
		b.fail(fmt.Errorf("response body: %w", err))
		return b
	}
	b.stub.Response.Body = data
	if b.stub.Response.Headers.Get("Content-Type") == "" {
		b.WithHeader("Content-Type", "application/json")
	}
	return b
}

// WithDelay delays the response.
func (b *Builder) WithDelay(d time.Duration) *Builder {
	b.stub.Response.Delay = d
	return b
}

// Fail makes the stub answer with a transport error instead of a response.
func (b *Builder) Fail(err error) *Builder {
	b.stub.Response.Err = err
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build returns the stub, or the first error seen while building it.
func (b *Builder) Build() (*Stub, error) {
	if b.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStub, b.err)
	}
	s := b.stub
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
