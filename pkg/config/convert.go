package config

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/getmockd/stubd/pkg/matcher"
	"github.com/getmockd/stubd/pkg/stub"
)

// Build converts every entry of the file into a stub.
func (f *File) Build() ([]*stub.Stub, error) {
	out := make([]*stub.Stub, 0, len(f.Stubs))
	for i := range f.Stubs {
		s, err := f.Stubs[i].Stub()
		if err != nil {
			return nil, fmt.Errorf("stubs[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Apply converts the file and registers every stub in reg.
func (f *File) Apply(reg *stub.Registry) error {
	stubs, err := f.Build()
	if err != nil {
		return err
	}
	for _, s := range stubs {
		if _, err := reg.Add(s); err != nil {
			return fmt.Errorf("stub %q: %w", s.ID, err)
		}
	}
	return nil
}

// Stub converts the entry into a stub.
func (e *StubEntry) Stub() (*stub.Stub, error) {
	b := stub.NewBuilder().ID(e.ID).Method(e.Request.Method)

	switch {
	case e.Request.URL != "" && e.Request.URLPattern != "":
		return nil, invalid("url and urlPattern are mutually exclusive")
	case e.Request.URL != "":
		b.URL(e.Request.URL)
	case e.Request.URLPattern != "":
		re, err := regexp.Compile(e.Request.URLPattern)
		if err != nil {
			return nil, invalid("urlPattern: %v", err)
		}
		b.URL(re)
	default:
		return nil, invalid("one of url or urlPattern is required")
	}

	for name, value := range e.Request.Headers {
		b.Header(name, value)
	}

	if e.Request.Body != nil {
		m, err := e.Request.Body.Matcher()
		if err != nil {
			return nil, err
		}
		if m != nil {
			b.Body(m)
		}
	}

	if err := e.Response.apply(b); err != nil {
		return nil, err
	}
	return b.Build()
}

// Matcher builds the body matcher. It returns nil for an empty entry.
func (e *BodyEntry) Matcher() (matcher.Matcher, error) {
	var found []matcher.Matcher

	if e.Equals != nil {
		found = append(found, matcher.NewString(*e.Equals))
	}
	if e.Pattern != "" {
		re, err := regexp.Compile(e.Pattern)
		if err != nil {
			return nil, invalid("body pattern: %v", err)
		}
		found = append(found, matcher.NewRegex(re))
	}
	if e.Base64 != "" {
		data, err := base64.StdEncoding.DecodeString(e.Base64)
		if err != nil {
			return nil, invalid("body base64: %v", err)
		}
		found = append(found, matcher.NewData(data))
	}
	if len(e.JSON) > 0 {
		var ref any
		if err := json.Unmarshal(e.JSON, &ref); err != nil {
			return nil, invalid("body json: %v", err)
		}
		if ref == nil {
			return nil, invalid("body json cannot be null")
		}
		found = append(found, matcher.NewJSON(ref))
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, invalid("body takes at most one of equals, pattern, base64 or json")
	}
}

func (r *ResponseEntry) apply(b *stub.Builder) error {
	if r.Status != 0 {
		b.Respond(r.Status)
	}
	for name, value := range r.Headers {
		b.WithHeader(name, value)
	}

	bodies := 0
	if r.Body != "" {
		bodies++
		b.WithBody([]byte(r.Body))
	}
	if len(r.JSON) > 0 {
		bodies++
		var buf bytes.Buffer
		if err := json.Compact(&buf, r.JSON); err != nil {
			return invalid("response json: %v", err)
		}
		b.WithBody(buf.Bytes())
		if !hasHeader(r.Headers, "Content-Type") {
			b.WithHeader("Content-Type", "application/json")
		}
	}
	if r.Base64 != "" {
		bodies++
		data, err := base64.StdEncoding.DecodeString(r.Base64)
		if err != nil {
			return invalid("response base64: %v", err)
		}
		b.WithBody(data)
	}
	if bodies > 1 {
		return invalid("response takes at most one of body, json or base64")
	}

	if r.Delay != "" {
		d, err := time.ParseDuration(r.Delay)
		if err != nil {
			return invalid("response delay: %v", err)
		}
		b.WithDelay(d)
	}
	if r.Error != "" {
		b.Fail(errors.New(r.Error))
	}
	return nil
}

func hasHeader(h map[string]string, name string) bool {
	for k := range h {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", stub.ErrInvalidStub, fmt.Sprintf(format, args...))
}
