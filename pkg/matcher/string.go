package matcher

import (
	"bytes"
	"fmt"
)

// StringMatcher matches a body that is exactly equal to a literal string.
type StringMatcher struct {
	s string
}

// NewString creates a matcher for the literal s.
func NewString(s string) *StringMatcher {
	return &StringMatcher{s: s}
}

// Value returns the literal.
func (m *StringMatcher) Value() string { return m.s }

// Kind implements Matcher.
func (m *StringMatcher) Kind() Kind { return KindString }

// MatchesText reports whether text is exactly the literal. Comparison is
// case-sensitive with no normalization.
func (m *StringMatcher) MatchesText(text *string) bool {
	return text != nil && *text == m.s
}

// MatchesBytes reports whether b equals the UTF-8 encoding of the literal.
func (m *StringMatcher) MatchesBytes(b []byte) bool {
	return b != nil && bytes.Equal(b, []byte(m.s))
}

// Equal implements Matcher.
func (m *StringMatcher) Equal(other Matcher) bool { return Equal(m, other) }

// Hash implements Matcher.
func (m *StringMatcher) Hash() uint64 { return Hash(m) }

func (m *StringMatcher) String() string { return fmt.Sprintf("string(%q)", m.s) }

func (*StringMatcher) sealed() {}
