package matcher

import (
	"fmt"
	"regexp"
)

// RegexMatcher matches a text body containing at least one match of a
// compiled pattern. Regular expressions apply to decoded text only, so
// byte bodies never match.
type RegexMatcher struct {
	noBytes
	re *regexp.Regexp
}

// NewRegex creates a matcher for a compiled pattern. Compiling and
// validating the pattern is the caller's job. A nil pattern never matches.
func NewRegex(re *regexp.Regexp) *RegexMatcher {
	return &RegexMatcher{re: re}
}

// MustRegex compiles pattern and creates a matcher for it.
// It panics if the pattern does not compile.
func MustRegex(pattern string) *RegexMatcher {
	return NewRegex(regexp.MustCompile(pattern))
}

// Regexp returns the compiled pattern.
func (m *RegexMatcher) Regexp() *regexp.Regexp { return m.re }

// source is the identity of the pattern. RE2 flags are written inline, so
// the source text covers both pattern and flags.
func (m *RegexMatcher) source() string {
	if m.re == nil {
		return ""
	}
	return m.re.String()
}

// Kind implements Matcher.
func (m *RegexMatcher) Kind() Kind { return KindRegex }

// MatchesText reports whether the pattern occurs anywhere in text.
func (m *RegexMatcher) MatchesText(text *string) bool {
	if text == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(*text)
}

// Equal implements Matcher.
func (m *RegexMatcher) Equal(other Matcher) bool { return Equal(m, other) }

// Hash implements Matcher.
func (m *RegexMatcher) Hash() uint64 { return Hash(m) }

func (m *RegexMatcher) String() string { return fmt.Sprintf("regex(%s)", m.source()) }

func (*RegexMatcher) sealed() {}
