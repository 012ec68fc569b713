package matcher

import (
	"bytes"
	"fmt"
)

// DataMatcher matches a byte body that is exactly equal to a buffer.
// Text bodies never match.
type DataMatcher struct {
	noText
	b []byte
}

// NewData creates a matcher for a copy of b.
func NewData(b []byte) *DataMatcher {
	return &DataMatcher{b: bytes.Clone(b)}
}

// Bytes returns a copy of the held buffer.
func (m *DataMatcher) Bytes() []byte { return bytes.Clone(m.b) }

// Kind implements Matcher.
func (m *DataMatcher) Kind() Kind { return KindData }

// MatchesBytes reports whether b has the same length and content as the buffer.
func (m *DataMatcher) MatchesBytes(b []byte) bool {
	return b != nil && bytes.Equal(b, m.b)
}

// Equal implements Matcher.
func (m *DataMatcher) Equal(other Matcher) bool { return Equal(m, other) }

// Hash implements Matcher.
func (m *DataMatcher) Hash() uint64 { return Hash(m) }

func (m *DataMatcher) String() string { return fmt.Sprintf("data(%d bytes)", len(m.b)) }

func (*DataMatcher) sealed() {}
