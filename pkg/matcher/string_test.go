package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringMatcher_MatchesText(t *testing.T) {
	m := NewString("foo")

	tests := []struct {
		name string
		text *string
		want bool
	}{
		{"exact", Text("foo"), true},
		{"case sensitive", Text("Foo"), false},
		{"prefix", Text("foobar"), false},
		{"trailing space", Text("foo "), false},
		{"empty", Text(""), false},
		{"absent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MatchesText(tt.text))
		})
	}
}

func TestStringMatcher_MatchesBytes(t *testing.T) {
	m := NewString("foo")

	assert.True(t, m.MatchesBytes([]byte("foo")))
	assert.False(t, m.MatchesBytes([]byte("bar")))
	assert.False(t, m.MatchesBytes(nil))
}

func TestStringMatcher_Empty(t *testing.T) {
	m := NewString("")

	assert.True(t, m.MatchesText(Text("")))
	assert.True(t, m.MatchesBytes([]byte{}))
	assert.False(t, m.MatchesBytes(nil), "absent body is not an empty body")
}

func TestStringMatcher_Unicode(t *testing.T) {
	m := NewString("héllo")

	assert.True(t, m.MatchesBytes([]byte{'h', 0xc3, 0xa9, 'l', 'l', 'o'}))
	assert.Equal(t, "héllo", m.Value())
	assert.Equal(t, KindString, m.Kind())
}
