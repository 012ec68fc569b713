package matcher

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrUnsupportedSource is returned by From for values that have no matcher.
var ErrUnsupportedSource = errors.New("value cannot be used as a matcher")

// Matchable is implemented by values that can describe themselves as a
// matcher.
type Matchable interface {
	Matcher() Matcher
}

// From converts a value into a matcher:
//
//   - string becomes a StringMatcher
//   - *regexp.Regexp becomes a RegexMatcher
//   - []byte becomes a DataMatcher
//   - a Matcher is returned as is
//   - a Matchable is asked for its matcher
func From(v any) (Matcher, error) {
	switch x := v.(type) {
	case Matcher:
		return x, nil
	case Matchable:
		m := x.Matcher()
		if m == nil {
			return nil, fmt.Errorf("%w: %T returned a nil matcher", ErrUnsupportedSource, v)
		}
		return m, nil
	case string:
		return NewString(x), nil
	case *regexp.Regexp:
		if x == nil {
			return nil, fmt.Errorf("%w: nil pattern", ErrUnsupportedSource)
		}
		return NewRegex(x), nil
	case []byte:
		return NewData(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, v)
	}
}
