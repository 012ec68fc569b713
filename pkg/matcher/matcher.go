package matcher

// Kind identifies a matcher variant.
type Kind uint8

// Matcher variants.
const (
	KindString Kind = iota + 1
	KindRegex
	KindData
	KindStructured
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindRegex:
		return "regex"
	case KindData:
		return "data"
	case KindStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// Matcher decides whether a request body satisfies a rule.
//
// The interface is sealed: only the variants in this package implement it.
type Matcher interface {
	// Kind returns the variant of the matcher.
	Kind() Kind

	// MatchesText reports whether the text body is accepted.
	// A nil text means the body has no text interpretation.
	MatchesText(text *string) bool

	// MatchesBytes reports whether the raw body is accepted.
	// A nil slice means there is no body.
	MatchesBytes(b []byte) bool

	// Equal reports structural equality with another matcher.
	Equal(other Matcher) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64

	// String returns a short human readable description.
	String() string

	sealed()
}

// Text returns a pointer to s, for use with MatchesText.
func Text(s string) *string {
	return &s
}

// noText is embedded by variants that do not interpret text bodies.
type noText struct{}

func (noText) MatchesText(*string) bool { return false }

// noBytes is embedded by variants that do not interpret byte bodies.
type noBytes struct{}

func (noBytes) MatchesBytes([]byte) bool { return false }

// Equal reports whether a and b are the same variant holding equal values.
// Two nil matchers are equal; nil is not equal to any non-nil matcher.
func Equal(a, b Matcher) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *StringMatcher:
		y, ok := b.(*StringMatcher)
		return ok && x.s == y.s
	case *RegexMatcher:
		y, ok := b.(*RegexMatcher)
		return ok && x.source() == y.source()
	case *DataMatcher:
		y, ok := b.(*DataMatcher)
		return ok && string(x.b) == string(y.b)
	default:
		// Structured matchers are generic; the variant compares itself
		// against the concrete type parameter.
		if s, ok := a.(structuredIdentity); ok {
			return s.equalStructured(b)
		}
		return false
	}
}

// Hash returns the hash of m. A nil matcher hashes to 0.
func Hash(m Matcher) uint64 {
	if m == nil {
		return 0
	}
	switch x := m.(type) {
	case *StringMatcher:
		return hashTagged(KindString, x.s)
	case *RegexMatcher:
		return hashTagged(KindRegex, x.source())
	case *DataMatcher:
		return hashTagged(KindData, string(x.b))
	default:
		if s, ok := m.(structuredIdentity); ok {
			return s.hashStructured()
		}
		return 0
	}
}
