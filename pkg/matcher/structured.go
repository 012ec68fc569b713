package matcher

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
)

// Hasher is implemented by reference values that define their own hash.
// Types with a custom Equal(T) bool method should implement it as well so
// that equal values hash alike.
type Hasher interface {
	Hash() uint64
}

// structuredIdentity lets the package level Equal and Hash reach the
// generic variant without knowing its type parameter.
type structuredIdentity interface {
	equalStructured(other Matcher) bool
	hashStructured() uint64
}

// exportAll lets cmp compare unexported struct fields instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// StructuredMatcher decodes a byte body into a T and compares it against a
// reference value. Decode failures are treated as no match. Text bodies
// never match.
//
// Values are compared with T's own Equal(T) bool method when it has one,
// otherwise structurally, field by field.
type StructuredMatcher[T any] struct {
	noText
	value T
	codec Codec
}

// StructuredOption configures a StructuredMatcher.
type StructuredOption func(*structuredOptions)

type structuredOptions struct {
	codec Codec
}

// WithCodec sets the codec used to decode byte bodies. The default is JSON.
func WithCodec(c Codec) StructuredOption {
	return func(o *structuredOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// NewStructured creates a matcher for the reference value v.
func NewStructured[T any](v T, opts ...StructuredOption) *StructuredMatcher[T] {
	o := structuredOptions{codec: JSON}
	for _, opt := range opts {
		opt(&o)
	}
	return &StructuredMatcher[T]{value: v, codec: o.codec}
}

// NewJSON creates a matcher that decodes JSON bodies into T.
func NewJSON[T any](v T) *StructuredMatcher[T] {
	return NewStructured(v)
}

// Value returns the reference value.
func (m *StructuredMatcher[T]) Value() T { return m.value }

// Codec returns the codec used for decoding.
func (m *StructuredMatcher[T]) Codec() Codec { return m.codec }

// Kind implements Matcher.
func (m *StructuredMatcher[T]) Kind() Kind { return KindStructured }

// MatchesBytes decodes b into a T and reports whether it equals the
// reference value.
func (m *StructuredMatcher[T]) MatchesBytes(b []byte) (matched bool) {
	if b == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	decoded := new(T)
	if err := m.codec.Decode(b, decoded); err != nil {
		return false
	}
	return valuesEqual(m.value, *decoded)
}

// Equal implements Matcher.
func (m *StructuredMatcher[T]) Equal(other Matcher) bool { return Equal(m, other) }

// Hash implements Matcher.
func (m *StructuredMatcher[T]) Hash() uint64 { return Hash(m) }

func (m *StructuredMatcher[T]) String() string {
	return fmt.Sprintf("structured[%s](%s)", typeName[T](), m.codec.Name())
}

func (*StructuredMatcher[T]) sealed() {}

func (m *StructuredMatcher[T]) equalStructured(other Matcher) bool {
	o, ok := other.(*StructuredMatcher[T])
	if !ok {
		return false
	}
	if m == o {
		return true
	}
	return safeEqual(m.value, o.value)
}

func (m *StructuredMatcher[T]) hashStructured() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(KindStructured)})
	_, _ = d.WriteString(typeName[T]())
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], valueHash(m.value))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func valuesEqual[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}

func safeEqual[T any](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return valuesEqual(a, b)
}

// valueHash hashes v consistently with valuesEqual. A top-level Hasher
// supplies its own hash. Everything else is hashed through canonical.
func valueHash(v any) (h uint64) {
	if hv, ok := v.(Hasher); ok {
		return hv.Hash()
	}
	defer func() {
		if recover() != nil {
			h = 0
		}
	}()
	return structuralHash(canonical(reflect.ValueOf(v), 0))
}

func structuralHash(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}
