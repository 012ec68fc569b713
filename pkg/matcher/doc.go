// Package matcher provides the body matchers used to select stubs.
//
// A Matcher decides whether an intercepted request body satisfies a
// registered rule. The body is offered in up to two interpretations: as
// text (only when the payload is valid text) and as raw bytes. Each matcher
// answers for the interpretations it understands and reports "no match"
// for everything else. Matchers never return errors and never panic on
// input; an undecodable payload is simply not a match.
//
// The set of matchers is closed. Four variants exist:
//
//   - StringMatcher: exact text equality, also compared against UTF-8 bytes
//   - RegexMatcher: a compiled pattern found anywhere in the text
//   - DataMatcher: byte-for-byte equality
//   - StructuredMatcher: decodes the bytes into a typed value and compares
//     it structurally against a reference value
//
// # Identity
//
// Matchers are used as keys by the stub registry, so every matcher has
// structural identity: Equal compares the variant first and then the held
// value, and Hash is derived from the same data. If a.Equal(b) then
// a.Hash() == b.Hash(). Matchers of different variants are never equal.
//
// # Usage
//
//	m := matcher.NewJSON(Order{ID: 1, Name: "a"})
//	m.MatchesBytes([]byte(`{"name":"a","id":1}`)) // true
//
//	re := matcher.MustRegex(`\d+`)
//	re.MatchesText(matcher.Text("order-42")) // true
//
// All matchers are immutable after construction and safe for concurrent use.
package matcher
