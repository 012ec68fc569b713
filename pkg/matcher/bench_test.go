package matcher

import (
	"regexp"
	"testing"
)

type benchItem struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

type benchOrder struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Items []benchItem `json:"items"`
}

func BenchmarkMatchesText(b *testing.B) {
	text := Text(`{"id":42,"name":"widget","items":[{"sku":"a-1","qty":2}]}`)
	matchers := map[string]Matcher{
		"string": NewString(*text),
		"regex":  NewRegex(regexp.MustCompile(`"sku":"a-\d+"`)),
	}
	for name, m := range matchers {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				m.MatchesText(text)
			}
		})
	}
}

func BenchmarkMatchesBytes(b *testing.B) {
	body := []byte(`{"id":42,"name":"widget","items":[{"sku":"a-1","qty":2}]}`)
	matchers := map[string]Matcher{
		"data":       NewData(body),
		"json-any":   NewJSON[any](map[string]any{"id": 42.0, "name": "widget", "items": []any{map[string]any{"sku": "a-1", "qty": 2.0}}}),
		"json-typed": NewJSON(benchOrder{ID: 42, Name: "widget", Items: []benchItem{{SKU: "a-1", Qty: 2}}}),
	}
	for name, m := range matchers {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				m.MatchesBytes(body)
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	a, _ := allMatchers()
	for _, m := range a {
		b.Run(m.Kind().String(), func(b *testing.B) {
			for b.Loop() {
				m.Hash()
			}
		})
	}
}
