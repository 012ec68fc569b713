package stub

import (
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/stubd/pkg/matcher"
)

func TestBuilder_Build(t *testing.T) {
	failure := errors.New("connection reset")

	s, err := NewBuilder().
		ID("create-order").
		Method("post").
		URL(regexp.MustCompile(`/orders$`)).
		Header("content-type", "application/json").
		Body(matcher.NewJSON(order{ID: 1})).
		Respond(http.StatusCreated).
		WithHeader("X-Request-Id", "abc").
		WithBody([]byte(`{"ok":true}`)).
		WithDelay(10 * time.Millisecond).
		Fail(failure).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "create-order", s.ID)
	assert.Equal(t, "POST", s.Request.Method)
	assert.Equal(t, matcher.KindRegex, s.Request.URL.Kind())
	assert.Equal(t, "application/json", s.Request.Headers["Content-Type"])
	assert.Equal(t, matcher.KindStructured, s.Request.Body.Kind())
	assert.Equal(t, http.StatusCreated, s.Response.StatusCode)
	assert.Equal(t, "abc", s.Response.Headers.Get("X-Request-Id"))
	assert.Equal(t, []byte(`{"ok":true}`), s.Response.Body)
	assert.Equal(t, 10*time.Millisecond, s.Response.Delay)
	assert.ErrorIs(t, s.Response.Err, failure)
}

func TestBuilder_WithJSON(t *testing.T) {
	s, err := NewBuilder().URL("http://x").WithJSON(map[string]int{"id": 1}).Build()
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1}`, string(s.Response.Body))
	assert.Equal(t, "application/json", s.Response.Headers.Get("Content-Type"))
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{"missing url", NewBuilder().Method("GET")},
		{"unsupported url", NewBuilder().URL(42)},
		{"unsupported body", NewBuilder().URL("http://x").Body(3.14)},
		{"unmarshalable json", NewBuilder().URL("http://x").WithJSON(make(chan int))},
		{"bad status", NewBuilder().URL("http://x").Respond(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.b.Build()
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrInvalidStub)
		})
	}
}

func TestBuilder_BuildCopies(t *testing.T) {
	b := NewBuilder().URL("http://x").Respond(http.StatusOK)
	first, err := b.Build()
	require.NoError(t, err)

	b.Respond(http.StatusTeapot)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, first.Response.StatusCode)
	assert.Equal(t, http.StatusTeapot, second.Response.StatusCode)
}
