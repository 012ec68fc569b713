package stub

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/stubd/pkg/matcher"
)

func TestHandler_ServesStub(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Add(mustStub(t, NewBuilder().
		Method(http.MethodPut).
		URL(matcher.MustRegex(`/items/\d+$`)).
		Body(matcher.NewJSON(order{ID: 7, Name: "x"})).
		Respond(http.StatusOK).
		WithHeader("X-Stub", "yes").
		WithBody([]byte("updated"))))
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(reg))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/items/7", strings.NewReader(`{"id":7,"name":"x"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Stub"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(body))
}

func TestHandler_AbsoluteURL(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Add(mustStub(t, NewBuilder().URL("http://example.com/ping?x=1").WithBody([]byte("pong"))))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandler_NoMatch(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(NewRegistry()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no_match", body.Error)
	assert.Equal(t, "http://example.com/missing", body.Details["url"])
}

func TestHandler_SimulatedFailure(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Add(mustStub(t, NewBuilder().URL("http://example.com/down").Fail(errors.New("upstream unavailable"))))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/down", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream unavailable")
}
