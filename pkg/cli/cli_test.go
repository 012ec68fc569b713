package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/stubd/pkg/config"
	"github.com/getmockd/stubd/pkg/logging"
	"github.com/getmockd/stubd/pkg/stub"
)

const ordersYAML = `version: "1"
stubs:
  - id: create-order
    request:
      method: POST
      url: https://api.example.com/orders
      body:
        json: {id: 1, name: a}
    response:
      status: 201
      json: {ok: true}
  - id: get-order
    request:
      method: GET
      urlPattern: ^https://api\.example\.com/orders/\d+$
    response:
      body: found
`

func writeStubFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stubs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate(t *testing.T) {
	path := writeStubFile(t, ordersYAML)

	out, _, err := run("validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "create-order")
	assert.Contains(t, out, "https://api.example.com/orders")
	assert.Contains(t, out, `~^https://api\.example\.com/orders/\d+$`)
	assert.Contains(t, out, "2 stubs OK")
}

func TestValidate_JSON(t *testing.T) {
	path := writeStubFile(t, ordersYAML)

	out, _, err := run("validate", "-f", path, "--json")
	require.NoError(t, err)

	var result validateResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	require.Len(t, result.Stubs, 2)
	assert.Equal(t, "create-order", result.Stubs[0].ID)
	assert.Equal(t, 201, result.Stubs[0].Status)
	assert.Equal(t, 200, result.Stubs[1].Status)
}

func TestValidate_Errors(t *testing.T) {
	_, _, err := run("validate", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrFileNotFound)

	_, _, err = run("validate", "-f", writeStubFile(t, "stubs:\n  - request: {url: http://x, urlPattern: x}\n"))
	assert.Error(t, err)

	_, _, err = run("validate")
	assert.Error(t, err)
}

func TestValidate_WarnsOnReplacedStub(t *testing.T) {
	path := writeStubFile(t, `stubs:
  - id: first
    request: {url: http://x/a}
  - id: second
    request: {url: http://x/a}
`)

	out, errOut, err := run("validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"second" repeats an earlier request`)
	assert.Contains(t, out, "1 stubs OK")
}

func TestMatch(t *testing.T) {
	path := writeStubFile(t, ordersYAML)

	tests := []struct {
		name   string
		args   []string
		wantID string
	}{
		{
			name:   "structured body ignores key order",
			args:   []string{"--method", "post", "--url", "https://api.example.com/orders", "--body", `{"name":"a","id":1}`},
			wantID: "create-order",
		},
		{
			name:   "url pattern",
			args:   []string{"--url", "https://api.example.com/orders/42"},
			wantID: "get-order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"match", "-f", path, "--json"}, tt.args...)
			out, _, err := run(args...)
			require.NoError(t, err)

			var result matchResult
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			assert.True(t, result.Matched)
			require.NotNil(t, result.Stub)
			assert.Equal(t, tt.wantID, result.Stub.ID)
		})
	}
}

func TestMatch_BodyFile(t *testing.T) {
	path := writeStubFile(t, ordersYAML)
	body := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(body, []byte(`{ "id": 1, "name": "a" }`), 0o600))

	out, _, err := run("match", "-f", path, "-X", "POST", "--url", "https://api.example.com/orders", "--body-file", body)
	require.NoError(t, err)
	assert.Equal(t, "POST https://api.example.com/orders -> create-order (status 201)\n", out)
}

func TestMatch_NoMatch(t *testing.T) {
	path := writeStubFile(t, ordersYAML)

	out, _, err := run("match", "-f", path, "-X", "POST", "--url", "https://api.example.com/orders", "--body", `{"id":2}`)
	assert.ErrorIs(t, err, stub.ErrNoMatch)
	assert.Equal(t, "POST https://api.example.com/orders -> no match\n", out)
}

func TestMatch_InvalidFlags(t *testing.T) {
	path := writeStubFile(t, ordersYAML)

	_, _, err := run("match", "-f", path, "--url", "http://x", "-H", "no-colon")
	assert.ErrorContains(t, err, "invalid header")

	_, _, err = run("match", "-f", path, "--url", "http://x", "--body", "a", "--body-file", "b")
	assert.Error(t, err)

	_, _, err = run("match", "-f", path)
	assert.Error(t, err)
}

func TestMatchFlags_Incoming(t *testing.T) {
	f := &matchFlags{
		method:  "put",
		url:     "http://x/y",
		headers: []string{"content-type: text/plain", "X-Trace:  abc "},
		body:    "hello",
	}

	in, err := f.incoming()
	require.NoError(t, err)
	assert.Equal(t, "PUT", in.Method)
	assert.Equal(t, "text/plain", in.Header.Get("Content-Type"))
	assert.Equal(t, "abc", in.Header.Get("X-Trace"))
	assert.Equal(t, []byte("hello"), in.Body)

	f.body = ""
	in, err = f.incoming()
	require.NoError(t, err)
	assert.Nil(t, in.Body)
}

func TestRunServer(t *testing.T) {
	reg := stub.NewRegistry()
	s, err := stub.NewBuilder().ID("ping").URL(regexp.MustCompile(`/ping$`)).WithBody([]byte("pong")).Build()
	require.NoError(t, err)
	_, err = reg.Add(s)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, ln, stub.NewHandler(reg), logging.Nop())
	}()

	base := "http://" + ln.Addr().String()
	get := func(path string) (int, string) {
		resp, err := http.Get(base + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	status, body := get("/ping")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body)

	status, body = get("/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "no_match")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
