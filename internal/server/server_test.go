package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/observability"
	"github.com/mj1618/uibridge/internal/platform/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// startApp runs the toolkit loop until the test ends.
func startApp(t *testing.T) *memory.App {
	t.Helper()
	app := memory.NewDemoApp()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = app.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return app
}

func newTestServer(t *testing.T, app *memory.App, reg *prometheus.Registry) *httptest.Server {
	t.Helper()
	cat := dispatch.NewCatalog()
	cat.MustRegister(
		dispatch.Command{
			Name: "widget.count",
			Handler: func(p command.Params) (command.Fields, error) {
				return command.Fields{"windows": len(app.TopLevelWindows()), "n": p.Int("n", -1)}, nil
			},
		},
		dispatch.Command{
			Name: "widget.fail",
			Handler: func(command.Params) (command.Fields, error) {
				return nil, command.Errorf(command.NotFound, "Widget not found: ghost")
			},
		},
	)
	opts := []dispatch.Option{}
	if reg != nil {
		opts = append(opts, dispatch.WithMetrics(observability.NewMetrics(reg)))
	}
	s := New(dispatch.New(cat, opts...), app, WithMetrics(reg))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (*http.Response, command.Result) {
	t.Helper()
	resp, err := http.Post(url+CommandPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var r command.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	return resp, r
}

func TestCommandRoute(t *testing.T) {
	app := startApp(t)
	ts := newTestServer(t, app, nil)

	resp, r := post(t, ts.URL, `{"command":"widget.count","params":{"n":3}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, r.Success)
	assert.Equal(t, 2.0, r.Fields["windows"])
	assert.Equal(t, 3.0, r.Fields["n"], "integral json numbers reach handlers as ints")
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	resp, r = post(t, ts.URL, `{"command":"widget.fail"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "handler failures are results, not transport errors")
	assert.Equal(t, command.NotFound, r.Code)

	resp, r = post(t, ts.URL, `{"command":"bogus"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, command.InvalidFormat, r.Code)

	resp, r = post(t, ts.URL, `{"command":"layer.nonexistent"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, command.UnknownCommand, r.Code)

	resp, r = post(t, ts.URL, `{"command":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, r.Success)

	resp, r = post(t, ts.URL, `{"command":"help"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2.0, r.Fields["count"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t, startApp(t), nil)
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	ts := newTestServer(t, startApp(t), reg)
	post(t, ts.URL, `{"command":"widget.count"}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `uibridge_commands_total{command="widget.count",outcome="success"} 1`)
}

func TestStoppedLoopIsUnavailable(t *testing.T) {
	app := memory.NewDemoApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Run(ctx))

	ts := newTestServer(t, app, nil)
	resp, r := post(t, ts.URL, `{"command":"widget.count"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, command.HostError, r.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	app := startApp(t)
	s := New(dispatch.New(dispatch.NewCatalog()), app)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, ln) }()

	resp, err := http.Post("http://"+ln.Addr().String()+CommandPath, "application/json",
		bytes.NewBufferString(`{"command":"help"}`))
	require.NoError(t, err)
	resp.Body.Close()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	http.DefaultClient.CloseIdleConnections()
}
