package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	var got dispatch.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"Unknown command: a.b","code":"UnknownCommand"}`))
	}))
	defer ts.Close()

	r, err := New(ts.URL).Call(context.Background(), "a.b", command.Params{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, "a.b", got.Command)
	assert.Equal(t, 1.0, got.Params["x"])
	assert.False(t, r.Success)
	assert.Equal(t, command.UnknownCommand, r.Code)
}

func TestCall_NonResultBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Call(context.Background(), "a.b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestCall_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(url).Call(context.Background(), "a.b", nil)
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"count":1,"commands":{"widget.click":{"description":"Click"}}}`))
	}))
	defer ts.Close()

	cmds, err := New(ts.URL).Help(context.Background())
	require.NoError(t, err)
	assert.Contains(t, cmds, "widget.click")
}
