package cmd

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/mj1618/uibridge/internal/config"
	"github.com/mj1618/uibridge/internal/handlers"
	"github.com/mj1618/uibridge/internal/platform/memory"
	"github.com/mj1618/uibridge/internal/server"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startDemoServer serves the demo app and returns its command endpoint.
func startDemoServer(t *testing.T) string {
	t.Helper()
	app := memory.NewDemoApp()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = app.Run(ctx)
	}()

	services, err := handlers.New(memory.NewProvider(app), config.NewDefaultConfig(), handlers.Options{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)
	d, err := services.Dispatcher()
	require.NoError(t, err)
	ts := httptest.NewServer(server.New(d, app).Handler())

	t.Cleanup(func() {
		ts.Close()
		cancel()
		<-done
	})
	return ts.URL + server.CommandPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	// Flag values persist on the shared root command between runs.
	_ = rootCmd.PersistentFlags().Set("format", "yaml")
	_ = rootCmd.PersistentFlags().Set("endpoint", "")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInspectCommand(t *testing.T) {
	endpoint := startDemoServer(t)
	out, err := execute(t, "--endpoint", endpoint, "inspect", "mActionNewProject")
	require.NoError(t, err)
	assert.Contains(t, out, "success: true")
	assert.Contains(t, out, "QToolButton")
}

func TestCallCommand_FailureExitsNonZero(t *testing.T) {
	endpoint := startDemoServer(t)
	out, err := execute(t, "--endpoint", endpoint, "call", "widget.inspect", "objectName=ghost")
	require.Error(t, err)
	assert.Contains(t, out, "success: false")
	assert.Contains(t, err.Error(), "NotFound")
}

func TestCallCommand_JSONFormat(t *testing.T) {
	endpoint := startDemoServer(t)
	out, err := execute(t, "--endpoint", endpoint, "--format", "json", "call", "crash.list")
	require.NoError(t, err)
	assert.Contains(t, out, `"success":true`)
	assert.Contains(t, out, `"count":0`)
}
