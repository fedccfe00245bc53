// Package client sends commands to a running uibridge server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
)

// DefaultTimeout bounds one round trip. Waits run server side, so callers
// issuing long widget.wait_for commands should raise it.
const DefaultTimeout = 60 * time.Second

type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string) *Client {
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: DefaultTimeout}}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// WithTimeout sets the round-trip timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	h := *c.http
	h.Timeout = d
	c.http = &h
	return c
}

func (c *Client) Endpoint() string { return c.endpoint }

// Call runs one command. A failed command is returned as a Result with
// Success false; the error is only set when no result could be read.
func (c *Client) Call(ctx context.Context, name string, params command.Params) (command.Result, error) {
	body, err := json.Marshal(dispatch.Request{Command: name, Params: params})
	if err != nil {
		return command.Result{}, fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return command.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return command.Result{}, fmt.Errorf("contacting %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return command.Result{}, fmt.Errorf("reading response: %w", err)
	}
	var result command.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return command.Result{}, fmt.Errorf("unexpected response (HTTP %d): %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	return result, nil
}

// Help fetches the full command catalog.
func (c *Client) Help(ctx context.Context) (map[string]any, error) {
	r, err := c.Call(ctx, dispatch.HelpCommand, nil)
	if err != nil {
		return nil, err
	}
	if !r.Success {
		return nil, fmt.Errorf("help failed: %s", r.Error)
	}
	cmds, _ := r.Fields["commands"].(map[string]any)
	return cmds, nil
}
