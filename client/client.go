// Package client implements the HTTP consumer of the upload, execution,
// and cleanup boundaries. The boundary's internals are opaque; this
// package only speaks the wire contract defined in core/api.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/file-command-nexus/nexus/core/api"
)

// Client executes requests against the remote file-command boundary.
// Every call takes a context and is bounded by the configured timeout,
// so a hung boundary can never leave a caller stuck.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client from configuration.
func New(cfg *Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// Upload sends a file to the upload boundary and returns the session it
// created. Transport failures wrap ErrUnreachable; boundary rejections
// are returned as *BoundaryError.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error) {
	status, body, err := c.do(ctx, &api.UploadRequest{Filename: filename, Content: content})
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, &BoundaryError{Message: api.ErrorMessage(body, "upload rejected by boundary")}
	}

	response, err := api.ParseUpload(body)
	if err != nil || response.SessionID == "" {
		return nil, &BoundaryError{Message: api.ErrorMessage(body, "upload response missing session id")}
	}

	return response, nil
}

// Ask submits a question scoped to a session. A usable response carries
// a non-empty answer; any other boundary response, success status or not,
// yields a *BoundaryError carrying the boundary's message.
func (c *Client) Ask(ctx context.Context, question, sessionID string) (*api.AskResponse, error) {
	status, body, err := c.do(ctx, &api.AskRequest{Question: question, SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	if status >= 200 && status < 300 {
		if response, parseErr := api.ParseAsk(body); parseErr == nil && response.Answer != "" {
			return response, nil
		}
	}

	return nil, &BoundaryError{Message: api.ErrorMessage(body, "an error occurred during command execution")}
}

// Cleanup asks the boundary to discard a session's server-side state.
// Best-effort: callers are expected to drop their local session whether
// or not this succeeds.
func (c *Client) Cleanup(ctx context.Context, sessionID string) error {
	status, body, err := c.do(ctx, &api.CleanupRequest{SessionID: sessionID})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &BoundaryError{Message: api.ErrorMessage(body, "cleanup rejected by boundary")}
	}
	return nil
}

func (c *Client) do(ctx context.Context, req api.Request) (int, []byte, error) {
	contentType, reqBody, err := req.Encode()
	if err != nil {
		return 0, nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), c.baseURL+req.Path(), reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return resp.StatusCode, body, nil
}
