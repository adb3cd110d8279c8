// Package supabase provides JSON-over-HTTPS clients for the hosted backend
// collaborators: token issuance/refresh/verification against the auth
// endpoint and insert/select/update/delete on the articles record store.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request to the backend.
const DefaultTimeout = 10 * time.Second

// Client is a minimal REST client for a Supabase project.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// NewClient creates a Client for the project at baseURL using the given
// publishable (anon) key.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// do issues one request with the project headers applied. A non-empty
// bearer token is attached as the Authorization header; out, when non-nil,
// receives the decoded JSON response body.
func (c *Client) do(ctx context.Context, method, path, bearer string, headers map[string]string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("%s %s: HTTP %d: %s", method, path, resp.StatusCode, errorDetail(data))
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// errorDetail extracts a human-readable message from an error response body.
func errorDetail(data []byte) string {
	var e struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &e); err == nil {
		switch {
		case e.ErrorDescription != "":
			return e.ErrorDescription
		case e.Message != "":
			return e.Message
		case e.Msg != "":
			return e.Msg
		}
	}
	return strings.TrimSpace(string(data))
}
