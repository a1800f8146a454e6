// Package advisory talks to an optional external knowledge service. The
// predictor treats it as best-effort: any failure degrades to "no advisory
// data" and never reaches the caller as an error.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Result reports whether advisory data came back. Reason is only set when
// Available is false.
type Result struct {
	Available bool
	Reason    string
}

// Client posts free-text prompts to {baseURL}/chat.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Consult sends one prompt and reports whether the service answered. A
// non-200 status or transport failure is folded into the Result; Consult
// never returns an error.
func (c *Client) Consult(ctx context.Context, prompt string) Result {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return Result{Reason: fmt.Sprintf("marshal prompt: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return Result{Reason: fmt.Sprintf("new request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Reason: fmt.Sprintf("connection error: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Reason: fmt.Sprintf("api error: %s", resp.Status)}
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{Reason: fmt.Sprintf("decode response: %v", err)}
	}
	if errMsg, ok := payload["error"]; ok {
		return Result{Reason: fmt.Sprint(errMsg)}
	}
	return Result{Available: true}
}
