// Package scryfall validates assembled queries against the card-search
// backend and rewrites them when they are malformed or return nothing.
package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public search endpoint.
const DefaultBaseURL = "https://api.scryfall.com/cards/search"

// ValidationResult is the outcome of one validation call.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Status      int      `json:"status"`
	TotalCards  int      `json:"totalCards"`
	Error       string   `json:"error,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	OverlyBroad bool     `json:"overlyBroad,omitempty"`
	ZeroResults bool     `json:"zeroResults,omitempty"`
}

// Client is the HTTP client for the search backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	debug      bool
}

// NewClient creates a search client. baseURL empty means DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, debug bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		debug: debug,
	}
}

type searchResponse struct {
	TotalCards int      `json:"total_cards"`
	Details    string   `json:"details"`
	Warnings   []string `json:"warnings"`
}

// Validate runs one search for query. 200 means valid, 404 means valid but
// zero results, anything else is invalid with the backend's details. A
// transient network error gets one retry; failures after that are reported
// in the result, never as a Go error, so the pipeline can keep its best
// query.
func (c *Client) Validate(ctx context.Context, query string, overlyBroadThreshold int) ValidationResult {
	resp, err := c.search(ctx, query)
	if err != nil && isTransient(err) {
		if c.debug {
			fmt.Printf("[scryfall] retrying after transient error: %v\n", err)
		}
		time.Sleep(200 * time.Millisecond)
		resp, err = c.search(ctx, query)
	}
	if err != nil {
		return ValidationResult{Status: http.StatusInternalServerError, Error: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ValidationResult{Status: http.StatusInternalServerError, Error: fmt.Sprintf("failed to read response: %v", err)}
	}

	if c.debug {
		fmt.Printf("[scryfall] %d for %q\n", resp.StatusCode, query)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var parsed searchResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return ValidationResult{Status: resp.StatusCode, Error: fmt.Sprintf("failed to parse response: %v", err)}
		}
		return ValidationResult{
			Valid:       true,
			Status:      resp.StatusCode,
			TotalCards:  parsed.TotalCards,
			Warnings:    parsed.Warnings,
			OverlyBroad: overlyBroadThreshold > 0 && parsed.TotalCards > overlyBroadThreshold,
			ZeroResults: parsed.TotalCards == 0,
		}
	case resp.StatusCode == http.StatusNotFound:
		return ValidationResult{Valid: true, Status: resp.StatusCode, ZeroResults: true}
	default:
		var parsed searchResponse
		result := ValidationResult{Status: resp.StatusCode}
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Details != "" {
			result.Error = parsed.Details
			result.Warnings = parsed.Warnings
		} else {
			result.Error = fmt.Sprintf("search returned status %d", resp.StatusCode)
		}
		return result
	}
}

func (c *Client) search(ctx context.Context, query string) (*http.Response, error) {
	u := c.baseURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return resp, nil
}

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
