// Package leagueapi implements the Clutch backend client used for history
// fetches and owner-alias persistence.
package leagueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
)

// userAgent identifies this client to the backend.
const userAgent = "clutchvault/1.0"

// errorEnvelope is the generic error body used by the whole Clutch API.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the Clutch REST API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

var _ contract.LeagueClient = &Client{} // Compile-time check

// NewClient creates a backend client from validated configuration.
func NewClient(cfg *contract.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: contract.DefaultHTTPTimeout},
		baseURL: cfg.BaseURL,
		token:   cfg.APIToken,
	}
}

// GetHistory implements contract.LeagueClient. The backend returns a JSON
// object keyed by season year; keys that do not parse as years are dropped
// rather than failing the whole fetch, since historical imports are messy.
func (c *Client) GetHistory(ctx context.Context, leagueID string) (map[int][]schema.TeamEntry, error) {
	body, err := c.get(ctx, fmt.Sprintf("/imports/history/%s", leagueID))
	if err != nil {
		return nil, err
	}

	var raw map[string][]schema.TeamEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("malformed history payload: %w", err)
	}

	history := make(map[int][]schema.TeamEntry, len(raw))
	for yearStr, entries := range raw {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			continue
		}
		history[year] = entries
	}
	return history, nil
}

// GetOwnerAliases implements contract.LeagueClient.
func (c *Client) GetOwnerAliases(ctx context.Context, leagueID string) ([]schema.OwnerAlias, error) {
	body, err := c.get(ctx, fmt.Sprintf("/leagues/%s/owner-aliases", leagueID))
	if err != nil {
		return nil, err
	}

	var aliases []schema.OwnerAlias
	if err := json.Unmarshal(body, &aliases); err != nil {
		return nil, fmt.Errorf("malformed alias payload: %w", err)
	}
	return aliases, nil
}

// SaveOwnerAliases implements contract.LeagueClient. The batch replaces the
// league's alias list wholesale; the backend applies it last-write-wins.
func (c *Client) SaveOwnerAliases(ctx context.Context, leagueID string, aliases []schema.OwnerAlias) error {
	payload, err := json.Marshal(aliases)
	if err != nil {
		return fmt.Errorf("failed to encode alias batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+fmt.Sprintf("/leagues/%s/owner-aliases", leagueID), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	return nil
}

// get performs a GET request against the API and returns the raw body.
func (c *Client) get(ctx context.Context, urlPath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+urlPath, nil)
	if err != nil {
		return nil, err
	}
	c.setCommonHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeAPIError surfaces the API's error-envelope message verbatim. When
// the body is not the standard envelope, fall back to the HTTP status.
func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("%s", envelope.Error.Message)
	}
	return fmt.Errorf("%s %s failed: %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode)
}
