package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shouri123/WRAP-YOUR-GIT/pkg/errors"
)

var (
	baseURL = "https://api.github.com"
)

// Client talks to the GitHub REST API. fallbackToken is the server-side
// credential from configuration; per-request caller tokens take precedence
// and are passed explicitly on each call.
type Client struct {
	httpClient    *http.Client
	fallbackToken string
}

func NewClient(fallbackToken string) *Client {
	rl := NewRateLimiter()

	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: rl.Middleware(http.DefaultTransport),
	}

	return &Client{
		httpClient:    client,
		fallbackToken: fallbackToken,
	}
}

func (c *Client) makeRequest(ctx context.Context, method, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	resp, err := c.makeRequest(ctx, "GET", path, token)
	if err != nil {
		return errors.New(
			"GITHUB_API_ERROR",
			"Failed to reach GitHub",
			fmt.Sprintf("Could not connect to GitHub API for %s", path),
			err,
			errors.LevelError,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.New(
			"GITHUB_NOT_FOUND",
			"Resource not found on GitHub",
			fmt.Sprintf("GitHub API returned 404 for %s", path),
			nil,
			errors.LevelInfo,
		)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.New(
			"GITHUB_API_ERROR",
			"Unexpected response from GitHub API",
			fmt.Sprintf("GitHub API returned status %d for %s", resp.StatusCode, path),
			nil,
			errors.LevelError,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New(
			"GITHUB_API_ERROR",
			"Failed to read GitHub API response",
			fmt.Sprintf("Could not read the response body for %s", path),
			err,
			errors.LevelError,
		)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.New(
			"GITHUB_API_ERROR",
			"Failed to parse GitHub API response",
			fmt.Sprintf("Could not understand the response from GitHub API for %s", path),
			err,
			errors.LevelError,
		)
	}

	return nil
}

// * GetUser fetches the public profile of the given user. The caller token
// * is preferred; the server fallback is used when the caller sent none.
func (c *Client) GetUser(ctx context.Context, username, callerToken string) (*User, error) {
	token := callerToken
	if token == "" {
		token = c.fallbackToken
	}

	var user User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%s", username), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// * ListRepositories lists up to 100 recently-updated repositories. With a
// * caller token the authenticated /user/repos listing is used, which
// * includes private repos and assumes the token belongs to the requested
// * user. Without one the public listing is used. The server fallback token
// * is deliberately never applied here: it would list the server operator's
// * repositories instead of the requested user's.
func (c *Client) ListRepositories(ctx context.Context, username, callerToken string) ([]Repository, error) {
	path := fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", username)
	if callerToken != "" {
		path = "/user/repos?per_page=100&sort=updated&type=all"
	}

	var repos []Repository
	if err := c.getJSON(ctx, path, callerToken, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// * ListEvents fetches the user's recent public activity feed. GitHub caps
// * this endpoint at the most recent events, so it is a sample, not history.
func (c *Client) ListEvents(ctx context.Context, username, callerToken string) ([]Event, error) {
	token := callerToken
	if token == "" {
		token = c.fallbackToken
	}

	var events []Event
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%s/events?per_page=100", username), token, &events); err != nil {
		return nil, err
	}
	return events, nil
}
