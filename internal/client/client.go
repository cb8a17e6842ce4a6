// Package client fetches the remote post list over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/postdeck/postdeck/internal/post"
)

// Client issues GET requests against a single posts endpoint.
type Client struct {
	http *http.Client
	url  string
}

// New returns a client for url. A non-positive timeout means no timeout.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		url:  url,
	}
}

// Posts fetches and decodes the post list. Transport failures and non-2xx
// statuses are both plain fetch failures; callers get no finer distinction.
func (c *Client) Posts(ctx context.Context) ([]post.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch posts: unexpected status %s", resp.Status)
	}

	var posts []post.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}
