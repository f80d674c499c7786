// Package weather looks up current conditions through the wttr.in text API.
package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tkessler/parley/internal/collab"
)

const (
	defaultBaseURL = "https://wttr.in"
	cacheTTL       = 10 * time.Minute
	requestTimeout = 5 * time.Second
)

// Client fetches one-line weather reports, caching per city to keep repeat
// questions off the network.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *gocache.Cache
}

// New constructs a weather client. An empty baseURL selects wttr.in.
func New(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Lookup returns a short human-readable conditions line for city.
func (c *Client) Lookup(ctx context.Context, city string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if cached, ok := c.cache.Get(key); ok {
		return cached.(string), nil
	}

	target := fmt.Sprintf("%s/%s?format=3", c.baseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &collab.Error{Kind: collab.KindUnknown, Op: "weather lookup", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		kind := collab.KindUnreachable
		if ctx.Err() != nil {
			kind = collab.KindTimeout
		}
		return "", &collab.Error{Kind: kind, Op: "weather lookup", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &collab.Error{
			Kind: collab.KindUnreachable,
			Op:   "weather lookup",
			Err:  fmt.Errorf("HTTP %d from %s", resp.StatusCode, target),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", &collab.Error{Kind: collab.KindUnknown, Op: "weather lookup", Err: err}
	}

	report := strings.TrimSpace(string(body))
	if report == "" {
		return "", &collab.Error{
			Kind: collab.KindUnknown,
			Op:   "weather lookup",
			Err:  fmt.Errorf("empty report for %q", city),
		}
	}

	c.cache.Set(key, report, gocache.DefaultExpiration)
	return report, nil
}
