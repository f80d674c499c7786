// Package wiki fetches encyclopedia summaries from the Wikipedia REST API.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tkessler/parley/internal/collab"
)

// ErrNotFound indicates no article exists for the requested topic.
var ErrNotFound = errors.New("no wikipedia article for topic")

const (
	defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"
	cacheTTL       = 30 * time.Minute
	requestTimeout = 5 * time.Second

	// summaryLimit caps extract length so responses stay speakable.
	summaryLimit = 1000
)

type summaryPayload struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Type    string `json:"type"`
}

// Client looks up page summaries with a per-topic TTL cache.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *gocache.Cache
}

// New constructs a wiki client. An empty baseURL selects English Wikipedia.
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

// Summary returns the lead extract for topic, truncated to a speakable length.
func (c *Client) Summary(ctx context.Context, topic string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(topic))
	if cached, ok := c.cache.Get(key); ok {
		return cached.(string), nil
	}

	title := strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")
	target := c.baseURL + "/page/summary/" + url.PathEscape(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &collab.Error{Kind: collab.KindUnknown, Op: "wiki summary", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		kind := collab.KindUnreachable
		if ctx.Err() != nil {
			kind = collab.KindTimeout
		}
		return "", &collab.Error{Kind: kind, Op: "wiki summary", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", &collab.Error{
			Kind: collab.KindUnreachable,
			Op:   "wiki summary",
			Err:  fmt.Errorf("HTTP %d from %s", resp.StatusCode, target),
		}
	}

	var payload summaryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &collab.Error{Kind: collab.KindUnknown, Op: "wiki summary", Err: err}
	}

	extract := strings.TrimSpace(payload.Extract)
	if extract == "" || payload.Type == "disambiguation" {
		return "", ErrNotFound
	}
	if len(extract) > summaryLimit {
		cut := summaryLimit
		for cut > 0 && !utf8.RuneStart(extract[cut]) {
			cut--
		}
		extract = extract[:cut]
	}

	c.cache.Set(key, extract, gocache.DefaultExpiration)
	return extract, nil
}
