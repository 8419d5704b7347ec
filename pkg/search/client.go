// Package search queries a web-search HTTP API and renders the results as
// plain text for the model.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sealor/searchbot/pkg/observe"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint  = "https://api.bochaai.com/v1/web-search"
	DefaultCount     = 5
	MaxCount         = 50
	FreshnessNoLimit = "noLimit"

	maxBodyBytes = 1 << 20
)

var ErrNotConfigured = errors.New("search service not configured")

type Result struct {
	Title   string
	URL     string
	Snippet string
}

type Request struct {
	Query     string `json:"query"`
	Count     int    `json:"count"`
	Freshness string `json:"freshness"`
	Summary   bool   `json:"summary"`
}

type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	observer observe.Observer
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.client = client }
}

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

func WithObserver(o observe.Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
		observer: observe.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs query and renders the outcome. Provider failures are
// reported in the returned text so the model can react to them.
func (c *Client) Search(ctx context.Context, query string, count int) string {
	results, err := c.Query(ctx, Request{Query: query, Count: count, Freshness: FreshnessNoLimit})
	if err != nil {
		return fmt.Sprintf("Search failed: %v", err)
	}
	return Format(query, results)
}

// Query posts one request to the provider and returns the results in
// provider order.
func (c *Client) Query(ctx context.Context, req Request) ([]Result, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrNotConfigured
	}
	req.Count = clampCount(req.Count)
	if req.Freshness == "" {
		req.Freshness = FreshnessNoLimit
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	c.observer.Emit(ctx, "search.request",
		slog.String("query", req.Query),
		slog.String("payload", string(payload)))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}
	c.observer.Emit(ctx, "search.response",
		slog.String("query", req.Query),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("provider returned HTTP %d%s", resp.StatusCode, providerMessage(body))
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("provider returned malformed JSON")
	}
	if code := gjson.GetBytes(body, "code"); code.Exists() && code.Int() != 200 {
		return nil, fmt.Errorf("provider returned code %d%s", code.Int(), providerMessage(body))
	}

	return parseResults(body, req.Count), nil
}

func parseResults(body []byte, limit int) []Result {
	items := gjson.GetBytes(body, "data.webPages.value")
	if !items.Exists() {
		items = gjson.GetBytes(body, "results")
	}

	var results []Result
	items.ForEach(func(_, item gjson.Result) bool {
		results = append(results, Result{
			Title:   first(item, "name", "title"),
			URL:     first(item, "url", "link"),
			Snippet: first(item, "snippet", "summary", "content"),
		})
		return len(results) < limit
	})
	return results
}

func first(item gjson.Result, paths ...string) string {
	for _, path := range paths {
		if v := item.Get(path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func providerMessage(body []byte) string {
	for _, path := range []string{"msg", "message", "error.message", "error"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return ": " + v.String()
		}
	}
	return ""
}

func clampCount(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}
