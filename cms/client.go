// Package cms talks to the headless CMS that owns all site content.
package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const maxResponseSize = 16 << 20

// Cache stores raw response bodies for a time window
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Cache      Cache
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// Client issues requests against the CMS REST API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
	normalizer *Normalizer
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")

	return &Client{
		baseURL:    baseURL,
		token:      opts.Token,
		httpClient: httpClient,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		normalizer: &Normalizer{MediaBaseURL: baseURL},
	}
}

// Configured reports whether a base URL is set
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Normalizer returns the record normalizer bound to this CMS
func (c *Client) Normalizer() *Normalizer {
	return c.normalizer
}

type freshKey struct{}

// WithFresh marks ctx so reads skip the cache and overwrite it
func WithFresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, freshKey{}, true)
}

// IsFresh reports whether ctx was marked with WithFresh
func IsFresh(ctx context.Context) bool {
	fresh, _ := ctx.Value(freshKey{}).(bool)
	return fresh
}

// CacheKey is the cache key of the response for path
func CacheKey(path string) string {
	return "cms:" + path
}

// Get fetches path and returns the parsed document
func (c *Client) Get(ctx context.Context, path string) (gjson.Result, error) {
	if !c.Configured() {
		return gjson.Result{}, ErrNotConfigured
	}

	if c.cache != nil && !IsFresh(ctx) {
		body, ok, err := c.cache.Get(ctx, CacheKey(path))
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read cms response from cache")
		} else if ok && gjson.ValidBytes(body) {
			log.Debug().Str("path", path).Msg("Serving cms response from cache")
			return gjson.ParseBytes(body), nil
		}
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return gjson.Result{}, err
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("invalid json in response for %s", path)
	}

	doc := gjson.ParseBytes(body)

	if c.cache != nil && c.cacheTTL > 0 && hasData(doc) {
		if err := c.cache.Set(ctx, CacheKey(path), body, c.cacheTTL); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to store cms response in cache")
		}
	}

	log.Debug().Str("path", path).Msg("Fetched cms response")

	return doc, nil
}

// hasData reports whether doc carries at least one record. Misses are not
// cached, so lookups by arbitrary slug cannot grow the cache.
func hasData(doc gjson.Result) bool {
	data := doc.Get("data")
	switch {
	case data.IsArray():
		return len(data.Array()) > 0
	case data.IsObject():
		return true
	default:
		return false
	}
}

// GetList fetches path and returns the records of its top-level data array.
// A document without a data array is treated as an empty collection.
func (c *Client) GetList(ctx context.Context, path string) ([]gjson.Result, error) {
	doc, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	data := doc.Get("data")
	if !data.IsArray() {
		log.Warn().Str("path", path).Msg("No data array in cms response")
		return []gjson.Result{}, nil
	}

	return data.Array(), nil
}

// GetOne fetches path and returns its top-level data object. ok is false when
// data is null or missing.
func (c *Client) GetOne(ctx context.Context, path string) (record gjson.Result, ok bool, err error) {
	doc, err := c.Get(ctx, path)
	if err != nil {
		return gjson.Result{}, false, err
	}

	data := doc.Get("data")
	if data.IsArray() {
		data = data.Get("0")
	}
	if !data.IsObject() {
		return gjson.Result{}, false, nil
	}

	return data, true, nil
}

// Post sends payload as JSON to path and returns the parsed response
func (c *Client) Post(ctx context.Context, path string, payload any) (gjson.Result, error) {
	if !c.Configured() {
		return gjson.Result{}, ErrNotConfigured
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, path, encoded)
	if err != nil {
		return gjson.Result{}, err
	}

	return gjson.ParseBytes(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s %s: %w", method, path, err)
	}

	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close cms response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s %s: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", res.StatusCode).
			Msg("CMS request failed")

		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
