// Package iss is a client for the Moscow Exchange information and statistics
// server (ISS). It resolves instruments to their venue coordinates, fetches
// price candles over date ranges, looks up latest bars and prices, and lists
// the instruments of an asset class.
package iss

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public ISS endpoint.
const DefaultBaseURL = "https://iss.moex.com"

// DefaultTimeout bounds every request. ISS answers candle queries well under a
// second; anything slower is treated as a failed window.
const DefaultTimeout = 2 * time.Second

// Client issues blocking GET requests against one ISS instance. The zero value
// is not usable; construct with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different ISS instance (tests, mirrors).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the per-request timeout for all endpoints.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func baseTransportConfig() *http.Transport {
	return &http.Transport{
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 4,
	}
}

// NewClient constructs a Client against the public ISS endpoint with the
// default timeout applied uniformly to every endpoint family.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: baseTransportConfig(),
			Timeout:   DefaultTimeout,
		},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues one GET to path with the given query parameters and returns the
// validated JSON body.
func (c *Client) get(path string, query url.Values) (gjson.Result, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: parse URL %q: %v", ErrInvalidArgument, path, err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: GET %s: %v", ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: read body of %s: %v", ErrNetwork, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, fmt.Errorf("%w: GET %s: status %d", ErrNetwork, path, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: GET %s: body is not valid JSON", ErrDataFormat, path)
	}
	return gjson.ParseBytes(body), nil
}

const issTimeLayout = "2006-01-02 15:04:05"
