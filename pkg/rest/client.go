// Package rest is a small typed HTTP client for the service's JSON endpoints.
//
// It owns the transport concerns the generated bindings rely on: credentials,
// user agent, proxy and TLS setup, content decoding, retries and the mapping of
// failed responses to *Error.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"time"
)

// Client issues requests against the service
type Client struct {
	userAgent  string
	handlers   []Handler
	http       *http.Client
	logger     *slog.Logger
	maxRetries int
	backoff    time.Duration
}

// Response is a fully read response
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is nil when the resource was not found
	Body []byte
}

// RequestOptions carries per request headers
type RequestOptions struct {
	Accept string
	// ContentType overrides the JSON content type for requests with a body
	ContentType string
	Headers     map[string]string
}

// New creates a client from opts, decorating each request with handlers in order
func New(opts Options, handlers ...Handler) (*Client, error) {
	httpClient, err := newHTTPClient(&opts)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	backoff := opts.RetryBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	return &Client{
		userAgent:  opts.UserAgent,
		handlers:   handlers,
		http:       httpClient,
		logger:     logger,
		maxRetries: opts.MaxRetries,
		backoff:    backoff,
	}, nil
}

// WithUserAgent returns a copy of c sending userAgent
func (c *Client) WithUserAgent(userAgent string) *Client {
	clone := *c
	clone.userAgent = userAgent
	return &clone
}

// Options sends an OPTIONS request
func (c *Client) Options(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, http.MethodOptions, url, nil, opts)
}

// Get sends a GET request
func (c *Client) Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, http.MethodGet, url, nil, opts)
}

// Del sends a DELETE request
func (c *Client) Del(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, http.MethodDelete, url, nil, opts)
}

// Create sends a POST request with body encoded as JSON
func (c *Client) Create(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, http.MethodPost, url, body, opts)
}

// Update sends a PATCH request with body encoded as JSON
func (c *Client) Update(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, http.MethodPatch, url, body, opts)
}

// Replace sends a PUT request with body encoded as JSON. A nil body sends no content.
func (c *Client) Replace(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, http.MethodPut, url, body, opts)
}

// Send issues a request with any method and reads the whole response.
//
// 404 responses return a Response with a nil Body and no error. Other statuses above
// 299 return *Error.
func (c *Client) Send(ctx context.Context, method, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.sendJSON(ctx, method, url, body, opts)
}

func (c *Client) sendJSON(ctx context.Context, method, url string, body any, opts *RequestOptions) (*Response, error) {
	resp, err := c.do(ctx, method, url, body, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		out.Body = nil
		return out, nil
	case resp.StatusCode > 299:
		return nil, newError(resp.StatusCode, data)
	}
	return out, nil
}

// Stream issues a request and returns the open body for the caller to consume.
// Any status above 299, including 404, returns *Error.
func (c *Client) Stream(ctx context.Context, method, url string, body any, opts *RequestOptions) (io.ReadCloser, error) {
	resp, err := c.do(ctx, method, url, body, opts)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		return nil, newError(resp.StatusCode, data)
	}
	return resp.Body, nil
}

// do sends the request, retrying idempotent methods on transient failures.
// The returned body is already decompressed.
func (c *Client) do(ctx context.Context, method, url string, body any, opts *RequestOptions) (*http.Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if isIdempotent(method) {
		attempts += c.maxRetries
	}
	delay := c.backoff

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		req, err := c.newRequest(ctx, method, url, payload, opts)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.DebugContext(ctx, "request failed", "method", method, "url", url, "err", err, "attempt", attempt+1)
			lastErr = err
			continue
		}
		c.logger.DebugContext(ctx, "request", "method", method, "url", url, "status", resp.StatusCode, "dur", time.Since(start).Round(time.Millisecond))

		if isRetryableStatus(resp.StatusCode) && attempt < attempts-1 {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("%s %s: status %d", method, url, resp.StatusCode)
			continue
		}

		decoded, err := decompressBody(resp.Header.Get("Content-Encoding"), resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return nil, err
		}
		resp.Body = decoded
		resp.Header.Del("Content-Encoding")
		return resp, nil
	}
	return nil, fmt.Errorf("failed to %s %s: %w", method, url, lastErr)
}

func (c *Client) newRequest(ctx context.Context, method, url string, payload []byte, opts *RequestOptions) (*http.Request, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Encoding", acceptEncoding)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	accept := "application/json"
	if opts != nil && opts.Accept != "" {
		accept = opts.Accept
	}
	req.Header.Set("Accept", accept)
	if payload != nil {
		contentType := "application/json; charset=utf-8"
		if opts != nil && opts.ContentType != "" {
			contentType = opts.ContentType
		}
		req.Header.Set("Content-Type", contentType)
	}
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}
	for _, h := range c.handlers {
		h.PrepareRequest(req)
	}
	return req, nil
}

// encodeBody turns a request body into bytes. Raw bytes and readers pass through
// and a nil pointer sends no body.
func encodeBody(body any) ([]byte, error) {
	if rv := reflect.ValueOf(body); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		return data, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func isRetryableStatus(status int) bool {
	return status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout
}
