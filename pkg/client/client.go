// Package client is a typed client for the movie-catalog REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// TokenSource returns the bearer token to send, or "" for anonymous calls.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sends a fixed bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = func() string { return token } }
}

// WithTokenSource reads the token on every request, so a login made after
// the client was built is picked up.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) { c.token = src }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(defaultTimeout),
		token:   func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response carries the envelope message next to the decoded data.
type Response[T any] struct {
	Message string
	Data    T
}

func newHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do sends one request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", &Error{Kind: KindTransport, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var fields map[string]string
		if decodeErr == nil && len(env.Data) > 0 {
			// non-object data is simply not a field map
			_ = json.Unmarshal(env.Data, &fields)
		}
		return "", &Error{
			Kind:       kindForStatus(resp.StatusCode, fields, env.Message),
			Message:    env.Message,
			StatusCode: resp.StatusCode,
			Fields:     fields,
		}
	}

	if decodeErr != nil {
		return "", &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Err: decodeErr}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Err: err}
		}
	}
	return env.Message, nil
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (*Response[T], error) {
	var data T
	msg, err := c.do(ctx, method, path, body, &data)
	if err != nil {
		return nil, err
	}
	return &Response[T]{Message: msg, Data: data}, nil
}
