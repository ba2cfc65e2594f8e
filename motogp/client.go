// Package motogp is a typed client for the MotoGP results and broadcast API.
package motogp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/andyle182810/gomotogp/httpclient"
	"github.com/rs/zerolog"
)

type Client struct {
	config Config
	http   *httpclient.Client
}

func New(opts ...Option) (*Client, error) {
	s := &settings{
		config:     DefaultConfig(),
		httpClient: nil,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	httpOpts := []httpclient.Option{
		httpclient.WithTimeout(s.config.Timeout),
		httpclient.WithUserAgent(s.config.UserAgent),
		httpclient.WithLogger(s.logger),
	}

	if s.httpClient != nil {
		httpOpts = append(httpOpts, httpclient.WithHTTPClient(s.httpClient))
	}

	return &Client{
		config: s.config,
		http:   httpclient.New(s.config.BaseURL, httpOpts...),
	}, nil
}

func (c *Client) Config() Config {
	return c.config
}

func get[T any](ctx context.Context, c *Client, path string, params httpclient.Params) (T, error) {
	if len(params) == 0 {
		return httpclient.GetJSON[T](ctx, c.http, path)
	}

	return httpclient.GetJSON[T](ctx, c.http, path, httpclient.WithQueryParams(params))
}

// endpoint joins path segments, escaping each one.
func endpoint(segments ...any) string {
	var b strings.Builder

	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(fmt.Sprint(segment)))
	}

	return b.String()
}
