package httpclient

import (
	"maps"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout    = 10 * time.Second
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"
	ContentTypeJSON   = "application/json"
	DefaultUserAgent  = "gomotogp/httpclient"
	logFieldURL       = "url"
	logFieldRequestID = "request_id"
)

type Option func(*Client)

// WithTimeout bounds the wait for response headers and, separately, the wait
// for the response body. A non-positive value disables both bounds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.defaultHeaders[HeaderUserAgent] = userAgent
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}

// Params is a flat set of query parameters. Nil values, including typed nil
// pointers, are dropped before encoding.
type Params map[string]any

type RequestOption func(*requestConfig)

type requestConfig struct {
	headers   map[string]string
	query     Params
	timeout   time.Duration
	requestID string
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}

func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(rc *requestConfig) {
		rc.timeout = timeout
	}
}

func WithRequestID(requestID string) RequestOption {
	return func(rc *requestConfig) {
		rc.requestID = requestID
	}
}

func WithQuery(key string, value any) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = make(Params)
		}

		rc.query[key] = value
	}
}

func WithQueryParams(params Params) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = make(Params)
		}

		maps.Copy(rc.query, params)
	}
}
