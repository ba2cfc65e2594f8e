package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

type Client struct {
	baseURL         string
	httpClient      Doer
	timeout         time.Duration
	defaultHeaders  map[string]string
	logger          zerolog.Logger
	maxResponseSize int64 // 0 means no limit
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{}, //nolint:exhaustruct
		timeout:    DefaultTimeout,
		defaultHeaders: map[string]string{
			HeaderAccept:    ContentTypeJSON,
			HeaderUserAgent: DefaultUserAgent,
		},
		logger:          zerolog.Nop(),
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get issues a single GET and decodes a 200 response body into response.
// Every failure is returned as *Error; nothing is retried.
func (c *Client) Get(
	ctx context.Context,
	path string,
	response any,
	opts ...RequestOption,
) error {
	cfg := c.buildRequestConfig(opts...)

	timeout := c.timeout
	if cfg.timeout > 0 {
		timeout = cfg.timeout
	}

	reqCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	req, err := c.buildRequest(reqCtx, path, cfg)
	if err != nil {
		return NewNetworkError(err)
	}

	c.logger.Debug().
		Str(logFieldRequestID, cfg.requestID).
		Str(logFieldURL, req.URL.String()).
		Msg("Sending request")

	headerTimer := startPhaseTimer(timeout, cancel, "waiting for response headers")

	resp, err := c.httpClient.Do(req)

	stopPhaseTimer(headerTimer)

	if err != nil {
		return NewNetworkError(transportCause(reqCtx, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewStatusError(resp.StatusCode)
	}

	bodyTimer := startPhaseTimer(timeout, cancel, "reading response body")
	defer stopPhaseTimer(bodyTimer)

	if err := c.decodeBody(reqCtx, resp.Body, response); err != nil {
		return NewNetworkError(err)
	}

	return nil
}

func (c *Client) buildRequestConfig(opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		query:     nil,
		timeout:   0,
		requestID: "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = uuid.New().String()
	}

	return cfg
}

func (c *Client) buildRequest(
	ctx context.Context,
	path string,
	cfg *requestConfig,
) (*http.Request, error) {
	fullURL, err := c.buildURL(path, cfg.query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func (c *Client) buildURL(path string, query Params) (string, error) {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	if !target.IsAbs() {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrCreateRequest, target.String())
	}

	params := EncodeParams(query)
	if len(params) == 0 {
		return target.String(), nil
	}

	existing := target.Query()
	for k, values := range params {
		for _, v := range values {
			existing.Add(k, v)
		}
	}

	target.RawQuery = existing.Encode()

	return target.String(), nil
}

// EncodeParams drops nil entries and string-encodes the remaining values.
func EncodeParams(params Params) url.Values {
	defined := lo.OmitBy(params, func(_ string, value any) bool {
		return lo.IsNil(value)
	})

	values := make(url.Values, len(defined))
	for k, v := range defined {
		if encoded, ok := formatParam(v); ok {
			values.Set(k, encoded)
		}
	}

	return values
}

func formatParam(value any) (string, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}

		rv = rv.Elem()
	}

	if stringer, ok := rv.Interface().(fmt.Stringer); ok {
		return stringer.String(), true
	}

	return fmt.Sprint(rv.Interface()), true
}

func (c *Client) decodeBody(ctx context.Context, body io.Reader, response any) error {
	if c.maxResponseSize > 0 {
		body = io.LimitReader(body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return transportCause(ctx, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return ErrResponseTooLarge
	}

	if response == nil {
		return nil
	}

	err = json.Unmarshal(bodyBytes, response)

	// Mistyped fields keep their zero value; the rest of the payload is kept.
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

func startPhaseTimer(timeout time.Duration, cancel context.CancelCauseFunc, phase string) *time.Timer {
	if timeout <= 0 {
		return nil
	}

	return time.AfterFunc(timeout, func() {
		cancel(fmt.Errorf("%w: %s after %s", ErrTimeout, phase, timeout))
	})
}

func stopPhaseTimer(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
}

// transportCause prefers the phase-timeout cause over the generic
// "context canceled" error reported by net/http.
func transportCause(ctx context.Context, err error) error {
	if cause := context.Cause(ctx); errors.Is(cause, ErrTimeout) {
		return cause
	}

	return err
}
