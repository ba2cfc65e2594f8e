package motogp

import (
	"errors"
	"fmt"
	"time"

	"github.com/andyle182810/gomotogp/httpclient"
	"github.com/andyle182810/gomotogp/validator"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL   = "https://api.motogp.pulselive.com/motogp/v1"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

var ErrInvalidConfig = errors.New("motogp: invalid config")

// Config is fixed when the client is built and never changes afterwards.
type Config struct {
	BaseURL   string        `json:"baseUrl"   validate:"required,httpurl"`
	Timeout   time.Duration `json:"timeout"   validate:"gt=0"`
	UserAgent string        `json:"userAgent" validate:"required"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

func (c Config) Validate() error {
	if err := validator.New().Validate(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

type Option func(*settings)

type settings struct {
	config     Config
	httpClient httpclient.Doer
	logger     zerolog.Logger
}

func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.config.BaseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.config.Timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.config.UserAgent = userAgent
	}
}

// WithConfig replaces every config field at once; zero fields are validated
// like any other value and are not backfilled with defaults.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

func WithHTTPClient(httpClient httpclient.Doer) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithLogger receives one debug line per outgoing request.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
