package httpclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/megastudymobile/networkkit/logger"
	"github.com/megastudymobile/networkkit/retry"
	"github.com/megastudymobile/networkkit/transport"
)

const defaultTimeout = 30 * time.Second

// Config is the shared, immutable configuration for a Client. Create it once
// at setup; it is shared by reference across all concurrent calls and never
// mutated after construction.
type Config struct {
	// BaseURL is the base address prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each attempt's transport round trip. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are common headers applied to all requests. Request-specific
	// headers override them on key collision.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Decode customizes response decoding (e.g. UseNumber,
	// DisallowUnknownFields). Captured once at client construction.
	Decode func(*json.Decoder) `yaml:"-" mapstructure:"-"`

	// Adapter is the optional pre-send request mutator.
	Adapter Adapter `yaml:"-" mapstructure:"-"`

	// Interceptor is the optional post-receive response observer.
	Interceptor Interceptor `yaml:"-" mapstructure:"-"`

	// Retry configures retry behavior. Nil disables retry.
	Retry *retry.Policy `yaml:"-" mapstructure:"-"`

	// Transport performs the actual I/O. Defaults to transport.Default().
	Transport transport.Transport `yaml:"-" mapstructure:"-"`

	// Logger, if set, logs retry attempts at debug level.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Transport == nil {
		c.Transport = transport.Default()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.Retry != nil && c.Retry.MaxRetryCount < 0 {
		return fmt.Errorf("httpclient: retry max count must not be negative")
	}
	return nil
}
