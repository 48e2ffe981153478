package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/megastudymobile/networkkit/httpclient"
	"github.com/megastudymobile/networkkit/logger"
	"github.com/megastudymobile/networkkit/retry"
	"github.com/megastudymobile/networkkit/transport"
)

// ClientConfig is the serializable shape of an httpclient.Config. It carries
// only plain values so it can be loaded from YAML and environment variables;
// Build converts it into the runtime configuration.
type ClientConfig struct {
	BaseURL string            `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration     `yaml:"timeout" mapstructure:"timeout" validate:"omitempty,gt=0"`
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	Retry   *RetryConfig         `yaml:"retry" mapstructure:"retry"`
	TLS     *transport.TLSConfig `yaml:"tls" mapstructure:"tls"`
	Logging *logger.Config       `yaml:"logging" mapstructure:"logging"`
}

// RetryConfig is the serializable shape of a retry.Policy.
type RetryConfig struct {
	// Strategy names the backoff strategy: constant, linear, or exponential.
	Strategy string `yaml:"strategy" mapstructure:"strategy" validate:"omitempty,oneof=constant linear exponential"`

	// Base is the strategy's base delay. Defaults per strategy.
	Base time.Duration `yaml:"base" mapstructure:"base" validate:"omitempty,gt=0"`

	// MaxRetryCount is the maximum number of retries after the first attempt.
	MaxRetryCount int `yaml:"max_retry_count" mapstructure:"max_retry_count" validate:"gte=0"`

	// RetryableStatusCodes lists HTTP status codes eligible for retry.
	// Empty means the default set.
	RetryableStatusCodes []int `yaml:"retryable_status_codes" mapstructure:"retryable_status_codes" validate:"dive,gte=100,lte=599"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report field names as their yaml keys in error messages.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks the configuration against its struct tags.
func (c *ClientConfig) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Build validates the configuration and materializes the runtime
// httpclient.Config: the retry section becomes a retry.Policy, the TLS
// section becomes the transport, and the logging section becomes the
// client logger.
func (c *ClientConfig) Build() (httpclient.Config, error) {
	if c.Logging != nil {
		c.Logging.ApplyDefaults()
	}
	if err := c.Validate(); err != nil {
		return httpclient.Config{}, err
	}

	cfg := httpclient.Config{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Headers: c.Headers,
	}

	if c.Retry != nil {
		policy, err := c.Retry.policy()
		if err != nil {
			return httpclient.Config{}, err
		}
		cfg.Retry = policy
	}

	if c.TLS != nil {
		t, err := transport.NewHTTP(transport.HTTPConfig{TLS: c.TLS})
		if err != nil {
			return httpclient.Config{}, fmt.Errorf("config: %w", err)
		}
		cfg.Transport = t
	}

	if c.Logging != nil {
		cfg.Logger = logger.New(c.Logging, "networkkit")
	}

	return cfg, nil
}

// policy converts the retry section into a retry.Policy.
func (rc *RetryConfig) policy() (*retry.Policy, error) {
	strategy, err := rc.strategy()
	if err != nil {
		return nil, err
	}

	codes := rc.RetryableStatusCodes
	if len(codes) == 0 {
		codes = retry.DefaultRetryableStatusCodes()
	}

	return &retry.Policy{
		Strategy:             strategy,
		MaxRetryCount:        rc.MaxRetryCount,
		RetryableStatusCodes: codes,
	}, nil
}

func (rc *RetryConfig) strategy() (retry.Strategy, error) {
	base := rc.Base
	switch rc.Strategy {
	case "constant":
		if base <= 0 {
			base = time.Second
		}
		return retry.Constant(base), nil
	case "linear":
		if base <= 0 {
			base = time.Second
		}
		return retry.Linear(base), nil
	case "exponential", "":
		if base <= 0 {
			base = retry.DefaultExponentialBase
		}
		return retry.Exponential(base), nil
	default:
		return nil, fmt.Errorf("config: unknown retry strategy %q", rc.Strategy)
	}
}
