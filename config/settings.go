package config

import (
	"time"

	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/resilience"
	"github.com/kbukum/fnkit/validation"
)

// Settings holds the tunables of the fnkit helpers.
//
// Applications extend it by embedding:
//
//	type AppConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
//	}
type Settings struct {
	Logging     logger.Config       `yaml:"logging" mapstructure:"logging"`
	Retry       RetrySettings       `yaml:"retry" mapstructure:"retry"`
	Concurrency ConcurrencySettings `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitSettings   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Timeout     TimeoutSettings     `yaml:"timeout" mapstructure:"timeout"`
}

// RetrySettings configures resilience.Retry.
type RetrySettings struct {
	MaxAttempts    int           `yaml:"max_attempts" mapstructure:"max_attempts" validate:"gte=1"`
	InitialBackoff time.Duration `yaml:"initial_backoff" mapstructure:"initial_backoff" validate:"gte=0"`
	MaxBackoff     time.Duration `yaml:"max_backoff" mapstructure:"max_backoff" validate:"gtefield=InitialBackoff"`
	BackoffFactor  float64       `yaml:"backoff_factor" mapstructure:"backoff_factor" validate:"gte=1"`
	Jitter         float64       `yaml:"jitter" mapstructure:"jitter" validate:"gte=0,lte=1"`
	// Strategy is "exponential" or "quadratic". Quadratic waits
	// attempt² × initial_backoff.
	Strategy string `yaml:"strategy" mapstructure:"strategy" validate:"oneof=exponential quadratic"`
}

// ConcurrencySettings configures resilience.KeyedLimiter.
type ConcurrencySettings struct {
	MaxTotal int           `yaml:"max_total" mapstructure:"max_total" validate:"gte=1"`
	PerKey   int           `yaml:"per_key" mapstructure:"per_key" validate:"gte=1,ltefield=MaxTotal"`
	MaxWait  time.Duration `yaml:"max_wait" mapstructure:"max_wait"`
}

// RateLimitSettings configures resilience.RateLimiter.
type RateLimitSettings struct {
	Rate  float64 `yaml:"rate" mapstructure:"rate" validate:"gt=0"`
	Burst int     `yaml:"burst" mapstructure:"burst" validate:"gte=1"`
}

// TimeoutSettings configures resilience.Timeout.
type TimeoutSettings struct {
	Default time.Duration `yaml:"default" mapstructure:"default" validate:"gt=0"`
}

// DefaultSettings returns Settings with every default applied.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills zero values with the defaults of the resilience
// package.
func (s *Settings) ApplyDefaults() {
	s.Logging.ApplyDefaults()

	r := resilience.DefaultRetryConfig()
	if s.Retry.MaxAttempts == 0 {
		s.Retry.MaxAttempts = r.MaxAttempts
	}
	if s.Retry.InitialBackoff == 0 {
		s.Retry.InitialBackoff = r.InitialBackoff
	}
	if s.Retry.MaxBackoff == 0 {
		s.Retry.MaxBackoff = r.MaxBackoff
	}
	if s.Retry.BackoffFactor == 0 {
		s.Retry.BackoffFactor = r.BackoffFactor
	}
	if s.Retry.Strategy == "" {
		s.Retry.Strategy = "exponential"
	}

	c := resilience.DefaultConcurrencyConfig("")
	if s.Concurrency.MaxTotal == 0 {
		s.Concurrency.MaxTotal = c.MaxTotal
	}
	if s.Concurrency.PerKey == 0 {
		s.Concurrency.PerKey = c.PerKey
	}

	rl := resilience.DefaultRateLimiterConfig("")
	if s.RateLimit.Rate == 0 {
		s.RateLimit.Rate = rl.Rate
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = rl.Burst
	}

	if s.Timeout.Default == 0 {
		s.Timeout.Default = 30 * time.Second
	}
}

// Validate checks the struct tags of every section, then the logging
// section.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	return s.Logging.Validate()
}

// RetryConfig converts the retry section.
func (s *Settings) RetryConfig() resilience.RetryConfig {
	cfg := resilience.RetryConfig{
		Name:           "retry",
		MaxAttempts:    s.Retry.MaxAttempts,
		InitialBackoff: s.Retry.InitialBackoff,
		MaxBackoff:     s.Retry.MaxBackoff,
		BackoffFactor:  s.Retry.BackoffFactor,
		Jitter:         s.Retry.Jitter,
	}
	if s.Retry.Strategy == "quadratic" {
		cfg.Strategy = resilience.QuadraticStrategy(s.Retry.InitialBackoff)
	}
	return cfg
}

// ConcurrencyConfig converts the concurrency section for a limiter called
// name.
func (s *Settings) ConcurrencyConfig(name string) resilience.ConcurrencyConfig {
	return resilience.ConcurrencyConfig{
		Name:     name,
		MaxTotal: s.Concurrency.MaxTotal,
		PerKey:   s.Concurrency.PerKey,
		MaxWait:  s.Concurrency.MaxWait,
	}
}

// RateLimiterConfig converts the rate_limit section for a limiter called
// name.
func (s *Settings) RateLimiterConfig(name string) resilience.RateLimiterConfig {
	return resilience.RateLimiterConfig{
		Name:  name,
		Rate:  s.RateLimit.Rate,
		Burst: s.RateLimit.Burst,
	}
}
