package guard

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ib-77/asyncmd/pkg/rop/config"
)

const EnvPrefix = "ASYNCMD_"

// Config holds decorator defaults.
type Config struct {
	// Timeout bounds a single attempt. Zero disables it.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// MaxRetries is the number of extra attempts for retryable failures.
	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"2"`
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF" envDefault:"100ms"`
	MaxBackoff     time.Duration `env:"MAX_BACKOFF" envDefault:"2s"`

	BreakerEnabled bool `env:"BREAKER_ENABLED" envDefault:"true"`

	// BreakerFailureThreshold trips the breaker after this many consecutive failures.
	BreakerFailureThreshold uint32 `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`

	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`

	// BreakerMaxRequests is the number of trial requests while half-open.
	BreakerMaxRequests uint32 `env:"BREAKER_MAX_REQUESTS" envDefault:"1"`

	// BreakerInterval is the cyclic period of the closed state for clearing counts.
	BreakerInterval time.Duration `env:"BREAKER_INTERVAL" envDefault:"60s"`
}

func DefaultConfig() Config {
	return Config{
		Timeout:                 10 * time.Second,
		MaxRetries:              2,
		InitialBackoff:          100 * time.Millisecond,
		MaxBackoff:              2 * time.Second,
		BreakerEnabled:          true,
		BreakerFailureThreshold: 5,
		BreakerTimeout:          30 * time.Second,
		BreakerMaxRequests:      1,
		BreakerInterval:         60 * time.Second,
	}
}

// LoadConfig reads Config from ASYNCMD_* variables (and .env).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.LoadWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
