package polydub

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig holds the client settings readable from the environment.
type envConfig struct {
	APIKey    string `env:"POLYDUB_API_KEY"`
	BaseURL   string `env:"POLYDUB_BASE_URL" envDefault:"https://api.polydub.ai/v1"`
	TimeoutMS int    `env:"POLYDUB_TIMEOUT_MS" envDefault:"30000"`
}

// NewFromEnv builds a Client from POLYDUB_* environment variables.
// Explicit options are applied after the environment and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg := envConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, NewAPIError("failed to parse environment: " + err.Error())
	}

	envOpts := []Option{
		WithTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond),
	}
	if cfg.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(cfg.BaseURL))
	}
	return New(cfg.APIKey, append(envOpts, opts...)...)
}
