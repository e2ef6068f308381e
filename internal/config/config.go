// Package config loads process configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings.
type Config struct {
	// AllowedHomeIP is an extra IP or CIDR admitted by the allowlist
	// middleware on top of the private network ranges. Empty means only
	// private networks may connect.
	AllowedHomeIP string `env:"ALLOWED_HOME_IP"`

	// Webhook delivery knobs.
	WebhookTimeout  time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	WebhookRetryMax int           `env:"WEBHOOK_RETRY_MAX" envDefault:"3"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
