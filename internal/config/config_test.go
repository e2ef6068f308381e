package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Blank out anything the host environment may carry; the library falls
	// back to the struct defaults for empty values.
	t.Setenv("ALLOWED_HOME_IP", "")
	t.Setenv("WEBHOOK_TIMEOUT", "")
	t.Setenv("WEBHOOK_RETRY_MAX", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.WebhookTimeout != 10*time.Second {
		t.Errorf("WebhookTimeout = %v, want 10s", cfg.WebhookTimeout)
	}
	if cfg.WebhookRetryMax != 3 {
		t.Errorf("WebhookRetryMax = %d, want 3", cfg.WebhookRetryMax)
	}
	if cfg.AllowedHomeIP != "" {
		t.Errorf("AllowedHomeIP = %q, want empty", cfg.AllowedHomeIP)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ALLOWED_HOME_IP", "203.0.113.7")
	t.Setenv("WEBHOOK_TIMEOUT", "30s")
	t.Setenv("WEBHOOK_RETRY_MAX", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AllowedHomeIP != "203.0.113.7" {
		t.Errorf("AllowedHomeIP = %q, want 203.0.113.7", cfg.AllowedHomeIP)
	}
	if cfg.WebhookTimeout != 30*time.Second {
		t.Errorf("WebhookTimeout = %v, want 30s", cfg.WebhookTimeout)
	}
	if cfg.WebhookRetryMax != 5 {
		t.Errorf("WebhookRetryMax = %d, want 5", cfg.WebhookRetryMax)
	}
}
