package polydub

import (
	"os"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv("POLYDUB_API_KEY", "env-key")
	t.Setenv("POLYDUB_BASE_URL", "https://staging.polydub.ai/v1/")
	t.Setenv("POLYDUB_TIMEOUT_MS", "5000")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	if client.BaseURL() != "https://staging.polydub.ai/v1" {
		t.Errorf("base URL = %q, want trailing slash stripped", client.BaseURL())
	}
	if client.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.Timeout())
	}
}

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("POLYDUB_API_KEY", "env-key")
	// t.Setenv registers the restore; unset so the defaults apply.
	t.Setenv("POLYDUB_BASE_URL", "")
	os.Unsetenv("POLYDUB_BASE_URL")
	t.Setenv("POLYDUB_TIMEOUT_MS", "")
	os.Unsetenv("POLYDUB_TIMEOUT_MS")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("base URL = %q, want default", client.BaseURL())
	}
	if client.Timeout() != DefaultTimeout {
		t.Errorf("timeout = %v, want default", client.Timeout())
	}
}

func TestNewFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv("POLYDUB_API_KEY", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error when POLYDUB_API_KEY is missing")
	}
}

func TestNewFromEnvOptionsWin(t *testing.T) {
	t.Setenv("POLYDUB_API_KEY", "env-key")
	t.Setenv("POLYDUB_TIMEOUT_MS", "5000")

	client, err := NewFromEnv(WithTimeout(time.Minute))
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	if client.Timeout() != time.Minute {
		t.Errorf("timeout = %v, want explicit option to win", client.Timeout())
	}
}
