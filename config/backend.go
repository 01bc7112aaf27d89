package config

import (
	"strings"
	"time"
)

// BackendConfig points this front-end at the remote club management API.
// Every endpoint derives from these two values.
type BackendConfig struct {
	// BaseURL is the base URL of the club backend (login, registration).
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// SuperadminBaseURL is the base URL of the super-admin service.
	// Empty means "same as BaseURL".
	SuperadminBaseURL string `env:"SUPERADMIN_BASE_URL" envDefault:""`

	// Timeout bounds every outbound request to the backend.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	b.SuperadminBaseURL = strings.TrimRight(strings.TrimSpace(b.SuperadminBaseURL), "/")
	if b.SuperadminBaseURL == "" {
		b.SuperadminBaseURL = b.BaseURL
	}
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
