package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultAPIURL is where the service listens by default.
const DefaultAPIURL = "http://localhost:3000"

const envPrefix = "QUOTEBOOK_"

// APIConfig locates the quotebook service.
type APIConfig struct {
	BaseURL string        `koanf:"api_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=0"`
}

// LoadAPIConfig reads QUOTEBOOK_API_URL and QUOTEBOOK_TIMEOUT over the
// defaults and validates the result.
func LoadAPIConfig() (*APIConfig, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(map[string]any{
		"api_url": DefaultAPIURL,
		"timeout": "10s",
	}, "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg APIConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
