// Package config holds runtime configuration of the hunsort command:
// defaults, an optional YAML file, environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/xXCoffeeColaXc/hunsort/notify"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'hunsort'
func tracer() tracing.Trace {
	return tracing.Select("hunsort")
}

// Environment variables overriding file settings.
const (
	EnvAPIKey     = "RESEND_API_KEY"
	EnvSendTo     = "SEND_TO"
	EnvSendFrom   = "SEND_FROM"
	EnvNotifyFrom = "NOTIFY_FROM" // fallback for SEND_FROM
	EnvNames      = "HUNSORT_NAMES"
	EnvDatabase   = "HUNSORT_DB"
	EnvAdminToken = "ADMIN_TOKEN"
	EnvOrigin     = "ALLOWED_ORIGIN"
)

var (
	ErrMissingAPIKey    = errors.New("missing " + EnvAPIKey)
	ErrMissingRecipient = errors.New("missing " + EnvSendTo)
)

// Config holds all runtime settings. It is populated by [Default], then by
// [Load] from file and environment.
type Config struct {
	NamesPath string        `yaml:"names"`     // Default: "member_names.csv".
	APIKey    string        `yaml:"api_key"`   // Resend API key; usually from the environment.
	SendTo    string        `yaml:"send_to"`   // Recipient address.
	SendFrom  string        `yaml:"send_from"` // Default: "no-reply@example.com".
	Subject   string        `yaml:"subject"`   // Default: notify.Title.
	Endpoint  string        `yaml:"endpoint"`  // Default: notify.DefaultEndpoint.
	Timeout   time.Duration `yaml:"timeout"`   // Default: 30s.

	// Member register. If Database is set, names are taken from the register
	// instead of the name list.
	Database      string `yaml:"database"`
	AdminToken    string `yaml:"admin_token"`    // Grants CSV export over HTTP.
	AllowedOrigin string `yaml:"allowed_origin"` // Origin of the registration form.
	Listen        string `yaml:"listen"`         // Default: ":8080".
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NamesPath: "member_names.csv",
		SendFrom:  "no-reply@example.com",
		Subject:   notify.Title,
		Endpoint:  notify.DefaultEndpoint,
		Timeout:   30 * time.Second,
		Listen:    ":8080",
	}
}

// Load returns the default configuration, overlaid with the YAML file at path
// (if path is not empty) and then with environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		tracer().Debugf("configuration read from %s", path)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvSendTo); v != "" {
		cfg.SendTo = v
	}
	if v := os.Getenv(EnvSendFrom); v != "" {
		cfg.SendFrom = v
	} else if v := os.Getenv(EnvNotifyFrom); v != "" {
		cfg.SendFrom = v
	}
	if v := os.Getenv(EnvNames); v != "" {
		cfg.NamesPath = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv(EnvAdminToken); v != "" {
		cfg.AdminToken = v
	}
	if v := os.Getenv(EnvOrigin); v != "" {
		cfg.AllowedOrigin = v
	}
}

// Validate checks the configuration. Credentials and recipient are required
// only if a message is to be delivered.
func (cfg *Config) Validate(delivery bool) error {
	if cfg.NamesPath == "" && cfg.Database == "" {
		return errors.New("neither name list nor member register configured")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s", cfg.Timeout)
	}
	if !delivery {
		return nil
	}
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	if cfg.SendTo == "" {
		return ErrMissingRecipient
	}
	return nil
}
