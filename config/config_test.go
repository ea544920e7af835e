package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvSendTo, EnvSendFrom, EnvNotifyFrom, EnvNames, EnvDatabase, EnvAdminToken, EnvOrigin} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.NamesPath != "member_names.csv" || cfg.SendFrom != "no-reply@example.com" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("default timeout should be 30s, is %s", cfg.Timeout)
	}
	if err := cfg.Validate(false); err != nil {
		t.Fatalf("defaults should be valid for a dry run: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join("testdata", "hunsort.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NamesPath != "testdata/tagok.csv" || cfg.SendTo != "titkar@example.com" {
		t.Errorf("file settings not applied: %+v", cfg)
	}
	if cfg.SendFrom != "tagnyilvantartas@example.com" || cfg.Timeout != 10*time.Second {
		t.Errorf("file settings not applied: %+v", cfg)
	}
	if cfg.Subject != Default().Subject {
		t.Errorf("subject default lost: %q", cfg.Subject)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "re_123")
	t.Setenv(EnvSendTo, "elnok@example.com")
	t.Setenv(EnvNotifyFrom, "notify@example.com")
	cfg, err := Load(filepath.Join("testdata", "hunsort.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "re_123" || cfg.SendTo != "elnok@example.com" {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if cfg.SendFrom != "notify@example.com" {
		t.Errorf("NOTIFY_FROM should apply when SEND_FROM is unset, got %q", cfg.SendFrom)
	}
	t.Setenv(EnvSendFrom, "send@example.com")
	if cfg, _ = Load(""); cfg.SendFrom != "send@example.com" {
		t.Errorf("SEND_FROM should win over NOTIFY_FROM, got %q", cfg.SendFrom)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidateDelivery(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(true); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	cfg.APIKey = "re_123"
	if err := cfg.Validate(true); !errors.Is(err, ErrMissingRecipient) {
		t.Fatalf("expected ErrMissingRecipient, got %v", err)
	}
	cfg.SendTo = "to@example.com"
	if err := cfg.Validate(true); err != nil {
		t.Fatalf("complete config should be valid: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSendTo, "preset@example.com")
	path := filepath.Join(t.TempDir(), ".env")
	content := "# credentials\nexport RESEND_API_KEY=\"re_abc\"\nSEND_TO=other@example.com\nSEND_FROM='Egyesület <tagok@example.com>' # sender\n\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if v := os.Getenv(EnvAPIKey); v != "re_abc" {
		t.Errorf("RESEND_API_KEY = %q, want re_abc", v)
	}
	if v := os.Getenv(EnvSendTo); v != "preset@example.com" {
		t.Errorf("existing SEND_TO must not be overridden, got %q", v)
	}
	if v := os.Getenv(EnvSendFrom); v != "Egyesület <tagok@example.com>" {
		t.Errorf("SEND_FROM = %q, want quoted value without comment", v)
	}
}

func TestLoadDotEnvMissing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadDotEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("this line is broken!\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(path); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestRegisterSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDatabase, "tagok.db")
	t.Setenv(EnvAdminToken, "s3cret")
	t.Setenv(EnvOrigin, "https://tagok.example.com")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Database != "tagok.db" || cfg.AdminToken != "s3cret" || cfg.AllowedOrigin != "https://tagok.example.com" {
		t.Errorf("register settings not applied: %+v", cfg)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("default listen address lost: %q", cfg.Listen)
	}
	cfg.NamesPath = ""
	if err := cfg.Validate(false); err != nil {
		t.Errorf("a register alone is a valid names source: %v", err)
	}
	cfg.Database = ""
	if err := cfg.Validate(false); err == nil {
		t.Errorf("expected error without any names source")
	}
}
