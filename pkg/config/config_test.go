package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "secret_key: sekrit\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SecretKey != "sekrit" {
		t.Errorf("SecretKey = %q", cfg.SecretKey)
	}
	if cfg.ListenHost != DefaultListenHost || cfg.ListenPort != DefaultListenPort {
		t.Errorf("listen defaults not applied: %s:%d", cfg.ListenHost, cfg.ListenPort)
	}
	if cfg.PostsDBPath != DefaultPostsDBPath || cfg.UsersDBPath != DefaultUsersDBPath {
		t.Errorf("db path defaults not applied: %q %q", cfg.PostsDBPath, cfg.UsersDBPath)
	}
	if cfg.MailEnabled() {
		t.Error("mail should be disabled without smtp_host")
	}
}

func TestLoadMissingSecret(t *testing.T) {
	path := writeConfig(t, "listen_port: 9000\n")

	if _, err := Load(path); err == nil {
		t.Error("Load should fail without secret_key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestValidateSMTPAllOrNothing(t *testing.T) {
	cfg := &Config{
		SecretKey: "sekrit",
		SMTPHost:  "smtp.example.com",
	}
	if err := cfg.Validate(); err == nil {
		t.Error("smtp_host without credentials should fail validation")
	}

	cfg.SMTPUsername = "mailer"
	cfg.SMTPPassword = "hunter2"
	if err := cfg.Validate(); err == nil {
		t.Error("smtp settings without addresses should fail validation")
	}

	cfg.MailFrom = "blog@example.com"
	cfg.ContactTo = "owner@example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("complete smtp settings should validate, got %v", err)
	}
	if !cfg.MailEnabled() {
		t.Error("mail should be enabled with smtp_host set")
	}
}
