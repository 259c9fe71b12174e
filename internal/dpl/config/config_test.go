package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", oldHome)
	os.Unsetenv(EnvAuthKey)
	os.Unsetenv(EnvServerURL)

	cfg := &Config{
		AuthKey:   "abc123:fx",
		ServerURL: "https://api-free.deepl.com/v2",
		Formality: "prefer_more",
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, ".config", "dpl", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.AuthKey != cfg.AuthKey {
		t.Errorf("AuthKey = %s, want %s", loaded.AuthKey, cfg.AuthKey)
	}
	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("ServerURL = %s, want %s", loaded.ServerURL, cfg.ServerURL)
	}
	if loaded.Formality != cfg.Formality {
		t.Errorf("Formality = %s, want %s", loaded.Formality, cfg.Formality)
	}
}

func TestEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", oldHome)

	cfg := &Config{AuthKey: "from-file"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	os.Setenv(EnvAuthKey, "from-env")
	defer os.Unsetenv(EnvAuthKey)

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.AuthKey != "from-env" {
		t.Errorf("AuthKey = %s, want from-env", loaded.AuthKey)
	}
}

func TestEnvOverride_NoHomeDir(t *testing.T) {
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", "")
	defer os.Setenv("HOME", oldHome)

	os.Setenv(EnvAuthKey, "from-env")
	defer os.Unsetenv(EnvAuthKey)

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.AuthKey != "from-env" {
		t.Errorf("AuthKey = %s, want from-env", loaded.AuthKey)
	}
}

func TestIsAuthenticated(t *testing.T) {
	cfg := &Config{}
	if cfg.IsAuthenticated() {
		t.Error("Empty config should not be authenticated")
	}

	cfg.AuthKey = "abc123"
	if !cfg.IsAuthenticated() {
		t.Error("Config with AuthKey should be authenticated")
	}
}

func TestGetPollInterval(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetPollInterval(); got != DefaultPollInterval {
		t.Errorf("GetPollInterval() = %v, want %v", got, DefaultPollInterval)
	}

	cfg.PollInterval = "10s"
	if got := cfg.GetPollInterval(); got != 10*time.Second {
		t.Errorf("GetPollInterval() = %v, want 10s", got)
	}

	cfg.PollInterval = "garbage"
	if got := cfg.GetPollInterval(); got != DefaultPollInterval {
		t.Errorf("GetPollInterval() with bad value = %v, want %v", got, DefaultPollInterval)
	}
}

func TestGetTimeout(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetTimeout("http"); got != DefaultHTTPTimeout {
		t.Errorf("GetTimeout(http) = %v, want %v", got, DefaultHTTPTimeout)
	}
	if got := cfg.GetTimeout("document_wait"); got != DefaultDocumentWaitTimeout {
		t.Errorf("GetTimeout(document_wait) = %v, want %v", got, DefaultDocumentWaitTimeout)
	}

	cfg.Timeouts.HTTP = "90s"
	if got := cfg.GetTimeout("http"); got != 90*time.Second {
		t.Errorf("GetTimeout(http) = %v, want 90s", got)
	}

	cfg.Timeouts.DocumentWait = "not-a-duration"
	if got := cfg.GetTimeout("document_wait"); got != DefaultDocumentWaitTimeout {
		t.Errorf("GetTimeout with bad value = %v, want default", got)
	}

	if got := cfg.GetTimeout("unknown"); got != DefaultHTTPTimeout {
		t.Errorf("GetTimeout(unknown) = %v, want fallback %v", got, DefaultHTTPTimeout)
	}
}
