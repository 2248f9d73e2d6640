package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foremanhq/foreman/internal/config"
)

// setRequiredEnv supplies the values that have no defaults so Load can
// finalize in an empty directory.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FOREMAN_DB_NAME", "foreman_test")
	t.Setenv("FOREMAN_DB_USER", "foreman")
	t.Setenv("FOREMAN_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Setenv("FOREMAN_ENV", "")
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want %q", got, "0.0.0.0:8080")
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.SequenceLimit != 4 {
		t.Errorf("SequenceLimit = %d, want 4", cfg.API.SequenceLimit)
	}
	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.API.Pagination.DefaultPageSize != 20 || cfg.API.Pagination.MaxPageSize != 100 {
		t.Errorf("Pagination = %+v", cfg.API.Pagination)
	}
	if cfg.Storage.ContainerName != "foreman" {
		t.Errorf("ContainerName = %q, want foreman", cfg.Storage.ContainerName)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("FOREMAN_SERVER_PORT", "9090")
	t.Setenv("FOREMAN_API_SEQUENCE_LIMIT", "8")
	t.Setenv("FOREMAN_SHUTDOWN_TIMEOUT", "45s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.API.SequenceLimit != 8 {
		t.Errorf("SequenceLimit = %d, want 8", cfg.API.SequenceLimit)
	}
	if cfg.ShutdownTimeout != "45s" {
		t.Errorf("ShutdownTimeout = %q, want 45s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), `
version = "1.0.0"

[server]
port = 8080

[api]
base_path = "/api"
`)
	writeFile(t, filepath.Join(dir, "config.staging.toml"), `
[server]
port = 8443

[api]
sequence_limit = 2
`)

	t.Chdir(dir)
	setRequiredEnv(t)
	t.Setenv("FOREMAN_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8443 {
		t.Errorf("Port = %d, want overlay value 8443", cfg.Server.Port)
	}
	if cfg.API.SequenceLimit != 2 {
		t.Errorf("SequenceLimit = %d, want overlay value 2", cfg.API.SequenceLimit)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("Version = %q, want base value 1.0.0", cfg.Version)
	}
}

func TestLoadRejectsInvalidSequenceLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("FOREMAN_API_SEQUENCE_LIMIT", "-1")

	if _, err := config.Load(); err == nil {
		t.Error("Load succeeded with negative sequence limit, want error")
	}
}

func TestMaxUploadSizeBytes(t *testing.T) {
	cfg := config.APIConfig{MaxUploadSize: "25MB"}
	if got := cfg.MaxUploadSizeBytes(); got != 25*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, 25*1024*1024)
	}

	cfg.MaxUploadSize = "not-a-size"
	if got := cfg.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() fallback = %d, want %d", got, 50*1024*1024)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
