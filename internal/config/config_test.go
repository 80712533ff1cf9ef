package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muurk/contactform/internal/transport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EndpointEnvVar, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	def := Default()
	if *cfg != *def {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, def)
	}
	if cfg.UI.HideDelay != 5*time.Second {
		t.Errorf("HideDelay = %v, want 5s", cfg.UI.HideDelay)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EndpointEnvVar, "")

	path := writeConfig(t, `version: 1
endpoint:
  base_url: https://portfolio.example.com
  timeout: 30s
fields:
  name: nombre
  message: mensaje
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint.BaseURL != "https://portfolio.example.com" {
		t.Errorf("BaseURL = %q", cfg.Endpoint.BaseURL)
	}
	if cfg.Endpoint.Path != transport.DefaultPath {
		t.Errorf("Path = %q, want default", cfg.Endpoint.Path)
	}
	if cfg.Endpoint.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Endpoint.Timeout)
	}
	if cfg.FieldNames() != transport.SpanishFieldNames {
		t.Errorf("FieldNames() = %+v, want %+v", cfg.FieldNames(), transport.SpanishFieldNames)
	}
	if cfg.UI.HideDelay != 5*time.Second {
		t.Errorf("HideDelay = %v, want default", cfg.UI.HideDelay)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"wrong version", "version: 2\n", "unsupported config version"},
		{"bad duration", "version: 1\nui:\n  hide_delay: soon\n", "failed to parse"},
		{"negative delay", "version: 1\nui:\n  hide_delay: -1s\n", "hide_delay"},
		{"empty base url", "version: 1\nendpoint:\n  base_url: \"\"\n", "base_url"},
		{"duplicate field names", "version: 1\nfields:\n  name: email\n", "distinct"},
		{"not yaml", "version: [1\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EndpointEnvVar, "")

			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EndpointEnvVar, "https://override.example.com")

	path := writeConfig(t, "version: 1\nendpoint:\n  base_url: https://file.example.com\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint.BaseURL != "https://override.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.Endpoint.BaseURL)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(EndpointEnvVar, "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Endpoint.BaseURL = "https://portfolio.example.com"
	cfg.Endpoint.Timeout = 15 * time.Second
	cfg.UI.HideDelay = 0
	cfg.UI.SubmitLabel = "Send"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Save()")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(EndpointEnvVar, "")

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if !strings.HasPrefix(path, dir) || filepath.Base(path) != "config.yaml" {
		t.Errorf("GetConfigPath() = %q, want config.yaml under %q", path, dir)
	}

	if err := Default().Save(""); err != nil {
		t.Fatalf("Save(\"\") error = %v", err)
	}
	if _, err := Load(""); err != nil {
		t.Errorf("Load(\"\") error = %v", err)
	}
}
