package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/muurk/contactform/internal/contact"
	"github.com/muurk/contactform/internal/transport"
)

const (
	appName    = "contactform"
	configFile = "config.yaml"

	// CurrentVersion is the only supported config file version
	CurrentVersion = 1

	// EndpointEnvVar overrides endpoint.base_url when set
	EndpointEnvVar = "CONTACTFORM_ENDPOINT"
)

// Config is the whole configuration file
type Config struct {
	Version  int      `yaml:"version"`
	Endpoint Endpoint `yaml:"endpoint"`
	Fields   Fields   `yaml:"fields"`
	UI       UI       `yaml:"ui"`
}

// Endpoint says where submissions are posted
type Endpoint struct {
	BaseURL string        `yaml:"base_url"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout,omitempty"` // 0 = wait indefinitely
}

// Fields are the multipart field names the backend expects
type Fields struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Message string `yaml:"message"`
}

// UI holds form behaviour settings
type UI struct {
	HideDelay   time.Duration `yaml:"hide_delay"` // 0 = keep success message visible
	SubmitLabel string        `yaml:"submit_label"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Endpoint: Endpoint{
			BaseURL: transport.DefaultBaseURL,
			Path:    transport.DefaultPath,
		},
		Fields: Fields{
			Name:    transport.DefaultFieldNames.Name,
			Email:   transport.DefaultFieldNames.Email,
			Message: transport.DefaultFieldNames.Message,
		},
		UI: UI{
			HideDelay:   contact.DefaultHideDelay,
			SubmitLabel: contact.DefaultSubmitLabel,
		},
	}
}

// FieldNames converts the configured names for the transport client
func (c *Config) FieldNames() transport.FieldNames {
	return transport.FieldNames{
		Name:    c.Fields.Name,
		Email:   c.Fields.Email,
		Message: c.Fields.Message,
	}
}

// Validate checks the configuration for values the client cannot use
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Endpoint.BaseURL == "" {
		return errors.New("endpoint.base_url cannot be empty")
	}
	if c.Endpoint.Timeout < 0 {
		return fmt.Errorf("endpoint.timeout cannot be negative: %s", c.Endpoint.Timeout)
	}
	if c.UI.HideDelay < 0 {
		return fmt.Errorf("ui.hide_delay cannot be negative: %s", c.UI.HideDelay)
	}
	if err := c.FieldNames().Validate(); err != nil {
		return fmt.Errorf("fields: %w", err)
	}
	return nil
}

// GetConfigDir returns the OS-appropriate configuration directory
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the default configuration file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration at path ("" means the default location).
// A missing file yields the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if endpoint := os.Getenv(EndpointEnvVar); endpoint != "" {
		cfg.Endpoint.BaseURL = endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path ("" means the default location).
// The file is written to a temporary name first and renamed into place.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	header := []byte("# contactform configuration\n# Location: " + path + "\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
