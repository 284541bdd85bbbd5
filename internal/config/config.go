// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
	Auth    AuthConfig    `toml:"auth"`
	Gallery GalleryConfig `toml:"gallery"`

	// Runtime secret (from env, flag, or file).
	JWTSecret string `toml:"-"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StoreConfig holds the entity store configuration. The default DSN is
// ":memory:", so all state is process-local and lost on exit; pointing
// it at a file is the escape hatch for a future persistence layer.
type StoreConfig struct {
	DSN string `toml:"dsn"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level         string `toml:"level"`
	NotifyEnabled bool   `toml:"notify_enabled"`
}

// AuthConfig holds the mock authentication boundary and token settings.
// The admin credential pair is a fixed plaintext demo credential;
// replacing this block is the intended hardening seam.
type AuthConfig struct {
	AdminUsername        string `toml:"admin_username"`
	AdminPassword        string `toml:"admin_password"`
	AccessDurationMin    int    `toml:"access_duration_min"`
	RefreshDurationHours int    `toml:"refresh_duration_hours"`
	ViewerDurationHours  int    `toml:"viewer_duration_hours"`
	Secret               string `toml:"secret"` // Persisted secret
}

// GalleryConfig holds the public gallery settings.
type GalleryConfig struct {
	// AccessCode is the code assigned to the seeded demo client, so the
	// showcase deployment always has a known way in.
	AccessCode string `toml:"access_code"`
	// ExpiresOn is display-only; the gate enforces no expiry.
	ExpiresOn string `toml:"expires_on"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ApplyDefaults fills in every unset field with its demo default.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Store.DSN == "" {
		c.Store.DSN = ":memory:"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Auth.AdminUsername == "" {
		c.Auth.AdminUsername = "admin"
	}
	if c.Auth.AdminPassword == "" {
		c.Auth.AdminPassword = "admin123"
	}
	if c.Auth.AccessDurationMin == 0 {
		c.Auth.AccessDurationMin = 15
	}
	if c.Auth.RefreshDurationHours == 0 {
		c.Auth.RefreshDurationHours = 24
	}
	if c.Auth.ViewerDurationHours == 0 {
		c.Auth.ViewerDurationHours = 24
	}
	if c.Gallery.AccessCode == "" {
		c.Gallery.AccessCode = "DEMO2024"
	}
	if c.Gallery.ExpiresOn == "" {
		c.Gallery.ExpiresOn = "December 31, 2025"
	}
}

// Validate checks the configuration for values the server cannot run
// with. It assumes ApplyDefaults already ran.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Gallery.AccessCode == "" {
		return fmt.Errorf("gallery access code must not be empty")
	}
	return nil
}
