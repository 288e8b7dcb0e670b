// Package config provides configuration loading and validation for the site.
package config

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the site configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// environment variables and CLI flags.
type Config struct {
	// Serving
	Port int `json:"port,omitempty"` // HTTP port to listen on

	// Storage: exactly one backend is used. DatabaseURL wins when both are set.
	StoragePath string `json:"storage_path,omitempty"` // Path to the JSON snapshot file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Credentials
	APIKey            string `json:"api_key,omitempty"`             // Gemini API key; empty disables polish
	AdminPassword     string `json:"admin_password,omitempty"`      // Plaintext admin secret
	AdminPasswordHash string `json:"admin_password_hash,omitempty"` // bcrypt hash of the admin secret
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty fields from environment variables.
func (c *Config) FromEnv() {
	if c.StoragePath == "" {
		c.StoragePath = os.Getenv("RESUME_STORAGE_PATH")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.AdminPassword == "" {
		c.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if c.AdminPasswordHash == "" {
		c.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("config error: one of 'admin_password' or 'admin_password_hash' is required")
	}
	if c.AdminPassword != "" && c.AdminPasswordHash != "" {
		return fmt.Errorf("config error: 'admin_password' and 'admin_password_hash' are mutually exclusive")
	}
	if c.StoragePath == "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: one of 'storage_path' or 'database_url' is required")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StoragePath == "" {
		result.StoragePath = defaults.StoragePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.AdminPassword == "" {
		result.AdminPassword = defaults.AdminPassword
	}
	if result.AdminPasswordHash == "" {
		result.AdminPasswordHash = defaults.AdminPasswordHash
	}

	return result
}

// VerifyAdminPassword compares the supplied password against the configured
// admin secret. Plaintext secrets are compared in constant time; hashed
// secrets use bcrypt verification.
func (c *Config) VerifyAdminPassword(password string) bool {
	if c.AdminPasswordHash != "" {
		pc := &PasswordConfig{BcryptCost: DefaultBcryptCost}
		return pc.VerifyPassword(password, c.AdminPasswordHash)
	}
	if c.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.AdminPassword)) == 1
}
