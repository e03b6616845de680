// Package config loads process-wide configuration: defaults, then an
// optional YAML file, then environment overrides. The credential table
// and signing secret are plain config fields, loaded once at startup and
// injected into the server.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// CredentialConfig is one entry of the static credential table.
// Passwords are plaintext: this is a demo credential set, hashing is out
// of scope.
type CredentialConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Role     string `koanf:"role"`
}

// AuthConfig controls the authenticated variant of the API.
type AuthConfig struct {
	// Enabled switches the bearer-token guard and ownership scoping on.
	// When false the API is open: no login required, no owner on
	// records, every caller sees everything.
	Enabled bool `koanf:"enabled"`
	// SigningSecret is the shared secret for token signing. Tokens have
	// no expiry; they stay valid as long as this secret does.
	SigningSecret string `koanf:"signingsecret"`
	// Algorithm is the token signing algorithm. Only HS256 is supported.
	Algorithm   string             `koanf:"algorithm"`
	Credentials []CredentialConfig `koanf:"credentials"`
}

// StorageConfig selects the ledger backend.
type StorageConfig struct {
	// Backend is "memory" (process-lifetime state) or "sqlite".
	Backend string `koanf:"backend"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `koanf:"sqlitepath"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port           string `koanf:"port"`
	MetricsEnabled bool   `koanf:"metricsenabled"`
}

// Config is the full process configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	Auth    AuthConfig    `koanf:"auth"`
}

const envPrefix = "LEDGER_"

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":           "9446",
		"server.metricsenabled": true,
		"storage.backend":       "memory",
		"storage.sqlitepath":    "ledger.db",
		"auth.enabled":          true,
		"auth.signingsecret":    "secreto_super_seguro",
		"auth.algorithm":        "HS256",
		"auth.credentials": []map[string]interface{}{
			{"username": "admin", "password": "admin123", "role": "admin"},
			{"username": "user", "password": "user123", "role": "user"},
		},
	}
}

// Load builds the configuration. An optional YAML file is read from the
// path in LEDGER_CONFIG; LEDGER_* environment variables override both the
// defaults and the file (LEDGER_SERVER_PORT -> server.port).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Storage.Backend != "memory" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Auth.Enabled {
		if c.Auth.SigningSecret == "" {
			return fmt.Errorf("config: auth enabled without a signing secret")
		}
		if c.Auth.Algorithm != "HS256" {
			return fmt.Errorf("config: unsupported signing algorithm %q", c.Auth.Algorithm)
		}
	}
	return nil
}
