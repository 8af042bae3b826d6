// Package config loads the externally supplied configuration: listen address,
// database DSN, and the auth surface (signing secret and token validity).
// Nothing here is ever hard-coded into the binary.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// AuthConfig is the auth surface: one secret key (base64url encoded) and one
// validity duration, plus the token transport knobs.
type AuthConfig struct {
	SigningKey    string        `mapstructure:"signing_key"`
	TokenValidity time.Duration `mapstructure:"token_validity"`
	Issuer        string        `mapstructure:"issuer"`
	Audience      []string      `mapstructure:"audience"`
	ContextKey    string        `mapstructure:"context_key"`
	TokenLookup   string        `mapstructure:"token_lookup"`
	AuthScheme    string        `mapstructure:"auth_scheme"`
}

// GetSigningKey returns the base64url encoded signing secret
func (a AuthConfig) GetSigningKey() string { return a.SigningKey }

// GetTokenValidity returns the configured validity window
func (a AuthConfig) GetTokenValidity() time.Duration { return a.TokenValidity }

func (a AuthConfig) GetContextKey() string  { return a.ContextKey }
func (a AuthConfig) GetTokenLookup() string { return a.TokenLookup }
func (a AuthConfig) GetAuthScheme() string  { return a.AuthScheme }
func (a AuthConfig) GetIssuer() string      { return a.Issuer }
func (a AuthConfig) GetAudience() []string  { return a.Audience }

// Load reads configuration from an optional config file plus TASKMAN_*
// environment variables.
func Load(configPath string) (*Config, error) {
	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("TASKMAN")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No file is fine, env vars still apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.dsn", "file:taskman.db?cache=shared&mode=rwc")

	// Registered with an empty default so the env override is visible to
	// Unmarshal even without a config file.
	viper.SetDefault("auth.signing_key", "")

	// 8,400,000 ms, the reference validity window.
	viper.SetDefault("auth.token_validity", "140m")
	viper.SetDefault("auth.issuer", "task-management")
	viper.SetDefault("auth.context_key", "principal")
	viper.SetDefault("auth.token_lookup", "header:Authorization")
	viper.SetDefault("auth.auth_scheme", "Bearer")
}
