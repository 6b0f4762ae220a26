// Package config loads service configuration from YAML with environment overrides
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

// Config is the full service configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	PokeAPI  PokeAPIConfig  `yaml:"pokeapi"`
	Wiki     WikiConfig     `yaml:"wiki"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ServerConfig holds listener settings
type ServerConfig struct {
	GRPCPort        int    `yaml:"grpc_port"`
	HTTPPort        int    `yaml:"http_port"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// RedisConfig selects the Redis deployment. More than one address means cluster mode.
type RedisConfig struct {
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	PoolSize int      `yaml:"pool_size"`
	UseTLS   bool     `yaml:"use_tls"`
}

// PokeAPIConfig configures the upstream Pokémon data source
type PokeAPIConfig struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	CacheTTL    string `yaml:"cache_ttl"`
	Concurrency int    `yaml:"concurrency"`
	// Cache is "redis" or "memory"
	Cache string `yaml:"cache"`
}

// WikiConfig configures the supplementary location scraper
type WikiConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// SnapshotConfig points at the SQLite database holding session snapshots
type SnapshotConfig struct {
	DSN string `yaml:"dsn"`
}

// AuthConfig configures sessions and the ID tokens accepted at sign-in
type AuthConfig struct {
	SessionTTL string `yaml:"session_ttl"`
	IssuerURL  string `yaml:"issuer_url"`
	// ClientID is the audience ID tokens must carry
	ClientID string `yaml:"client_id"`
}

// LoggingConfig configures zap
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultsConfig holds request defaults
type DefaultsConfig struct {
	Generation int `yaml:"generation"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:        50051,
			HTTPPort:        8080,
			ShutdownTimeout: "30s",
		},
		Redis: RedisConfig{
			Addrs:    []string{"localhost:6379"},
			PoolSize: 10,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:     "https://pokeapi.co/api/v2",
			Timeout:     "10s",
			CacheTTL:    "24h",
			Concurrency: 4,
			Cache:       "redis",
		},
		Wiki: WikiConfig{
			Enabled: true,
			BaseURL: "https://bulbapedia.bulbagarden.net",
			Timeout: "10s",
		},
		Snapshot: SnapshotConfig{
			DSN: "file:poketeam.db?_busy_timeout=5000",
		},
		Auth: AuthConfig{
			SessionTTL: "720h",
			IssuerURL:  "https://accounts.google.com",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Defaults: DefaultsConfig{
			Generation: int(pokemon.LatestGeneration),
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
// Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if addrs := os.Getenv("POKETEAM_REDIS_ADDRS"); addrs != "" {
		c.Redis.Addrs = strings.Split(addrs, ",")
	}
	if password := os.Getenv("POKETEAM_REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
	if url := os.Getenv("POKETEAM_POKEAPI_URL"); url != "" {
		c.PokeAPI.BaseURL = url
	}
	if url := os.Getenv("POKETEAM_WIKI_URL"); url != "" {
		c.Wiki.BaseURL = url
	}
	if dsn := os.Getenv("POKETEAM_SNAPSHOT_DSN"); dsn != "" {
		c.Snapshot.DSN = dsn
	}
	if clientID := os.Getenv("POKETEAM_AUTH_CLIENT_ID"); clientID != "" {
		c.Auth.ClientID = clientID
	}
	if issuer := os.Getenv("POKETEAM_AUTH_ISSUER_URL"); issuer != "" {
		c.Auth.IssuerURL = issuer
	}
	if level := os.Getenv("POKETEAM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if port, err := strconv.Atoi(os.Getenv("POKETEAM_GRPC_PORT")); err == nil {
		c.Server.GRPCPort = port
	}
	if port, err := strconv.Atoi(os.Getenv("POKETEAM_HTTP_PORT")); err == nil {
		c.Server.HTTPPort = port
	}
}

// Validate checks the fields the server cannot start without
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.http_port", c.Server.HTTPPort, 0, 65535, vb)
	if len(c.Redis.Addrs) == 0 {
		vb.RequiredField("redis.addrs")
	}
	errors.ValidateRequired("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	if c.PokeAPI.Cache != "redis" && c.PokeAPI.Cache != "memory" {
		vb.InvalidField("pokeapi.cache", "must be redis or memory")
	}
	errors.ValidateRequired("snapshot.dsn", c.Snapshot.DSN, vb)
	errors.ValidateRequired("auth.issuer_url", c.Auth.IssuerURL, vb)
	errors.ValidateRequired("auth.client_id", c.Auth.ClientID, vb)
	errors.ValidateRange("defaults.generation", c.Defaults.Generation,
		int(pokemon.MinGeneration), int(pokemon.MaxGeneration), vb)

	for field, value := range map[string]string{
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"pokeapi.timeout":         c.PokeAPI.Timeout,
		"pokeapi.cache_ttl":       c.PokeAPI.CacheTTL,
		"wiki.timeout":            c.Wiki.Timeout,
		"auth.session_ttl":        c.Auth.SessionTTL,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			vb.InvalidField(field, err.Error())
		}
	}

	return vb.Build()
}

// ShutdownTimeout returns the graceful stop deadline
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 30*time.Second)
}

// PokeAPITimeout returns the upstream HTTP timeout
func (c *Config) PokeAPITimeout() time.Duration {
	return parseDuration(c.PokeAPI.Timeout, 10*time.Second)
}

// CacheTTL returns how long fetched PokeAPI resources are cached
func (c *Config) CacheTTL() time.Duration {
	return parseDuration(c.PokeAPI.CacheTTL, 24*time.Hour)
}

// WikiTimeout returns the wiki HTTP timeout
func (c *Config) WikiTimeout() time.Duration {
	return parseDuration(c.Wiki.Timeout, 10*time.Second)
}

// SessionTTL returns how long an auth session lives
func (c *Config) SessionTTL() time.Duration {
	return parseDuration(c.Auth.SessionTTL, 30*24*time.Hour)
}

// DefaultGeneration returns the generation used when a request omits one
func (c *Config) DefaultGeneration() pokemon.Generation {
	return pokemon.Generation(c.Defaults.Generation).OrLatest()
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
