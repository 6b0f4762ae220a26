package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/config"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeFile(content string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultsWhenFileMissing() {
	s.T().Setenv("POKETEAM_AUTH_CLIENT_ID", "poketeam-web")

	cfg, err := config.Load(filepath.Join(s.dir, "missing.yaml"))
	s.Require().NoError(err)

	s.Equal(50051, cfg.Server.GRPCPort)
	s.Equal("https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
	s.Equal(pokemon.LatestGeneration, cfg.DefaultGeneration())
	s.Equal(24*time.Hour, cfg.CacheTTL())
	s.Equal("https://accounts.google.com", cfg.Auth.IssuerURL)
	s.Equal("poketeam-web", cfg.Auth.ClientID)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.writeFile(`
server:
  grpc_port: 9000
redis:
  addrs: ["redis-a:6379", "redis-b:6379"]
pokeapi:
  cache: memory
  cache_ttl: 1h
defaults:
  generation: 4
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(9000, cfg.Server.GRPCPort)
	s.Equal(8080, cfg.Server.HTTPPort, "unset fields keep their defaults")
	s.Equal([]string{"redis-a:6379", "redis-b:6379"}, cfg.Redis.Addrs)
	s.Equal("memory", cfg.PokeAPI.Cache)
	s.Equal(time.Hour, cfg.CacheTTL())
	s.Equal(pokemon.Generation(4), cfg.DefaultGeneration())
}

func (s *ConfigTestSuite) TestEnvOverrides() {
	s.T().Setenv("POKETEAM_REDIS_ADDRS", "cache:6379")
	s.T().Setenv("POKETEAM_GRPC_PORT", "6000")
	s.T().Setenv("POKETEAM_LOG_LEVEL", "debug")
	s.T().Setenv("POKETEAM_AUTH_ISSUER_URL", "https://issuer.example.com")

	cfg, err := config.Load(s.writeFile("server:\n  grpc_port: 9000\n"))
	s.Require().NoError(err)

	s.Equal([]string{"cache:6379"}, cfg.Redis.Addrs)
	s.Equal(6000, cfg.Server.GRPCPort)
	s.Equal("debug", cfg.Logging.Level)
	s.Equal("https://issuer.example.com", cfg.Auth.IssuerURL)
}

func (s *ConfigTestSuite) TestInvalidYAML() {
	_, err := config.Load(s.writeFile("server: [not, a, map"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := config.DefaultConfig()
	cfg.Defaults.Generation = 12
	cfg.PokeAPI.Cache = "disk"
	cfg.Auth.SessionTTL = "forever"
	cfg.Redis.Addrs = nil

	err := cfg.Validate()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "defaults.generation")
	s.Contains(err.Error(), "pokeapi.cache")
	s.Contains(err.Error(), "auth.session_ttl")
	s.Contains(err.Error(), "redis.addrs")
	s.Contains(err.Error(), "auth.client_id")
}

func (s *ConfigTestSuite) TestDurationFallbacks() {
	cfg := config.DefaultConfig()
	cfg.PokeAPI.Timeout = "garbage"
	s.Equal(10*time.Second, cfg.PokeAPITimeout())
}
