package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Cache backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// PopularTeams are preloaded when PRELOAD_TEAMS is not set
var PopularTeams = []string{
	"Manchester United", "Real Madrid", "Barcelona", "Liverpool",
	"Bayern Munich", "Paris Saint-Germain", "Juventus", "Chelsea",
	"Arsenal", "Manchester City", "AC Milan", "Inter Milan",
}

// Config - service configuration read from the environment
type Config struct {
	Addr string `env:"ADDR" envDefault:":3000"`

	SportsDBURL     string        `env:"SPORTSDB_URL" envDefault:"https://www.thesportsdb.com/api/v1/json/3"`
	SportsDBTimeout time.Duration `env:"SPORTSDB_TIMEOUT" envDefault:"0s"`

	CacheBackend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTimeout time.Duration `env:"REDIS_TIMEOUT" envDefault:"1s"`
	RedisPrefix  string        `env:"REDIS_PREFIX" envDefault:"team-logo:"`

	Preload      bool     `env:"PRELOAD" envDefault:"true"`
	PreloadTeams []string `env:"PRELOAD_TEAMS" envSeparator:","`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogConsole bool   `env:"LOG_CONSOLE" envDefault:"false"`
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if len(cfg.PreloadTeams) == 0 {
		cfg.PreloadTeams = PopularTeams
	}

	switch cfg.CacheBackend {
	case BackendMemory, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level returns the parsed zerolog level
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}
