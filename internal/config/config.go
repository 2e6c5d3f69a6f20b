package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "NEWS_RANKER_CONFIG"
	serverAddrEnv  = "NEWS_RANKER_ADDR"
	databaseDSNEnv = "DATABASE_DSN"
	redisAddrEnv   = "REDIS_ADDR"
	lexiconPathEnv = "LEXICON_PATH"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Logging  LoggingConfig  `yaml:"logging"`
	Feeds    []FeedConfig   `yaml:"feeds"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig describes Postgres connection details. An empty DSN disables
// the interaction store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// Duration wraps time.Duration so YAML values like "5m" parse directly.
type Duration time.Duration

// UnmarshalYAML parses Go duration strings ("90s", "10m", "2h").
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// RedisConfig describes the homepage cache. An empty Addr disables caching.
// DB is a pointer so a file can explicitly select database 0.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       *int     `yaml:"db"`
	TTL      Duration `yaml:"ttl"`
}

// Database returns the selected Redis database, 0 when unset.
func (r RedisConfig) Database() int {
	if r.DB == nil {
		return 0
	}
	return *r.DB
}

// LexiconConfig points at an optional YAML lexicon override.
type LexiconConfig struct {
	Path string `yaml:"path"`
}

// RefreshConfig defines the background homepage refresh cadence.
type RefreshConfig struct {
	Interval Duration `yaml:"interval"`
}

// LoggingConfig controls console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeedConfig describes a single upstream feed with its fetch strategy.
type FeedConfig struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	URL         string  `yaml:"url"`
	Category    string  `yaml:"category"`
	Credibility float64 `yaml:"credibility"`
	Verified    bool    `yaml:"verified"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Feeds) == 0 {
		cfg.Feeds = defaultConfig().Feeds
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(redisAddrEnv); v != "" {
		c.Redis.Addr = v
	}

	if v := os.Getenv(lexiconPathEnv); v != "" {
		c.Lexicon.Path = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server = override.Server
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Redis.Addr != "" {
		base.Redis.Addr = override.Redis.Addr
	}
	if override.Redis.Password != "" {
		base.Redis.Password = override.Redis.Password
	}
	if override.Redis.DB != nil {
		base.Redis.DB = override.Redis.DB
	}
	if override.Redis.TTL != 0 {
		base.Redis.TTL = override.Redis.TTL
	}

	if override.Lexicon.Path != "" {
		base.Lexicon = override.Lexicon
	}

	if override.Refresh.Interval != 0 {
		base.Refresh = override.Refresh
	}

	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{DSN: ""},
		Redis:    RedisConfig{Addr: "", TTL: Duration(5 * time.Minute)},
		Refresh:  RefreshConfig{Interval: Duration(10 * time.Minute)},
		Logging:  LoggingConfig{Level: "info"},
		Feeds: []FeedConfig{
			{
				Name:        "newsfetch",
				Kind:        "api",
				URL:         "http://localhost:9090/v1/articles",
				Credibility: 0.8,
				Verified:    true,
			},
		},
	}
}
