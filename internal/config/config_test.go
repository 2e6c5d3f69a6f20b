package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")

	cfg := Load()

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr: %s", cfg.Server.Addr)
	}
	if cfg.Redis.TTL.Std() != 5*time.Minute {
		t.Fatalf("default cache ttl: %v", cfg.Redis.TTL.Std())
	}
	if cfg.Refresh.Interval.Std() != 10*time.Minute {
		t.Fatalf("default refresh interval: %v", cfg.Refresh.Interval.Std())
	}
	if len(cfg.Feeds) == 0 {
		t.Fatal("defaults must ship at least one feed")
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	file := `
server:
  addr: ":9999"
redis:
  addr: "localhost:6379"
  ttl: "90s"
refresh:
  interval: "2m"
feeds:
  - name: "local-rss"
    kind: "rss"
    url: "http://localhost/rss.xml"
    credibility: 0.6
`
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)

	cfg := Load()

	if cfg.Server.Addr != ":9999" {
		t.Fatalf("file addr not applied: %s", cfg.Server.Addr)
	}
	if cfg.Redis.TTL.Std() != 90*time.Second {
		t.Fatalf("ttl not parsed from string: %v", cfg.Redis.TTL.Std())
	}
	if cfg.Refresh.Interval.Std() != 2*time.Minute {
		t.Fatalf("interval not parsed: %v", cfg.Refresh.Interval.Std())
	}
	if len(cfg.Feeds) != 1 || cfg.Feeds[0].Kind != "rss" {
		t.Fatalf("feeds not replaced: %+v", cfg.Feeds)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("untouched sections must keep defaults, got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9999\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)
	t.Setenv(serverAddrEnv, ":7777")
	t.Setenv(databaseDSNEnv, "postgres://ranker@localhost/news")
	t.Setenv(logLevelEnv, "debug")

	cfg := Load()

	if cfg.Server.Addr != ":7777" {
		t.Fatalf("env addr must win: %s", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "postgres://ranker@localhost/news" {
		t.Fatalf("env dsn not applied: %s", cfg.Database.DSN)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("env log level not applied: %s", cfg.Logging.Level)
	}
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("missing file must keep defaults, got %s", cfg.Server.Addr)
	}
}

func TestMergeRedisDatabaseZeroIsExplicit(t *testing.T) {
	t.Parallel()

	three, zero := 3, 0
	base := defaultConfig()
	base.Redis.DB = &three

	merged := mergeConfig(base, Config{Redis: RedisConfig{DB: &zero}})
	if merged.Redis.Database() != 0 {
		t.Fatalf("explicit db 0 must override, got %d", merged.Redis.Database())
	}

	kept := mergeConfig(base, Config{})
	if kept.Redis.Database() != 3 {
		t.Fatalf("absent db must keep the base, got %d", kept.Redis.Database())
	}

	if defaultConfig().Redis.Database() != 0 {
		t.Fatal("unset db must resolve to 0")
	}
}

func TestDurationRejectsGarbage(t *testing.T) {
	t.Parallel()

	var d Duration
	if err := yaml.Unmarshal([]byte(`"soon"`), &d); err == nil {
		t.Fatal("expected error for a non-duration string")
	}
}
