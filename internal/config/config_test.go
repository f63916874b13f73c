package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
  csrf_secret: "test-csrf-secret-value"
upstream:
  base_url: "https://api.example.com/api"
  timeout: "20s"
session:
  cookie_name: "portal_session"
  secret: "` + testSecret + `"
  ttl: "12h"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}
	if cfg.Server.CSRFSecret != "test-csrf-secret-value" {
		t.Errorf("Server.CSRFSecret = %q, want %q", cfg.Server.CSRFSecret, "test-csrf-secret-value")
	}

	// Upstream
	if cfg.Upstream.BaseURL != "https://api.example.com/api" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != "20s" {
		t.Errorf("Upstream.Timeout = %q, want %q", cfg.Upstream.Timeout, "20s")
	}

	// Session
	if cfg.Session.CookieName != "portal_session" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != "12h" {
		t.Errorf("Session.TTL = %q, want %q", cfg.Session.TTL, "12h")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__UPSTREAM__BASE_URL", "https://staging.example.com/api")
	t.Setenv("APP__LOG__LEVEL", "error")

	// Single underscores inside a key segment are preserved.
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Upstream.BaseURL != "https://staging.example.com/api" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "error")
	}
	if cfg.Database.Pool.MaxIdleConns != 20 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 20)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
			Mode: "debug",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:4000/api",
		},
		Session: SessionConfig{
			Secret: testSecret,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "data/app.db"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	// Defaults applied.
	if cfg.Session.CookieName != "portal_session" {
		t.Errorf("Session.CookieName = %q, want default", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != "24h" {
		t.Errorf("Session.TTL = %q, want default 24h", cfg.Session.TTL)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "invalid mode",
			mutate:  func(c *Config) { c.Server.Mode = "production" },
			wantSub: "server.mode",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantSub: "server.port",
		},
		{
			name:    "empty host",
			mutate:  func(c *Config) { c.Server.Host = "  " },
			wantSub: "server.host",
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.Upstream.BaseURL = "" },
			wantSub: "upstream.base_url",
		},
		{
			name:    "base url without scheme",
			mutate:  func(c *Config) { c.Upstream.BaseURL = "api.example.com" },
			wantSub: "upstream.base_url",
		},
		{
			name: "plain http upstream in release mode",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
				c.Upstream.BaseURL = "http://api.example.com/api"
			},
			wantSub: "must use https",
		},
		{
			name:    "bad upstream timeout",
			mutate:  func(c *Config) { c.Upstream.Timeout = "fast" },
			wantSub: "upstream.timeout",
		},
		{
			name:    "missing session secret",
			mutate:  func(c *Config) { c.Session.Secret = "" },
			wantSub: "session.secret",
		},
		{
			name:    "session secret not hex",
			mutate:  func(c *Config) { c.Session.Secret = strings.Repeat("zz", 32) },
			wantSub: "session.secret",
		},
		{
			name:    "session secret wrong length",
			mutate:  func(c *Config) { c.Session.Secret = "abcd" },
			wantSub: "32 bytes",
		},
		{
			name:    "negative session ttl",
			mutate:  func(c *Config) { c.Session.TTL = "-1h" },
			wantSub: "session.ttl",
		},
		{
			name: "insecure cookie in release mode",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
				c.Upstream.BaseURL = "https://api.example.com/api"
				insecure := false
				c.Session.CookieSecure = &insecure
			},
			wantSub: "session.cookie_secure",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantSub: "database.driver",
		},
		{
			name: "sqlite without path",
			mutate: func(c *Config) {
				c.Database.Driver = "sqlite"
				c.Database.SQLite.Path = ""
			},
			wantSub: "database.sqlite.path",
		},
		{
			name: "postgres without host",
			mutate: func(c *Config) {
				c.Database.Driver = "postgres"
				c.Database.Postgres = PostgresConfig{Port: 5432, User: "u", DBName: "d", SSLMode: "disable"}
			},
			wantSub: "database.postgres.host",
		},
		{
			name: "postgres sslmode disable in release mode",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
				c.Upstream.BaseURL = "https://api.example.com/api"
				c.Database.Driver = "postgres"
				c.Database.Postgres = PostgresConfig{Host: "h", Port: 5432, User: "u", DBName: "d", SSLMode: "disable"}
			},
			wantSub: "sslmode",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantSub: "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantSub: "log.format",
		},
		{
			name:    "bad pool lifetime",
			mutate:  func(c *Config) { c.Database.Pool.ConnMaxLifetime = "forever" },
			wantSub: "conn_max_lifetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidate_TrimsAndNormalizes(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = "  localhost  "
	cfg.Server.Mode = " debug "
	cfg.Upstream.BaseURL = " http://localhost:4000/api/ "
	cfg.Log.Level = "INFO"
	cfg.Log.Format = "Text"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if cfg.Server.Host != "localhost" {
		t.Errorf("Server.Host = %q, want trimmed", cfg.Server.Host)
	}
	if cfg.Upstream.BaseURL != "http://localhost:4000/api" {
		t.Errorf("Upstream.BaseURL = %q, want trimmed without trailing slash", cfg.Upstream.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want lowercased", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want lowercased", cfg.Log.Format)
	}
}

func TestSessionKey(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	key, err := cfg.SessionKey()
	if err != nil {
		t.Fatalf("SessionKey() error: %v", err)
	}
	if key[0] != 0x01 || key[31] != 0xef {
		t.Errorf("key = %x, want decoded secret bytes", key)
	}
}
