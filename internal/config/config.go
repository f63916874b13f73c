package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Session  SessionConfig  `koanf:"session"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host       string     `koanf:"host"`
	Port       int        `koanf:"port"`
	Mode       string     `koanf:"mode"`
	CSRFSecret string     `koanf:"csrf_secret"`
	Timeout    string     `koanf:"timeout"`
	CORS       CORSConfig `koanf:"cors"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowOrigins     []string `koanf:"allow_origins"`
	AllowMethods     []string `koanf:"allow_methods"`
	AllowHeaders     []string `koanf:"allow_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           string   `koanf:"max_age"`
}

// UpstreamConfig holds the loan-platform backend connection settings.
type UpstreamConfig struct {
	// BaseURL includes the API path prefix, e.g. "https://api.example.com/api".
	BaseURL string `koanf:"base_url"`
	Timeout string `koanf:"timeout"`
}

// SessionConfig holds portal session settings. Sessions live in the portal
// database; the cookie carries only an opaque session ID.
type SessionConfig struct {
	CookieName string `koanf:"cookie_name"`
	// Secret is 64 hex characters (32 bytes). It encrypts the upstream
	// bearer tokens at rest.
	Secret       string `koanf:"secret"`
	TTL          string `koanf:"ttl"`
	CookieSecure *bool  `koanf:"cookie_secure"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver   string         `koanf:"driver"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	Pool     PoolConfig     `koanf:"pool"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// PostgresConfig holds PostgreSQL-specific settings.
type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"dbname"`
	SSLMode  string `koanf:"sslmode"`
}

// PoolConfig holds database connection pool settings.
type PoolConfig struct {
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	ConnMaxLifetime string `koanf:"conn_max_lifetime"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level           string `koanf:"level"`
	Format          string `koanf:"format"`
	Color           *bool  `koanf:"color"`
	FilePath        string `koanf:"file_path"`
	MaxSizeMB       int    `koanf:"max_size_mb"`
	RetentionDays   int    `koanf:"retention_days"`
	MaxBackups      int    `koanf:"max_backups"`
	CompressRotated *bool  `koanf:"compress_rotated"`
}

// Load reads configuration from a YAML file and overlays environment variables.
// Environment variables use the prefix "APP__" and double-underscore as the
// hierarchy separator. Single underscores are preserved as part of the key name.
// For example, APP__SERVER__PORT=9090 overrides server.port and
// APP__UPSTREAM__BASE_URL overrides upstream.base_url.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Load YAML config file.
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Overlay environment variables with prefix APP__.
	// APP__SERVER__PORT -> server.port
	// APP__SESSION__COOKIE_NAME -> session.cookie_name
	if err := k.Load(env.Provider("APP__", ".", func(s string) string {
		key := strings.TrimPrefix(s, "APP__")
		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "__", ".")
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints and supported values.
func (c *Config) Validate() error {
	// Validate server.mode.
	mode := strings.TrimSpace(c.Server.Mode)
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		c.Server.Mode = mode
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	// Validate server.port range.
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	// Validate server.host.
	host := strings.TrimSpace(c.Server.Host)
	if host == "" {
		return fmt.Errorf("server.host is required")
	}
	c.Server.Host = host

	// Validate upstream.base_url.
	baseURL := strings.TrimSpace(c.Upstream.BaseURL)
	if baseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return fmt.Errorf("invalid upstream.base_url %q: must start with http:// or https://", c.Upstream.BaseURL)
	}
	if c.Server.Mode == gin.ReleaseMode && strings.HasPrefix(baseURL, "http://") {
		return fmt.Errorf("invalid upstream.base_url %q for server.mode %q: must use https", c.Upstream.BaseURL, gin.ReleaseMode)
	}
	c.Upstream.BaseURL = strings.TrimRight(baseURL, "/")

	// Validate upstream.timeout (optional; must be a positive duration if set).
	c.Upstream.Timeout = strings.TrimSpace(c.Upstream.Timeout)
	if t := c.Upstream.Timeout; t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("invalid upstream.timeout %q: %w", c.Upstream.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid upstream.timeout %q: must be greater than 0", c.Upstream.Timeout)
		}
	}

	// Validate session settings.
	cookieName := strings.TrimSpace(c.Session.CookieName)
	if cookieName == "" {
		cookieName = "portal_session"
	}
	c.Session.CookieName = cookieName

	secret := strings.TrimSpace(c.Session.Secret)
	if secret == "" {
		return fmt.Errorf("session.secret is required")
	}
	key, err := hex.DecodeString(secret)
	if err != nil {
		return fmt.Errorf("invalid session.secret: must be hex-encoded: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("invalid session.secret: must decode to 32 bytes, got %d", len(key))
	}
	c.Session.Secret = secret

	c.Session.TTL = strings.TrimSpace(c.Session.TTL)
	if c.Session.TTL == "" {
		c.Session.TTL = "24h"
	}
	if d, err := time.ParseDuration(c.Session.TTL); err != nil {
		return fmt.Errorf("invalid session.ttl %q: %w", c.Session.TTL, err)
	} else if d <= 0 {
		return fmt.Errorf("invalid session.ttl %q: must be greater than 0", c.Session.TTL)
	}

	if c.Server.Mode == gin.ReleaseMode && c.Session.CookieSecure != nil && !*c.Session.CookieSecure {
		return fmt.Errorf("session.cookie_secure cannot be disabled in release mode")
	}

	// Validate database.driver.
	switch c.Database.Driver {
	case "sqlite", "postgres":
		// ok
	default:
		return fmt.Errorf("invalid database.driver %q: must be one of %q, %q", c.Database.Driver, "sqlite", "postgres")
	}

	if c.Database.Driver == "sqlite" {
		sqlitePath := strings.TrimSpace(c.Database.SQLite.Path)
		if sqlitePath == "" {
			return fmt.Errorf("database.sqlite.path is required when driver is sqlite")
		}
		c.Database.SQLite.Path = sqlitePath
	}

	// When driver is postgres, required connection fields must be valid.
	if c.Database.Driver == "postgres" {
		host := strings.TrimSpace(c.Database.Postgres.Host)
		if host == "" {
			return fmt.Errorf("database.postgres.host is required when driver is postgres")
		}
		if c.Database.Postgres.Port < 1 || c.Database.Postgres.Port > 65535 {
			return fmt.Errorf("invalid database.postgres.port %d: must be between 1 and 65535", c.Database.Postgres.Port)
		}
		user := strings.TrimSpace(c.Database.Postgres.User)
		if user == "" {
			return fmt.Errorf("database.postgres.user is required when driver is postgres")
		}
		dbName := strings.TrimSpace(c.Database.Postgres.DBName)
		if dbName == "" {
			return fmt.Errorf("database.postgres.dbname is required when driver is postgres")
		}
		sslMode := strings.TrimSpace(c.Database.Postgres.SSLMode)

		switch sslMode {
		case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
			// ok
		default:
			return fmt.Errorf("invalid database.postgres.sslmode %q: must be one of %q, %q, %q, %q, %q, %q", c.Database.Postgres.SSLMode, "disable", "allow", "prefer", "require", "verify-ca", "verify-full")
		}
		if c.Server.Mode == gin.ReleaseMode {
			switch sslMode {
			case "require", "verify-ca", "verify-full":
				// ok
			default:
				return fmt.Errorf("invalid database.postgres.sslmode %q for server.mode %q: must be one of %q, %q, %q", c.Database.Postgres.SSLMode, gin.ReleaseMode, "require", "verify-ca", "verify-full")
			}
		}

		c.Database.Postgres.Host = host
		c.Database.Postgres.User = user
		c.Database.Postgres.DBName = dbName
		c.Database.Postgres.SSLMode = sslMode
	}

	// Normalize optional duration fields: whitespace-only means unset.
	c.Server.Timeout = strings.TrimSpace(c.Server.Timeout)
	c.Server.CORS.MaxAge = strings.TrimSpace(c.Server.CORS.MaxAge)
	c.Database.Pool.ConnMaxLifetime = strings.TrimSpace(c.Database.Pool.ConnMaxLifetime)

	// Validate server.timeout (optional; must be a valid Go duration if set).
	if t := c.Server.Timeout; t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("invalid server.timeout %q: %w", c.Server.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid server.timeout %q: must be greater than 0", c.Server.Timeout)
		}
	}

	// Validate server.cors.max_age (optional; must be a valid Go duration if set).
	if ma := c.Server.CORS.MaxAge; ma != "" {
		d, err := time.ParseDuration(ma)
		if err != nil {
			return fmt.Errorf("invalid server.cors.max_age %q: must be a valid duration (e.g. \"24h\", \"3600s\"): %w", c.Server.CORS.MaxAge, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid server.cors.max_age %q: must be greater than 0", c.Server.CORS.MaxAge)
		}
	}

	// Validate database.pool.conn_max_lifetime (optional; must be positive if set).
	if lm := c.Database.Pool.ConnMaxLifetime; lm != "" {
		d, err := time.ParseDuration(lm)
		if err != nil {
			return fmt.Errorf("invalid database.pool.conn_max_lifetime %q: %w", c.Database.Pool.ConnMaxLifetime, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid database.pool.conn_max_lifetime %q: must be greater than 0", c.Database.Pool.ConnMaxLifetime)
		}
	}

	// Validate log.level.
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch level {
	case "debug", "info", "warn", "error":
		c.Log.Level = level
	default:
		return fmt.Errorf("invalid log.level %q: must be one of %q, %q, %q, %q", c.Log.Level, "debug", "info", "warn", "error")
	}

	// Validate log.format.
	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch format {
	case "text", "json":
		c.Log.Format = format
	default:
		return fmt.Errorf("invalid log.format %q: must be one of %q, %q", c.Log.Format, "text", "json")
	}

	return nil
}

// SessionKey decodes the validated session secret into the 32-byte
// encryption key. It must be called after Validate.
func (c *Config) SessionKey() ([32]byte, error) {
	var key [32]byte
	raw, err := hex.DecodeString(c.Session.Secret)
	if err != nil {
		return key, fmt.Errorf("invalid session.secret: %w", err)
	}
	if len(raw) != 32 {
		return key, fmt.Errorf("invalid session.secret: must decode to 32 bytes, got %d", len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

// CookieSecure reports whether the session cookie should carry the Secure
// attribute. It defaults to true unless explicitly disabled, which is only
// permitted outside release mode.
func (c *Config) CookieSecure() bool {
	if c.Session.CookieSecure == nil {
		return true
	}
	return *c.Session.CookieSecure
}
