package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	CSRF    CSRFConfig
	Cleanup CleanupConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`

	// Retries for serialization failures, deadlocks and lock timeouts on record deletes.
	TxMaxRetries int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxBackoff    time.Duration `envconfig:"DB_TX_BACKOFF" default:"100ms"`
	// A delete waiting on a row lock longer than this fails instead of eating the batch deadline.
	LockTimeout time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-CSRF-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-CSRF-Token"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60

	// Empty File keeps logging on stdout only.
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	// Empty Issuer skips the iss check for tokens from the host platform.
	Issuer string        `envconfig:"JWT_ISSUER"`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type CSRFConfig struct {
	AuthKey        string   `envconfig:"CSRF_AUTH_KEY" required:"true"` // 32 bytes
	Secure         bool     `envconfig:"CSRF_SECURE" default:"true"`
	SameSite       string   `envconfig:"CSRF_SAME_SITE" default:"Strict"`
	TrustedOrigins []string `envconfig:"CSRF_TRUSTED_ORIGINS" default:"localhost:3000,localhost:8080"`
}

type CleanupConfig struct {
	// Empty StateDir keeps scan state in memory only.
	StateDir      string        `envconfig:"CLEANUP_STATE_DIR"`
	StateTTL      time.Duration `envconfig:"CLEANUP_STATE_TTL" default:"1h"`
	ScanPageSize  int           `envconfig:"CLEANUP_SCAN_PAGE_SIZE" default:"1000"`
	StartTimeout  time.Duration `envconfig:"CLEANUP_START_TIMEOUT" default:"300s"`
	ScanTimeout   time.Duration `envconfig:"CLEANUP_SCAN_TIMEOUT" default:"60s"`
	DeleteTimeout time.Duration `envconfig:"CLEANUP_DELETE_TIMEOUT" default:"120s"`
	// Records per second; 0 disables throttling.
	DeleteRate   float64 `envconfig:"CLEANUP_DELETE_RATE" default:"0"`
	SettingsFile string  `envconfig:"CLEANUP_SETTINGS_FILE"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if len(cfg.CSRF.AuthKey) != 32 {
		return Config{}, fmt.Errorf("CSRF_AUTH_KEY must be exactly 32 bytes, got %d", len(cfg.CSRF.AuthKey))
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 4,

			TxMaxRetries: 3,
			TxBackoff:    10 * time.Millisecond,
			LockTimeout:  time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "bulk-cleanup-test",
		},
		CSRF: CSRFConfig{
			AuthKey:  "0123456789abcdef0123456789abcdef",
			Secure:   false,
			SameSite: "Lax",
		},
		Cleanup: CleanupConfig{
			StateTTL:      time.Hour,
			ScanPageSize:  1000,
			StartTimeout:  300 * time.Second,
			ScanTimeout:   60 * time.Second,
			DeleteTimeout: 120 * time.Second,
		},
	}
}
