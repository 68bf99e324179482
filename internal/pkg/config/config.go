package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe default
// - default: Values common across all environments, standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	Snapshot    SnapshotConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Marketplace MarketplaceConfig
	Poll        PollConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5000"`
}

// SnapshotConfig selects where the full state snapshot is persisted.
// "file" writes a single JSON document; "postgres" keeps the same document
// in a single-row table (requires the DB_* settings).
type SnapshotConfig struct {
	Driver string `envconfig:"SNAPSHOT_DRIVER" default:"file"`
	Path   string `envconfig:"SNAPSHOT_PATH" default:"db.json"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"mercado_tracker"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// MarketplaceConfig points at the Mercado Livre public API. SiteID selects
// the national site (MLB = Brazil); Country prefixes state codes in the
// classified-locations directory (BR-SP and so on).
type MarketplaceConfig struct {
	BaseURL string        `envconfig:"MARKETPLACE_BASE_URL" default:"https://api.mercadolibre.com"`
	SiteID  string        `envconfig:"MARKETPLACE_SITE_ID" default:"MLB"`
	Country string        `envconfig:"MARKETPLACE_COUNTRY" default:"BR"`
	Timeout time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"10s"`
}

type PollConfig struct {
	Interval time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "5999", // Test port
		},
		Snapshot: SnapshotConfig{
			Driver: "file",
			Path:   "db_test.json",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Marketplace: MarketplaceConfig{
			BaseURL: "http://localhost:0", // Replaced by the test server URL
			SiteID:  "MLB",
			Country: "BR",
			Timeout: 2 * time.Second,
		},
		Poll: PollConfig{
			Interval: 30 * time.Second,
		},
	}
}
