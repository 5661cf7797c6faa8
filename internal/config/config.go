package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"gymdesk/pkg/logger"
)

type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`
	Env       string `envconfig:"ENV" default:"development"`
	ClientURL string `envconfig:"CLIENT_URL" default:"http://localhost:5173"`

	Auth     AuthConfig
	Payments PaymentsConfig
	DB       DBConfig
}

type AuthConfig struct {
	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	// Login attempts allowed per IP per second, with LoginBurst headroom.
	LoginRate  float64 `envconfig:"LOGIN_RATE" default:"1"`
	LoginBurst int     `envconfig:"LOGIN_BURST" default:"5"`
}

type PaymentsConfig struct {
	// AllowedMethods, when set, rejects payment methods outside the list.
	// Empty means any method string is stored verbatim.
	AllowedMethods []string `envconfig:"PAYMENT_ALLOWED_METHODS"`
}

type DBConfig struct {
	DSN             string        `envconfig:"DB_DSN"`
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name            string        `envconfig:"DB_NAME" default:"gymdesk"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
}

func Load(log logger.Logger) (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Info("config: loaded .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	return cfg, nil
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
