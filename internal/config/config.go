package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Health   HealthConfig
	Log      LogConfig
	Env      string `env:"APP_ENV" envDefault:"development"`
	Debug    bool   `env:"APP_DEBUG" envDefault:"false"`
}

type ServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"PORT" envDefault:"5000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Driver         string `env:"DB_DRIVER" envDefault:"pgx"`
	Host           string `env:"DB_HOST" envDefault:"db"`
	Port           int    `env:"DB_PORT" envDefault:"5432"`
	Name           string `env:"DB_NAME" envDefault:"devdb"`
	User           string `env:"DB_USER" envDefault:"postgres"`
	Password       string `env:"DB_PASSWORD" envDefault:"postgres"`
	SSLMode        string `env:"DB_SSLMODE" envDefault:"disable"`
	ConnectTimeout int    `env:"DB_CONNECT_TIMEOUT" envDefault:"5"`
	URL            string `env:"DB_DSN"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"cache"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type HealthConfig struct {
	// Timeout bounds each dependency check. Zero leaves it to the client defaults.
	Timeout  time.Duration `env:"HEALTH_TIMEOUT" envDefault:"5s"`
	Parallel bool          `env:"HEALTH_PARALLEL" envDefault:"true"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment. A .env file, if any, must already be
// loaded by the caller.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// DSN returns the data source name for the configured driver. DB_DSN wins when set.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	// mode=rw makes a missing file a connect error instead of creating it.
	if d.Driver == "sqlite3" {
		return "file:" + d.Name + "?mode=rw"
	}

	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(d.ConnectTimeout))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}
