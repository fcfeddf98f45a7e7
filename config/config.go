package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   Server
	Database Database
	Log      Log
}

type Server struct {
	Port            int      `envconfig:"PORT" default:"8080"`
	ReadTimeout     int      `envconfig:"READ_TIMEOUT_SECONDS" default:"180"`
	WriteTimeout    int      `envconfig:"WRITE_TIMEOUT_SECONDS" default:"180"`
	IdleTimeout     int      `envconfig:"IDLE_TIMEOUT_SECONDS" default:"180"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"30"`
	AcceptedOrigins []string `envconfig:"ACCEPTED_ORIGINS" default:"*" description:"Comma separated list of CORS origins."`
}

type Database struct {
	URL      string `envconfig:"DATABASE_URL" description:"Full connection string, takes precedence over the DB_* keys."`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" default:"developers"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	ReplicaURL string `envconfig:"DATABASE_REPLICA_URL" description:"Optional read replica, SELECTs are routed to it."`

	MaxConns        int           `envconfig:"DATABASE_MAX_CONNS" default:"25"`
	IdleConns       int           `envconfig:"DATABASE_IDLE_CONNS" default:"10"`
	MaxConnLifetime time.Duration `envconfig:"DATABASE_MAX_CONN_LIFETIME" default:"1h"`

	SlowQueryThreshold time.Duration `envconfig:"SLOW_QUERY_THRESHOLD" default:"1s"`
	Bootstrap          bool          `envconfig:"BOOTSTRAP_SCHEMA" default:"false" description:"Create the tables and seed the catalog on serve."`
}

type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"console" description:"console or json"`
}

// Load reads an optional .env file, then decodes the environment.
func Load() (Config, error) {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Server.Port)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// DSN returns the primary connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (s Server) ReadTimeoutDuration() time.Duration     { return seconds(s.ReadTimeout) }
func (s Server) WriteTimeoutDuration() time.Duration    { return seconds(s.WriteTimeout) }
func (s Server) IdleTimeoutDuration() time.Duration     { return seconds(s.IdleTimeout) }
func (s Server) ShutdownTimeoutDuration() time.Duration { return seconds(s.ShutdownTimeout) }
