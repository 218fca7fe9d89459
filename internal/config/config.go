package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"dance_site_backend/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds the Postgres connection and pool settings.
type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"dbname"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// Config holds every setting the server reads at start-up.
type Config struct {
	Environment       string         `yaml:"environment"`
	Port              string         `yaml:"port"`
	Database          DatabaseConfig `yaml:"database"`
	AllowedOrigins    []string       `yaml:"allowed_origins"`
	LogLevel          string         `yaml:"log_level"`
	LogFormat         string         `yaml:"log_format"`
	MigrationsEnabled bool           `yaml:"migrations_enabled"`
	ShutdownTimeout   time.Duration  `yaml:"shutdown_timeout"`
}

// Default returns the settings used for local development.
func Default() *Config {
	return &Config{
		Environment: "development",
		Port:        "8080",
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            "5432",
			User:            "dance_user",
			Password:        "dance_password",
			Name:            "dance_site_db",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		AllowedOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
		LogLevel:          "info",
		LogFormat:         "console",
		MigrationsEnabled: true,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load builds the configuration from defaults, the YAML file named by CONFIG_FILE,
// a .env file (ENV_FILE, default ".env") and the process environment, later sources winning.
func Load() (*Config, error) {
	dotenv, err := readDotenv(utils.Getenv("ENV_FILE", ".env"))
	if err != nil {
		return nil, err
	}
	src := source{dotenv: dotenv}

	cfg := Default()
	if path := src.get("CONFIG_FILE"); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(src); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return values, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// source resolves a key from the process environment first, then the .env values.
type source struct {
	dotenv map[string]string
}

func (s source) get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return s.dotenv[key]
}

func (c *Config) applyEnv(src source) error {
	setString := func(dst *string, key string) {
		if v := src.get(key); v != "" {
			*dst = v
		}
	}
	setString(&c.Environment, "APP_ENV")
	setString(&c.Port, "PORT")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, "LOG_FORMAT")

	if v := src.get("CORS_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	ints := []struct {
		dst *int
		key string
	}{
		{&c.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS"},
		{&c.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS"},
	}
	for _, f := range ints {
		if v := src.get(f.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", f.key, err)
			}
			*f.dst = n
		}
	}

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{&c.Database.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME"},
		{&c.ShutdownTimeout, "SHUTDOWN_TIMEOUT"},
	}
	for _, f := range durations {
		if v := src.get(f.key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", f.key, err)
			}
			*f.dst = d
		}
	}

	if v := src.get("MIGRATIONS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MIGRATIONS_ENABLED: %w", err)
		}
		c.MigrationsEnabled = b
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DSN returns DATABASE_URL when set, otherwise a key/value connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("port %q must be a number between 1 and 65535", c.Port))
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.Name == "") {
		errs = append(errs, errors.New("database: set DATABASE_URL or DB_HOST and DB_NAME"))
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		errs = append(errs, errors.New("database: pool sizes cannot be negative"))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if f := strings.ToLower(c.LogFormat); f != "console" && f != "json" {
		errs = append(errs, fmt.Errorf("log format %q must be console or json", c.LogFormat))
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("at least one CORS origin is required"))
	}
	for _, origin := range c.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("CORS origin %q must be * or start with http:// or https://", origin))
		}
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
