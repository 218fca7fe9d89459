package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV_FILE", "CONFIG_FILE", "APP_ENV", "PORT", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER",
	"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "SHUTDOWN_TIMEOUT", "MIGRATIONS_ENABLED",
}

// isolateEnv blanks every key Load reads and points ENV_FILE at a missing file.
func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "host=localhost port=5432 user=dance_user password=dance_password dbname=dance_site_db sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.MigrationsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolateEnv(t)
	yamlPath := writeFile(t, dir, "config.yaml", `
port: "9000"
log_level: debug
shutdown_timeout: 20s
database:
  host: yaml-host
  max_open_conns: 25
allowed_origins:
  - https://yaml.example
`)
	envPath := writeFile(t, dir, "test.env", "PORT=9100\nDB_HOST=dotenv-host\nCONFIG_FILE="+yamlPath+"\n")
	t.Setenv("ENV_FILE", envPath)
	t.Setenv("PORT", "9200")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9200", cfg.Port)
	assert.Equal(t, "dotenv-host", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/dance?sslmode=disable")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/dance?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "eighty"},
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
		{"DB_MAX_OPEN_CONNS", "many"},
		{"SHUTDOWN_TIMEOUT", "soon"},
		{"MIGRATIONS_ENABLED", "perhaps"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "nope.yaml"))

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate_CORSOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		wantErr bool
	}{
		{name: "http and https", origins: []string{"http://localhost:3000", "https://dance.example"}},
		{name: "wildcard", origins: []string{"*"}},
		{name: "missing scheme", origins: []string{"https://dance.example", "example.com"}, wantErr: true},
		{name: "empty list", origins: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.AllowedOrigins = tt.origins

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_SchemelessOriginRejected(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "example.com")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"example.com"`)
}
