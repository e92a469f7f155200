package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@host:5432/db", want: "postgresql://u:p@host:5432/db"},
		{in: "postgresql://u:p@host:5432/db", want: "postgresql://u:p@host:5432/db"},
		{in: "", want: ""},
		{in: "host=localhost user=postgres", want: "host=localhost user=postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDatabaseURL(tt.in))
		})
	}
}

func TestApplyPlatformEnv(t *testing.T) {
	vars := map[string]string{
		"DATABASE_URL":         "postgres://u:p@db:5432/league",
		"PORT":                 "10000",
		"FRONTEND_URL":         "https://league.example.com",
		"REDIS_URL":            "redis://cache:6379/0",
		"SECRET_KEY":           "s3cret",
		"GOOGLE_CLIENT_ID":     "client-id",
		"GOOGLE_CLIENT_SECRET": "client-secret",
	}
	cfg := &Config{}

	applyPlatformEnv(cfg, func(k string) string { return vars[k] })

	assert.Equal(t, "postgresql://u:p@db:5432/league", cfg.Database.URL)
	assert.Equal(t, 10000, cfg.HTTP.Port)
	assert.Equal(t, "https://league.example.com", cfg.Frontend.URL)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "redis://cache:6379/0", cfg.Redis.URL)
	assert.Equal(t, "s3cret", cfg.SecretKey.Session)
	require.NotNil(t, cfg.GoogleOAuth)
	assert.Equal(t, "client-id", cfg.GoogleOAuth.ClientID)
	assert.Equal(t, "client-secret", cfg.GoogleOAuth.ClientSecret)
}

func TestApplyPlatformEnv_IgnoresInvalidPort(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8080

	applyPlatformEnv(cfg, func(k string) string {
		if k == "PORT" {
			return "not-a-port"
		}

		return ""
	})

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Nil(t, cfg.Redis)
	assert.Nil(t, cfg.GoogleOAuth)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "http://localhost:3000", cfg.Frontend.URL)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Session.SweepInterval)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, 52.3547, cfg.Geofence.Latitude)
	assert.Equal(t, 4.9543, cfg.Geofence.Longitude)
	assert.Equal(t, 10000.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, "Europe/Amsterdam", cfg.CheckIn.Timezone)
	assert.Equal(t, 30, cfg.Leaderboard.HistoryDays)
	assert.Equal(t, 90, cfg.Leaderboard.MaxHistoryDays)
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.Frontend.URL = "https://league.example.com/"
	cfg.Frontend.AllowedOrigins = []string{"https://preview.example.com", "http://localhost:3000", " "}

	assert.Equal(t, []string{
		"https://league.example.com",
		"https://preview.example.com",
		"http://localhost:3000",
	}, cfg.AllowedOrigins())
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{CheckIn: &CheckInConfig{Timezone: "Europe/Amsterdam"}}
	assert.Equal(t, "Europe/Amsterdam", cfg.Location().String())

	cfg.CheckIn.Timezone = "Nowhere/Invalid"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadWithEnv_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`
http:
  port: 8080
  timeouts:
    readTimeout: 5s
session:
  tokenTtl: 24h
  cookieName: sid
database:
  url: ""
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlContent, 0o600))
	t.Chdir(dir)
	t.Setenv("SESSION_TOKENTTL", "48h")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, 48*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, "sid", cfg.Session.CookieName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
