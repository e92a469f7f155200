package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultFrontendURL        = "http://localhost:3000"
	defaultTokenTTL           = 30 * 24 * time.Hour
	defaultSweepInterval      = time.Hour
	defaultStateTTL           = 10 * time.Minute
	defaultCookieName         = "checkin_session"
	defaultTimezone           = "Europe/Amsterdam"
	defaultHistoryDays        = 30
	defaultMaxHistoryDays     = 90
	defaultLeaderboardTTL     = 5 * time.Minute
	defaultGeofenceLatitude   = 52.3547
	defaultGeofenceLongitude  = 4.9543
	defaultGeofenceRadius     = 10000.0
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds a single-URL connection string; it takes precedence over Postgres.
	Database DatabaseConfig `json:"database" yaml:"database"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Frontend FrontendConfig `json:"frontend" yaml:"frontend"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	CheckIn *CheckInConfig `json:"checkIn" yaml:"checkIn"`

	Leaderboard *LeaderboardConfig `json:"leaderboard" yaml:"leaderboard"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotating log file next to stdout when set.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
}

// RateLimitConfig limits requests per client IP on the API group. Zero disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

type DatabaseConfig struct {
	URL string `json:"url" yaml:"url"`
}

// RedisConfig configures the Redis client. URL wins over Addr when both are set.
type RedisConfig struct {
	URL      string `json:"url" yaml:"url"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	PoolSize int    `json:"poolSize" yaml:"poolSize"`
}

type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string   `json:"redirectUrl" yaml:"redirectUrl"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

type FrontendConfig struct {
	URL            string   `json:"url" yaml:"url"`
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// SessionConfig covers bearer tokens, the session cookie and OAuth state.
type SessionConfig struct {
	TokenTTL       time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	SweepInterval  time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	StateTTL       time.Duration `json:"stateTtl" yaml:"stateTtl"`
	CookieName     string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure   bool          `json:"cookieSecure" yaml:"cookieSecure"`
	CookieSameSite string        `json:"cookieSameSite" yaml:"cookieSameSite"`
}

// GeofenceConfig locates the check-in site.
type GeofenceConfig struct {
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	RadiusMeters float64 `json:"radiusMeters" yaml:"radiusMeters"`
}

type CheckInConfig struct {
	// Timezone decides which calendar day a check-in belongs to.
	Timezone string `json:"timezone" yaml:"timezone"`
}

type LeaderboardConfig struct {
	HistoryDays    int           `json:"historyDays" yaml:"historyDays"`
	MaxHistoryDays int           `json:"maxHistoryDays" yaml:"maxHistoryDays"`
	CacheTTL       time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`

	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides. Segments are aligned with existing YAML keys,
	// e.g. SESSION_TOKENTTL -> session.tokenTtl.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyPlatformEnv(cfg, os.Getenv)
	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if cfg.Postgres == nil && cfg.Database.URL == "" {
		return nil, errors.New("either postgres or database.url must be configured")
	}

	return cfg, nil
}

// applyPlatformEnv honours the unprefixed variables hosting platforms inject.
func applyPlatformEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	cfg.Database.URL = NormalizeDatabaseURL(cfg.Database.URL)

	if v := getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}

	if v := getenv("FRONTEND_URL"); v != "" {
		cfg.Frontend.URL = v
	}

	if v := getenv("REDIS_URL"); v != "" {
		if cfg.Redis == nil {
			cfg.Redis = &RedisConfig{}
		}
		cfg.Redis.URL = v
	}

	if v := getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey.Session = v
	}

	clientID, clientSecret := getenv("GOOGLE_CLIENT_ID"), getenv("GOOGLE_CLIENT_SECRET")
	if clientID != "" || clientSecret != "" {
		if cfg.GoogleOAuth == nil {
			cfg.GoogleOAuth = &GoogleOAuthConfig{}
		}
		if clientID != "" {
			cfg.GoogleOAuth.ClientID = clientID
		}
		if clientSecret != "" {
			cfg.GoogleOAuth.ClientSecret = clientSecret
		}
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Frontend.URL == "" {
		cfg.Frontend.URL = defaultFrontendURL
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{CookieSecure: true}
	}
	if cfg.Session.TokenTTL <= 0 {
		cfg.Session.TokenTTL = defaultTokenTTL
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = defaultSweepInterval
	}
	if cfg.Session.StateTTL <= 0 {
		cfg.Session.StateTTL = defaultStateTTL
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{
			Latitude:  defaultGeofenceLatitude,
			Longitude: defaultGeofenceLongitude,
		}
	}
	if cfg.Geofence.RadiusMeters <= 0 {
		cfg.Geofence.RadiusMeters = defaultGeofenceRadius
	}

	if cfg.CheckIn == nil {
		cfg.CheckIn = &CheckInConfig{}
	}
	if cfg.CheckIn.Timezone == "" {
		cfg.CheckIn.Timezone = defaultTimezone
	}

	if cfg.Leaderboard == nil {
		cfg.Leaderboard = &LeaderboardConfig{}
	}
	if cfg.Leaderboard.HistoryDays <= 0 {
		cfg.Leaderboard.HistoryDays = defaultHistoryDays
	}
	if cfg.Leaderboard.MaxHistoryDays < cfg.Leaderboard.HistoryDays {
		cfg.Leaderboard.MaxHistoryDays = max(defaultMaxHistoryDays, cfg.Leaderboard.HistoryDays)
	}
	if cfg.Leaderboard.CacheTTL <= 0 {
		cfg.Leaderboard.CacheTTL = defaultLeaderboardTTL
	}
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme to postgresql://.
func NormalizeDatabaseURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "postgres://"); ok {
		return "postgresql://" + rest
	}

	return raw
}

// Location resolves the configured check-in timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.CheckIn == nil || c.CheckIn.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.CheckIn.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// AllowedOrigins is the CORS allow-list: the frontend URL, the configured
// extras and the local development server.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.Frontend.AllowedOrigins)+2)
	seen := make(map[string]struct{})
	for _, origin := range append(append([]string{c.Frontend.URL}, c.Frontend.AllowedOrigins...), defaultFrontendURL) {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" {
			continue
		}
		if _, ok := seen[origin]; ok {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}

	return origins
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
