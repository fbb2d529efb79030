package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName                 string
	AppEnv                  string
	AppPort                 string
	DatabaseURL             string
	DatabaseMaxOpenConns    int
	DatabaseMaxIdleConns    int
	DatabaseConnMaxLifetime time.Duration
	RedisURL                string
	JWTSecret               string
	AnalyticsCacheTTL       time.Duration
	AnalyticsFetchTimeout   time.Duration
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SKILLBASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "SkillBase API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("analytics.cache_ttl", "5m")
	v.SetDefault("analytics.fetch_timeout", "10s")
	v.SetDefault("analytics.breaker_failures", 5)
	v.SetDefault("analytics.breaker_open_timeout", "30s")

	connLifetime, err := parseDuration(v, "database.conn_max_lifetime", 30*time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid database connection lifetime: %w", err)
	}

	cacheTTL, err := parseDuration(v, "analytics.cache_ttl", 5*time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid analytics cache ttl: %w", err)
	}

	fetchTimeout, err := parseDuration(v, "analytics.fetch_timeout", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid analytics fetch timeout: %w", err)
	}

	openTimeout, err := parseDuration(v, "analytics.breaker_open_timeout", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid breaker open timeout: %w", err)
	}

	failures := v.GetInt("analytics.breaker_failures")
	if failures <= 0 {
		failures = 5
	}

	return Config{
		AppName:                 v.GetString("app.name"),
		AppEnv:                  v.GetString("app.env"),
		AppPort:                 v.GetString("app.port"),
		DatabaseURL:             v.GetString("database.url"),
		DatabaseMaxOpenConns:    v.GetInt("database.max_open_conns"),
		DatabaseMaxIdleConns:    v.GetInt("database.max_idle_conns"),
		DatabaseConnMaxLifetime: connLifetime,
		RedisURL:                v.GetString("redis.url"),
		JWTSecret:               v.GetString("jwt.secret"),
		AnalyticsCacheTTL:       cacheTTL,
		AnalyticsFetchTimeout:   fetchTimeout,
		BreakerFailureThreshold: uint32(failures),
		BreakerOpenTimeout:      openTimeout,
	}, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}

	return time.ParseDuration(raw)
}
