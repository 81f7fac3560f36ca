// Package config loads the service configuration from an optional env file
// and the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAllowedOrigins are the CORS origin patterns used when
// CORS_ALLOWED_ORIGINS is not set.
var DefaultAllowedOrigins = []string{
	"https://*.github.io",
	"https://*.herokuapp.com",
	"http://localhost:3000",
}

// Config is the complete service configuration.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	MongoURL            string
	MongoConnectTimeout time.Duration

	JWTSecretKey string
	JWTAlgorithm string
	JWTExp       time.Duration

	USDAAPIKey  string
	USDABaseURL string
	USDATimeout time.Duration

	RedisAddr     string // empty disables the food search cache
	RedisPassword string
	RedisDB       int
	FoodCacheExp  time.Duration

	AllowedOrigins []string
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Load reads path with godotenv (a missing file is not an error) and builds a
// Config from the environment. Variables already set in the environment win
// over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:        getEnv("APP_HOST", "0.0.0.0"),
		AppPort:        getEnv("PORT", "8001"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017/fittracker"),
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", "your-super-secret-jwt-key-here"),
		JWTAlgorithm:   getEnv("ALGORITHM", "HS256"),
		USDAAPIKey:     getEnv("USDA_API_KEY", ""),
		USDABaseURL:    getEnv("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}

	var err error
	if cfg.ReadTimeout, err = getSeconds("HTTP_READ_TIMEOUT_SECOND", 15); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getSeconds("HTTP_WRITE_TIMEOUT_SECOND", 30); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getSeconds("HTTP_IDLE_TIMEOUT_SECOND", 60); err != nil {
		return nil, err
	}
	if cfg.MongoConnectTimeout, err = getSeconds("MONGO_CONNECT_TIMEOUT_SECOND", 10); err != nil {
		return nil, err
	}
	if cfg.USDATimeout, err = getSeconds("USDA_TIMEOUT_SECOND", 10); err != nil {
		return nil, err
	}
	if cfg.FoodCacheExp, err = getSeconds("FOOD_CACHE_EXP_SECOND", 3600); err != nil {
		return nil, err
	}

	minutes, err := getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(minutes) * time.Minute

	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getSeconds(key string, defaultValue int) (time.Duration, error) {
	v, err := getInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
