package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Dismissed-store backends.
const (
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Remote    RemoteConfig
	Context   ContextConfig
	Banner    BannerConfig
	Dismissed DismissedConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
}

// RemoteConfig points at the announcement backend this module consumes.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ContextConfig carries the embedding context supplied by the host shell.
type ContextConfig struct {
	WorkspaceName string
	ProductName   string
}

// BannerConfig tunes the banner widget.
type BannerConfig struct {
	WelcomeProductName string
}

// DismissedConfig selects where dismissed banner ids are persisted.
type DismissedConfig struct {
	Backend string
	Dir     string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Remote = RemoteConfig{
		BaseURL: v.GetString("ANNOUNCEMENT_API_BASE_URL"),
		Timeout: parseDuration(v.GetString("ANNOUNCEMENT_API_TIMEOUT"), 10*time.Second),
	}

	cfg.Context = ContextConfig{
		WorkspaceName: v.GetString("WORKSPACE_NAME"),
		ProductName:   v.GetString("PRODUCT_NAME"),
	}

	cfg.Banner = BannerConfig{
		WelcomeProductName: v.GetString("WELCOME_PRODUCT_NAME"),
	}

	cfg.Dismissed = DismissedConfig{
		Backend: strings.ToLower(v.GetString("DISMISSED_STORE_BACKEND")),
		Dir:     v.GetString("DISMISSED_STORE_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/announcement-console")

	v.SetDefault("ANNOUNCEMENT_API_BASE_URL", "http://localhost:8081")
	v.SetDefault("ANNOUNCEMENT_API_TIMEOUT", "10s")

	v.SetDefault("WORKSPACE_NAME", "")
	v.SetDefault("PRODUCT_NAME", "")
	v.SetDefault("WELCOME_PRODUCT_NAME", "onecx-welcome")

	v.SetDefault("DISMISSED_STORE_BACKEND", StoreBackendFile)
	v.SetDefault("DISMISSED_STORE_DIR", "./data")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
