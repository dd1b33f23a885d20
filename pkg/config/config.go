package config

import (
	"fmt"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Deployment modes.
const (
	// ModeStandalone binds HTTP_HOST:PORT and serves until signalled.
	ModeStandalone = "standalone"
	// ModePlatform leaves listening to the hosting platform, which invokes
	// the exported handler once per request.
	ModePlatform = "platform"
)

const (
	defaultOrigins = "https://propertix-0-1.vercel.app,http://localhost:5173"
	defaultMethods = "GET,POST,OPTIONS"
)

// requiredMethods are always allowed by CORS regardless of configuration.
var requiredMethods = []string{"GET", "POST", "OPTIONS"}

// Config holds application configuration loaded from environment variables or config files.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	HTTPHost        string        `mapstructure:"HTTP_HOST"`
	Port            int           `mapstructure:"PORT" validate:"gte=1,lte=65535"`
	DeployMode      string        `mapstructure:"DEPLOY_MODE" validate:"required,oneof=standalone platform"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	DatabaseURL       string        `mapstructure:"DATABASE_URL" validate:"required,url|uri"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=1,lte=1000"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS" validate:"gte=0,lte=1000"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	CORSAllowedOrigins []string `mapstructure:"-" validate:"min=1,dive,url"`
	CORSAllowedMethods []string `mapstructure:"-" validate:"min=1"`
}

// HTTPAddr is the listen address used in standalone mode.
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.Port))
}

// IsDevelopment reports whether verbose diagnostics are appropriate.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	// Load .env if present (non-fatal)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("DEPLOY_MODE", ModeStandalone)
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultOrigins)
	v.SetDefault("CORS_ALLOWED_METHODS", defaultMethods)

	// Optional config file
	_ = v.ReadInConfig()

	// DATABASE_URL has no default, so it must be bound explicitly for Unmarshal to see it.
	for _, key := range []string{"DATABASE_URL"} {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	for key, dst := range map[string]*time.Duration{
		"SHUTDOWN_TIMEOUT":     &c.ShutdownTimeout,
		"DB_CONN_MAX_LIFETIME": &c.DBConnMaxLifetime,
	} {
		if s := v.GetString(key); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}

	c.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"), func(s string) string {
		return strings.TrimRight(s, "/")
	})
	c.CORSAllowedMethods = splitList(v.GetString("CORS_ALLOWED_METHODS"), strings.ToUpper)
	for _, m := range requiredMethods {
		if !slices.Contains(c.CORSAllowedMethods, m) {
			c.CORSAllowedMethods = append(c.CORSAllowedMethods, m)
		}
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &c, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// splitList splits a comma separated value, trims each item and drops empties.
func splitList(raw string, norm func(string) string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if s := norm(strings.TrimSpace(p)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
