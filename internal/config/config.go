package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/estatesandstands/estates-service/internal/utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppHost          string
	AppPort          string
	AppUrl           string

	StaticRoot   string
	ListingsFile string
	MaxBodyBytes int64

	ShutdownTimeout time.Duration
	MetricsPath     string

	// Booking notification e-mail (all three required to enable it)
	SendgridAPIKey     string
	SendgridFromEmail  string
	BookingNotifyEmail string
}

const (
	OrganizationName = "Estates & Stands"

	DefaultAppName         = "estates-service"
	DefaultHost            = "0.0.0.0"
	DefaultPort            = "8000"
	DefaultStaticRoot      = "web"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultMetricsPath     = "/metrics"
)

// build-time override, set with -ldflags "-X .../internal/config.AppName=..."
var AppName string

// ResolvedAppName is the service name available before LoadConfig runs, for
// logger initialisation.
func ResolvedAppName() string {
	if AppName != "" {
		return AppName
	}
	if v := strings.TrimSpace(os.Getenv("APP_NAME")); v != "" {
		return v
	}
	return DefaultAppName
}

// LoadConfig reads an optional .env file, then the process environment.
// Every setting has a default, so only a malformed value is fatal.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, using process environment only")
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	utils.Logger.Infof("Loaded config for %s (static root %q)", cfg.AppName, cfg.StaticRoot)
	return cfg
}

// FromEnv builds a Config from getenv. Unparseable numbers and durations fall
// back to their defaults with a warning.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	appName := AppName
	if appName == "" {
		appName = env("APP_NAME", DefaultAppName)
	}

	port := env("APP_PORT", DefaultPort)
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return nil, fmt.Errorf("APP_PORT %q is not a valid port", port)
	}

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          appName,
		AppHost:          env("APP_HOST", DefaultHost),
		AppPort:          port,
		AppUrl:           env("APP_URL", ""),

		StaticRoot:   env("STATIC_ROOT", DefaultStaticRoot),
		ListingsFile: env("LISTINGS_FILE", ""),
		MaxBodyBytes: envInt64(getenv, "MAX_BODY_BYTES", utils.DefaultMaxBodyBytes),

		ShutdownTimeout: envDuration(getenv, "SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		MetricsPath:     env("METRICS_PATH", DefaultMetricsPath),

		SendgridAPIKey:     env("SENDGRID_API_KEY", ""),
		SendgridFromEmail:  env("SENDGRID_FROM_EMAIL", ""),
		BookingNotifyEmail: env("BOOKING_NOTIFY_EMAIL", ""),
	}
	if strings.EqualFold(cfg.MetricsPath, "off") {
		cfg.MetricsPath = ""
	}
	if cfg.MetricsPath != "" && !strings.HasPrefix(cfg.MetricsPath, "/") {
		return nil, fmt.Errorf("METRICS_PATH %q must start with '/'", cfg.MetricsPath)
	}
	return cfg, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

// BookingEmailEnabled reports whether booking notifications can be sent.
func (c *Config) BookingEmailEnabled() bool {
	return c.SendgridAPIKey != "" && c.SendgridFromEmail != "" && c.BookingNotifyEmail != ""
}

func (c *Config) Close() {
}

func envInt64(getenv func(string) string, key string, fallback int64) int64 {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %d", key, raw, fallback)
		return fallback
	}
	return n
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %s", key, raw, fallback)
		return fallback
	}
	return d
}
