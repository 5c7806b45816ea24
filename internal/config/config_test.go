package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatesandstands/estates-service/internal/utils"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultAppName, cfg.AppName)
	assert.Equal(t, "0.0.0.0", cfg.AppHost)
	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, "web", cfg.StaticRoot)
	assert.Empty(t, cfg.ListingsFile)
	assert.Equal(t, utils.DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	assert.False(t, cfg.BookingEmailEnabled())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"APP_NAME":             "estates-dev",
		"APP_HOST":             "127.0.0.1",
		"APP_PORT":             " 9090 ",
		"APP_URL":              "https://estates.example",
		"STATIC_ROOT":          "/srv/site",
		"LISTINGS_FILE":        "/etc/listings.json",
		"MAX_BODY_BYTES":       "2048",
		"SHUTDOWN_TIMEOUT":     "250ms",
		"METRICS_PATH":         "off",
		"SENDGRID_API_KEY":     "SG.key",
		"SENDGRID_FROM_EMAIL":  "bookings@estates.example",
		"BOOKING_NOTIFY_EMAIL": "sales@estates.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, "estates-dev", cfg.AppName)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "https://estates.example", cfg.AppUrl)
	assert.Equal(t, "/srv/site", cfg.StaticRoot)
	assert.Equal(t, "/etc/listings.json", cfg.ListingsFile)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.MetricsPath)
	assert.True(t, cfg.BookingEmailEnabled())
}

func TestFromEnvMalformedNumbersFallBack(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"MAX_BODY_BYTES":   "lots",
		"SHUTDOWN_TIMEOUT": "soon",
	}))
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestFromEnvRejects(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bad port":          {"APP_PORT": "http"},
		"port out of range": {"APP_PORT": "70000"},
		"relative metrics":  {"METRICS_PATH": "metrics"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envMap(env))
			require.Error(t, err)
		})
	}
}

func TestResolvedAppName(t *testing.T) {
	t.Setenv("APP_NAME", "from-env")
	assert.Equal(t, "from-env", ResolvedAppName())

	AppName = "from-ldflags"
	t.Cleanup(func() { AppName = "" })
	assert.Equal(t, "from-ldflags", ResolvedAppName())
}
