package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, k := range []string{
		"DATABASE_URL", "PORT", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT", "EXPORT_DIR",
		"EXPORT_BASE_URL", "EXPORT_QUEUE_SIZE", "WEBHOOK_SIGNING_SECRET", "WEBHOOK_TIMEOUT",
		"EMAIL_PROVIDER", "EXPORT_NOTIFY_EMAIL", "SES_INSECURE_SKIP_VERIFY",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultDBUrl, cfg.DBUrl)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "media", cfg.Export.Dir)
	assert.Equal(t, "/media", cfg.Export.BaseURL)
	assert.Equal(t, 16, cfg.Export.QueueSize)
	assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.False(t, cfg.Email.InsecureSkipVerify)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("EXPORT_QUEUE_SIZE", "4")
	t.Setenv("WEBHOOK_SIGNING_SECRET", "s3cret")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.Export.QueueSize)
	assert.Equal(t, "s3cret", cfg.Webhook.SigningSecret)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.True(t, cfg.Email.InsecureSkipVerify)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("EXPORT_QUEUE_SIZE", "0")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT")
	assert.Contains(t, err.Error(), "EXPORT_QUEUE_SIZE")
	assert.Contains(t, err.Error(), "SES_INSECURE_SKIP_VERIFY")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARN").String())
	assert.Equal(t, "INFO", parseLevel("").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}
