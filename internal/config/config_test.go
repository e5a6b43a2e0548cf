package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-bot-admin/internal/config"
	"github.com/stretchr/testify/require"
)

func TestBotAPI_GetBotAPIURL(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		t.Setenv("BOT_API_URL", "")
		require.Equal(t, "http://localhost:4000", config.New().GetBotAPIURL())
	})

	t.Run("trailing slashes stripped", func(t *testing.T) {
		t.Setenv("BOT_API_URL", "https://bot.example.com/api//")
		require.Equal(t, "https://bot.example.com/api", config.New().GetBotAPIURL())
	})
}

func TestBotAPI_GetBotAPITimeout(t *testing.T) {
	t.Setenv("BOT_API_TIMEOUT", "5s")
	require.Equal(t, 5*time.Second, config.New().GetBotAPITimeout())

	t.Setenv("BOT_API_TIMEOUT", "soon")
	require.Equal(t, 30*time.Second, config.New().GetBotAPITimeout())
}

func TestEnvVars(t *testing.T) {
	t.Run("port gets a colon", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		require.Equal(t, ":9090", config.New().GetPort())
	})

	t.Run("production detection", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		require.True(t, config.New().IsProduction())

		t.Setenv("ENV", "")
		require.False(t, config.New().IsProduction())
		require.Equal(t, "DEV", config.New().GetEnv())
	})

	t.Run("max body bytes", func(t *testing.T) {
		t.Setenv("MAX_BODY_BYTES", "1024")
		require.EqualValues(t, 1024, config.New().GetMaxBodyBytes())

		t.Setenv("MAX_BODY_BYTES", "-1")
		require.EqualValues(t, 12<<20, config.New().GetMaxBodyBytes())
	})
}

func TestSession_MaxAges(t *testing.T) {
	c := config.New()
	require.Equal(t, 15*time.Minute, c.GetAccessTokenMaxAge())
	require.Equal(t, 7*24*time.Hour, c.GetRefreshTokenMaxAge())
	require.Equal(t, "admin_access_token", c.GetAccessCookieName())
	require.Equal(t, "admin_refresh_token", c.GetRefreshCookieName())
}
