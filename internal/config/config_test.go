package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{envPort, envDatabasePath, envLogLevel, envRankingTopN, envMetricsEnabled, envYelpTimeout, envYelpBaseURL} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "food_bracket.db", cfg.DatabasePath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 8, cfg.RankingTopN)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "https://api.yelp.com", cfg.Yelp.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Yelp.Timeout)
	assert.Equal(t, 3, cfg.Yelp.RetryAttempts)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(envPort, "9090")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envRankingTopN, "16")
	t.Setenv(envMetricsEnabled, "no")
	t.Setenv(envYelpAPIKey, "secret")
	t.Setenv(envYelpRateInterval, "1s")
	t.Setenv("DISCORD_KEY", "discord-key")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 16, cfg.RankingTopN)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "secret", cfg.Yelp.APIKey)
	assert.Equal(t, time.Second, cfg.Yelp.RateInterval)
	assert.Equal(t, "discord-key", cfg.OAuth.DiscordKey)
}

func TestEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_DURATION", "soon")
	t.Setenv("TEST_INT", "-3")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_LEVEL", "loud")

	assert.Equal(t, time.Minute, durationEnvOrDefault("TEST_DURATION", time.Minute))
	assert.Equal(t, 5, intEnvOrDefault("TEST_INT", 5))
	assert.True(t, boolEnvOrDefault("TEST_BOOL", true))
	assert.Equal(t, slog.LevelWarn, levelEnvOrDefault("TEST_LEVEL", slog.LevelWarn))
}

func TestLoad_RankingTopN(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 8},
		{raw: "0", want: 0},
		{raw: " 4 ", want: 4},
		{raw: "-1", want: 8},
		{raw: "all", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(envRankingTopN, tt.raw)
			assert.Equal(t, tt.want, Load().RankingTopN)
		})
	}
}
