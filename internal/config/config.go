package config

import (
	"log/slog"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	DatabasePath    string
	LogLevel        slog.Level
	SessionLifetime time.Duration
	RankingTopN     int
	MetricsEnabled  bool
	Yelp            YelpConfig
	Google          GoogleConfig
	OAuth           OAuthConfig
}

type YelpConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RateInterval  time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
}

type GoogleConfig struct {
	MapsAPIKey string
	GeocodeURL string
}

type OAuthConfig struct {
	DiscordKey         string
	DiscordSecret      string
	DiscordCallbackURL string
	GoogleKey          string
	GoogleSecret       string
	GoogleCallbackURL  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		DatabasePath:    envOrDefault(envDatabasePath, defaultDatabasePath),
		LogLevel:        levelEnvOrDefault(envLogLevel, slog.LevelInfo),
		SessionLifetime: durationEnvOrDefault(envSessionLifetime, defaultSessionLifetime),
		RankingTopN:     nonNegativeIntEnvOrDefault(envRankingTopN, defaultRankingTopN),
		MetricsEnabled:  boolEnvOrDefault(envMetricsEnabled, true),
		Yelp: YelpConfig{
			APIKey:        envOrDefault(envYelpAPIKey, ""),
			BaseURL:       envOrDefault(envYelpBaseURL, defaultYelpBaseURL),
			Timeout:       durationEnvOrDefault(envYelpTimeout, defaultYelpTimeout),
			RateInterval:  durationEnvOrDefault(envYelpRateInterval, defaultYelpRateInterval),
			RetryAttempts: intEnvOrDefault(envYelpRetryAttempts, defaultYelpRetryAttempts),
			RetryBackoff:  durationEnvOrDefault(envYelpRetryBackoff, defaultYelpRetryBackoff),
		},
		Google: GoogleConfig{
			MapsAPIKey: envOrDefault(envGoogleMapsAPIKey, ""),
			GeocodeURL: envOrDefault(envGoogleGeocodeURL, defaultGoogleGeocodeURL),
		},
		OAuth: OAuthConfig{
			DiscordKey:         envOrDefault("DISCORD_KEY", ""),
			DiscordSecret:      envOrDefault("DISCORD_SECRET", ""),
			DiscordCallbackURL: envOrDefault("DISCORD_CALLBACK_URL", ""),
			GoogleKey:          envOrDefault("GOOGLE_KEY", ""),
			GoogleSecret:       envOrDefault("GOOGLE_SECRET", ""),
			GoogleCallbackURL:  envOrDefault("GOOGLE_CALLBACK_URL", ""),
		},
	}
}
