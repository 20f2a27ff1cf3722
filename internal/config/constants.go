package config

import "time"

const (
	envPort              = "PORT"
	envDatabasePath      = "DATABASE_PATH"
	envLogLevel          = "LOG_LEVEL"
	envSessionLifetime   = "SESSION_LIFETIME"
	envRankingTopN       = "RANKING_TOP_N"
	envMetricsEnabled    = "METRICS_ENABLED"
	envYelpAPIKey        = "YELP_API_KEY"
	envYelpBaseURL       = "YELP_BASE_URL"
	envYelpTimeout       = "YELP_TIMEOUT"
	envYelpRateInterval  = "YELP_RATE_INTERVAL"
	envYelpRetryAttempts = "YELP_RETRY_ATTEMPTS"
	envYelpRetryBackoff  = "YELP_RETRY_BACKOFF"
	envGoogleMapsAPIKey  = "GOOGLE_MAPS_API_KEY"
	envGoogleGeocodeURL  = "GOOGLE_GEOCODE_URL"

	defaultPort              = "8080"
	defaultDatabasePath      = "food_bracket.db"
	defaultSessionLifetime   = 24 * time.Hour
	defaultRankingTopN       = 8
	defaultYelpBaseURL       = "https://api.yelp.com"
	defaultYelpTimeout       = 10 * time.Second
	defaultYelpRateInterval  = 200 * time.Millisecond
	defaultYelpRetryAttempts = 3
	defaultYelpRetryBackoff  = 200 * time.Millisecond
	defaultGoogleGeocodeURL  = "https://maps.googleapis.com/maps/api/geocode/json"
)
