package main

import (
	"log/slog"

	"github.com/AdamBeresnev/food-bracket/internal/config"
	"github.com/AdamBeresnev/food-bracket/internal/metrics"
	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/AdamBeresnev/food-bracket/internal/search"
	"github.com/AdamBeresnev/food-bracket/internal/search/google"
	"github.com/AdamBeresnev/food-bracket/internal/search/yelp"
	"github.com/AdamBeresnev/food-bracket/internal/service"
	"github.com/AdamBeresnev/food-bracket/internal/store"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

type application struct {
	cfg            config.Config
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	userStore      *store.UserStore
	users          *service.UserService
	tournaments    *service.TournamentService
	matches        *service.MatchService
	provider       search.Provider
	geocoder       search.Geocoder
	metrics        *metrics.Recorder
	oauthProviders []string
}

func newApplication(cfg config.Config, database *sqlx.DB, logger *slog.Logger) *application {
	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Store = sqlite3store.New(database.DB)

	provider := newProvider(cfg.Yelp, logger, recorder)
	geocoder := search.NewInstrumentedGeocoder(google.NewGeocoder(google.Config{
		GeocodeURL: cfg.Google.GeocodeURL,
		APIKey:     cfg.Google.MapsAPIKey,
	}), "google_geocode", recorderOrNil(recorder))

	return newApplicationWith(cfg, database, logger, sessionManager, provider, geocoder, recorder)
}

// newApplicationWith wires the services around an already built provider
// and geocoder.
func newApplicationWith(cfg config.Config, database *sqlx.DB, logger *slog.Logger, sessionManager *scs.SessionManager, provider search.Provider, geocoder search.Geocoder, recorder *metrics.Recorder) *application {
	tournamentStore := store.NewTournamentStore(database)
	userStore := store.NewUserStore(database)

	var svcRecorder service.Recorder
	if recorder != nil {
		svcRecorder = recorder
	}

	return &application{
		cfg:            cfg,
		logger:         logger,
		sessionManager: sessionManager,
		userStore:      userStore,
		users:          service.NewUserService(database, userStore),
		tournaments:    service.NewTournamentService(database, tournamentStore, search.NewPoolBuilder(provider), svcRecorder, cfg.RankingTopN),
		matches:        service.NewMatchService(database, tournamentStore, svcRecorder),
		provider:       provider,
		geocoder:       geocoder,
		metrics:        recorder,
		oauthProviders: middleware.InitAuth(cfg.OAuth),
	}
}

// newProvider stacks the Yelp client: every upstream attempt is measured,
// attempts are spaced by the rate limiter and failed calls are retried.
func newProvider(cfg config.YelpConfig, logger *slog.Logger, recorder *metrics.Recorder) search.Provider {
	var p search.Provider = yelp.NewClient(yelp.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	p = search.NewInstrumentedProvider(p, "yelp", recorderOrNil(recorder))
	p = search.NewRateLimitedProvider(p, cfg.RateInterval, logger)
	return search.NewRetryingProvider(p, logger, cfg.RetryAttempts, cfg.RetryBackoff)
}

func recorderOrNil(recorder *metrics.Recorder) search.CallRecorder {
	if recorder == nil {
		return nil
	}
	return recorder
}
