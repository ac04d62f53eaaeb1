package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"recipeshare/internal/authz"
	"recipeshare/internal/config"
	"recipeshare/internal/handlers"
	"recipeshare/internal/middleware"
	"recipeshare/internal/routes"
	"recipeshare/internal/session"
	"recipeshare/internal/store"
	"recipeshare/internal/upload"
	"recipeshare/internal/views"
)

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("loading configuration")
	}

	logger := newLogger(cfg)

	ctx := context.Background()

	if err := store.RunMigrations(ctx, cfg.GetDSN()); err != nil {
		logger.Fatal().Err(err).Msg("running migrations")
	}

	pool, err := store.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to database")
	}
	defer pool.Close()

	users := store.NewPostgresUserRepository(pool)
	recipes := store.NewPostgresRecipeRepository(pool)

	// Session store: redis when configured, in-process memory otherwise.
	var sessionStore session.Store
	if cfg.UseRedisSessions() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("connecting to redis")
		}
		sessionStore = session.NewRedisStore(rdb)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
	} else {
		memStore := session.NewMemoryStore()
		janitorCtx, cancelJanitor := context.WithCancel(ctx)
		defer cancelJanitor()
		go memStore.Janitor(janitorCtx, time.Hour)
		sessionStore = memStore
		logger.Info().Msg("using in-memory session store")
	}

	sessions := session.NewManager(users, sessionStore, cfg.Session.TTL)

	saver, err := upload.NewSaver(cfg.Upload.Dir, upload.NamerFor(cfg.Upload.Naming))
	if err != nil {
		logger.Fatal().Err(err).Msg("preparing upload dir")
	}

	renderer, err := views.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("parsing templates")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, sessions, renderer, cfg.Session.CookieName, logger)
	recipeHandler := handlers.NewRecipeHandler(recipes, saver, renderer, cfg.Upload.MaxMemory, logger)
	healthHandler := handlers.NewHealthHandler(pool)

	policy := authz.FromName(cfg.Session.Policy)
	identity := middleware.WithIdentity(sessions, cfg.Session.CookieName, logger)

	// Setup all routes
	router := mux.NewRouter()
	routes.SetupRoutes(router, policy, identity, authHandler, recipeHandler, healthHandler, cfg.Upload.Dir)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Str("policy", cfg.Session.Policy).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe")
		}
	}()

	// Wait for SIGINT/SIGTERM and shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")
}
