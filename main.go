package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/config"
	db "github.com/sidereusnuntius/magazine/internal/db/impl"
	"github.com/sidereusnuntius/magazine/internal/initialization"
	service "github.com/sidereusnuntius/magazine/internal/service/impl"
	"github.com/sidereusnuntius/magazine/internal/sessions"
	"github.com/sidereusnuntius/magazine/internal/state"
	"github.com/sidereusnuntius/magazine/internal/storage/filestore"
	"github.com/sidereusnuntius/magazine/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Warn().Str("level", config.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer d.Close()
	log.Info().Msg("database connection established")

	if config.Setup {
		if err = initialization.SetupDB(d, config.MigrationsFolder, "magazine"); err != nil {
			log.Fatal().Err(err).Msg("failed to set up database")
		}
	}

	storage, err := filestore.New(config.FsRoot)
	if err != nil {
		log.Fatal().Err(err).Str("root", config.FsRoot).Msg("failed to set up file storage")
	}

	state := state.State{
		DB:      db.New(config, d),
		Config:  config,
		Storage: storage,
	}

	service, err := service.New(&state)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := sessions.New(d)
	go store.Cleanup(ctx, config.SessionCleanup)

	manager := scs.NewManager(store)
	manager.Lifetime(config.SessionLifetime)
	manager.HttpOnly(true)
	manager.Secure(config.SecureCookies)
	manager.Persist(true)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	if config.Debug {
		router.Use(web.RequestLogger(log.Logger))
	}
	router.Use(middleware.Recoverer)

	handler := web.New(&config, service, manager)
	handler.Mount(router)

	s := &http.Server{
		Addr:              config.Listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("address", config.Listen).Msg("started server")
	if err = s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
