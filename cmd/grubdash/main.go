package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/grubdash/internal/config"
	"github.com/deppfellow/grubdash/internal/database"
	"github.com/deppfellow/grubdash/internal/handler"
	"github.com/deppfellow/grubdash/internal/logger"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/router"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Store.Driver == config.StoreDriverPostgres {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	if cfg.Store.Seed || cfg.Store.FakeDishes > 0 {
		opts := repository.SeedOptions{Fixtures: cfg.Store.Seed, FakeDishes: cfg.Store.FakeDishes}
		if err := repository.Seed(ctx, repos, opts, &log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed store")
		}
	}

	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services, repos)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
