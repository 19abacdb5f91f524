package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hslcabal/team-roster-service/internal/config"
	"github.com/hslcabal/team-roster-service/internal/handler"
	"github.com/hslcabal/team-roster-service/internal/logger"
	"github.com/hslcabal/team-roster-service/internal/repository"
	"github.com/hslcabal/team-roster-service/internal/repository/postgres"
	"github.com/hslcabal/team-roster-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Optional .env file for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	repo, err := repository.New(context.Background(), cfg, &appLogger)
	if err != nil {
		// Keep serving: every API request reports the connection failure
		// instead of the process dying silently behind a load balancer.
		appLogger.Error().Err(err).Msg("postgres connection failed, serving degraded")
		handler.RegisterDegraded(engine)
		run(engine, cfg, appLogger)
		return
	}
	defer repo.Close()

	pool := repo.Pool()
	teamRepo := postgres.NewTeamRepository(pool)
	playerRepo := postgres.NewPlayerRepository(pool)

	teamSvc := service.NewTeamService(teamRepo, appLogger)
	playerSvc := service.NewPlayerService(playerRepo, teamRepo, appLogger)

	handler.Register(engine, postgres.NewPinger(pool), teamSvc, playerSvc, cfg.Server.BasePath)

	appLogger.Info().Str("base_path", cfg.Server.BasePath).Msg("service started")
	run(engine, cfg, appLogger)
}

// run serves the engine until SIGINT/SIGTERM, then drains in-flight requests.
func run(engine *gin.Engine, cfg *config.Config, appLogger zerolog.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		appLogger.Fatal().Err(err).Msg("http server failed")
	case sig := <-quit:
		appLogger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("shutdown did not complete cleanly")
	}
}
