package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/api"
	"github.com/MohcineSafi/Battle-Arena/internal/catalog"
	"github.com/MohcineSafi/Battle-Arena/internal/config"
	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
	"github.com/MohcineSafi/Battle-Arena/internal/service"
	"github.com/MohcineSafi/Battle-Arena/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	logging.SetLevel(env.LogLevel)

	cfg := loadConfigOrExit(env)
	repo := createRepositoryOrExit(env.DBPath, cfg.Characters)

	svc := service.New(catalog.New(repo), service.Options{
		PrepareDelay:   cfg.Battle.PrepareDelay,
		EnemyTurnDelay: cfg.Battle.EnemyTurnDelay,
		MatchTTL:       cfg.Battle.MatchTTL,
		Seed:           cfg.Battle.Seed,
		EnemyTeam:      cfg.EnemyTeam,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	startPacingScanner(ctx, svc, cfg.Battle.Tick)

	router := gin.Default()
	api.RegisterRoutes(router, api.NewMatchHandler(svc))

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server shutdown failed", err, nil)
		}
	}()

	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: cfg.ServerAddress,
		"version":              version.Version,
		"characters":           len(cfg.Characters),
		"fixed_enemy_team":     len(cfg.EnemyTeam) > 0,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Failed to start server", err, nil)
	}
	logging.Info("Server stopped", logging.Fields{"matches": svc.MatchCount()})
}
