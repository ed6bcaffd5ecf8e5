package main

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/api"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/config"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/realtime"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/service"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	logging.Init(envCfg.LogLevel)
	defer logging.Sync()

	if envCfg.SessionSecret == "" {
		logging.Warn("SESSION_SECRET not set; sessions will not survive a restart", nil)
	}

	cfg := loadConfigOrExit(envCfg.ConfigPath)
	repo := createRepositoryOrExit(envCfg.DatabasePath, cfg.PublicRoomsTTL)

	hub := realtime.NewHub(envCfg.AllowedOrigins...)
	svc := service.New(repo, engine.New(cfg.Combat, nil), cfg.Characters, service.Options{
		TurnTimeout:  cfg.TurnTimeout,
		DiceCooldown: cfg.DiceCooldown,
		Notifier:     hub,
	})

	sessions, err := api.NewSessions(envCfg.SessionSecret, envCfg.SecureCookie)
	if err != nil {
		logging.Fatal("Failed to initialize sessions", err, nil)
	}

	// Background scanner: skips turns whose deadline has passed. Four skips
	// in a row end the match without a winner.
	startTimeoutScanner(repo, svc, uuid.NewString())

	router := gin.Default()
	api.NewGameHandler(svc, repo, hub, sessions).RegisterRoutes(router)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, constants.LogFieldVersion: version.String()})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
