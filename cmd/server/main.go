package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lamphouse/m/internal/api"
	"lamphouse/m/internal/config"
	"lamphouse/m/internal/database"
	"lamphouse/m/internal/migrations"
	"lamphouse/m/internal/seed"
	"lamphouse/m/internal/session"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	seed.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminPassword)
	seed.LoadDemoBilling(db)

	sessions := session.NewManager(cfg.Secret)
	handler := api.New(db, sessions, logger)

	logger.Info("Lamphouse server starting", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
