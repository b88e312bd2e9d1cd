package main

import (
	"log"

	"github.com/errorkid/examquizbot.git/internal/bot"
	"github.com/errorkid/examquizbot.git/internal/client"
	"github.com/errorkid/examquizbot.git/internal/config"
	"github.com/errorkid/examquizbot.git/internal/repository"
	"github.com/errorkid/examquizbot.git/internal/server"
	"github.com/errorkid/examquizbot.git/internal/service"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	"github.com/errorkid/examquizbot.git/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	clients := client.InitClients(cfg.BotToken)
	services := service.InitServices(clients.TelegramGateAPI, repos, cfg, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	if cfg.App.HealthAddr != "" {
		go server.NewHealth(cfg.App.HealthAddr, logger).Run()
	}

	handler.Start()
}
