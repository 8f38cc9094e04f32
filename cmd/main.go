package main

import (
	"book_rental_dapp/config"
	"book_rental_dapp/data/db/postgres"
	"book_rental_dapp/data/ethereum"
	redisClient "book_rental_dapp/data/redis"
	"book_rental_dapp/data/session"
	"book_rental_dapp/internal/catalog"
	"book_rental_dapp/internal/metadata"
	"book_rental_dapp/internal/repository"
	"book_rental_dapp/internal/scheduler"
	"book_rental_dapp/internal/service/overdueService"
	"book_rental_dapp/internal/service/rentalService"
	sessionCtx "book_rental_dapp/internal/session"
	"book_rental_dapp/internal/tgbot"
	"book_rental_dapp/internal/transport/telegram"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.String("env", cfg.Env), slog.String("model", cfg.Economics.Model), slog.String("gateway", cfg.Gateway.BaseUrl))

	ethClient := ethereum.MustInitClient(cfg)
	defer ethClient.Close()

	ledger := ethereum.MustInitLedger(cfg, ethClient)

	var history rentalService.History
	if postgres.Enabled(cfg) {
		postgresDb := postgres.NewPostgresClient(cfg)
		defer postgresDb.Close()

		postgres.MustMigrate(cfg, postgresDb)

		history = repository.NewPostgresRepo(postgresDb)
	}

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	network := sessionCtx.NewContext()
	prober := sessionCtx.NewProber(network, ethClient, cfg.Jobs.ChainProbeTimeout)

	resolver := metadata.NewResolver(cfg)

	aggregator := catalog.NewAggregator(cfg, ledger.Reader, resolver)

	rentalService := rentalService.New(cfg, aggregator, redisSession, network, history)

	tgController := telegram.NewController(cfg, rentalService)

	tgBot := tgbot.New(cfg, tgController)

	overdueService := overdueService.New(redisSession, aggregator, network, tgBot)

	sched := scheduler.New()
	sched.NewIntervalJob("probe ledger node", prober.Probe, cfg.Jobs.ChainProbeInterval, true)
	sched.NewIntervalJob("notify overdue rentals", overdueService.NotifyOverdue, cfg.Jobs.OverdueCheckInterval, false)
	sched.Start()
	defer sched.Stop()

	tgBot.Start()
	defer tgBot.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
