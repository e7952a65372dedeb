package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"ChartScout/internal/analyzer"
	"ChartScout/internal/collector"
	"ChartScout/internal/config"
	"ChartScout/internal/recorder"
	"ChartScout/internal/scanner"
	"ChartScout/internal/scheduler"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	log.Info().Msg("ChartScout starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy, log)
	log.Info().Str("source", fetcher.Name()).Int("universe", len(cfg.Scan.Symbols)).
		Str("timeframe", string(cfg.Timeframe())).Msg("data source ready")

	an := analyzer.New(fetcher, log)
	sc := scanner.New(an, scanner.Config{
		Symbols:       cfg.Scan.Symbols,
		Timeframe:     cfg.Timeframe(),
		BuyThreshold:  cfg.Scan.BuyThreshold,
		SellThreshold: cfg.Scan.SellThreshold,
	}, log)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, sc, rec, log)
	if err := sched.Register(cfg.Scan.Cron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, scanning now")
		go sched.RunNow()
	}

	log.Info().Str("cron", cfg.Scan.Cron).Msg("ChartScout is running, Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("ChartScout stopped")
}
