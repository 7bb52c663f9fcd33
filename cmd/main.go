package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Go-Recipe-Share/cmd/config"
	migration "Go-Recipe-Share/cmd/database/migrate"
	"Go-Recipe-Share/cmd/database/seed"
	"Go-Recipe-Share/internal/utils"
	"Go-Recipe-Share/internal/utils/logger"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := utils.LoadConfig()

	log, closeLog, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: "json"})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "migrate":
		if err := migration.Migrate(db); err != nil {
			return err
		}
		log.Info("database migration complete")
		return nil
	case "seed":
		if err := migration.Migrate(db); err != nil {
			return err
		}
		if err := seed.Seed(db, cfg.AdminPassword); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("database seeded")
		return nil
	case "", "serve":
	default:
		return fmt.Errorf("unknown command %q (want serve, migrate or seed)", command)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionStorage, err := config.ConnectSessionStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	if sessionStorage != nil {
		defer sessionStorage.Close()
	}

	app, err := config.NewApp(db, cfg, log, sessionStorage)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listen(":" + cfg.AppPort)
	}()
	log.Info("server started", zap.String("port", cfg.AppPort))

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}
