package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pmurley/rugby-stats/internal/cli"
	"github.com/pmurley/rugby-stats/internal/config"
	"github.com/pmurley/rugby-stats/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	log := logger.New(cfg.LogLevel)

	// watch runs until interrupted; the other commands finish on their own
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(cfg, log).ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
