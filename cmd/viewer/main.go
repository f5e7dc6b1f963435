// Package main is the entry point for the sheen model viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ashfall/sheen/internal/app"
	"github.com/ashfall/sheen/internal/config"
	"github.com/ashfall/sheen/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== sheen viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(*cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
