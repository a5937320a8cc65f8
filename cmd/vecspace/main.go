// Package main is the entry point for the vecspace visualizer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/app"
	"github.com/Jamieson-H7/visualizations/internal/config"
	"github.com/Jamieson-H7/visualizations/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logOpts := logger.Options{Level: cfg.Logging.Level, Console: true}
	if cfg.Logging.LogFile != "" {
		logOpts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.Init(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== vecspace ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
