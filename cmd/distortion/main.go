// Package main is the entry point for the distortion demos.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/distortion/internal/app"
	"github.com/Faultbox/distortion/internal/config"
	"github.com/Faultbox/distortion/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Distortion ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		app.LogFatal(err)
	}

	// Deferred calls do not survive os.Exit, so the run error is handled after Close.
	runErr := a.Run()
	a.Close()
	if runErr != nil {
		app.LogFatal(runErr)
	}

	logger.Info("demo closed normally")
}
