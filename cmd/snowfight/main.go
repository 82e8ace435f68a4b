// Package main is the entry point for the snowfight holiday scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/config"
	"github.com/Faultbox/snowfight/internal/game"
	"github.com/Faultbox/snowfight/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		Console: true,
		File:    logger.DefaultFileOptions(cfg.Logging.LogFile),
	})
	defer logger.Sync()

	logger.Log.Info("=== Snowfight ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Log.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Log.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("game closed normally")
}
