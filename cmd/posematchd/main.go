// Command posematchd serves the pose-matching HTTP and WebSocket API.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/posematch/dtw"
	"github.com/katalvlaran/posematch/internal/config"
	"github.com/katalvlaran/posematch/internal/logger"
	"github.com/katalvlaran/posematch/internal/server"
	"github.com/katalvlaran/posematch/reference"
)

func main() {
	// 1. Configuration and logging
	cfg := config.Load()
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	defer func() { _ = log.Sync() }()

	// 2. Self-check the aligner before accepting sessions
	if err := dtw.Validate(); err != nil {
		log.Error("main", "aligner self-check failed", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	// 3. Demonstration library and server
	lib := reference.NewLibrary(cfg.Reference.Dir, cfg.Reference.CacheTTL)
	srv := server.New(cfg, lib, log)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("main", "shutting down", nil)
		if err := srv.Shutdown(); err != nil {
			log.Error("main", "shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	// 4. Serve
	if err := srv.Run(); err != nil {
		log.Error("main", "server stopped", map[string]interface{}{"error": err})
		_ = log.Sync()
		os.Exit(1)
	}
}
