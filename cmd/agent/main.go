package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ymxu/resumefill/internal/agent/config"
	"github.com/ymxu/resumefill/internal/browser"
	"github.com/ymxu/resumefill/internal/buildinfo"
	"github.com/ymxu/resumefill/internal/logging"
	"github.com/ymxu/resumefill/internal/transport"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, false)

	b, err := browser.New(ctx, browser.Config{
		ChromePath:  cfg.ChromePath,
		UserDataDir: cfg.UserDataDir,
		Headless:    cfg.Headless,
		PanelURL:    cfg.PanelURL,
	}, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer func() { _ = b.Close() }()

	agent := browser.NewAgent(b, b, logger)
	srv := transport.NewServer(cfg.ListenAddr, agent, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("%v", err)
		}
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "shutdown failed", "error", err.Error())
		}
	}
}
