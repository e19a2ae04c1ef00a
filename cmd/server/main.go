// Command server exposes the kotus engine as a JSON REST API.
// See internal/server for the endpoints.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cours-de-latin/kotus/internal/config"
	"github.com/cours-de-latin/kotus/internal/logging"
	"github.com/cours-de-latin/kotus/internal/server"
)

func main() {
	cfgPath := flag.String("config", "kotus.yaml", "path to the YAML config file")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := logging.New(cfg.Log, *verbose)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Server.Addr, server.New(cfg.Server, logger), logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
