package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlenaMolokova/checkout/internal/backend"
	"github.com/AlenaMolokova/checkout/internal/config"
	"github.com/AlenaMolokova/checkout/internal/form"
	"github.com/AlenaMolokova/checkout/internal/logger"
	"github.com/AlenaMolokova/checkout/internal/view"
)

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, sugar)

	client := backend.NewClient(cfg.BackendAddr, cfg.RequestTimeout, sugar)
	f := form.New(ctx, client, view.NewTerminal(os.Stdout), form.Options{
		LookupDelay:       cfg.LookupDelay,
		RemoteFieldChecks: cfg.RemoteFieldChecks,
	})
	defer f.Close()

	sugar.Infow("checkout form ready", "backend", cfg.BackendAddr, "remote_checks", cfg.RemoteFieldChecks)
	fmt.Fprintln(os.Stderr, usage)

	if err := run(ctx, f, os.Stdin, os.Stdout); err != nil {
		sugar.Errorf("checkout: %v", err)
		os.Exit(1)
	}
}
