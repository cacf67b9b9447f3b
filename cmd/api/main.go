// @title EDD Calculator API
// @version 1.0
// @description Calculadora obstétrica: EDD por FUM, fecha por edad gestacional, EDD por ecografía y conciliación ACOG.
// @BasePath /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"edd-calculator/internal/platform/config"
	"edd-calculator/internal/server"
)

func main() {
	cfg := config.FromEnv()
	log := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"error": err})
		os.Exit(1)
	}
}
