package commands

import (
	"os"
	"os/signal"
	"syscall"

	"edd-calculator/internal/platform/config"
	"edd-calculator/internal/platform/logger"
	"edd-calculator/internal/server"

	"github.com/spf13/cobra"
)

// serve: mismo servidor que cmd/api; los flags pisan las env vars.
func serveCmd() *cobra.Command {
	var (
		port     string
		dsn      string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("db-dsn") {
				cfg.DBDSN = dsn
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logger.ParseLevel(logLevel)
			}

			ctx, stop := signal.NotifyContext(ctxOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, cfg.Logger())
		},
	}
	cmd.Flags().StringVar(&port, "port", config.DefaultPort, "HTTP port")
	cmd.Flags().StringVar(&dsn, "db-dsn", "", "Postgres DSN for calculation history (default in-memory)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	return cmd
}
