package main

import (
	"fmt"
	"net"
	"os"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/server"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/config"
	reportsvc "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/report"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/session"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the weekly sales report generator",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (defaults and SALES_* env vars are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Info().
		Str("addr", addr).
		Str("currency", cfg.Currency).
		Dur("shutdown_timeout", cfg.ShutdownTimeout).
		Msg("configuration loaded")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Sessions: session.NewStore(),
			Composer: reportsvc.NewComposer(cfg.Currency),
		},
	})

	return webAPI.Start()
}
