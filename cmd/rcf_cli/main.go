package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/rental_cashflow_app/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Service logs are diagnostics here; the command output goes to stdout
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
