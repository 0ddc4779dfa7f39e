package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vasudhaxkale/binance-trading-bot/internal/cli"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra"
	"github.com/vasudhaxkale/binance-trading-bot/internal/web"
)

func main() {
	// .env is optional; env vars win over config.yaml either way.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		slog.Error("❌ Configuration failed", slog.Any("error", err))
		os.Exit(1)
	}

	closeLog, err := infra.SetupLogging(cfg)
	if err != nil {
		slog.Error("❌ Logging setup failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeLog()

	infra.PrintBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// With order flags: one-shot CLI placement. Without: serve the web form.
	if len(os.Args) > 1 {
		code := cli.Run(ctx, os.Args[1:], cfg, os.Stdout, os.Stderr)
		closeLog()
		os.Exit(code)
	}

	srv := web.NewServer(cfg)
	if err := srv.Run(ctx); err != nil {
		slog.Error("❌ Web server failed", slog.Any("error", err))
		closeLog()
		os.Exit(1)
	}

	slog.InfoContext(ctx, "👋 Shutting down gracefully...")
}
