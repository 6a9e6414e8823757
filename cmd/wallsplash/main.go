package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	// bootstrap-логгер (используется до загрузки конфигурации)
	bootstrapLogger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if err := newCLI(os.Stdout, bootstrapLogger).RunContext(context.Background(), os.Args); err != nil {
		bootstrapLogger.Error("wallsplash failed", "error", err)
		os.Exit(exitCode(err))
	}
}
