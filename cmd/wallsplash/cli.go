package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/GoArmGo/Wallsplash/internal/adapter/unsplash"
	"github.com/GoArmGo/Wallsplash/internal/app"
	"github.com/GoArmGo/Wallsplash/internal/di"
	"github.com/GoArmGo/Wallsplash/internal/usecase"
)

func newCLI(out io.Writer, bootstrapLogger *slog.Logger) *cli.App {
	return &cli.App{
		Name:    "wallsplash",
		Usage:   "fetch a random landscape photo from Unsplash and set it as the desktop wallpaper",
		Version: "1.0",
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "subject",
				Aliases: []string{"s"},
				Value:   unsplash.DefaultSubject,
				Usage:   "search term for the random photo, an empty value falls back to the default",
			},
			&cli.StringFlag{
				Name:    "resolution",
				Aliases: []string{"r"},
				Value:   unsplash.Resolution4K,
				Usage:   "target width hint: hd (1920) or 4k (3840)",
			},
		},
		Action: runWallpaper,
		Commands: []*cli.Command{
			{
				Name:      "replay",
				Usage:     "decode captured API responses with the current schema",
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					if err := app.ReplayCaptures(c.Args().Slice(), c.App.Writer, bootstrapLogger); err != nil {
						return cli.Exit(err.Error(), app.ExitFailure)
					}
					return nil
				},
			},
		},
		// коды завершения выставляет main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func runWallpaper(c *cli.Context) error {
	resolution := c.String("resolution")
	if err := validateResolution(resolution); err != nil {
		return cli.Exit(err.Error(), app.ExitFailure)
	}

	runID := uuid.New()
	application, err := di.BuildApp(c.Context, runID.String())
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to build app: %v", err), app.ExitFailure)
	}
	defer func() { _ = application.Shutdown() }()

	result, err := application.Run(c.Context, usecase.Request{
		Subject:    c.String("subject"),
		Resolution: resolution,
		RunID:      runID,
	})
	// путь печатается и при частичном успехе: файл уже на диске
	if result != nil && result.Path != "" {
		fmt.Fprintln(c.App.Writer, result.Path)
	}
	if err != nil {
		return cli.Exit(err.Error(), app.ExitCode(err))
	}
	return nil
}

func validateResolution(resolution string) error {
	switch resolution {
	case unsplash.ResolutionHD, unsplash.Resolution4K:
		return nil
	default:
		return fmt.Errorf("unsupported resolution %q, use %q or %q", resolution, unsplash.ResolutionHD, unsplash.Resolution4K)
	}
}

// exitCode извлекает код завершения из ошибки CLI
func exitCode(err error) int {
	if err == nil {
		return app.ExitOK
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return app.ExitFailure
}
