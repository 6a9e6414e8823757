package app

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/Wallsplash/internal/config"
	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/GoArmGo/Wallsplash/internal/usecase"
)

// Коды завершения процесса
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitPartial = 2 // файл сохранен, но обои не применены
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	wallpaperUC usecase.WallpaperUseCase
	closers     []func() error
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	wallpaperUC usecase.WallpaperUseCase,
	closers ...func() error) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		wallpaperUC: wallpaperUC,
		closers:     closers,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run выполняет один проход смены обоев. SIGINT/SIGTERM отменяют текущий шаг.
func (a *App) Run(ctx context.Context, req usecase.Request) (*usecase.Result, error) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("run started", "subject", req.Subject, "resolution", req.Resolution)

	result, err := a.wallpaperUC.Run(ctx, req)
	if err != nil {
		a.logger.Error("run failed", "error", err)
	}
	return result, err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	// в обратном порядке открытия
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.Warn("shutdown finished with errors", "error", err)
		return err
	}
	a.logger.Debug("resources released")
	return nil
}

// ExitCode переводит результат запуска в код завершения процесса
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var stageErr *domain.StageError
	if errors.As(err, &stageErr) && stageErr.Stage == domain.StageApplyWallpaper {
		return ExitPartial
	}
	return ExitFailure
}
