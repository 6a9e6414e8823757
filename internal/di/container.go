package di

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/Wallsplash/internal/adapter/desktop"
	"github.com/GoArmGo/Wallsplash/internal/adapter/diagnostics"
	"github.com/GoArmGo/Wallsplash/internal/adapter/download"
	"github.com/GoArmGo/Wallsplash/internal/adapter/storage/minio"
	"github.com/GoArmGo/Wallsplash/internal/adapter/unsplash"
	"github.com/GoArmGo/Wallsplash/internal/app"
	"github.com/GoArmGo/Wallsplash/internal/config"
	"github.com/GoArmGo/Wallsplash/internal/database/client"
	"github.com/GoArmGo/Wallsplash/internal/database/storage"
	"github.com/GoArmGo/Wallsplash/internal/httpclient"
	"github.com/GoArmGo/Wallsplash/internal/logger"
	"github.com/GoArmGo/Wallsplash/internal/rabbitmq"
	"github.com/GoArmGo/Wallsplash/internal/usecase"
)

// BuildApp загружает конфигурацию и инициализирует все зависимости.
// runID попадает в каждую запись основного логгера.
func BuildApp(ctx context.Context, runID string) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}).With("run_id", runID)

	slogger.Debug("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return Assemble(ctx, cfg, slogger, nil)
}

// Assemble собирает приложение из готовой конфигурации.
// run подменяет запуск внешних команд (gsettings), nil означает os/exec.
func Assemble(ctx context.Context, cfg *config.Config, slogger *slog.Logger, run desktop.CommandRunner) (*app.App, error) {
	// 2. Каталог обоев
	picturesDir := desktop.PicturesDir(cfg.PicturesDir)
	if _, err := desktop.PrepareBackgroundsDir(picturesDir); err != nil {
		return nil, err
	}

	// 3. Клиенты внешних сервисов
	httpClient := httpclient.New(cfg.HTTPTimeout, slogger)
	creds := unsplash.Credentials{AccessKey: cfg.UnsplashAPIKey, Version: cfg.UnsplashAPIVersion}
	capturer := diagnostics.NewCapturer(cfg.DiagnosticsDir, slogger)

	fetcher := unsplash.NewClient(httpClient, cfg.UnsplashAPIURL, creds, capturer, slogger)
	notifier := unsplash.NewNotifier(httpClient, creds, slogger)
	downloader := download.NewDownloader(httpClient, slogger)
	setter := desktop.NewGSettings(cfg.WallpaperSchema, cfg.WallpaperKeys, run, slogger)

	// 4. Необязательные получатели отчета
	reporters, closers := buildReporters(ctx, cfg, slogger)

	// 5. Бизнес-логика
	wallpaperUC := usecase.NewWallpaperUseCase(fetcher, downloader, setter, notifier, picturesDir, reporters, slogger)

	slogger.Debug("dependencies initialized",
		"pictures_dir", picturesDir,
		"history", reporters.History != nil,
		"archive", reporters.Archive != nil,
		"events", reporters.Events != nil,
	)
	return app.NewApp(cfg, slogger, wallpaperUC, closers...), nil
}

// buildReporters подключает настроенные хранилища. Недоступное хранилище
// не мешает смене обоев: оно пропускается с предупреждением.
func buildReporters(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (usecase.Reporters, []func() error) {
	var (
		reporters usecase.Reporters
		closers   []func() error
	)

	if cfg.HistoryEnabled() {
		dbClient, err := client.NewClient(cfg.DatabaseURL, slogger)
		if err != nil {
			slogger.Warn("history journal disabled", "error", err)
		} else {
			reporters.History = storage.NewHistoryStorage(dbClient.DB, slogger)
			closers = append(closers, dbClient.Close)
		}
	}

	if cfg.ArchiveEnabled() {
		fileStorage, err := minio.NewMinioClient(ctx, minio.SettingsFromConfig(cfg), slogger)
		if err != nil {
			slogger.Warn("archive mirror disabled", "error", err)
		} else {
			reporters.Archive = fileStorage
		}
	}

	if cfg.EventsEnabled() {
		rabbitMQClient, err := rabbitmq.NewClient(cfg.RabbitMQ.RabbitMQURL, cfg.RabbitMQ.RabbitMQQueueName, slogger)
		if err != nil {
			slogger.Warn("event publishing disabled", "error", err)
		} else {
			reporters.Events = rabbitMQClient
			closers = append(closers, func() error {
				rabbitMQClient.Close()
				return nil
			})
		}
	}

	return reporters, closers
}
