package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/Wallsplash/internal/core/ports"
	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// wallpaperUseCase implements WallpaperUseCase
type wallpaperUseCase struct {
	fetcher     ports.PhotoFetcher
	downloader  ports.AssetDownloader
	setter      ports.WallpaperSetter
	notifier    ports.DownloadNotifier
	picturesDir string
	reporters   Reporters
	logger      *slog.Logger
}

// NewWallpaperUseCase создает новый экземпляр WallpaperUseCase.
// picturesDir - каталог изображений, файлы сохраняются в его подкаталог backgrounds.
func NewWallpaperUseCase(
	fetcher ports.PhotoFetcher,
	downloader ports.AssetDownloader,
	setter ports.WallpaperSetter,
	notifier ports.DownloadNotifier,
	picturesDir string,
	reporters Reporters,
	logger *slog.Logger,
) WallpaperUseCase {
	return &wallpaperUseCase{
		fetcher:     fetcher,
		downloader:  downloader,
		setter:      setter,
		notifier:    notifier,
		picturesDir: picturesDir,
		reporters:   reporters,
		logger:      logger,
	}
}

func (uc *wallpaperUseCase) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if req.RunID == uuid.Nil {
		req.RunID = uuid.New()
	}
	log := uc.logger.With("run_id", req.RunID.String())
	result := &Result{RunID: req.RunID, Ping: domain.PingSkipped}

	// 1. Описание фото
	photo, err := uc.fetcher.FetchRandomPhoto(ctx, req.Subject, req.Resolution)
	if err != nil {
		uc.archiveCapture(ctx, log, err)
		return result, &domain.StageError{Stage: domain.StageFetchPhoto, Err: err}
	}
	result.Photo = photo

	// 2. Сам файл
	path, err := uc.downloader.Download(ctx, photo.Urls.Full, uc.picturesDir)
	if err != nil {
		return result, &domain.StageError{Stage: domain.StageDownloadAsset, Err: err}
	}
	result.Path = path

	// 3. Обои. Если не получилось, файл остается на диске, а уведомление не отправляется:
	// изображение фактически не использовано.
	if err := uc.setter.SetWallpaper(ctx, path); err != nil {
		log.Error("wallpaper saved but not applied",
			"stage", domain.StageApplyWallpaper,
			"path", path,
			"error", err,
		)
		return result, &domain.StageError{Stage: domain.StageApplyWallpaper, Err: err}
	}
	result.Applied = true

	// 4. Уведомление о скачивании, исход только логируется
	result.Ping = uc.notifier.NotifyDownload(ctx, photo.DownloadLocation())

	// 5. Отчет
	uc.report(ctx, log, req, result)

	log.Info("wallpaper applied",
		"photo_id", photo.ID,
		"author", photo.User.DisplayName(),
		"path", path,
		"ping", result.Ping,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// archiveCapture зеркалирует сохраненный неразборчивый ответ, если архив настроен
func (uc *wallpaperUseCase) archiveCapture(ctx context.Context, log *slog.Logger, err error) {
	var parseErr *domain.ParseError
	if uc.reporters.Archive == nil || !errors.As(err, &parseErr) || parseErr.CapturePath == "" {
		return
	}
	if _, upErr := uploadFile(ctx, uc.reporters.Archive, CaptureObjectKey(parseErr.CapturePath), parseErr.CapturePath); upErr != nil {
		log.Warn("failed to mirror diagnostics capture", "stage", domain.StageReport, "path", parseErr.CapturePath, "error", upErr)
	}
}
