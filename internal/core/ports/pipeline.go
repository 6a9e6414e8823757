package ports

import (
	"context"

	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// PhotoFetcher получает описание случайного фото из внешнего API
type PhotoFetcher interface {
	FetchRandomPhoto(ctx context.Context, subject, resolution string) (*domain.Photo, error)
}

// AssetDownloader скачивает изображение и возвращает абсолютный путь к файлу
type AssetDownloader interface {
	Download(ctx context.Context, url, destinationDir string) (string, error)
}

// DownloadNotifier отправляет уведомление о скачивании по правилам API.
// Ошибки не возвращаются, только результат для логов.
type DownloadNotifier interface {
	NotifyDownload(ctx context.Context, downloadLocation *string) domain.PingOutcome
}

// WallpaperSetter применяет файл как фон рабочего стола
type WallpaperSetter interface {
	SetWallpaper(ctx context.Context, imagePath string) error
}
