package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/GoArmGo/Wallsplash/internal/core/ports"
	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/GoArmGo/Wallsplash/internal/messaging/payloads"
)

// ImageObjectKey - ключ сохраненных обоев в архиве
func ImageObjectKey(filePath string) string {
	return path.Join("backgrounds", filepath.Base(filePath))
}

// CaptureObjectKey - ключ диагностического файла в архиве
func CaptureObjectKey(filePath string) string {
	return path.Join("jsons", filepath.Base(filePath))
}

// report отправляет запись о запуске всем настроенным получателям.
// Ошибки не прерывают конвейер.
func (uc *wallpaperUseCase) report(ctx context.Context, log *slog.Logger, req Request, result *Result) {
	photo := result.Photo
	record := &domain.AppliedWallpaper{
		RunID:          result.RunID,
		PhotoID:        photo.ID,
		AuthorUsername: photo.User.Username,
		AuthorName:     photo.User.DisplayName(),
		Subject:        req.Subject,
		Width:          int(photo.Width),
		SourceURL:      photo.Urls.Full,
		FilePath:       result.Path,
		PingOutcome:    result.Ping,
		AppliedAt:      time.Now().UTC(),
	}

	if uc.reporters.Archive != nil {
		if _, err := uploadFile(ctx, uc.reporters.Archive, ImageObjectKey(result.Path), result.Path); err != nil {
			log.Warn("failed to mirror wallpaper", "stage", domain.StageReport, "error", err)
		}
	}

	if uc.reporters.History != nil {
		if err := uc.reporters.History.SaveAppliedWallpaper(ctx, record); err != nil {
			log.Warn("failed to record wallpaper history", "stage", domain.StageReport, "error", err)
		}
	}

	if uc.reporters.Events != nil {
		payload := payloads.WallpaperAppliedPayload{
			Event:       payloads.WallpaperAppliedEventType,
			RunID:       record.RunID.String(),
			PhotoID:     record.PhotoID,
			Author:      record.AuthorUsername,
			Subject:     record.Subject,
			Width:       record.Width,
			FilePath:    record.FilePath,
			PhotoURL:    photo.Links.HTML,
			PingOutcome: string(record.PingOutcome),
			AppliedAt:   record.AppliedAt,
		}
		if err := uc.reporters.Events.PublishWallpaperApplied(ctx, payload); err != nil {
			log.Warn("failed to publish wallpaper event", "stage", domain.StageReport, "error", err)
		}
	}
}

// uploadFile открывает локальный файл и передает его в хранилище с определенным по содержимому MIME-типом
func uploadFile(ctx context.Context, storage ports.FileStorage, key, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", &domain.FilesystemError{Op: "open for upload", Path: filePath, Err: err}
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", &domain.FilesystemError{Op: "read for upload", Path: filePath, Err: err}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", &domain.FilesystemError{Op: "rewind for upload", Path: filePath, Err: err}
	}

	return storage.UploadFile(ctx, key, f, http.DetectContentType(head[:n]))
}
