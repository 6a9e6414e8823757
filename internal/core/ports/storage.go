package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// ResponseCapturer сохраняет сырые тела ответов, которые не удалось разобрать
type ResponseCapturer interface {
	// Capture записывает body без изменений и возвращает путь к файлу
	Capture(body []byte) (string, error)
}

// HistoryStorage определяет методы для журнала установленных обоев
type HistoryStorage interface {
	SaveAppliedWallpaper(ctx context.Context, record *domain.AppliedWallpaper) error
}

// FileStorage определяет интерфейс для зеркалирования файлов во внешнее хранилище (AWS S3, MinIO)
type FileStorage interface {
	// UploadFile загружает файл в хранилище и возвращает его URL.
	// `key` - имя объекта в бакете, `contentType` - MIME-тип.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}
