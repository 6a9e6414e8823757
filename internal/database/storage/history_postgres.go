package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/Wallsplash/internal/domain"
)

const insertAppliedWallpaper = `
	INSERT INTO applied_wallpapers (id, run_id, photo_id, author_username, author_name, subject, width, source_url, file_path, ping_outcome, applied_at)
	VALUES (:id, :run_id, :photo_id, :author_username, :author_name, :subject, :width, :source_url, :file_path, :ping_outcome, :applied_at)
	ON CONFLICT (id) DO NOTHING
	`

// NamedExecer - часть *sqlx.DB, нужная журналу
type NamedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// HistoryStorage пишет журнал установленных обоев в PostgreSQL
type HistoryStorage struct {
	db     NamedExecer
	logger *slog.Logger
}

func NewHistoryStorage(db NamedExecer, logger *slog.Logger) *HistoryStorage {
	return &HistoryStorage{db: db, logger: logger}
}

// SaveAppliedWallpaper сохраняет запись об установленных обоях
func (s *HistoryStorage) SaveAppliedWallpaper(ctx context.Context, record *domain.AppliedWallpaper) error {
	start := time.Now()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.AppliedAt.IsZero() {
		record.AppliedAt = time.Now().UTC()
	}

	if _, err := s.db.NamedExecContext(ctx, insertAppliedWallpaper, record); err != nil {
		s.logger.Error("failed to save applied wallpaper", "photo_id", record.PhotoID, "error", err)
		return fmt.Errorf("ошибка при сохранении записи журнала: %w", err)
	}

	s.logger.Info("applied wallpaper saved",
		"id", record.ID,
		"photo_id", record.PhotoID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
