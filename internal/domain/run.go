package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage - шаг конвейера получения обоев.
type Stage string

const (
	StageFetchPhoto     Stage = "fetch-photo"
	StageDownloadAsset  Stage = "download-asset"
	StageApplyWallpaper Stage = "apply-wallpaper"
	StageNotifyDownload Stage = "notify-download"
	StageReport         Stage = "report"
)

// StageError связывает фатальную ошибку с шагом, на котором она произошла.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// PingOutcome - результат уведомления Unsplash о скачивании.
// Никогда не является ошибкой конвейера.
type PingOutcome string

const (
	PingSkipped PingOutcome = "skipped"
	PingSent    PingOutcome = "sent"
	PingFailed  PingOutcome = "failed"
)

// AppliedWallpaper - запись журнала об установленных обоях,
// соответствует таблице applied_wallpapers в бд
type AppliedWallpaper struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	RunID          uuid.UUID   `json:"run_id" db:"run_id"`
	PhotoID        string      `json:"photo_id" db:"photo_id"`
	AuthorUsername string      `json:"author_username" db:"author_username"`
	AuthorName     string      `json:"author_name" db:"author_name"`
	Subject        string      `json:"subject" db:"subject"`
	Width          int         `json:"width" db:"width"`
	SourceURL      string      `json:"source_url" db:"source_url"`
	FilePath       string      `json:"file_path" db:"file_path"`
	PingOutcome    PingOutcome `json:"ping_outcome" db:"ping_outcome"`
	AppliedAt      time.Time   `json:"applied_at" db:"applied_at"`
}
