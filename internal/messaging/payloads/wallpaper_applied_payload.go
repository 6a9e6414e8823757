package payloads

import "time"

// WallpaperAppliedEventType - тип события в сообщении RabbitMQ.
const WallpaperAppliedEventType = "wallpaper.applied"

// WallpaperAppliedPayload представляет событие об установке новых обоев,
// публикуемое в RabbitMQ.
type WallpaperAppliedPayload struct {
	Event       string    `json:"event"`
	RunID       string    `json:"run_id"`
	PhotoID     string    `json:"photo_id"`
	Author      string    `json:"author"`
	Subject     string    `json:"subject"`
	Width       int       `json:"width"`
	FilePath    string    `json:"file_path"`
	PhotoURL    string    `json:"photo_url"`
	PingOutcome string    `json:"ping_outcome"`
	AppliedAt   time.Time `json:"applied_at"`
}
