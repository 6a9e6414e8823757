package ports

import (
	"context"

	"github.com/GoArmGo/Wallsplash/internal/messaging/payloads"
)

// WallpaperEventPublisher определяет методы для публикации событий об установке обоев
type WallpaperEventPublisher interface {
	PublishWallpaperApplied(ctx context.Context, payload payloads.WallpaperAppliedPayload) error
}
