package unsplash

import (
	"fmt"

	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/goccy/go-json"
)

// DecodePhoto разбирает тело ответа в domain.Photo и проверяет обязательные поля.
// Неизвестные поля игнорируются, отсутствующие необязательные остаются nil.
func DecodePhoto(data []byte) (*domain.Photo, error) {
	var photo domain.Photo
	if err := json.Unmarshal(data, &photo); err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	if err := photo.Validate(); err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return &photo, nil
}
