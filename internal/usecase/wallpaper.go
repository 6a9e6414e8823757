package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/GoArmGo/Wallsplash/internal/core/ports"
	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// Request - параметры одного запуска конвейера
type Request struct {
	Subject    string    // тема поиска, пустая строка означает тему по умолчанию
	Resolution string    // "hd" или "4k"
	RunID      uuid.UUID // если не задан, генерируется
}

// Result описывает, до какого шага дошел запуск.
// При частичном успехе (файл сохранен, но не применен) Path заполнен, а Applied = false.
type Result struct {
	RunID   uuid.UUID
	Photo   *domain.Photo
	Path    string
	Applied bool
	Ping    domain.PingOutcome
}

// Reporters - необязательные получатели отчета о запуске.
// Любое поле может быть nil, тогда соответствующий шаг пропускается.
type Reporters struct {
	History ports.HistoryStorage
	Archive ports.FileStorage
	Events  ports.WallpaperEventPublisher
}

// WallpaperUseCase определяет бизнес-логику смены обоев
type WallpaperUseCase interface {
	// Run выполняет один проход: фото -> файл -> обои -> уведомление -> отчет.
	// Фатальные ошибки оборачиваются в *domain.StageError.
	Run(ctx context.Context, req Request) (*Result, error)
}
