// Package diagnostics сохраняет сырые ответы API, которые не удалось разобрать,
// чтобы потом воспроизвести их как тестовые данные.
package diagnostics

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/GoArmGo/Wallsplash/internal/randname"
)

// Capturer пишет тела ответов в каталог диагностики под случайными именами.
type Capturer struct {
	dir    string
	logger *slog.Logger
}

// NewCapturer создает Capturer для каталога dir (обычно "jsons").
func NewCapturer(dir string, logger *slog.Logger) *Capturer {
	return &Capturer{dir: dir, logger: logger}
}

// Capture записывает body без изменений в <dir>/<10 случайных символов>
// и возвращает путь к файлу.
func (c *Capturer) Capture(body []byte) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", &domain.FilesystemError{Op: "create diagnostics dir", Path: c.dir, Err: err}
	}

	path := filepath.Join(c.dir, randname.New())
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", &domain.FilesystemError{Op: "write diagnostics capture", Path: path, Err: err}
	}

	c.logger.Warn("undecodable response captured",
		"path", path,
		"bytes", len(body),
	)
	return path, nil
}

// Dir возвращает каталог диагностики.
func (c *Capturer) Dir() string {
	return c.dir
}

// ReadCapture читает ранее сохраненный ответ для повторного разбора.
func ReadCapture(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture %s: %w", path, err)
	}
	return data, nil
}
