// Package desktop - интеграция с окружением рабочего стола.
package desktop

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// CommandRunner запускает внешнюю команду и возвращает ее объединенный вывод.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner запускает команду через os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// GSettings устанавливает обои через `gsettings set <schema> <key> <uri>`.
type GSettings struct {
	schema string
	keys   []string
	run    CommandRunner
	logger *slog.Logger
}

// NewGSettings создает GSettings. keys - обычно только "picture-uri",
// для темной темы GNOME можно добавить "picture-uri-dark".
func NewGSettings(schema string, keys []string, run CommandRunner, logger *slog.Logger) *GSettings {
	if run == nil {
		run = ExecRunner
	}
	return &GSettings{schema: schema, keys: keys, run: run, logger: logger}
}

// FileURI строит file:// URI для абсолютного пути к изображению.
func FileURI(imagePath string) (string, error) {
	abs, err := filepath.Abs(imagePath)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// SetWallpaper применяет imagePath как фон рабочего стола.
func (g *GSettings) SetWallpaper(ctx context.Context, imagePath string) error {
	uri, err := FileURI(imagePath)
	if err != nil {
		return &domain.DesktopIntegrationError{URI: imagePath, Err: err}
	}

	for _, key := range g.keys {
		out, err := g.run(ctx, "gsettings", "set", g.schema, key, uri)
		if err != nil {
			return &domain.DesktopIntegrationError{
				URI:    uri,
				Output: strings.TrimSpace(string(out)),
				Err:    fmt.Errorf("gsettings set %s %s: %w", g.schema, key, err),
			}
		}
		g.logger.Debug("wallpaper setting applied", "schema", g.schema, "key", key)
	}

	g.logger.Info("wallpaper applied", "uri", uri)
	return nil
}
