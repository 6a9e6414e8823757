package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/GoArmGo/Wallsplash/internal/adapter/diagnostics"
	"github.com/GoArmGo/Wallsplash/internal/adapter/unsplash"
)

// ReplayCaptures заново разбирает сохраненные ответы текущей схемой.
// Для каждого файла печатает строку "ok" или "fail" и возвращает ошибку,
// если хотя бы один файл по-прежнему не разбирается.
func ReplayCaptures(paths []string, out io.Writer, logger *slog.Logger) error {
	if len(paths) == 0 {
		return fmt.Errorf("no capture files given")
	}

	failed := 0
	for _, path := range paths {
		photoID, err := replayOne(path)
		if err != nil {
			failed++
			logger.Warn("capture still undecodable", "path", path, "error", err)
			fmt.Fprintf(out, "fail\t%s\t%v\n", path, err)
			continue
		}
		logger.Debug("capture decoded", "path", path, "photo_id", photoID)
		fmt.Fprintf(out, "ok\t%s\t%s\n", path, photoID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d captures still fail to decode", failed, len(paths))
	}
	return nil
}

func replayOne(path string) (string, error) {
	data, err := diagnostics.ReadCapture(path)
	if err != nil {
		return "", err
	}
	photo, err := unsplash.DecodePhoto(data)
	if err != nil {
		return "", err
	}
	return photo.ID, nil
}
