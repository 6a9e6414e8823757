// Package download скачивает полноразмерное изображение на диск.
package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/GoArmGo/Wallsplash/internal/randname"
)

// BackgroundsDir - подкаталог каталога изображений, куда сохраняются обои.
const BackgroundsDir = "backgrounds"

// Downloader выполняет неавторизованный GET и копирует тело ответа в файл байт в байт.
type Downloader struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDownloader создает новый экземпляр Downloader.
func NewDownloader(httpClient *http.Client, logger *slog.Logger) *Downloader {
	return &Downloader{httpClient: httpClient, logger: logger}
}

// Download сохраняет изображение по url в <destinationDir>/backgrounds/<случайное имя>
// и возвращает абсолютный путь к файлу. Каталог backgrounds должен уже существовать.
func (d *Downloader) Download(ctx context.Context, url, destinationDir string) (string, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", &domain.NetworkError{Op: "build asset request", URL: url, Err: err}
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Op: "GET", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.NetworkError{Op: "GET", URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	path := filepath.Join(destinationDir, BackgroundsDir, randname.New())
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &domain.FilesystemError{Op: "create asset file", Path: path, Err: err}
	}

	body := &readTracker{r: resp.Body}
	written, copyErr := io.Copy(f, body)
	closeErr := f.Close()

	switch {
	case body.err != nil:
		_ = os.Remove(path)
		return "", &domain.NetworkError{Op: "read asset body", URL: url, Err: body.err}
	case copyErr != nil:
		_ = os.Remove(path)
		return "", &domain.FilesystemError{Op: "write asset file", Path: path, Err: copyErr}
	case closeErr != nil:
		_ = os.Remove(path)
		return "", &domain.FilesystemError{Op: "close asset file", Path: path, Err: closeErr}
	}

	d.logger.Info("asset saved",
		"path", path,
		"bytes", written,
		"content_type", resp.Header.Get("Content-Type"),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// readTracker запоминает ошибку чтения, чтобы отличить обрыв сети от ошибки записи на диск
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
