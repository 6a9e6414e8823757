package unsplash

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// Notifier отправляет Unsplash уведомление о скачивании фото.
// Правила API требуют регистрировать "download" при каждом использовании изображения.
type Notifier struct {
	httpClient  *http.Client
	credentials Credentials
	logger      *slog.Logger
}

// NewNotifier создает Notifier с теми же учетными данными, что и Client.
func NewNotifier(httpClient *http.Client, creds Credentials, logger *slog.Logger) *Notifier {
	return &Notifier{httpClient: httpClient, credentials: creds, logger: logger}
}

// NotifyDownload делает авторизованный GET на links.download_location.
// Без ссылки ничего не отправляет. Любой исход только логируется.
func (n *Notifier) NotifyDownload(ctx context.Context, downloadLocation *string) domain.PingOutcome {
	if downloadLocation == nil || *downloadLocation == "" {
		n.logger.Info("download ping not required", "reason", "no download_location")
		return domain.PingSkipped
	}

	start := time.Now()
	target := *downloadLocation

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		n.logger.Warn("download ping failed", "stage", domain.StageNotifyDownload, "error", err)
		return domain.PingFailed
	}
	n.credentials.apply(req)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Warn("download ping failed",
			"stage", domain.StageNotifyDownload,
			"error", &domain.NetworkError{Op: "GET", URL: req.URL.Redacted(), Err: err},
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return domain.PingFailed
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Warn("download ping rejected",
			"stage", domain.StageNotifyDownload,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return domain.PingFailed
	}

	n.logger.Info("download ping sent",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return domain.PingSent
}
