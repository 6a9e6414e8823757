// internal/adapter/unsplash/client.go
package unsplash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/Wallsplash/internal/core/ports"
	"github.com/GoArmGo/Wallsplash/internal/domain"
)

// DefaultBaseURL - базовый URL для Unsplash API
const DefaultBaseURL = "https://api.unsplash.com"

// Client представляет клиент для запроса случайного фото у Unsplash API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	credentials Credentials
	capturer    ports.ResponseCapturer
	logger      *slog.Logger
}

// NewClient создает новый экземпляр Client.
// capturer получает сырые тела ответов, которые не удалось разобрать.
func NewClient(httpClient *http.Client, baseURL string, creds Credentials, capturer ports.ResponseCapturer, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: creds,
		capturer:    capturer,
		logger:      logger,
	}
}

// FetchRandomPhoto запрашивает случайное landscape-фото по теме subject
// с шириной, выбранной по подсказке resolution.
func (c *Client) FetchRandomPhoto(ctx context.Context, subject, resolution string) (*domain.Photo, error) {
	start := time.Now()

	query := RandomPhotoQuery{Subject: subject, Resolution: resolution}
	endpoint := fmt.Sprintf("%s/photos/random?%s", c.baseURL, query.Values().Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, &domain.NetworkError{Op: "build random photo request", URL: endpoint, Err: err}
	}
	c.credentials.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "GET", URL: c.baseURL + "/photos/random", Err: err}
	}
	defer resp.Body.Close()

	// тело читаем целиком: при ошибке разбора его нужно сохранить без изменений
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Op: "read random photo response", URL: c.baseURL + "/photos/random", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unsplash API returned non-200 status",
			"status", resp.StatusCode,
			"bytes", len(body),
		)
	}

	photo, decodeErr := DecodePhoto(body)
	if decodeErr != nil {
		return nil, c.captureFailure(body, decodeErr)
	}

	c.logger.Info("random photo fetched",
		"photo_id", photo.ID,
		"author", photo.User.Username,
		"query", ResolveQuery(subject),
		"width", ResolveWidth(resolution),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return photo, nil
}

// captureFailure сохраняет сырое тело ответа и собирает ParseError.
// Если сохранить не удалось, возвращается FilesystemError, который
// оборачивает и ошибку записи, и ошибку разбора.
func (c *Client) captureFailure(body []byte, decodeErr error) error {
	parseErr := &domain.ParseError{Err: decodeErr, Body: body}

	path, err := c.capturer.Capture(body)
	if err != nil {
		c.logger.Error("failed to capture undecodable response", "error", err)

		var fsErr *domain.FilesystemError
		if errors.As(err, &fsErr) {
			return &domain.FilesystemError{Op: fsErr.Op, Path: fsErr.Path, Err: errors.Join(fsErr.Err, parseErr)}
		}
		return &domain.FilesystemError{Op: "capture response", Err: errors.Join(err, parseErr)}
	}

	parseErr.CapturePath = path
	return parseErr
}
