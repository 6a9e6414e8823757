package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/Wallsplash/internal/adapter/desktop"
	"github.com/GoArmGo/Wallsplash/internal/adapter/diagnostics"
	"github.com/GoArmGo/Wallsplash/internal/adapter/download"
	"github.com/GoArmGo/Wallsplash/internal/adapter/unsplash"
	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/GoArmGo/Wallsplash/internal/logger"
	"github.com/GoArmGo/Wallsplash/internal/usecase"
)

var randomName = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)

const photoTemplate = `{
  "id": "Dwu85P9SOIk",
  "created_at": "2016-05-03T11:00:28-04:00",
  "updated_at": "2016-07-10T11:00:01-05:00",
  "width": 2448,
  "height": 3264,
  "color": "#6E633A",
  "likes": 12,
  "liked_by_user": false,
  "urls": {
    "raw": "%[1]s/assets/photo.jpg?raw",
    "full": "%[1]s/assets/photo.jpg",
    "regular": "%[1]s/assets/photo.jpg?w=1080",
    "small": "%[1]s/assets/photo.jpg?w=400",
    "thumb": "%[1]s/assets/photo.jpg?w=200"
  },
  "links": {
    "self": "%[1]s/photos/Dwu85P9SOIk",
    "html": "https://unsplash.com/photos/Dwu85P9SOIk"%[2]s
  },
  "user": {"id": "QPxL2MGqfrw", "username": "exampleuser", "name": "Joe Example"}
}`

// fakeUnsplash отдает описание фото, сам файл и принимает уведомления о скачивании
type fakeUnsplash struct {
	server    *httptest.Server
	asset     []byte
	mu        sync.Mutex
	body      []byte
	pingDelay time.Duration
	pingCalls atomic.Int32
}

func newFakeUnsplash(t *testing.T, withDownloadLocation bool) *fakeUnsplash {
	t.Helper()
	f := &fakeUnsplash{asset: bytes.Repeat([]byte{0xFF, 0xD8, 0x00, 0x42}, 64*1024)}

	r := chi.NewRouter()
	r.Get("/photos/random", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		body := f.body
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
	r.Get("/assets/photo.jpg", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(f.asset)
	})
	r.Get("/photos/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		f.pingCalls.Add(1)
		f.mu.Lock()
		delay := f.pingDelay
		f.mu.Unlock()
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		_, _ = w.Write([]byte(`{"url":"ok"}`))
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)

	extra := ""
	if withDownloadLocation {
		extra = fmt.Sprintf(",\n    \"download_location\": \"%s/photos/Dwu85P9SOIk/download\"", f.server.URL)
	}
	f.body = []byte(fmt.Sprintf(photoTemplate, f.server.URL, extra))
	return f
}

func (f *fakeUnsplash) setBody(body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body = body
}

func (f *fakeUnsplash) setPingDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingDelay = d
}

type recordingSetter struct{ paths []string }

func (s *recordingSetter) SetWallpaper(_ context.Context, imagePath string) error {
	s.paths = append(s.paths, imagePath)
	return nil
}

type harness struct {
	api         *fakeUnsplash
	picturesDir string
	jsonsDir    string
	setter      *recordingSetter
	useCase     usecase.WallpaperUseCase
}

func newHarness(t *testing.T, api *fakeUnsplash, timeout time.Duration) *harness {
	t.Helper()
	log := logger.Discard()
	httpClient := &http.Client{Timeout: timeout}
	creds := unsplash.Credentials{AccessKey: "test-access-key", Version: "v1"}

	h := &harness{
		api:         api,
		picturesDir: t.TempDir(),
		jsonsDir:    filepath.Join(t.TempDir(), "jsons"),
		setter:      &recordingSetter{},
	}
	_, err := desktop.PrepareBackgroundsDir(h.picturesDir)
	require.NoError(t, err)

	h.useCase = usecase.NewWallpaperUseCase(
		unsplash.NewClient(httpClient, api.server.URL, creds, diagnostics.NewCapturer(h.jsonsDir, log), log),
		download.NewDownloader(httpClient, log),
		h.setter,
		unsplash.NewNotifier(httpClient, creds, log),
		h.picturesDir,
		usecase.Reporters{},
		log,
	)
	return h
}

func TestPipeline_EndToEnd(t *testing.T) {
	api := newFakeUnsplash(t, true)
	h := newHarness(t, api, 5*time.Second)

	result, err := h.useCase.Run(context.Background(), usecase.Request{Subject: "ocean", Resolution: "hd"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(h.picturesDir, download.BackgroundsDir), filepath.Dir(result.Path))
	assert.Regexp(t, randomName, filepath.Base(result.Path))

	saved, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(api.asset, saved), "saved file must match served bytes")

	assert.Equal(t, []string{result.Path}, h.setter.paths)
	assert.Equal(t, int32(1), api.pingCalls.Load())
	assert.Equal(t, domain.PingSent, result.Ping)
	assert.NoDirExists(t, h.jsonsDir)
}

func TestPipeline_NoDownloadLocationMeansNoPing(t *testing.T) {
	api := newFakeUnsplash(t, false)
	h := newHarness(t, api, 5*time.Second)

	result, err := h.useCase.Run(context.Background(), usecase.Request{})
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.Equal(t, domain.PingSkipped, result.Ping)
	assert.Zero(t, api.pingCalls.Load())
}

func TestPipeline_PingTimeoutStillSucceeds(t *testing.T) {
	api := newFakeUnsplash(t, true)
	api.setPingDelay(2 * time.Second)
	h := newHarness(t, api, 300*time.Millisecond)

	result, err := h.useCase.Run(context.Background(), usecase.Request{})
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.Equal(t, domain.PingFailed, result.Ping)
	assert.FileExists(t, result.Path)
}

func TestPipeline_InvalidBodyIsCapturedAndFatal(t *testing.T) {
	api := newFakeUnsplash(t, true)
	body := []byte("<html><body>upstream overloaded</body></html>")
	api.setBody(body)
	h := newHarness(t, api, 5*time.Second)

	result, err := h.useCase.Run(context.Background(), usecase.Request{})
	require.Error(t, err)

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageFetchPhoto, stageErr.Stage)

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, h.jsonsDir, filepath.Dir(parseErr.CapturePath))
	assert.Regexp(t, randomName, filepath.Base(parseErr.CapturePath))
	assert.Contains(t, err.Error(), "upstream overloaded")

	captured, readErr := os.ReadFile(parseErr.CapturePath)
	require.NoError(t, readErr)
	assert.Equal(t, body, captured)

	assert.Empty(t, result.Path)
	assert.Empty(t, h.setter.paths)
	assert.Zero(t, api.pingCalls.Load())

	entries, readErr := os.ReadDir(filepath.Join(h.picturesDir, download.BackgroundsDir))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
