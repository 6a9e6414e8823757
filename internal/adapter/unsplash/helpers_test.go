package unsplash

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testAccessKey = "test-access-key"

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// mutateFixture загружает фикстуру как map, применяет mutate и сериализует обратно
func mutateFixture(t *testing.T, name string, mutate func(doc map[string]any)) []byte {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(loadFixture(t, name), &doc))
	mutate(doc)
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func child(t *testing.T, doc map[string]any, key string) map[string]any {
	t.Helper()
	m, ok := doc[key].(map[string]any)
	require.True(t, ok, "fixture key %q is not an object", key)
	return m
}

// fakeAPI - поддельный Unsplash API на chi-роутере
type fakeAPI struct {
	server *httptest.Server

	mu          sync.Mutex
	randomBody  []byte
	randomCode  int
	lastQuery   url.Values
	lastHeaders http.Header
	pingHeaders http.Header

	randomCalls atomic.Int32
	pingCalls   atomic.Int32
	pingDelay   time.Duration
}

func newFakeAPI(t *testing.T, body []byte) *fakeAPI {
	t.Helper()
	api := &fakeAPI{randomBody: body, randomCode: http.StatusOK}

	r := chi.NewRouter()
	r.Get("/photos/random", func(w http.ResponseWriter, r *http.Request) {
		api.randomCalls.Add(1)
		api.mu.Lock()
		api.lastQuery = r.URL.Query()
		api.lastHeaders = r.Header.Clone()
		code, payload := api.randomCode, api.randomBody
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write(payload)
	})
	r.Get("/photos/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		api.pingCalls.Add(1)
		api.mu.Lock()
		api.pingHeaders = r.Header.Clone()
		delay := api.pingDelay
		api.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://images.unsplash.com/photo"}`))
	})

	api.server = httptest.NewServer(r)
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) URL() string { return a.server.URL }

func (a *fakeAPI) setRandomStatus(code int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.randomCode = code
}

func (a *fakeAPI) setPingDelay(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pingDelay = d
}

func (a *fakeAPI) query() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastQuery
}

func (a *fakeAPI) headers() http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastHeaders
}

// recordingCapturer запоминает сохраненные тела вместо записи на диск
type recordingCapturer struct {
	bodies [][]byte
	err    error
}

func (c *recordingCapturer) Capture(body []byte) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.bodies = append(c.bodies, append([]byte(nil), body...))
	return filepath.Join("jsons", "AbCdEf1234"), nil
}
