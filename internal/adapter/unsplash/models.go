package unsplash

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultSubject используется, когда тема не задана.
	DefaultSubject = "space stars"

	// orientation всегда landscape: фото идет на фон рабочего стола
	orientationLandscape = "landscape"

	ResolutionHD = "hd"
	Resolution4K = "4k"

	widthHD = 1920
	width4K = 3840
)

// Credentials - ключ доступа и версия API, общие для всех авторизованных запросов.
type Credentials struct {
	AccessKey string
	Version   string
}

// apply добавляет заголовки авторизации к запросу
func (c Credentials) apply(req *http.Request) {
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)
	req.Header.Set("Accept-Version", c.Version)
}

// ResolveWidth переводит подсказку разрешения в ширину в пикселях.
// "hd" дает 1920, все остальное, включая "4k" и пустую строку, дает 3840.
func ResolveWidth(resolution string) int {
	if resolution == ResolutionHD {
		return widthHD
	}
	return width4K
}

// ResolveQuery возвращает тему запроса или "space stars", если тема пустая.
func ResolveQuery(subject string) string {
	if subject == "" {
		return DefaultSubject
	}
	return subject
}

// RandomPhotoQuery - параметры запроса /photos/random.
type RandomPhotoQuery struct {
	Subject    string
	Resolution string
}

// Values собирает query-параметры запроса.
func (q RandomPhotoQuery) Values() url.Values {
	params := url.Values{}
	params.Set("orientation", orientationLandscape)
	params.Set("query", ResolveQuery(q.Subject))
	params.Set("w", strconv.Itoa(ResolveWidth(q.Resolution)))
	return params
}
