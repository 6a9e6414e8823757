package domain

import (
	"net/url"
	"time"
)

// Photo представляет ответ Unsplash на запрос случайного фото.
// Обязательные поля имеют значимые типы и проверяются в validate,
// необязательные - указатели, nil означает "поле отсутствует или null".
type Photo struct {
	ID             string       `json:"id"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Width          int64        `json:"width"`
	Height         int64        `json:"height"`
	Color          string       `json:"color"`
	BlurHash       *string      `json:"blur_hash,omitempty"`
	Downloads      *int64       `json:"downloads,omitempty"`
	Likes          int64        `json:"likes"`
	LikedByUser    bool         `json:"liked_by_user"`
	Description    *string      `json:"description,omitempty"`
	AltDescription *string      `json:"alt_description,omitempty"`
	Exif           *Exif        `json:"exif,omitempty"`
	Location       *Location    `json:"location,omitempty"`
	Collections    []Collection `json:"current_user_collections,omitempty"`
	Urls           Urls         `json:"urls"`
	Categories     []Category   `json:"categories,omitempty"`
	Links          Links        `json:"links"`
	User           User         `json:"user"`
	Slug           *string      `json:"slug,omitempty"`
}

func (p *Photo) validate(path string) error {
	if p.ID == "" {
		return missing(path, "id")
	}
	if p.CreatedAt.IsZero() {
		return missing(path, "created_at")
	}
	if p.UpdatedAt.IsZero() {
		return missing(path, "updated_at")
	}
	if err := nonNegative(path, "width", p.Width); err != nil {
		return err
	}
	if err := nonNegative(path, "height", p.Height); err != nil {
		return err
	}
	if err := nonNegative(path, "likes", p.Likes); err != nil {
		return err
	}
	if p.Downloads != nil {
		if err := nonNegative(path, "downloads", *p.Downloads); err != nil {
			return err
		}
	}
	if err := p.Urls.validate(join(path, "urls")); err != nil {
		return err
	}
	if err := p.Links.validate(join(path, "links")); err != nil {
		return err
	}
	if err := p.User.validate(join(path, "user")); err != nil {
		return err
	}
	for i := range p.Collections {
		if err := p.Collections[i].validate(index(path, "current_user_collections", i)); err != nil {
			return err
		}
	}
	for i := range p.Categories {
		if err := p.Categories[i].validate(index(path, "categories", i)); err != nil {
			return err
		}
	}
	return nil
}

// Validate проверяет обязательные поля фото и всех вложенных записей.
func (p *Photo) Validate() error {
	return p.validate("")
}

// DownloadLocation возвращает ссылку для уведомления о скачивании, если она есть.
func (p *Photo) DownloadLocation() *string {
	return p.Links.DownloadLocation
}

// Urls - набор вариантов изображения разного разрешения.
type Urls struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

func (u *Urls) validate(path string) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"raw", u.Raw},
		{"full", u.Full},
		{"regular", u.Regular},
		{"small", u.Small},
		{"thumb", u.Thumb},
	} {
		if f.value == "" {
			return missing(path, f.name)
		}
	}

	// full - единственный URL, по которому реально идет скачивание
	parsed, err := url.Parse(u.Full)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return &InvalidFieldError{Path: join(path, "full"), Reason: "not an absolute URL"}
	}
	return nil
}

// Links - навигационные ссылки сущности.
type Links struct {
	Self             string  `json:"self"`
	HTML             string  `json:"html"`
	Photos           *string `json:"photos,omitempty"`
	Likes            *string `json:"likes,omitempty"`
	Portfolio        *string `json:"portfolio,omitempty"`
	Download         *string `json:"download,omitempty"`
	DownloadLocation *string `json:"download_location,omitempty"`
}

func (l *Links) validate(path string) error {
	if l.Self == "" {
		return missing(path, "self")
	}
	if l.HTML == "" {
		return missing(path, "html")
	}
	return nil
}

// Exif - метаданные камеры, каждое поле может отсутствовать.
type Exif struct {
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Name         *string `json:"name,omitempty"`
	ExposureTime *string `json:"exposure_time,omitempty"`
	Aperture     *string `json:"aperture,omitempty"`
	FocalLength  *string `json:"focal_length,omitempty"`
	ISO          *int64  `json:"iso,omitempty"`
}

// Location - геопривязка фото.
type Location struct {
	Name     *string   `json:"name,omitempty"`
	City     *string   `json:"city,omitempty"`
	Country  *string   `json:"country,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// Position - координаты; API отдает null для фото без геотегов.
type Position struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Category - устаревшая у Unsplash сущность-тег, встречается в старых ответах.
type Category struct {
	ID         FlexibleID `json:"id"`
	Title      string     `json:"title"`
	PhotoCount int64      `json:"photo_count"`
	Links      Links      `json:"links"`
}

func (c *Category) validate(path string) error {
	if c.ID == "" {
		return missing(path, "id")
	}
	if c.Title == "" {
		return missing(path, "title")
	}
	if err := nonNegative(path, "photo_count", c.PhotoCount); err != nil {
		return err
	}
	return c.Links.validate(join(path, "links"))
}
