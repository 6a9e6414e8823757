package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Collection - коллекция, в которую текущий пользователь добавил фото.
type Collection struct {
	ID          FlexibleID  `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
	Curated     bool        `json:"curated"`
	Featured    bool        `json:"featured"`
	TotalPhotos int64       `json:"total_photos"`
	CoverPhoto  *CoverPhoto `json:"cover_photo,omitempty"`
	User        *User       `json:"user,omitempty"`
	Links       *Links      `json:"links,omitempty"`
}

func (c *Collection) validate(path string) error {
	if c.ID == "" {
		return missing(path, "id")
	}
	if c.Title == "" {
		return missing(path, "title")
	}
	if err := nonNegative(path, "total_photos", c.TotalPhotos); err != nil {
		return err
	}
	if c.CoverPhoto != nil {
		if err := c.CoverPhoto.validate(join(path, "cover_photo")); err != nil {
			return err
		}
	}
	if c.User != nil {
		if err := c.User.validate(join(path, "user")); err != nil {
			return err
		}
	}
	if c.Links != nil {
		return c.Links.validate(join(path, "links"))
	}
	return nil
}

// CoverPhoto - облегченная версия Photo, которой API описывает обложку коллекции.
type CoverPhoto struct {
	ID          string     `json:"id"`
	Width       int64      `json:"width"`
	Height      int64      `json:"height"`
	Color       *string    `json:"color,omitempty"`
	Likes       int64      `json:"likes"`
	LikedByUser bool       `json:"liked_by_user"`
	Description *string    `json:"description,omitempty"`
	User        *User      `json:"user,omitempty"`
	Urls        Urls       `json:"urls"`
	Categories  []Category `json:"categories,omitempty"`
	Links       *Links     `json:"links,omitempty"`
}

func (c *CoverPhoto) validate(path string) error {
	if c.ID == "" {
		return missing(path, "id")
	}
	if err := nonNegative(path, "likes", c.Likes); err != nil {
		return err
	}
	if err := c.Urls.validate(join(path, "urls")); err != nil {
		return err
	}
	if c.User != nil {
		if err := c.User.validate(join(path, "user")); err != nil {
			return err
		}
	}
	for i := range c.Categories {
		if err := c.Categories[i].validate(index(path, "categories", i)); err != nil {
			return err
		}
	}
	if c.Links != nil {
		return c.Links.validate(join(path, "links"))
	}
	return nil
}

// FlexibleID принимает идентификатор и строкой, и числом:
// у коллекций и категорий Unsplash тип id менялся между версиями API.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler
func (id FlexibleID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
