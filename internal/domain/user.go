// internal/domain/user.go
package domain

import "time"

// User представляет автора фото или коллекции.
// API опускает описательные поля в зависимости от контекста,
// поэтому обязательны только id и username.
type User struct {
	ID                string        `json:"id"`
	Username          string        `json:"username"`
	Name              *string       `json:"name,omitempty"`
	FirstName         *string       `json:"first_name,omitempty"`
	LastName          *string       `json:"last_name,omitempty"`
	UpdatedAt         *time.Time    `json:"updated_at,omitempty"`
	TwitterUsername   *string       `json:"twitter_username,omitempty"`
	InstagramUsername *string       `json:"instagram_username,omitempty"`
	PortfolioURL      *string       `json:"portfolio_url,omitempty"`
	Bio               *string       `json:"bio,omitempty"`
	Location          *string       `json:"location,omitempty"`
	TotalLikes        int64         `json:"total_likes"`
	TotalPhotos       int64         `json:"total_photos"`
	TotalCollections  int64         `json:"total_collections"`
	ProfileImage      *ProfileImage `json:"profile_image,omitempty"`
	Links             *Links        `json:"links,omitempty"`
}

func (u *User) validate(path string) error {
	if u.ID == "" {
		return missing(path, "id")
	}
	if u.Username == "" {
		return missing(path, "username")
	}
	if err := nonNegative(path, "total_likes", u.TotalLikes); err != nil {
		return err
	}
	if err := nonNegative(path, "total_photos", u.TotalPhotos); err != nil {
		return err
	}
	if err := nonNegative(path, "total_collections", u.TotalCollections); err != nil {
		return err
	}
	if u.Links != nil {
		return u.Links.validate(join(path, "links"))
	}
	return nil
}

// DisplayName возвращает имя автора, а при его отсутствии - username.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}

// ProfileImage - аватар пользователя в трех размерах.
type ProfileImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}
