package models

import "time"

type SiteImage struct {
	ID        string     `json:"id"`
	Key       string     `json:"key"`
	ImageURL  string     `json:"image_url"`
	AltText   *string    `json:"alt_text,omitempty"`
	Brand     string     `json:"brand"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
