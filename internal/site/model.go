package site

import "time"

// Site holds the club-wide display settings. One record is expected; the
// API always serves the first row.
type Site struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	LogoURL     string    `db:"logo_url" json:"logo_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type UpdateSiteRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url"`
}
