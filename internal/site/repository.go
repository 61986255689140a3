package site

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSiteNotConfigured = errors.New("site not configured")

type Repository interface {
	GetSite(ctx context.Context) (*Site, error)
	UpsertSite(ctx context.Context, name, description, logoURL string) (*Site, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetSite(ctx context.Context) (*Site, error) {
	query := `
		SELECT id, name, description, logo_url, created_at
		FROM sites
		ORDER BY id
		LIMIT 1
	`

	var s Site
	err := r.db.GetContext(ctx, &s, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSiteNotConfigured
		}
		return nil, err
	}

	return &s, nil
}

// UpsertSite replaces the single site record, creating it on first use.
func (r *repository) UpsertSite(ctx context.Context, name, description, logoURL string) (*Site, error) {
	existing, err := r.GetSite(ctx)
	if err != nil && !errors.Is(err, ErrSiteNotConfigured) {
		return nil, err
	}

	var s Site
	if existing == nil {
		query := `
			INSERT INTO sites (name, description, logo_url)
			VALUES ($1, $2, $3)
			RETURNING id, name, description, logo_url, created_at
		`
		err = r.db.GetContext(ctx, &s, query, name, description, logoURL)
	} else {
		query := `
			UPDATE sites
			SET name = $2, description = $3, logo_url = $4
			WHERE id = $1
			RETURNING id, name, description, logo_url, created_at
		`
		err = r.db.GetContext(ctx, &s, query, existing.ID, name, description, logoURL)
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}
