package court

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("court not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const courtColumns = `id, name, opening_time, closing_time,
	min_booking_length_minutes, max_booking_length_minutes, max_booking_days_in_advance, created_at`

func (r *repository) CreateCourt(ctx context.Context, c *Court) (*Court, error) {
	query := `
		INSERT INTO courts (name, opening_time, closing_time,
			min_booking_length_minutes, max_booking_length_minutes, max_booking_days_in_advance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + courtColumns

	var created Court
	err := r.db.GetContext(ctx, &created, query,
		c.Name, c.OpeningTime, c.ClosingTime,
		c.MinBookingLengthMinutes, c.MaxBookingLengthMinutes, c.MaxBookingDaysInAdvance,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetAllCourts(ctx context.Context) ([]Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts ORDER BY name`

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	var c Court
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) UpdateCourt(ctx context.Context, c *Court) (*Court, error) {
	query := `
		UPDATE courts
		SET name = $2, opening_time = $3, closing_time = $4,
			min_booking_length_minutes = $5, max_booking_length_minutes = $6, max_booking_days_in_advance = $7
		WHERE id = $1
		RETURNING ` + courtColumns

	var updated Court
	err := r.db.GetContext(ctx, &updated, query,
		c.ID, c.Name, c.OpeningTime, c.ClosingTime,
		c.MinBookingLengthMinutes, c.MaxBookingLengthMinutes, c.MaxBookingDaysInAdvance,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (r *repository) DeleteCourt(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
