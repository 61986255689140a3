package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, court_id, user_id, date, start_time, end_time, description, created_at`

func (r *repository) CreateBooking(ctx context.Context, b *Booking, decide func(existing []Booking) error) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock the court row so concurrent create requests for the same court
	// serialize; without this, two requests could both pass the overlap
	// check against the same snapshot.
	var courtID int
	err = tx.GetContext(ctx, &courtID, `SELECT id FROM courts WHERE id = $1 FOR UPDATE`, b.CourtID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	var existing []Booking
	err = tx.SelectContext(ctx, &existing,
		`SELECT `+bookingColumns+` FROM bookings WHERE court_id = $1 AND date = $2 ORDER BY start_time`,
		b.CourtID, b.Date)
	if err != nil {
		return nil, err
	}

	if err := decide(existing); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO bookings (court_id, user_id, date, start_time, end_time, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns

	var created Booking
	err = tx.GetContext(ctx, &created, query,
		b.CourtID, b.UserID, b.Date, b.StartTime, b.EndTime, b.Description, b.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) DeleteBooking(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *repository) GetBookingsForCourtDate(ctx context.Context, courtID int, date Date) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = $1 AND date = $2
		ORDER BY start_time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, courtID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingsByUser(ctx context.Context, userID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date, start_time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

const detailColumns = `
	b.id,
	b.court_id,
	b.user_id,
	b.date,
	b.start_time,
	b.end_time,
	b.description,
	b.created_at,
	c.name AS court_name,
	u.name AS user_name,
	u.email AS user_email`

func (r *repository) GetBookingsByCourt(ctx context.Context, courtID int) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN courts c ON b.court_id = c.id
		JOIN users u ON b.user_id = u.id
		WHERE b.court_id = $1
		ORDER BY b.date, b.start_time
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, courtID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetAllBookings(ctx context.Context) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN courts c ON b.court_id = c.id
		JOIN users u ON b.user_id = u.id
		ORDER BY b.date, b.start_time
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
