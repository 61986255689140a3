package booking

import "context"

type Repository interface {
	// CreateBooking inserts b after calling decide with the existing
	// bookings for the same court and date. The read and the insert run in
	// one transaction with the court row locked, so two concurrent requests
	// for the same court cannot both pass the overlap check.
	CreateBooking(ctx context.Context, b *Booking, decide func(existing []Booking) error) (*Booking, error)

	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	DeleteBooking(ctx context.Context, id int) error
	GetBookingsForCourtDate(ctx context.Context, courtID int, date Date) ([]Booking, error)
	GetBookingsByUser(ctx context.Context, userID int) ([]Booking, error)
	GetBookingsByCourt(ctx context.Context, courtID int) ([]BookingWithDetails, error)
	GetAllBookings(ctx context.Context) ([]BookingWithDetails, error)
}
