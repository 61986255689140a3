package booking

import (
	"fmt"
	"time"

	"github.com/ComputahSaysNo/catz-court-booking/internal/court"
)

// Booking is a reserved [start, end) interval on a court, owned by a user.
// Bookings are never mutated in place: a booking exists or it does not.
type Booking struct {
	ID          int             `db:"id" json:"id"`
	CourtID     int             `db:"court_id" json:"court_id"`
	UserID      int             `db:"user_id" json:"user_id"`
	Date        Date            `db:"date" json:"date"`
	StartTime   court.TimeOfDay `db:"start_time" json:"start_time"`
	EndTime     court.TimeOfDay `db:"end_time" json:"end_time"`
	Description string          `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Slot renders the booked interval for messages, e.g.
// "14 Mar 10:00 - 11:00".
func (b *Booking) Slot() string {
	return fmt.Sprintf("%s %s - %s", b.Date.Format("02 Jan"), b.StartTime, b.EndTime)
}

// DurationMinutes is the booked length in whole minutes.
func (b *Booking) DurationMinutes() int {
	return b.EndTime.Minutes() - b.StartTime.Minutes()
}

// BookingWithDetails joins in the court and owner for listing endpoints.
type BookingWithDetails struct {
	Booking
	CourtName string `db:"court_name" json:"court_name"`
	UserName  string `db:"user_name" json:"user_name"`
	UserEmail string `db:"user_email" json:"user_email"`
}

// Proposal is a booking request after parsing, before validation.
type Proposal struct {
	CourtID     int
	Date        Date
	StartTime   court.TimeOfDay
	EndTime     court.TimeOfDay
	Description string
}

func (p Proposal) DurationMinutes() int {
	return p.EndTime.Minutes() - p.StartTime.Minutes()
}

type CreateBookingRequest struct {
	CourtID     int    `json:"court_id" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"required,timeofday"`
	EndTime     string `json:"end_time" binding:"required,timeofday"`
	Description string `json:"description"`
}

type CreateBookingResponse struct {
	Booking *Booking `json:"booking"`
}

type DeleteBookingResponse struct {
	Message string `json:"message" example:"Booking deleted successfully"`
}
