package court

import "time"

// Defaults applied when a court is created without explicit restriction
// values. A NULL restriction means "no limit".
const (
	DefaultMinBookingLengthMinutes = 60
	DefaultMaxBookingLengthMinutes = 180
	DefaultMaxBookingDaysInAdvance = 14
)

type Court struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	OpeningTime TimeOfDay `db:"opening_time" json:"opening_time"`
	ClosingTime TimeOfDay `db:"closing_time" json:"closing_time"`

	// Booking restrictions. Nil means unrestricted; captains and admins
	// bypass all three regardless.
	MinBookingLengthMinutes *int `db:"min_booking_length_minutes" json:"min_booking_length_minutes"`
	MaxBookingLengthMinutes *int `db:"max_booking_length_minutes" json:"max_booking_length_minutes"`
	MaxBookingDaysInAdvance *int `db:"max_booking_days_in_advance" json:"max_booking_days_in_advance"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateCourtRequest struct {
	Name        string `json:"name" binding:"required"`
	OpeningTime string `json:"opening_time" binding:"required,timeofday"`
	ClosingTime string `json:"closing_time" binding:"required,timeofday"`

	MinBookingLengthMinutes *int `json:"min_booking_length_minutes" binding:"omitempty,min=1"`
	MaxBookingLengthMinutes *int `json:"max_booking_length_minutes" binding:"omitempty,min=1"`
	MaxBookingDaysInAdvance *int `json:"max_booking_days_in_advance" binding:"omitempty,min=0"`
}

type UpdateCourtRequest struct {
	Name        string `json:"name" binding:"required"`
	OpeningTime string `json:"opening_time" binding:"required,timeofday"`
	ClosingTime string `json:"closing_time" binding:"required,timeofday"`

	MinBookingLengthMinutes *int `json:"min_booking_length_minutes" binding:"omitempty,min=1"`
	MaxBookingLengthMinutes *int `json:"max_booking_length_minutes" binding:"omitempty,min=1"`
	MaxBookingDaysInAdvance *int `json:"max_booking_days_in_advance" binding:"omitempty,min=0"`
}
