package booking

import (
	"errors"
	"fmt"
)

// Kind classifies why a booking request was rejected. Every rejection is
// deterministic and user-presentable; none are retried.
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindSchedulingConflict   Kind = "scheduling_conflict"
	KindPastBooking          Kind = "past_booking"
	KindOutOfHours           Kind = "out_of_hours"
	KindPermissionDenied     Kind = "permission_denied"
	KindRestrictionViolation Kind = "restriction_violation"
	KindNotFound             Kind = "not_found"
	KindStoreError           Kind = "store_error"
)

// Rejection is a typed booking error. Conflicting is set for scheduling
// conflicts; Err carries the underlying failure for store errors.
type Rejection struct {
	Kind        Kind
	Message     string
	Conflicting *Booking
	Err         error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Message, r.Err)
	}
	return r.Message
}

func (r *Rejection) Unwrap() error { return r.Err }

func rejectf(kind Kind, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func conflictWith(b *Booking) *Rejection {
	return &Rejection{
		Kind:        KindSchedulingConflict,
		Message:     fmt.Sprintf("booking clashes with existing booking: %s", b.Slot()),
		Conflicting: b,
	}
}

func storeError(err error) *Rejection {
	return &Rejection{Kind: KindStoreError, Message: "booking store failure", Err: err}
}

var (
	ErrStartAfterEnd   = &Rejection{Kind: KindInvalidInput, Message: "start time must be before end time"}
	ErrCourtNotFound   = &Rejection{Kind: KindInvalidInput, Message: "invalid court ID"}
	ErrBeforeOpening   = &Rejection{Kind: KindOutOfHours, Message: "booking starts before the court opens"}
	ErrAfterClosing    = &Rejection{Kind: KindOutOfHours, Message: "booking ends after the court closes"}
	ErrInPast          = &Rejection{Kind: KindPastBooking, Message: "cannot make a booking in the past"}
	ErrNotLoggedIn     = &Rejection{Kind: KindPermissionDenied, Message: "you must be logged in"}
	ErrNotPermitted    = &Rejection{Kind: KindPermissionDenied, Message: "non-admins may only delete their own bookings"}
	ErrBookingNotFound = &Rejection{Kind: KindNotFound, Message: "booking not found"}
)

// KindOf extracts the rejection kind from an error, treating anything
// untyped as a store failure.
func KindOf(err error) Kind {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Kind
	}
	return KindStoreError
}
