package booking

import (
	"time"

	"github.com/ComputahSaysNo/catz-court-booking/internal/auth"
	"github.com/ComputahSaysNo/catz-court-booking/internal/court"
)

// AuthorizeCreate applies the identity-dependent booking rules. Captains and
// admins bypass the court's length and advance-window restrictions; everyone
// must be authenticated.
func AuthorizeCreate(ident auth.Identity, p Proposal, crt *court.Court, now time.Time) error {
	if !ident.Authenticated {
		return ErrNotLoggedIn
	}

	if ident.Privileged() {
		return nil
	}

	duration := p.DurationMinutes()

	if crt.MinBookingLengthMinutes != nil && duration < *crt.MinBookingLengthMinutes {
		return rejectf(KindRestrictionViolation,
			"booking is too short: duration %d min vs court minimum of %d min",
			duration, *crt.MinBookingLengthMinutes)
	}

	if crt.MaxBookingLengthMinutes != nil && duration > *crt.MaxBookingLengthMinutes {
		return rejectf(KindRestrictionViolation,
			"booking is too long: duration %d min vs court maximum of %d min",
			duration, *crt.MaxBookingLengthMinutes)
	}

	if crt.MaxBookingDaysInAdvance != nil {
		daysAhead := p.Date.DaysSince(DateOf(now))
		if daysAhead > *crt.MaxBookingDaysInAdvance {
			return rejectf(KindRestrictionViolation,
				"booking is too far in advance (%d days, max allowed is %d days)",
				daysAhead, *crt.MaxBookingDaysInAdvance)
		}
	}

	return nil
}

// AuthorizeDelete permits deletion by the booking's owner or an admin.
func AuthorizeDelete(ident auth.Identity, target *Booking) error {
	if !ident.Authenticated {
		return ErrNotLoggedIn
	}

	if target.UserID == ident.UserID || ident.IsAdmin() {
		return nil
	}

	return ErrNotPermitted
}
