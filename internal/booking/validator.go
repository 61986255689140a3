package booking

import (
	"time"

	"github.com/ComputahSaysNo/catz-court-booking/internal/court"
)

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share any instant. Abutting intervals (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 court.TimeOfDay) bool {
	return s1 < e2 && e1 > s2
}

// ValidateProposal checks a proposed booking against the court's opening
// hours, the current time and the existing bookings for the same court and
// date. It is a pure function: callers supply everything it reads. Checks
// run in a fixed order and the first failure wins.
func ValidateProposal(p Proposal, crt *court.Court, existing []Booking, now time.Time) error {
	if p.StartTime >= p.EndTime {
		return ErrStartAfterEnd
	}

	if crt == nil {
		return ErrCourtNotFound
	}

	if p.StartTime < crt.OpeningTime {
		return ErrBeforeOpening
	}

	if p.EndTime > crt.ClosingTime {
		return ErrAfterClosing
	}

	// A booking is in the past when its start instant has already gone,
	// so same-day slots earlier than the current time are rejected too.
	today := DateOf(now)
	nowMinutes := court.TimeOfDay(now.Hour()*60 + now.Minute())
	if p.Date.Before(today) || (p.Date.Equal(today) && p.StartTime < nowMinutes) {
		return ErrInPast
	}

	for i := range existing {
		b := &existing[i]
		if b.CourtID != p.CourtID || !b.Date.Equal(p.Date) {
			continue
		}
		if Overlaps(p.StartTime, p.EndTime, b.StartTime, b.EndTime) {
			return conflictWith(b)
		}
	}

	return nil
}
