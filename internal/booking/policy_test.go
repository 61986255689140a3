package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComputahSaysNo/catz-court-booking/internal/auth"
	"github.com/ComputahSaysNo/catz-court-booking/internal/court"
)

func intPtr(v int) *int { return &v }

func restrictedCourt() *court.Court {
	c := testCourt()
	c.MinBookingLengthMinutes = intPtr(60)
	c.MaxBookingLengthMinutes = intPtr(180)
	c.MaxBookingDaysInAdvance = intPtr(14)
	return c
}

func member() auth.Identity {
	return auth.Identity{UserID: 5, Email: "member@stcatz.cam.ac.uk", Authenticated: true}
}

func captain() auth.Identity {
	return auth.Identity{UserID: 6, Email: "captain@stcatz.cam.ac.uk", Roles: []string{auth.RoleCaptain}, Authenticated: true}
}

func admin() auth.Identity {
	return auth.Identity{UserID: 7, Email: "admin@stcatz.cam.ac.uk", Roles: []string{auth.RoleAdmin}, Authenticated: true}
}

func TestAuthorizeCreate(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tomorrow := NewDate(2026, 3, 15)

	tests := []struct {
		name     string
		ident    auth.Identity
		proposal Proposal
		wantKind Kind
	}{
		{
			name:     "member within restrictions",
			ident:    member(),
			proposal: Proposal{CourtID: 1, Date: tomorrow, StartTime: tod(10, 0), EndTime: tod(11, 0)},
			wantKind: "",
		},
		{
			name:     "anonymous rejected",
			ident:    auth.Anonymous(),
			proposal: Proposal{CourtID: 1, Date: tomorrow, StartTime: tod(10, 0), EndTime: tod(11, 0)},
			wantKind: KindPermissionDenied,
		},
		{
			name:     "too short",
			ident:    member(),
			proposal: Proposal{CourtID: 1, Date: tomorrow, StartTime: tod(10, 0), EndTime: tod(10, 15)},
			wantKind: KindRestrictionViolation,
		},
		{
			name:     "too long",
			ident:    member(),
			proposal: Proposal{CourtID: 1, Date: tomorrow, StartTime: tod(10, 0), EndTime: tod(14, 0)},
			wantKind: KindRestrictionViolation,
		},
		{
			name:     "too far in advance",
			ident:    member(),
			proposal: Proposal{CourtID: 1, Date: NewDate(2026, 4, 3), StartTime: tod(10, 0), EndTime: tod(11, 0)},
			wantKind: KindRestrictionViolation,
		},
		{
			name:     "exactly at advance limit",
			ident:    member(),
			proposal: Proposal{CourtID: 1, Date: NewDate(2026, 3, 28), StartTime: tod(10, 0), EndTime: tod(11, 0)},
			wantKind: "",
		},
		{
			name:     "captain bypasses length restrictions",
			ident:    captain(),
			proposal: Proposal{CourtID: 1, Date: tomorrow, StartTime: tod(10, 0), EndTime: tod(10, 15)},
			wantKind: "",
		},
		{
			name:     "admin bypasses advance window",
			ident:    admin(),
			proposal: Proposal{CourtID: 1, Date: NewDate(2026, 6, 1), StartTime: tod(10, 0), EndTime: tod(11, 0)},
			wantKind: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeCreate(tt.ident, tt.proposal, restrictedCourt(), now)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestAuthorizeCreateUnrestrictedCourt(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// Nil restrictions mean no limit even for ordinary members.
	p := Proposal{CourtID: 1, Date: NewDate(2026, 9, 1), StartTime: tod(9, 0), EndTime: tod(21, 0)}
	assert.NoError(t, AuthorizeCreate(member(), p, testCourt(), now))
}

func TestAuthorizeCreateRestrictionMessages(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tomorrow := NewDate(2026, 3, 15)

	err := AuthorizeCreate(member(), Proposal{CourtID: 1, Date: tomorrow, StartTime: tod(10, 0), EndTime: tod(10, 15)}, restrictedCourt(), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
	assert.Contains(t, err.Error(), "15 min")
	assert.Contains(t, err.Error(), "60 min")

	err = AuthorizeCreate(member(), Proposal{CourtID: 1, Date: NewDate(2026, 4, 3), StartTime: tod(10, 0), EndTime: tod(11, 0)}, restrictedCourt(), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too far in advance")
	assert.Contains(t, err.Error(), "20 days")
}

func TestAuthorizeDelete(t *testing.T) {
	target := &Booking{ID: 1, CourtID: 1, UserID: 5}

	tests := []struct {
		name     string
		ident    auth.Identity
		wantKind Kind
	}{
		{"owner", member(), ""},
		{"admin", admin(), ""},
		{"anonymous", auth.Anonymous(), KindPermissionDenied},
		{"captain who does not own it", captain(), KindPermissionDenied},
		{"other member", auth.Identity{UserID: 99, Authenticated: true}, KindPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeDelete(tt.ident, target)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}
