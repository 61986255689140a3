package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ComputahSaysNo/catz-court-booking/internal/auth"
	"github.com/ComputahSaysNo/catz-court-booking/internal/clock"
	"github.com/ComputahSaysNo/catz-court-booking/internal/court"
	"github.com/ComputahSaysNo/catz-court-booking/internal/email"
	"github.com/ComputahSaysNo/catz-court-booking/internal/metrics"
	"github.com/ComputahSaysNo/catz-court-booking/internal/user"
)

type Service interface {
	Create(ctx context.Context, ident auth.Identity, req CreateBookingRequest) (*Booking, error)
	Delete(ctx context.Context, ident auth.Identity, bookingID int) error
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetBookingsByUser(ctx context.Context, userID int) ([]Booking, error)
	GetBookingsByCourt(ctx context.Context, courtID int) ([]BookingWithDetails, error)
	GetBookingsForCourtDate(ctx context.Context, courtID int, date Date) ([]Booking, error)
	GetAllBookings(ctx context.Context) ([]BookingWithDetails, error)
}

type service struct {
	repo         Repository
	courtRepo    court.Repository
	userRepo     user.Repository
	emailService *email.Service
	clock        clock.Clock
}

func NewService(
	repo Repository,
	courtRepo court.Repository,
	userRepo user.Repository,
	emailService *email.Service,
	clk clock.Clock,
) Service {
	return &service{
		repo:         repo,
		courtRepo:    courtRepo,
		userRepo:     userRepo,
		emailService: emailService,
		clock:        clk,
	}
}

func proposalFromRequest(req CreateBookingRequest) (Proposal, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return Proposal{}, rejectf(KindInvalidInput, "invalid date %q, use YYYY-MM-DD", req.Date)
	}

	start, err := court.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return Proposal{}, rejectf(KindInvalidInput, "invalid start time %q, use HH:MM", req.StartTime)
	}

	end, err := court.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return Proposal{}, rejectf(KindInvalidInput, "invalid end time %q, use HH:MM", req.EndTime)
	}

	return Proposal{
		CourtID:     req.CourtID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Description: req.Description,
	}, nil
}

func (s *service) Create(ctx context.Context, ident auth.Identity, req CreateBookingRequest) (*Booking, error) {
	p, err := proposalFromRequest(req)
	if err != nil {
		metrics.RecordBookingRejection(string(KindOf(err)))
		return nil, err
	}

	crt, err := s.courtRepo.GetCourtByID(ctx, p.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			metrics.RecordBookingRejection(string(KindInvalidInput))
			return nil, ErrCourtNotFound
		}
		return nil, storeError(err)
	}

	now := s.clock.Now()
	b := &Booking{
		CourtID:     p.CourtID,
		UserID:      ident.UserID,
		Date:        p.Date,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Description: p.Description,
		CreatedAt:   now,
	}

	created, err := s.repo.CreateBooking(ctx, b, func(existing []Booking) error {
		if err := ValidateProposal(p, crt, existing, now); err != nil {
			return err
		}
		return AuthorizeCreate(ident, p, crt, now)
	})
	if err != nil {
		var r *Rejection
		if errors.As(err, &r) {
			metrics.RecordBookingRejection(string(r.Kind))
			return nil, err
		}
		return nil, storeError(err)
	}

	metrics.RecordBookingCreated()
	s.notify(ctx, ident.UserID, func(u *user.User) {
		s.emailService.SendBookingConfirmation(ctx, u.Email, u.Name, crt.Name, created.Date.String(), created.StartTime.String(), created.EndTime.String())
	})

	return created, nil
}

func (s *service) Delete(ctx context.Context, ident auth.Identity, bookingID int) error {
	target, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		var r *Rejection
		if errors.As(err, &r) {
			return err
		}
		return storeError(err)
	}

	if err := AuthorizeDelete(ident, target); err != nil {
		metrics.RecordBookingRejection(string(KindOf(err)))
		return err
	}

	if err := s.repo.DeleteBooking(ctx, bookingID); err != nil {
		var r *Rejection
		if errors.As(err, &r) {
			return err
		}
		return storeError(err)
	}

	metrics.RecordBookingDeleted()

	courtName := fmt.Sprintf("court %d", target.CourtID)
	if crt, err := s.courtRepo.GetCourtByID(ctx, target.CourtID); err == nil {
		courtName = crt.Name
	}
	s.notify(ctx, target.UserID, func(u *user.User) {
		s.emailService.SendBookingCancellation(ctx, u.Email, u.Name, courtName, target.Date.String(), target.StartTime.String(), target.EndTime.String())
	})

	return nil
}

// notify looks up the booking owner and runs send with their record;
// notification failures never fail the booking operation.
func (s *service) notify(ctx context.Context, userID int, send func(u *user.User)) {
	if s.emailService == nil {
		return
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || u == nil {
		return
	}

	send(u)
}

func (s *service) GetByID(ctx context.Context, id int) (*Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *service) GetBookingsByUser(ctx context.Context, userID int) ([]Booking, error) {
	return s.repo.GetBookingsByUser(ctx, userID)
}

func (s *service) GetBookingsByCourt(ctx context.Context, courtID int) ([]BookingWithDetails, error) {
	return s.repo.GetBookingsByCourt(ctx, courtID)
}

func (s *service) GetBookingsForCourtDate(ctx context.Context, courtID int, date Date) ([]Booking, error) {
	return s.repo.GetBookingsForCourtDate(ctx, courtID, date)
}

func (s *service) GetAllBookings(ctx context.Context) ([]BookingWithDetails, error) {
	return s.repo.GetAllBookings(ctx)
}
