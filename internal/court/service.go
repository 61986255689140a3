package court

import (
	"context"
	"errors"
)

var (
	ErrCourtNotFound = errors.New("court not found")
	ErrInvalidHours  = errors.New("opening time must be before closing time")
	ErrInvalidTime   = errors.New("invalid time of day")
)

type Service interface {
	CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error)
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int) (*Court, error)
	UpdateCourt(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error)
	DeleteCourt(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func intPtr(v int) *int { return &v }

func courtFromRequest(name, openingStr, closingStr string, minLen, maxLen, maxAdvance *int) (*Court, error) {
	opening, err := ParseTimeOfDay(openingStr)
	if err != nil {
		return nil, ErrInvalidTime
	}

	closing, err := ParseTimeOfDay(closingStr)
	if err != nil {
		return nil, ErrInvalidTime
	}

	if opening >= closing {
		return nil, ErrInvalidHours
	}

	return &Court{
		Name:                    name,
		OpeningTime:             opening,
		ClosingTime:             closing,
		MinBookingLengthMinutes: minLen,
		MaxBookingLengthMinutes: maxLen,
		MaxBookingDaysInAdvance: maxAdvance,
	}, nil
}

func (s *service) CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	c, err := courtFromRequest(req.Name, req.OpeningTime, req.ClosingTime,
		req.MinBookingLengthMinutes, req.MaxBookingLengthMinutes, req.MaxBookingDaysInAdvance)
	if err != nil {
		return nil, err
	}

	// Omitted restrictions fall back to the court defaults.
	if c.MinBookingLengthMinutes == nil {
		c.MinBookingLengthMinutes = intPtr(DefaultMinBookingLengthMinutes)
	}
	if c.MaxBookingLengthMinutes == nil {
		c.MaxBookingLengthMinutes = intPtr(DefaultMaxBookingLengthMinutes)
	}
	if c.MaxBookingDaysInAdvance == nil {
		c.MaxBookingDaysInAdvance = intPtr(DefaultMaxBookingDaysInAdvance)
	}

	return s.repo.CreateCourt(ctx, c)
}

func (s *service) GetAllCourts(ctx context.Context) ([]Court, error) {
	return s.repo.GetAllCourts(ctx)
}

func (s *service) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	c, err := s.repo.GetCourtByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCourt(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error) {
	c, err := courtFromRequest(req.Name, req.OpeningTime, req.ClosingTime,
		req.MinBookingLengthMinutes, req.MaxBookingLengthMinutes, req.MaxBookingDaysInAdvance)
	if err != nil {
		return nil, err
	}
	c.ID = id

	updated, err := s.repo.UpdateCourt(ctx, c)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *service) DeleteCourt(ctx context.Context, id int) error {
	err := s.repo.DeleteCourt(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCourtNotFound
		}
		return err
	}
	return nil
}
