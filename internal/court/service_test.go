package court

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourtRepo struct{ mock.Mock }

func (m *MockCourtRepo) CreateCourt(ctx context.Context, c *Court) (*Court, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *MockCourtRepo) GetAllCourts(ctx context.Context) ([]Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Court), args.Error(1)
}

func (m *MockCourtRepo) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *MockCourtRepo) UpdateCourt(ctx context.Context, c *Court) (*Court, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *MockCourtRepo) DeleteCourt(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default restrictions when omitted", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		repo.On("CreateCourt", mock.Anything, mock.MatchedBy(func(c *Court) bool {
			return c.Name == "Centre Court" &&
				c.OpeningTime == TimeOfDay(9*60) &&
				c.ClosingTime == TimeOfDay(21*60) &&
				c.MinBookingLengthMinutes != nil && *c.MinBookingLengthMinutes == DefaultMinBookingLengthMinutes &&
				c.MaxBookingLengthMinutes != nil && *c.MaxBookingLengthMinutes == DefaultMaxBookingLengthMinutes &&
				c.MaxBookingDaysInAdvance != nil && *c.MaxBookingDaysInAdvance == DefaultMaxBookingDaysInAdvance
		})).Return(&Court{ID: 1, Name: "Centre Court"}, nil)

		created, err := svc.CreateCourt(ctx, CreateCourtRequest{
			Name:        "Centre Court",
			OpeningTime: "09:00",
			ClosingTime: "21:00",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("keeps explicit restrictions", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		minLen := 30
		repo.On("CreateCourt", mock.Anything, mock.MatchedBy(func(c *Court) bool {
			return *c.MinBookingLengthMinutes == 30
		})).Return(&Court{ID: 2}, nil)

		_, err := svc.CreateCourt(ctx, CreateCourtRequest{
			Name:                    "Astro",
			OpeningTime:             "08:00",
			ClosingTime:             "22:00",
			MinBookingLengthMinutes: &minLen,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects opening after closing", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		_, err := svc.CreateCourt(ctx, CreateCourtRequest{
			Name:        "Backwards",
			OpeningTime: "21:00",
			ClosingTime: "09:00",
		})

		assert.Equal(t, ErrInvalidHours, err)
		repo.AssertNotCalled(t, "CreateCourt")
	})

	t.Run("rejects equal opening and closing", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		_, err := svc.CreateCourt(ctx, CreateCourtRequest{
			Name:        "Zero hours",
			OpeningTime: "09:00",
			ClosingTime: "09:00",
		})

		assert.Equal(t, ErrInvalidHours, err)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		_, err := svc.CreateCourt(ctx, CreateCourtRequest{
			Name:        "Bad time",
			OpeningTime: "nine",
			ClosingTime: "21:00",
		})

		assert.Equal(t, ErrInvalidTime, err)
	})
}

func TestService_GetCourtByID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps repository not found", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		repo.On("GetCourtByID", mock.Anything, 99).Return(nil, ErrNotFound)

		_, err := svc.GetCourtByID(ctx, 99)
		assert.Equal(t, ErrCourtNotFound, err)
	})

	t.Run("passes through other errors", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		dbErr := errors.New("connection refused")
		repo.On("GetCourtByID", mock.Anything, 1).Return(nil, dbErr)

		_, err := svc.GetCourtByID(ctx, 1)
		assert.Equal(t, dbErr, err)
	})
}

func TestService_UpdateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("validates hours before touching repository", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		_, err := svc.UpdateCourt(ctx, 1, UpdateCourtRequest{
			Name:        "Court 1",
			OpeningTime: "22:00",
			ClosingTime: "08:00",
		})

		assert.Equal(t, ErrInvalidHours, err)
		repo.AssertNotCalled(t, "UpdateCourt")
	})

	t.Run("maps not found", func(t *testing.T) {
		repo := new(MockCourtRepo)
		svc := NewService(repo)

		repo.On("UpdateCourt", mock.Anything, mock.Anything).Return(nil, ErrNotFound)

		_, err := svc.UpdateCourt(ctx, 42, UpdateCourtRequest{
			Name:        "Court 42",
			OpeningTime: "09:00",
			ClosingTime: "21:00",
		})

		assert.Equal(t, ErrCourtNotFound, err)
	})
}

func TestService_DeleteCourt(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCourtRepo)
	svc := NewService(repo)

	repo.On("DeleteCourt", mock.Anything, 7).Return(ErrNotFound)

	err := svc.DeleteCourt(ctx, 7)
	assert.Equal(t, ErrCourtNotFound, err)
}
