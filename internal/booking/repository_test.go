package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func bookingRows(ids ...int) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "court_id", "user_id", "date", "start_time", "end_time", "description", "created_at"})
	for i, id := range ids {
		rows.AddRow(id, 1, 2, "2026-03-15", "10:00:00", "11:00:00", "", time.Now().Add(time.Duration(i)*time.Minute))
	}
	return rows
}

func TestCreateBookingCommitsAfterDecide(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	b := &Booking{
		CourtID:   1,
		UserID:    5,
		Date:      NewDate(2026, 3, 15),
		StartTime: tod(12, 0),
		EndTime:   tod(13, 0),
		CreatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM courts WHERE id = (.+) FOR UPDATE").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE court_id = (.+) AND date = (.+) ORDER BY start_time").
		WithArgs(1, "2026-03-15").
		WillReturnRows(bookingRows(7))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(1, 5, "2026-03-15", "12:00:00", "13:00:00", "", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "court_id", "user_id", "date", "start_time", "end_time", "description", "created_at"}).
			AddRow(8, 1, 5, "2026-03-15", "12:00:00", "13:00:00", "", now))
	mock.ExpectCommit()

	var seen []Booking
	created, err := repo.CreateBooking(context.Background(), b, func(existing []Booking) error {
		seen = existing
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
	assert.Equal(t, "12:00", created.StartTime.String())

	// decide saw the bookings read under the court lock
	require.Len(t, seen, 1)
	assert.Equal(t, 7, seen[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRollsBackOnRejection(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &Booking{CourtID: 1, UserID: 5, Date: NewDate(2026, 3, 15), StartTime: tod(10, 30), EndTime: tod(11, 30)}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM courts WHERE id = (.+) FOR UPDATE").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(1, "2026-03-15").
		WillReturnRows(bookingRows(7))
	mock.ExpectRollback()

	rejection := rejectf(KindSchedulingConflict, "slot taken")
	_, err := repo.CreateBooking(context.Background(), b, func(existing []Booking) error {
		return rejection
	})
	require.Error(t, err)
	assert.Equal(t, KindSchedulingConflict, KindOf(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &Booking{CourtID: 42, UserID: 5, Date: NewDate(2026, 3, 15), StartTime: tod(10, 0), EndTime: tod(11, 0)}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM courts WHERE id = (.+) FOR UPDATE").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.CreateBooking(context.Background(), b, func(existing []Booking) error {
		t.Fatal("decide must not run when the court is missing")
		return nil
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestGetBookingByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = (.+)").
		WithArgs(7).
		WillReturnRows(bookingRows(7))

	b, err := repo.GetBookingByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, b.ID)
	assert.Equal(t, "2026-03-15", b.Date.String())
	assert.Equal(t, "10:00", b.StartTime.String())

	// missing booking maps to the typed rejection
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = (.+)").
		WithArgs(99).
		WillReturnRows(bookingRows())

	_, err = repo.GetBookingByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("DELETE FROM bookings WHERE id = (.+)").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteBooking(context.Background(), 7))

	mock.ExpectExec("DELETE FROM bookings WHERE id = (.+)").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteBooking(context.Background(), 99), ErrBookingNotFound)
}

func TestGetBookingsForCourtDate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE court_id = (.+) AND date = (.+) ORDER BY start_time").
		WithArgs(1, "2026-03-15").
		WillReturnRows(bookingRows(7, 8))

	bookings, err := repo.GetBookingsForCourtDate(context.Background(), 1, NewDate(2026, 3, 15))
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 7, bookings[0].ID)
}

func TestGetAllBookings(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{
		"id", "court_id", "user_id", "date", "start_time", "end_time", "description", "created_at",
		"court_name", "user_name", "user_email",
	}).AddRow(7, 1, 2, "2026-03-15", "10:00:00", "11:00:00", "", time.Now(), "Court 1", "Alice", "alice@stcatz.cam.ac.uk")

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN courts c ON (.+) JOIN users u ON (.+)").
		WillReturnRows(rows)

	bookings, err := repo.GetAllBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Court 1", bookings[0].CourtName)
	assert.Equal(t, "alice@stcatz.cam.ac.uk", bookings[0].UserEmail)
}
