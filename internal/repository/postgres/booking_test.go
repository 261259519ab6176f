package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/repository/postgres"
)

func TestBookingRepository_UpdateStatusIf(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("TransitionsWhenStatusMatches", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusConfirmed, "bk-1", domain.BookingStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateStatusIf(ctx, "bk-1", domain.BookingStatusPending, domain.BookingStatusConfirmed)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ReportsLostRaceOnStatusMismatch", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusConfirmed, "bk-1", domain.BookingStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdateStatusIf(ctx, "bk-1", domain.BookingStatusPending, domain.BookingStatusConfirmed)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusCanceled, "bk-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, "bk-1", domain.BookingStatusCanceled))
	})

	t.Run("MissingBooking", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusCanceled, "nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "nope", domain.BookingStatusCanceled)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestBookingRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int32(4))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM bookings WHERE status").
		WithArgs(domain.BookingStatusPending).
		WillReturnRows(rows)

	count, err := repo.CountByStatus(ctx, domain.BookingStatusPending)
	assert.NoError(t, err)
	assert.Equal(t, int32(4), count)
}
