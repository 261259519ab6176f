package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/repository/postgres"
)

func carRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "type", "description", "images", "is_available",
		"price_usd", "price_lkr", "price_eur", "price_enabled",
		"specifications", "booked_dates", "created_on",
	})
}

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		car := &domain.Car{
			ID:          "car-1",
			Name:        "Toyota Aqua",
			Type:        "hatchback",
			IsAvailable: true,
			PricePerDay: domain.CarPrice{USD: 35, LKR: 11000, EUR: 32},
			BookedDates: []string{"2030-07-01"},
		}

		mock.ExpectExec("INSERT INTO cars").
			WithArgs(car.ID, car.Name, car.Type, car.Description, pq.Array(car.Images),
				car.IsAvailable, 35.0, 11000.0, 32.0, car.PriceEnabled,
				pq.Array(car.Specifications), pq.Array(car.BookedDates), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, car)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := carRows().AddRow(
			"car-1", "Toyota Aqua", "hatchback", "Compact hybrid",
			pq.Array([]string{"https://files.example/1.jpg"}), true,
			35.0, 11000.0, 32.0, true,
			pq.Array([]string{"Hybrid", "5 seats"}),
			pq.Array([]string{"2030-07-01", "2030-07-02"}),
			time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
		)

		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs("car-1").
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, "car-1")
		assert.NoError(t, err)
		assert.Equal(t, "Toyota Aqua", car.Name)
		assert.Equal(t, 11000.0, car.PricePerDay.LKR)
		assert.Equal(t, []string{"2030-07-01", "2030-07-02"}, car.BookedDates)
		assert.Equal(t, "2030-01-02T03:04:05Z", car.CreatedOn)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCarRepository_ReplaceBookedDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		dates := []string{"2030-07-01", "2030-07-02"}
		mock.ExpectExec("UPDATE cars SET booked_dates").
			WithArgs(pq.Array(dates), "car-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.ReplaceBookedDates(ctx, "car-1", dates))
	})

	t.Run("MissingCar", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET booked_dates").
			WithArgs(pq.Array([]string{}), "nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ReplaceBookedDates(ctx, "nope", []string{})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCarRepository_ListFeatured(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	rows := carRows().AddRow(
		"car-1", "Toyota Aqua", "hatchback", "",
		pq.Array([]string{}), true, 35.0, 11000.0, 32.0, true,
		pq.Array([]string{}), pq.Array([]string{}),
		time.Now().UTC(),
	)

	mock.ExpectQuery("SELECT (.+) FROM cars WHERE is_available = TRUE").
		WithArgs(int32(3)).
		WillReturnRows(rows)

	cars, err := repo.ListFeatured(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, cars, 1)
}
