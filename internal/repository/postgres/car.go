package postgres

import (
	"context"
	"database/sql"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/repository"

	"github.com/lib/pq"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, name, type, description, images, is_available, price_usd, price_lkr, price_eur, price_enabled, specifications, booked_dates, created_on`

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (id, name, type, description, images, is_available, price_usd, price_lkr, price_eur, price_enabled, specifications, booked_dates, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		car.ID, car.Name, car.Type, car.Description, pq.Array(car.Images),
		car.IsAvailable, car.PricePerDay.USD, car.PricePerDay.LKR, car.PricePerDay.EUR,
		car.PriceEnabled, pq.Array(car.Specifications), pq.Array(car.BookedDates), time.Now().UTC())
	return err
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	return scanCar(r.db.QueryRowContext(ctx, query, id))
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET name=$1, type=$2, description=$3, is_available=$4, price_usd=$5, price_lkr=$6, price_eur=$7, price_enabled=$8, specifications=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		car.Name, car.Type, car.Description, car.IsAvailable,
		car.PricePerDay.USD, car.PricePerDay.LKR, car.PricePerDay.EUR,
		car.PriceEnabled, pq.Array(car.Specifications), car.ID)
	return err
}

func (r *carRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_on DESC`
	return r.queryCars(ctx, query)
}

func (r *carRepository) ListFeatured(ctx context.Context, limit int32) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE is_available = TRUE ORDER BY created_on DESC LIMIT $1`
	return r.queryCars(ctx, query, limit)
}

func (r *carRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE cars SET is_available = $1 WHERE id = $2`, available, id)
	return err
}

func (r *carRepository) ReplaceBookedDates(ctx context.Context, id string, dates []string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cars SET booked_dates = $1 WHERE id = $2`, pq.Array(dates), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...interface{}) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	car := &domain.Car{}
	var createdOn time.Time
	err := row.Scan(
		&car.ID, &car.Name, &car.Type, &car.Description,
		pq.Array(&car.Images), &car.IsAvailable,
		&car.PricePerDay.USD, &car.PricePerDay.LKR, &car.PricePerDay.EUR,
		&car.PriceEnabled, pq.Array(&car.Specifications),
		pq.Array(&car.BookedDates), &createdOn,
	)
	if err != nil {
		return nil, err
	}
	car.CreatedOn = createdOn.UTC().Format(time.RFC3339)
	return car, nil
}
