package postgres

import (
	"context"
	"database/sql"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/repository"
)

type testimonialRepository struct {
	db *sql.DB
}

func NewTestimonialRepository(db *sql.DB) repository.TestimonialRepository {
	return &testimonialRepository{db: db}
}

const testimonialColumns = `id, user_id, name, comment, rating, status, created_on`

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `INSERT INTO testimonials (` + testimonialColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.UserID, t.Name, t.Comment, t.Rating, t.Status, time.Now().UTC())
	return err
}

func (r *testimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_on DESC`
	return r.queryTestimonials(ctx, query)
}

func (r *testimonialRepository) ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE status = $1 ORDER BY created_on DESC`
	return r.queryTestimonials(ctx, query, status)
}

func (r *testimonialRepository) UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE testimonials SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	return err
}

func (r *testimonialRepository) CountByStatus(ctx context.Context, status domain.TestimonialStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM testimonials WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *testimonialRepository) queryTestimonials(ctx context.Context, query string, args ...interface{}) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		var createdOn time.Time
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Comment, &t.Rating, &t.Status, &createdOn); err != nil {
			return nil, err
		}
		t.CreatedOn = createdOn.UTC().Format(time.RFC3339)
		list = append(list, t)
	}
	return list, rows.Err()
}
