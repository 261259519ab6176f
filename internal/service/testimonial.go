package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository"
)

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

// Submit stores a new testimonial as pending. It only becomes publicly
// visible once the admin approves it.
func (s *testimonialService) Submit(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	if t.Rating < 1 || t.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if t.Name == "" || t.Comment == "" {
		return nil, fmt.Errorf("name and comment are required")
	}

	t.ID = uuid.New().String()
	t.Status = domain.TestimonialStatusPending
	t.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	if err := s.testimonialRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	logger.Info("testimonial submitted", "testimonial_id", t.ID)
	return t, nil
}

func (s *testimonialService) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonialRepo.ListByStatus(ctx, domain.TestimonialStatusApproved)
}

func (s *testimonialService) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonialRepo.List(ctx)
}

func (s *testimonialService) PendingCount(ctx context.Context) (int32, error) {
	return s.testimonialRepo.CountByStatus(ctx, domain.TestimonialStatusPending)
}

func (s *testimonialService) SetStatus(ctx context.Context, id string, status domain.TestimonialStatus) error {
	if status != domain.TestimonialStatusPending && status != domain.TestimonialStatusApproved {
		return fmt.Errorf("unknown testimonial status: %s", status)
	}
	if err := s.testimonialRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update testimonial %s: %w", id, err)
	}
	return nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete testimonial %s: %w", id, err)
	}
	return nil
}
