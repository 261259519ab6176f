package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository"
	"lankadrive-backend/internal/storage"
	"lankadrive-backend/internal/utils"
)

type carService struct {
	carRepo   repository.CarRepository
	blobStore storage.BlobStore
}

func NewCarService(carRepo repository.CarRepository, blobStore storage.BlobStore) CarService {
	return &carService{carRepo: carRepo, blobStore: blobStore}
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car, images []ImageUpload) (*domain.Car, error) {
	car.ID = uuid.New().String()
	car.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	car.BookedDates = utils.DedupDates(car.BookedDates)

	for i, img := range images {
		key := fmt.Sprintf("cars/%s/%d%s", car.ID, i, path.Ext(img.Filename))
		url, err := s.blobStore.Upload(ctx, key, img.ContentType, img.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload car image: %w", err)
		}
		car.Images = append(car.Images, url)
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	logger.Info("car created", "car_id", car.ID, "name", car.Name)
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load car %s: %w", id, err)
	}
	return car, nil
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	existing, err := s.GetCar(ctx, car.ID)
	if err != nil {
		return nil, err
	}
	// Booked dates are owned by the booking workflow, not the catalog form.
	car.BookedDates = existing.BookedDates
	car.CreatedOn = existing.CreatedOn

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to update car %s: %w", car.ID, err)
	}
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id string) error {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return err
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete car %s: %w", id, err)
	}

	// Stored photos are cleaned up best-effort; an orphaned blob is not
	// worth failing the delete over.
	for _, imageURL := range car.Images {
		if err := s.blobStore.DeleteByURL(ctx, imageURL); err != nil {
			logger.Warn("failed to delete car image", "car_id", id, "url", imageURL, "error", err)
		}
	}

	logger.Info("car deleted", "car_id", id)
	return nil
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

// featuredCarLimit caps the landing-page carousel query.
const featuredCarLimit = 3

func (s *carService) ListFeaturedCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListFeatured(ctx, featuredCarLimit)
}

func (s *carService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.carRepo.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set availability for car %s: %w", id, err)
	}
	return nil
}

// ReleaseDates removes individual dates from the car's blocked set, e.g.
// after a confirmed booking is canceled and the vehicle is free again.
func (s *carService) ReleaseDates(ctx context.Context, id string, dates []string) (*domain.Car, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}

	release := make(map[string]bool, len(dates))
	for _, d := range dates {
		release[d] = true
	}
	kept := make([]string, 0, len(car.BookedDates))
	for _, d := range car.BookedDates {
		if !release[d] {
			kept = append(kept, d)
		}
	}

	if err := s.carRepo.ReplaceBookedDates(ctx, id, kept); err != nil {
		return nil, fmt.Errorf("failed to store blocked dates for car %s: %w", id, err)
	}
	car.BookedDates = kept
	return car, nil
}

// OverwriteBookedDates replaces the car's entire blocked set with the
// calendar as submitted. This is the raw admin edit; no range semantics
// apply and nothing is merged.
func (s *carService) OverwriteBookedDates(ctx context.Context, id string, dates []string) (*domain.Car, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, d := range dates {
		if _, err := utils.ParseDate(d); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	blocked := utils.DedupDates(dates)

	if err := s.carRepo.ReplaceBookedDates(ctx, id, blocked); err != nil {
		return nil, fmt.Errorf("failed to store blocked dates for car %s: %w", id, err)
	}
	car.BookedDates = blocked

	logger.Info("blocked dates overwritten", "car_id", id, "dates", len(blocked))
	return car, nil
}
