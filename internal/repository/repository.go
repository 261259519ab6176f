package repository

import (
	"context"

	"lankadrive-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Car, error)
	ListFeatured(ctx context.Context, limit int32) ([]domain.Car, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	// ReplaceBookedDates overwrites the car's blocked-date set in a single
	// statement. Used both by range blocking (with the merged set) and by
	// the admin raw calendar edit.
	ReplaceBookedDates(ctx context.Context, id string, dates []string) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateDocs(ctx context.Context, id string, customer, guarantor domain.PartyDocs) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	// UpdateStatusIf transitions status only when the row currently holds
	// from. Returns false when the guard did not match.
	UpdateStatusIf(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int32, error)
}

type AgreementRepository interface {
	// Upsert creates the agreement row for a booking or merges over the
	// existing one.
	Upsert(ctx context.Context, a *domain.RentalAgreement) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.RentalAgreement, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	List(ctx context.Context) ([]domain.Testimonial, error)
	ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error)
	UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.TestimonialStatus) (int32, error)
}

type UserRepository interface {
	// Upsert inserts the user on first sight and refreshes contact fields
	// afterwards. The role column is never downgraded by an upsert.
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
