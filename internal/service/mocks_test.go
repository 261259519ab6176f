package service_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"lankadrive-backend/internal/domain"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListFeatured(ctx context.Context, limit int32) ([]domain.Car, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockCarRepo) ReplaceBookedDates(ctx context.Context, id string, dates []string) error {
	args := m.Called(ctx, id, dates)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateDocs(ctx context.Context, id string, customer, guarantor domain.PartyDocs) error {
	args := m.Called(ctx, id, customer, guarantor)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) CountByStatus(ctx context.Context, status domain.BookingStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockAgreementRepo
type MockAgreementRepo struct {
	mock.Mock
}

func (m *MockAgreementRepo) Upsert(ctx context.Context, a *domain.RentalAgreement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAgreementRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.RentalAgreement, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAgreement), args.Error(1)
}

// MockTestimonialRepo
type MockTestimonialRepo struct {
	mock.Mock
}

func (m *MockTestimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTestimonialRepo) List(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}
func (m *MockTestimonialRepo) ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}
func (m *MockTestimonialRepo) UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTestimonialRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTestimonialRepo) CountByStatus(ctx context.Context, status domain.TestimonialStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockBlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, r)
	return args.String(0), args.Error(1)
}
func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockBlobStore) DeleteByURL(ctx context.Context, objectURL string) error {
	args := m.Called(ctx, objectURL)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInquiryReceivedNotification(ctx context.Context, adminEmail, customerName, carName, pickupDate, returnDate string) error {
	args := m.Called(ctx, adminEmail, customerName, carName, pickupDate, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmedNotification(ctx context.Context, customerEmail, customerName, carName, pickupDate, returnDate string) error {
	args := m.Called(ctx, customerEmail, customerName, carName, pickupDate, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCanceledNotification(ctx context.Context, customerEmail, customerName, carName string) error {
	args := m.Called(ctx, customerEmail, customerName, carName)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingInquiryReminder(ctx context.Context, adminEmail string, pendingCount int32) error {
	args := m.Called(ctx, adminEmail, pendingCount)
	return args.Error(0)
}
