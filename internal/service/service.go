package service

import (
	"context"
	"errors"
	"io"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/utils"
	"lankadrive-backend/internal/validation"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotPending         = errors.New("booking is not pending")
	ErrDatesUnavailable   = errors.New("requested dates are no longer available")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidDate        = errors.New("invalid date")
)

// DocumentUpload is one identity document arriving with a booking inquiry.
// Field names the document slot it fills, e.g. "customerNicFront" or
// "guarantorLightBill".
type DocumentUpload struct {
	Field       string
	Filename    string
	ContentType string
	Data        io.Reader
}

// ImageUpload is one car photo arriving with a catalog entry.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type BookingService interface {
	SubmitInquiry(ctx context.Context, booking *domain.Booking, docs []DocumentUpload) (*domain.Booking, []validation.FieldError, error)
	CreateManualBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, []validation.FieldError, error)
	ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	PendingCount(ctx context.Context) (int32, error)
}

type CarService interface {
	CreateCar(ctx context.Context, car *domain.Car, images []ImageUpload) (*domain.Car, error)
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, id string) error
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListFeaturedCars(ctx context.Context) ([]domain.Car, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	ReleaseDates(ctx context.Context, id string, dates []string) (*domain.Car, error)
	OverwriteBookedDates(ctx context.Context, id string, dates []string) (*domain.Car, error)
}

type AgreementService interface {
	SaveAgreement(ctx context.Context, agreement *domain.RentalAgreement) (*domain.RentalAgreement, error)
	GetAgreement(ctx context.Context, bookingID string) (*domain.RentalAgreement, utils.BillTotals, error)
}

type TestimonialService interface {
	Submit(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	ListApproved(ctx context.Context) ([]domain.Testimonial, error)
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
	SetStatus(ctx context.Context, id string, status domain.TestimonialStatus) error
	Delete(ctx context.Context, id string) error
	PendingCount(ctx context.Context) (int32, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
}

type EmailService interface {
	SendInquiryReceivedNotification(ctx context.Context, adminEmail, customerName, carName, pickupDate, returnDate string) error
	SendBookingConfirmedNotification(ctx context.Context, customerEmail, customerName, carName, pickupDate, returnDate string) error
	SendBookingCanceledNotification(ctx context.Context, customerEmail, customerName, carName string) error
	SendPendingInquiryReminder(ctx context.Context, adminEmail string, pendingCount int32) error
}
