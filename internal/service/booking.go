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
	"lankadrive-backend/internal/validation"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	blobStore   storage.BlobStore
	emailSvc    EmailService
	adminEmail  string
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	blobStore storage.BlobStore,
	emailSvc EmailService,
	adminEmail string,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		blobStore:   blobStore,
		emailSvc:    emailSvc,
		adminEmail:  adminEmail,
	}
}

// SubmitInquiry validates a booking inquiry, persists it as pending and
// uploads the attached identity documents. Validation failures are returned
// as field errors, not as an error: the caller renders them per field.
func (s *bookingService) SubmitInquiry(ctx context.Context, booking *domain.Booking, docs []DocumentUpload) (*domain.Booking, []validation.FieldError, error) {
	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, []validation.FieldError{{Field: "carId", Kind: validation.KindInvalid}}, nil
		}
		return nil, nil, fmt.Errorf("failed to load car %s: %w", booking.CarID, err)
	}
	booking.CarName = car.Name

	// The validator checks document presence on the booking's document
	// fields, so stage the incoming uploads on a scratch copy. The stored
	// record only ever carries real URLs, written after the uploads land.
	staged := *booking
	for _, doc := range docs {
		applyDocumentRef(&staged, doc.Field, doc.Filename)
	}

	if fieldErrs := validation.ValidateInquiry(&staged, car.BookedDates); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	booking.ID = uuid.New().String()
	booking.Status = domain.BookingStatusPending
	booking.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Uploads are best effort: a failed document never loses the inquiry,
	// the admin chases missing documents manually.
	uploaded := 0
	for _, doc := range docs {
		key := fmt.Sprintf("bookings/%s/%s%s", booking.ID, doc.Field, path.Ext(doc.Filename))
		url, err := s.blobStore.Upload(ctx, key, doc.ContentType, doc.Data)
		if err != nil {
			logger.Warn("document upload failed", "booking_id", booking.ID, "field", doc.Field, "error", err)
			continue
		}
		applyDocumentRef(booking, doc.Field, url)
		uploaded++
	}
	if uploaded > 0 {
		if err := s.bookingRepo.UpdateDocs(ctx, booking.ID, booking.Customer.Docs, booking.Guarantor.Docs); err != nil {
			logger.Warn("failed to store document urls", "booking_id", booking.ID, "error", err)
		}
	}

	if err := s.emailSvc.SendInquiryReceivedNotification(ctx, s.adminEmail,
		booking.Customer.Name, booking.CarName, booking.PickupDate, booking.ReturnDate); err != nil {
		logger.Warn("failed to send inquiry notification", "booking_id", booking.ID, "error", err)
	}

	logger.Info("booking inquiry submitted", "booking_id", booking.ID, "car_id", booking.CarID)
	return booking, nil, nil
}

// CreateManualBooking records a walk-in or phone booking taken by the
// admin. Only the essentials are validated and the booking is confirmed
// immediately, blocking its dates.
func (s *bookingService) CreateManualBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, []validation.FieldError, error) {
	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, []validation.FieldError{{Field: "carId", Kind: validation.KindInvalid}}, nil
		}
		return nil, nil, fmt.Errorf("failed to load car %s: %w", booking.CarID, err)
	}
	booking.CarName = car.Name

	if fieldErrs := validation.ValidateManualEntry(booking, car.BookedDates); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	booking.ID = uuid.New().String()
	booking.Status = domain.BookingStatusConfirmed
	booking.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.blockBookingDates(ctx, car, booking); err != nil {
		return nil, nil, err
	}

	logger.Info("manual booking created", "booking_id", booking.ID, "car_id", booking.CarID)
	return booking, nil, nil
}

// ConfirmBooking moves a pending inquiry to confirmed and blocks the car's
// dates for the booking's range. The availability check runs again here
// against fresh data: another booking may have taken the range since the
// inquiry was validated.
func (s *bookingService) ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrNotPending
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		return nil, fmt.Errorf("failed to load car %s: %w", booking.CarID, err)
	}

	start, err := utils.ParseDate(booking.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("booking %s has invalid pickup date: %w", id, err)
	}
	end, err := utils.ParseDate(booking.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("booking %s has invalid return date: %w", id, err)
	}
	if !utils.IsRangeFree(car.BookedDates, start, end) {
		return nil, ErrDatesUnavailable
	}

	// Block the dates before flipping the status. If the block fails the
	// booking stays pending and the confirm can simply be retried; a block
	// without a confirm is only an over-blocked calendar, which the admin
	// can release from the car page.
	if err := s.blockBookingDates(ctx, car, booking); err != nil {
		return nil, err
	}

	// Conditional update: only one confirmation of the same inquiry wins.
	ok, err := s.bookingRepo.UpdateStatusIf(ctx, id, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm booking %s: %w", id, err)
	}
	if !ok {
		// Lost the race. The winner wanted the same range blocked, so the
		// calendar write above is not damage.
		return nil, ErrNotPending
	}
	booking.Status = domain.BookingStatusConfirmed

	if err := s.emailSvc.SendBookingConfirmedNotification(ctx, booking.CustomerEmail,
		booking.Customer.Name, booking.CarName, booking.PickupDate, booking.ReturnDate); err != nil {
		logger.Warn("failed to send confirmation email", "booking_id", id, "error", err)
	}

	logger.Info("booking confirmed", "booking_id", id, "car_id", booking.CarID)
	return booking, nil
}

// CancelBooking marks a booking canceled. Dates already blocked for a
// confirmed booking stay blocked; the admin releases them from the car
// page when the cancellation frees the vehicle.
func (s *bookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusCanceled {
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCanceled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	booking.Status = domain.BookingStatusCanceled

	if booking.CustomerEmail != "" {
		if err := s.emailSvc.SendBookingCanceledNotification(ctx, booking.CustomerEmail,
			booking.Customer.Name, booking.CarName); err != nil {
			logger.Warn("failed to send cancellation email", "booking_id", id, "error", err)
		}
	}

	logger.Info("booking canceled", "booking_id", id)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getBooking(ctx, id)
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}

func (s *bookingService) PendingCount(ctx context.Context) (int32, error) {
	return s.bookingRepo.CountByStatus(ctx, domain.BookingStatusPending)
}

func (s *bookingService) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", id, err)
	}
	return booking, nil
}

// blockBookingDates merges the booking's date range into the car's blocked
// set and writes the whole set back.
func (s *bookingService) blockBookingDates(ctx context.Context, car *domain.Car, booking *domain.Booking) error {
	start, err := utils.ParseDate(booking.PickupDate)
	if err != nil {
		return fmt.Errorf("booking %s has invalid pickup date: %w", booking.ID, err)
	}
	end, err := utils.ParseDate(booking.ReturnDate)
	if err != nil {
		return fmt.Errorf("booking %s has invalid return date: %w", booking.ID, err)
	}

	blocked, err := utils.BlockRange(car.BookedDates, start, end)
	if err != nil {
		return fmt.Errorf("failed to block dates for booking %s: %w", booking.ID, err)
	}
	if err := s.carRepo.ReplaceBookedDates(ctx, car.ID, blocked); err != nil {
		return fmt.Errorf("failed to store blocked dates for car %s: %w", car.ID, err)
	}
	car.BookedDates = blocked
	return nil
}

// applyDocumentRef writes value into the booking's document slot named by
// field. Unknown fields are ignored; the validator reports them as missing
// documents if they were required.
func applyDocumentRef(b *domain.Booking, field, value string) {
	var party *domain.Party
	var slot string
	switch {
	case len(field) > 8 && field[:8] == "customer":
		party, slot = &b.Customer, field[8:]
	case len(field) > 9 && field[:9] == "guarantor":
		party, slot = &b.Guarantor, field[9:]
	default:
		return
	}

	switch slot {
	case "NicFront":
		party.Docs.NicFrontURL = value
	case "NicBack":
		party.Docs.NicBackURL = value
	case "PassportFront":
		party.Docs.PassportFrontURL = value
	case "PassportBack":
		party.Docs.PassportBackURL = value
	case "LicenseFront":
		party.Docs.LicenseFrontURL = value
	case "LicenseBack":
		party.Docs.LicenseBackURL = value
	case "LightBill":
		party.Docs.LightBillURL = value
	case "WaterBill":
		party.Docs.WaterBillURL = value
	}
}
