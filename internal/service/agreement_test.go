package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/service"
)

func TestSaveAgreement(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and stamps last updated", func(t *testing.T) {
		agreementRepo := new(MockAgreementRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAgreementService(agreementRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "booking-1").Return(&domain.Booking{ID: "booking-1"}, nil)
		agreementRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)

		saved, err := svc.SaveAgreement(ctx, &domain.RentalAgreement{
			BookingID:     "booking-1",
			BaseRentTotal: 12000,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, saved.LastUpdated)
		agreementRepo.AssertExpectations(t)
	})

	t.Run("second save overwrites through the same upsert", func(t *testing.T) {
		agreementRepo := new(MockAgreementRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAgreementService(agreementRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "booking-1").Return(&domain.Booking{ID: "booking-1"}, nil)
		agreementRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil).Twice()

		_, err := svc.SaveAgreement(ctx, &domain.RentalAgreement{BookingID: "booking-1", Damages: 0})
		assert.NoError(t, err)
		_, err = svc.SaveAgreement(ctx, &domain.RentalAgreement{BookingID: "booking-1", Damages: 2500})
		assert.NoError(t, err)
		agreementRepo.AssertExpectations(t)
	})

	t.Run("unknown booking is rejected", func(t *testing.T) {
		agreementRepo := new(MockAgreementRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAgreementService(agreementRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "nope").Return(nil, sql.ErrNoRows)

		_, err := svc.SaveAgreement(ctx, &domain.RentalAgreement{BookingID: "nope"})
		assert.ErrorIs(t, err, service.ErrNotFound)
		agreementRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("missing booking id is rejected", func(t *testing.T) {
		svc := service.NewAgreementService(new(MockAgreementRepo), new(MockBookingRepo))
		_, err := svc.SaveAgreement(ctx, &domain.RentalAgreement{})
		assert.Error(t, err)
	})
}

func TestGetAgreement(t *testing.T) {
	ctx := context.Background()

	t.Run("returns agreement with derived totals", func(t *testing.T) {
		agreementRepo := new(MockAgreementRepo)
		svc := service.NewAgreementService(agreementRepo, new(MockBookingRepo))

		agreementRepo.On("GetByBookingID", ctx, "booking-1").Return(&domain.RentalAgreement{
			BookingID:     "booking-1",
			BaseRentTotal: 1000,
			AdditionalKm:  50,
			PricePerKm:    10,
			PaidAmount:    800,
		}, nil)

		agreement, totals, err := svc.GetAgreement(ctx, "booking-1")
		assert.NoError(t, err)
		assert.Equal(t, "booking-1", agreement.BookingID)
		assert.Equal(t, 500.0, totals.AdditionalCharges)
		assert.Equal(t, 1500.0, totals.GrandTotal)
		assert.Equal(t, 700.0, totals.BalanceDue)
	})

	t.Run("missing agreement", func(t *testing.T) {
		agreementRepo := new(MockAgreementRepo)
		svc := service.NewAgreementService(agreementRepo, new(MockBookingRepo))

		agreementRepo.On("GetByBookingID", ctx, "nope").Return(nil, sql.ErrNoRows)

		_, _, err := svc.GetAgreement(ctx, "nope")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
