package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository"
	"lankadrive-backend/internal/utils"
)

type agreementService struct {
	agreementRepo repository.AgreementRepository
	bookingRepo   repository.BookingRepository
}

func NewAgreementService(
	agreementRepo repository.AgreementRepository,
	bookingRepo repository.BookingRepository,
) AgreementService {
	return &agreementService{
		agreementRepo: agreementRepo,
		bookingRepo:   bookingRepo,
	}
}

// SaveAgreement creates or overwrites the agreement for a booking. Saving
// repeatedly is the normal flow: the admin fills the form in over several
// sittings.
func (s *agreementService) SaveAgreement(ctx context.Context, agreement *domain.RentalAgreement) (*domain.RentalAgreement, error) {
	if agreement.BookingID == "" {
		return nil, fmt.Errorf("agreement booking id is required")
	}
	if _, err := s.bookingRepo.GetByID(ctx, agreement.BookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", agreement.BookingID, err)
	}

	agreement.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := s.agreementRepo.Upsert(ctx, agreement); err != nil {
		return nil, fmt.Errorf("failed to save agreement for booking %s: %w", agreement.BookingID, err)
	}

	logger.Info("agreement saved", "booking_id", agreement.BookingID)
	return agreement, nil
}

// GetAgreement returns the stored agreement together with its derived bill
// totals. Totals are recomputed from the line items on every read.
func (s *agreementService) GetAgreement(ctx context.Context, bookingID string) (*domain.RentalAgreement, utils.BillTotals, error) {
	agreement, err := s.agreementRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.BillTotals{}, ErrNotFound
		}
		return nil, utils.BillTotals{}, fmt.Errorf("failed to load agreement for booking %s: %w", bookingID, err)
	}

	totals := utils.ComputeBill(utils.BillLineItems{
		BaseRentTotal:  agreement.BaseRentTotal,
		AdditionalKm:   agreement.AdditionalKm,
		PricePerKm:     agreement.PricePerKm,
		AdditionalDays: agreement.AdditionalDays,
		PricePerDay:    agreement.PricePerDay,
		Damages:        agreement.Damages,
		DelayPayments:  agreement.DelayPayments,
		OtherCharges:   agreement.OtherCharges,
		PaidAmount:     agreement.PaidAmount,
	})
	return agreement, totals, nil
}
