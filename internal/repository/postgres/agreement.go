package postgres

import (
	"context"
	"database/sql"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/repository"
)

type agreementRepository struct {
	db *sql.DB
}

func NewAgreementRepository(db *sql.DB) repository.AgreementRepository {
	return &agreementRepository{db: db}
}

const agreementColumns = `booking_id, agreement_date, renter_id_or_passport, renter_address, vehicle_details,
	rental_start_date, rental_duration, rent_cost_per_day, deposit_money, daily_km_limit, price_for_additional_km,
	client_full_name, client_contact_number, client_sign_date,
	guarantor_name, guarantor_nic, guarantor_address, guarantor_contact,
	bill_date, base_rent_total, additional_km, price_per_km, additional_days, price_per_day,
	damages, delay_payments, other_charges, paid_amount, last_updated`

func (r *agreementRepository) Upsert(ctx context.Context, a *domain.RentalAgreement) error {
	query := `INSERT INTO rental_agreements (` + agreementColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
	                  $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
	          ON CONFLICT (booking_id) DO UPDATE SET
	              agreement_date = EXCLUDED.agreement_date,
	              renter_id_or_passport = EXCLUDED.renter_id_or_passport,
	              renter_address = EXCLUDED.renter_address,
	              vehicle_details = EXCLUDED.vehicle_details,
	              rental_start_date = EXCLUDED.rental_start_date,
	              rental_duration = EXCLUDED.rental_duration,
	              rent_cost_per_day = EXCLUDED.rent_cost_per_day,
	              deposit_money = EXCLUDED.deposit_money,
	              daily_km_limit = EXCLUDED.daily_km_limit,
	              price_for_additional_km = EXCLUDED.price_for_additional_km,
	              client_full_name = EXCLUDED.client_full_name,
	              client_contact_number = EXCLUDED.client_contact_number,
	              client_sign_date = EXCLUDED.client_sign_date,
	              guarantor_name = EXCLUDED.guarantor_name,
	              guarantor_nic = EXCLUDED.guarantor_nic,
	              guarantor_address = EXCLUDED.guarantor_address,
	              guarantor_contact = EXCLUDED.guarantor_contact,
	              bill_date = EXCLUDED.bill_date,
	              base_rent_total = EXCLUDED.base_rent_total,
	              additional_km = EXCLUDED.additional_km,
	              price_per_km = EXCLUDED.price_per_km,
	              additional_days = EXCLUDED.additional_days,
	              price_per_day = EXCLUDED.price_per_day,
	              damages = EXCLUDED.damages,
	              delay_payments = EXCLUDED.delay_payments,
	              other_charges = EXCLUDED.other_charges,
	              paid_amount = EXCLUDED.paid_amount,
	              last_updated = EXCLUDED.last_updated`
	_, err := r.db.ExecContext(ctx, query,
		a.BookingID, a.AgreementDate, a.RenterIDOrPassport, a.RenterAddress, a.VehicleDetails,
		a.RentalStartDate, a.RentalDuration, a.RentCostPerDay, a.DepositMoney, a.DailyKmLimit, a.PriceForAdditionalKm,
		a.ClientFullName, a.ClientContactNumber, a.ClientSignDate,
		a.GuarantorName, a.GuarantorNIC, a.GuarantorAddress, a.GuarantorContact,
		a.BillDate, a.BaseRentTotal, a.AdditionalKm, a.PricePerKm, a.AdditionalDays, a.PricePerDay,
		a.Damages, a.DelayPayments, a.OtherCharges, a.PaidAmount, time.Now().UTC())
	return err
}

func (r *agreementRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.RentalAgreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM rental_agreements WHERE booking_id = $1`
	a := &domain.RentalAgreement{}
	var lastUpdated time.Time
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&a.BookingID, &a.AgreementDate, &a.RenterIDOrPassport, &a.RenterAddress, &a.VehicleDetails,
		&a.RentalStartDate, &a.RentalDuration, &a.RentCostPerDay, &a.DepositMoney, &a.DailyKmLimit, &a.PriceForAdditionalKm,
		&a.ClientFullName, &a.ClientContactNumber, &a.ClientSignDate,
		&a.GuarantorName, &a.GuarantorNIC, &a.GuarantorAddress, &a.GuarantorContact,
		&a.BillDate, &a.BaseRentTotal, &a.AdditionalKm, &a.PricePerKm, &a.AdditionalDays, &a.PricePerDay,
		&a.Damages, &a.DelayPayments, &a.OtherCharges, &a.PaidAmount, &lastUpdated,
	)
	if err != nil {
		return nil, err
	}
	a.LastUpdated = lastUpdated.UTC().Format(time.RFC3339)
	return a, nil
}
