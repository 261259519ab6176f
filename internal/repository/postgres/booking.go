package postgres

import (
	"context"
	"database/sql"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, car_id, car_name, user_id, pickup_date, return_date, estimated_km, requests, status, customer_email,
	customer_name, customer_phone, customer_residency, customer_nic_or_passport, customer_id_type, customer_bill_type,
	customer_nic_front_url, customer_nic_back_url, customer_passport_front_url, customer_passport_back_url,
	customer_license_front_url, customer_license_back_url, customer_light_bill_url, customer_water_bill_url,
	guarantor_name, guarantor_phone, guarantor_residency, guarantor_nic_or_passport, guarantor_id_type, guarantor_bill_type,
	guarantor_nic_front_url, guarantor_nic_back_url, guarantor_passport_front_url, guarantor_passport_back_url,
	guarantor_license_front_url, guarantor_license_back_url, guarantor_light_bill_url, guarantor_water_bill_url,
	created_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	                  $11, $12, $13, $14, $15, $16,
	                  $17, $18, $19, $20, $21, $22, $23, $24,
	                  $25, $26, $27, $28, $29, $30,
	                  $31, $32, $33, $34, $35, $36, $37, $38,
	                  $39)`
	logger.DatabaseCall("INSERT", "bookings", "bookingID", b.ID, "carID", b.CarID)
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.CarID, b.CarName, b.UserID, b.PickupDate, b.ReturnDate, b.EstimatedKm, b.Requests, b.Status, b.CustomerEmail,
		b.Customer.Name, b.Customer.Phone, b.Customer.Residency, b.Customer.NicOrPassport, b.Customer.IDType, b.Customer.BillType,
		b.Customer.Docs.NicFrontURL, b.Customer.Docs.NicBackURL, b.Customer.Docs.PassportFrontURL, b.Customer.Docs.PassportBackURL,
		b.Customer.Docs.LicenseFrontURL, b.Customer.Docs.LicenseBackURL, b.Customer.Docs.LightBillURL, b.Customer.Docs.WaterBillURL,
		b.Guarantor.Name, b.Guarantor.Phone, b.Guarantor.Residency, b.Guarantor.NicOrPassport, b.Guarantor.IDType, b.Guarantor.BillType,
		b.Guarantor.Docs.NicFrontURL, b.Guarantor.Docs.NicBackURL, b.Guarantor.Docs.PassportFrontURL, b.Guarantor.Docs.PassportBackURL,
		b.Guarantor.Docs.LicenseFrontURL, b.Guarantor.Docs.LicenseBackURL, b.Guarantor.Docs.LightBillURL, b.Guarantor.Docs.WaterBillURL,
		time.Now().UTC())
	logger.DatabaseResult("INSERT", 1, err, "bookingID", b.ID)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) UpdateDocs(ctx context.Context, id string, customer, guarantor domain.PartyDocs) error {
	query := `UPDATE bookings SET
		customer_nic_front_url=$1, customer_nic_back_url=$2, customer_passport_front_url=$3, customer_passport_back_url=$4,
		customer_license_front_url=$5, customer_license_back_url=$6, customer_light_bill_url=$7, customer_water_bill_url=$8,
		guarantor_nic_front_url=$9, guarantor_nic_back_url=$10, guarantor_passport_front_url=$11, guarantor_passport_back_url=$12,
		guarantor_license_front_url=$13, guarantor_license_back_url=$14, guarantor_light_bill_url=$15, guarantor_water_bill_url=$16
		WHERE id=$17`
	_, err := r.db.ExecContext(ctx, query,
		customer.NicFrontURL, customer.NicBackURL, customer.PassportFrontURL, customer.PassportBackURL,
		customer.LicenseFrontURL, customer.LicenseBackURL, customer.LightBillURL, customer.WaterBillURL,
		guarantor.NicFrontURL, guarantor.NicBackURL, guarantor.PassportFrontURL, guarantor.PassportBackURL,
		guarantor.LicenseFrontURL, guarantor.LicenseBackURL, guarantor.LightBillURL, guarantor.WaterBillURL,
		id)
	return err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_on DESC`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	var createdOn time.Time
	err := row.Scan(
		&b.ID, &b.CarID, &b.CarName, &b.UserID, &b.PickupDate, &b.ReturnDate, &b.EstimatedKm, &b.Requests, &b.Status, &b.CustomerEmail,
		&b.Customer.Name, &b.Customer.Phone, &b.Customer.Residency, &b.Customer.NicOrPassport, &b.Customer.IDType, &b.Customer.BillType,
		&b.Customer.Docs.NicFrontURL, &b.Customer.Docs.NicBackURL, &b.Customer.Docs.PassportFrontURL, &b.Customer.Docs.PassportBackURL,
		&b.Customer.Docs.LicenseFrontURL, &b.Customer.Docs.LicenseBackURL, &b.Customer.Docs.LightBillURL, &b.Customer.Docs.WaterBillURL,
		&b.Guarantor.Name, &b.Guarantor.Phone, &b.Guarantor.Residency, &b.Guarantor.NicOrPassport, &b.Guarantor.IDType, &b.Guarantor.BillType,
		&b.Guarantor.Docs.NicFrontURL, &b.Guarantor.Docs.NicBackURL, &b.Guarantor.Docs.PassportFrontURL, &b.Guarantor.Docs.PassportBackURL,
		&b.Guarantor.Docs.LicenseFrontURL, &b.Guarantor.Docs.LicenseBackURL, &b.Guarantor.Docs.LightBillURL, &b.Guarantor.Docs.WaterBillURL,
		&createdOn,
	)
	if err != nil {
		return nil, err
	}
	b.CreatedOn = createdOn.UTC().Format(time.RFC3339)
	return b, nil
}
