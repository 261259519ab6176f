package domain

// RentalAgreement is the agreement/bill document for a confirmed booking,
// keyed by the booking's id. Free-text fields come straight off the admin
// form; numeric line items feed the billing calculator. Totals are never
// stored here, they are derived on every read.
type RentalAgreement struct {
	BookingID string `json:"booking_id"`

	// Agreement details
	AgreementDate        string `json:"agreement_date,omitempty"`
	RenterIDOrPassport   string `json:"renter_id_or_passport,omitempty"`
	RenterAddress        string `json:"renter_address,omitempty"`
	VehicleDetails       string `json:"vehicle_details,omitempty"`
	RentalStartDate      string `json:"rental_start_date,omitempty"`
	RentalDuration       string `json:"rental_duration,omitempty"`
	RentCostPerDay       string `json:"rent_cost_per_day,omitempty"`
	DepositMoney         string `json:"deposit_money,omitempty"`
	DailyKmLimit         string `json:"daily_km_limit,omitempty"`
	PriceForAdditionalKm string `json:"price_for_additional_km,omitempty"`

	// Client details
	ClientFullName      string `json:"client_full_name,omitempty"`
	ClientContactNumber string `json:"client_contact_number,omitempty"`
	ClientSignDate      string `json:"client_sign_date,omitempty"`

	// Guarantor details
	GuarantorName    string `json:"guarantor_name,omitempty"`
	GuarantorNIC     string `json:"guarantor_nic,omitempty"`
	GuarantorAddress string `json:"guarantor_address,omitempty"`
	GuarantorContact string `json:"guarantor_contact,omitempty"`

	// Billing line items, all in LKR
	BillDate       string  `json:"bill_date,omitempty"`
	BaseRentTotal  float64 `json:"base_rent_total"`
	AdditionalKm   int32   `json:"additional_km"`
	PricePerKm     float64 `json:"price_per_km"`
	AdditionalDays int32   `json:"additional_days"`
	PricePerDay    float64 `json:"price_per_day"`
	Damages        float64 `json:"damages"`
	DelayPayments  float64 `json:"delay_payments"`
	OtherCharges   float64 `json:"other_charges"`
	PaidAmount     float64 `json:"paid_amount"`

	LastUpdated string `json:"last_updated"`
}
