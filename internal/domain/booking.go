package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// Residency determines which identity documents a party must provide.
type Residency string

const (
	ResidencyLocal   Residency = "local"
	ResidencyTourist Residency = "tourist"
)

// IDDocType is the id-document choice for local residents.
type IDDocType string

const (
	IDDocTypeNIC     IDDocType = "nic"
	IDDocTypeLicense IDDocType = "license"
)

// BillDocType is the proof-of-address choice for local residents.
type BillDocType string

const (
	BillDocTypeLight BillDocType = "lightBill"
	BillDocTypeWater BillDocType = "waterBill"
)

// PartyDocs holds the blob-store URLs of a party's uploaded documents.
// Which subset must be non-empty depends on the party's residency.
type PartyDocs struct {
	NicFrontURL      string `json:"nic_front_url,omitempty"`
	NicBackURL       string `json:"nic_back_url,omitempty"`
	PassportFrontURL string `json:"passport_front_url,omitempty"`
	PassportBackURL  string `json:"passport_back_url,omitempty"`
	LicenseFrontURL  string `json:"license_front_url,omitempty"`
	LicenseBackURL   string `json:"license_back_url,omitempty"`
	LightBillURL     string `json:"light_bill_url,omitempty"`
	WaterBillURL     string `json:"water_bill_url,omitempty"`
}

// Party is one side of a booking: the customer or the guarantor.
// IDType and BillType are only meaningful for local residency.
type Party struct {
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Residency     Residency   `json:"residency"`
	NicOrPassport string      `json:"nic_or_passport"`
	IDType        IDDocType   `json:"id_type,omitempty"`
	BillType      BillDocType `json:"bill_type,omitempty"`
	Docs          PartyDocs   `json:"docs"`
}

type Booking struct {
	ID            string        `json:"id"`
	CarID         string        `json:"car_id"`
	CarName       string        `json:"car_name"`
	UserID        string        `json:"user_id"`
	PickupDate    string        `json:"pickup_date"` // YYYY-MM-DD
	ReturnDate    string        `json:"return_date"` // YYYY-MM-DD, strictly after pickup
	EstimatedKm   int32         `json:"estimated_km,omitempty"`
	Requests      string        `json:"requests,omitempty"`
	Status        BookingStatus `json:"status"`
	CustomerEmail string        `json:"customer_email"`
	Customer      Party         `json:"customer"`
	Guarantor     Party         `json:"guarantor"`
	CreatedOn     string        `json:"created_on"`
}
