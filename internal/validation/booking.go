package validation

import (
	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/utils"
)

// Error kinds. Handlers map these to user-facing messages; tests assert on
// the (field, kind) pair.
const (
	KindRequired    = "required"
	KindTooShort    = "too_short"
	KindInvalid     = "invalid"
	KindAfterPickup = "must_be_after_pickup"
	KindDateTaken   = "date_range_taken"
)

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
}

const (
	minNameLen  = 2
	minPhoneLen = 5
	minIDLen    = 3
)

// ValidateInquiry checks a customer-submitted booking inquiry. It evaluates
// every rule and returns the full list of violations so the caller can render
// per-field feedback; an empty result means the inquiry is well formed.
// bookedDates is the vehicle's current blocked-date set.
func ValidateInquiry(b *domain.Booking, bookedDates []string) []FieldError {
	var errs []FieldError

	errs = append(errs, validateDateRange(b.PickupDate, b.ReturnDate, bookedDates)...)

	errs = append(errs, validateParty("customer", b.Customer)...)
	errs = append(errs, validateDocs("customer", b.Customer)...)

	errs = append(errs, validateParty("guarantor", b.Guarantor)...)
	errs = append(errs, validateDocs("guarantor", b.Guarantor)...)

	return errs
}

// ValidateManualEntry checks the narrower admin manual-entry contract: a car,
// basic customer contact details, and a free date range. Guarantor and
// document requirements do not apply.
func ValidateManualEntry(b *domain.Booking, bookedDates []string) []FieldError {
	var errs []FieldError

	if b.CarID == "" {
		errs = append(errs, FieldError{"carId", KindRequired})
	}
	if len(b.Customer.Name) < minNameLen {
		errs = append(errs, FieldError{"customerName", kindForLen(b.Customer.Name)})
	}
	if b.CustomerEmail == "" {
		errs = append(errs, FieldError{"customerEmail", KindRequired})
	}
	if len(b.Customer.Phone) < minPhoneLen {
		errs = append(errs, FieldError{"customerPhone", kindForLen(b.Customer.Phone)})
	}

	errs = append(errs, validateDateRange(b.PickupDate, b.ReturnDate, bookedDates)...)
	return errs
}

func validateDateRange(pickup, ret string, bookedDates []string) []FieldError {
	var errs []FieldError

	var start, end utils.Date
	startOK, endOK := false, false

	if pickup == "" {
		errs = append(errs, FieldError{"pickupDate", KindRequired})
	} else if d, err := utils.ParseDate(pickup); err != nil {
		errs = append(errs, FieldError{"pickupDate", KindInvalid})
	} else {
		start, startOK = d, true
	}

	if ret == "" {
		errs = append(errs, FieldError{"returnDate", KindRequired})
	} else if d, err := utils.ParseDate(ret); err != nil {
		errs = append(errs, FieldError{"returnDate", KindInvalid})
	} else {
		end, endOK = d, true
	}

	if !startOK || !endOK {
		return errs
	}

	// return date is strictly after pickup
	if !start.Before(end) {
		errs = append(errs, FieldError{"returnDate", KindAfterPickup})
		return errs
	}

	if !utils.IsRangeFree(bookedDates, start, end) {
		errs = append(errs, FieldError{"returnDate", KindDateTaken})
	}
	return errs
}

func validateParty(prefix string, p domain.Party) []FieldError {
	var errs []FieldError

	if len(p.Name) < minNameLen {
		errs = append(errs, FieldError{prefix + "Name", kindForLen(p.Name)})
	}
	if len(p.Phone) < minPhoneLen {
		errs = append(errs, FieldError{prefix + "Phone", kindForLen(p.Phone)})
	}
	if len(p.NicOrPassport) < minIDLen {
		errs = append(errs, FieldError{prefix + "NicOrPassport", kindForLen(p.NicOrPassport)})
	}
	switch p.Residency {
	case domain.ResidencyLocal, domain.ResidencyTourist:
	default:
		errs = append(errs, FieldError{prefix + "Residency", KindRequired})
	}
	return errs
}

// validateDocs applies the residency-conditional document matrix to one
// party. Locals choose an id-document type (front and back required) and a
// proof-of-address bill type (single image required). Tourists need all four
// of passport front/back and license front/back, with no sub-type selection.
func validateDocs(prefix string, p domain.Party) []FieldError {
	var errs []FieldError

	switch p.Residency {
	case domain.ResidencyLocal:
		switch p.IDType {
		case domain.IDDocTypeNIC:
			if p.Docs.NicFrontURL == "" {
				errs = append(errs, FieldError{prefix + "NicFront", KindRequired})
			}
			if p.Docs.NicBackURL == "" {
				errs = append(errs, FieldError{prefix + "NicBack", KindRequired})
			}
		case domain.IDDocTypeLicense:
			if p.Docs.LicenseFrontURL == "" {
				errs = append(errs, FieldError{prefix + "LicenseFront", KindRequired})
			}
			if p.Docs.LicenseBackURL == "" {
				errs = append(errs, FieldError{prefix + "LicenseBack", KindRequired})
			}
		default:
			errs = append(errs, FieldError{prefix + "IdType", KindRequired})
		}

		switch p.BillType {
		case domain.BillDocTypeLight:
			if p.Docs.LightBillURL == "" {
				errs = append(errs, FieldError{prefix + "LightBill", KindRequired})
			}
		case domain.BillDocTypeWater:
			if p.Docs.WaterBillURL == "" {
				errs = append(errs, FieldError{prefix + "WaterBill", KindRequired})
			}
		default:
			errs = append(errs, FieldError{prefix + "BillType", KindRequired})
		}

	case domain.ResidencyTourist:
		if p.Docs.PassportFrontURL == "" {
			errs = append(errs, FieldError{prefix + "PassportFront", KindRequired})
		}
		if p.Docs.PassportBackURL == "" {
			errs = append(errs, FieldError{prefix + "PassportBack", KindRequired})
		}
		if p.Docs.LicenseFrontURL == "" {
			errs = append(errs, FieldError{prefix + "LicenseFront", KindRequired})
		}
		if p.Docs.LicenseBackURL == "" {
			errs = append(errs, FieldError{prefix + "LicenseBack", KindRequired})
		}
	}
	// Unknown residency already reported by validateParty; document rules
	// cannot be evaluated without it.
	return errs
}

func kindForLen(s string) string {
	if s == "" {
		return KindRequired
	}
	return KindTooShort
}
