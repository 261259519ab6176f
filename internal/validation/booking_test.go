package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lankadrive-backend/internal/domain"
)

func validLocalParty() domain.Party {
	return domain.Party{
		Name:          "Nimal Perera",
		Phone:         "0771234567",
		Residency:     domain.ResidencyLocal,
		NicOrPassport: "912345678V",
		IDType:        domain.IDDocTypeNIC,
		BillType:      domain.BillDocTypeLight,
		Docs: domain.PartyDocs{
			NicFrontURL:  "nic-front.jpg",
			NicBackURL:   "nic-back.jpg",
			LightBillURL: "light-bill.jpg",
		},
	}
}

func validTouristParty() domain.Party {
	return domain.Party{
		Name:          "Jane Walker",
		Phone:         "+447911123456",
		Residency:     domain.ResidencyTourist,
		NicOrPassport: "P1234567",
		Docs: domain.PartyDocs{
			PassportFrontURL: "passport-front.jpg",
			PassportBackURL:  "passport-back.jpg",
			LicenseFrontURL:  "license-front.jpg",
			LicenseBackURL:   "license-back.jpg",
		},
	}
}

func validInquiry() *domain.Booking {
	return &domain.Booking{
		CarID:         "car-1",
		PickupDate:    "2030-06-10",
		ReturnDate:    "2030-06-14",
		CustomerEmail: "nimal@example.com",
		Customer:      validLocalParty(),
		Guarantor:     validLocalParty(),
	}
}

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateInquiry_Valid(t *testing.T) {
	assert.Empty(t, ValidateInquiry(validInquiry(), nil))

	b := validInquiry()
	b.Customer = validTouristParty()
	b.Guarantor = validTouristParty()
	assert.Empty(t, ValidateInquiry(b, nil))
}

func TestValidateInquiry_DateRange(t *testing.T) {
	t.Run("missing dates", func(t *testing.T) {
		b := validInquiry()
		b.PickupDate = ""
		b.ReturnDate = ""
		errs := ValidateInquiry(b, nil)
		assert.Contains(t, errs, FieldError{"pickupDate", KindRequired})
		assert.Contains(t, errs, FieldError{"returnDate", KindRequired})
	})

	t.Run("unparseable pickup", func(t *testing.T) {
		b := validInquiry()
		b.PickupDate = "2030-02-30"
		errs := ValidateInquiry(b, nil)
		assert.Contains(t, errs, FieldError{"pickupDate", KindInvalid})
	})

	t.Run("return equal to pickup", func(t *testing.T) {
		b := validInquiry()
		b.ReturnDate = b.PickupDate
		errs := ValidateInquiry(b, nil)
		assert.Contains(t, errs, FieldError{"returnDate", KindAfterPickup})
	})

	t.Run("return before pickup", func(t *testing.T) {
		b := validInquiry()
		b.PickupDate = "2030-06-14"
		b.ReturnDate = "2030-06-10"
		errs := ValidateInquiry(b, nil)
		assert.Contains(t, errs, FieldError{"returnDate", KindAfterPickup})
	})

	t.Run("range collides with blocked dates", func(t *testing.T) {
		errs := ValidateInquiry(validInquiry(), []string{"2030-06-12"})
		assert.Contains(t, errs, FieldError{"returnDate", KindDateTaken})
	})

	t.Run("blocked dates outside range are fine", func(t *testing.T) {
		errs := ValidateInquiry(validInquiry(), []string{"2030-06-15", "2030-06-09"})
		assert.Empty(t, errs)
	})
}

func TestValidateInquiry_PartyFields(t *testing.T) {
	b := validInquiry()
	b.Customer.Name = "X"
	b.Customer.Phone = ""
	b.Guarantor.NicOrPassport = "ab"
	errs := ValidateInquiry(b, nil)

	assert.Contains(t, errs, FieldError{"customerName", KindTooShort})
	assert.Contains(t, errs, FieldError{"customerPhone", KindRequired})
	assert.Contains(t, errs, FieldError{"guarantorNicOrPassport", KindTooShort})
	assert.Len(t, errs, 3)
}

func TestValidateInquiry_Documents(t *testing.T) {
	t.Run("tourist with only passport front", func(t *testing.T) {
		b := validInquiry()
		tourist := validTouristParty()
		tourist.Docs = domain.PartyDocs{PassportFrontURL: "passport-front.jpg"}
		b.Customer = tourist

		errs := ValidateInquiry(b, nil)
		assert.ElementsMatch(t, []FieldError{
			{"customerPassportBack", KindRequired},
			{"customerLicenseFront", KindRequired},
			{"customerLicenseBack", KindRequired},
		}, errs)
	})

	t.Run("local without id type or bill type", func(t *testing.T) {
		b := validInquiry()
		b.Guarantor.IDType = ""
		b.Guarantor.BillType = ""
		errs := ValidateInquiry(b, nil)
		assert.ElementsMatch(t, []FieldError{
			{"guarantorIdType", KindRequired},
			{"guarantorBillType", KindRequired},
		}, errs)
	})
}

func TestValidateInquiry_LocalDocMatrix(t *testing.T) {
	t.Run("nic back missing", func(t *testing.T) {
		b := validInquiry()
		b.Customer.Docs.NicBackURL = ""
		errs := ValidateInquiry(b, nil)
		assert.Equal(t, []FieldError{{"customerNicBack", KindRequired}}, errs)
	})

	t.Run("license choice ignores nic docs", func(t *testing.T) {
		b := validInquiry()
		b.Customer.IDType = domain.IDDocTypeLicense
		b.Customer.Docs = domain.PartyDocs{
			LicenseFrontURL: "license-front.jpg",
			LicenseBackURL:  "license-back.jpg",
			LightBillURL:    "light-bill.jpg",
		}
		assert.Empty(t, ValidateInquiry(b, nil))
	})

	t.Run("water bill choice requires water bill image", func(t *testing.T) {
		b := validInquiry()
		b.Customer.BillType = domain.BillDocTypeWater
		errs := ValidateInquiry(b, nil)
		assert.Equal(t, []FieldError{{"customerWaterBill", KindRequired}}, errs)
	})

	t.Run("unknown residency reports residency only", func(t *testing.T) {
		b := validInquiry()
		b.Customer.Residency = "martian"
		errs := ValidateInquiry(b, nil)
		assert.Equal(t, []FieldError{{"customerResidency", KindRequired}}, errs)
	})
}

// A maximally wrong inquiry reports every violation at once rather than
// stopping at the first.
func TestValidateInquiry_CollectsAllViolations(t *testing.T) {
	b := &domain.Booking{}
	errs := ValidateInquiry(b, nil)

	got := fields(errs)
	assert.Contains(t, got, "pickupDate")
	assert.Contains(t, got, "returnDate")
	assert.Contains(t, got, "customerName")
	assert.Contains(t, got, "customerPhone")
	assert.Contains(t, got, "customerNicOrPassport")
	assert.Contains(t, got, "customerResidency")
	assert.Contains(t, got, "guarantorName")
	assert.Contains(t, got, "guarantorPhone")
	assert.Contains(t, got, "guarantorNicOrPassport")
	assert.Contains(t, got, "guarantorResidency")
	assert.Len(t, errs, 10)
}

func TestValidateManualEntry(t *testing.T) {
	valid := func() *domain.Booking {
		return &domain.Booking{
			CarID:         "car-1",
			PickupDate:    "2030-06-10",
			ReturnDate:    "2030-06-14",
			CustomerEmail: "walkin@example.com",
			Customer: domain.Party{
				Name:  "Walk In",
				Phone: "0712345678",
			},
		}
	}

	t.Run("valid entry", func(t *testing.T) {
		assert.Empty(t, ValidateManualEntry(valid(), nil))
	})

	t.Run("no guarantor or documents required", func(t *testing.T) {
		b := valid()
		b.Guarantor = domain.Party{}
		assert.Empty(t, ValidateManualEntry(b, nil))
	})

	t.Run("missing essentials", func(t *testing.T) {
		errs := ValidateManualEntry(&domain.Booking{}, nil)
		assert.ElementsMatch(t, []FieldError{
			{"carId", KindRequired},
			{"customerName", KindRequired},
			{"customerEmail", KindRequired},
			{"customerPhone", KindRequired},
			{"pickupDate", KindRequired},
			{"returnDate", KindRequired},
		}, errs)
	})

	t.Run("blocked dates still apply", func(t *testing.T) {
		errs := ValidateManualEntry(valid(), []string{"2030-06-11"})
		assert.Equal(t, []FieldError{{"returnDate", KindDateTaken}}, errs)
	})
}
