package utils

// BillLineItems are the stored billing inputs of a rental agreement.
// All money amounts are in LKR.
type BillLineItems struct {
	BaseRentTotal  float64
	AdditionalKm   int32
	PricePerKm     float64
	AdditionalDays int32
	PricePerDay    float64
	Damages        float64
	DelayPayments  float64
	OtherCharges   float64
	PaidAmount     float64
}

// BillTotals are derived values, recomputed from the line items on every
// read and never persisted.
type BillTotals struct {
	AdditionalCharges float64 `json:"additional_charges"`
	GrandTotal        float64 `json:"grand_total"`
	// BalanceDue may be negative: the customer overpaid and is owed a refund.
	BalanceDue float64 `json:"balance_due"`
}

// ComputeBill derives the bill totals from the stored line items.
func ComputeBill(items BillLineItems) BillTotals {
	additional := float64(items.AdditionalKm)*items.PricePerKm +
		float64(items.AdditionalDays)*items.PricePerDay

	grand := items.BaseRentTotal + additional + items.Damages +
		items.DelayPayments + items.OtherCharges

	return BillTotals{
		AdditionalCharges: additional,
		GrandTotal:        grand,
		BalanceDue:        grand - items.PaidAmount,
	}
}
