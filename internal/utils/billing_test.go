package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBill(t *testing.T) {
	tests := []struct {
		name  string
		items BillLineItems
		want  BillTotals
	}{
		{
			name: "extra km with partial payment",
			items: BillLineItems{
				BaseRentTotal: 1000,
				AdditionalKm:  50,
				PricePerKm:    10,
				PaidAmount:    800,
			},
			want: BillTotals{AdditionalCharges: 500, GrandTotal: 1500, BalanceDue: 700},
		},
		{
			name: "extra days and surcharges",
			items: BillLineItems{
				BaseRentTotal:  9000,
				AdditionalDays: 2,
				PricePerDay:    3000,
				Damages:        1500,
				DelayPayments:  500,
				OtherCharges:   250,
			},
			want: BillTotals{AdditionalCharges: 6000, GrandTotal: 17250, BalanceDue: 17250},
		},
		{
			name: "overpayment yields negative balance",
			items: BillLineItems{
				BaseRentTotal: 1500,
				PaidAmount:    1600,
			},
			want: BillTotals{AdditionalCharges: 0, GrandTotal: 1500, BalanceDue: -100},
		},
		{
			name:  "zero everything",
			items: BillLineItems{},
			want:  BillTotals{},
		},
		{
			name: "rates without units contribute nothing",
			items: BillLineItems{
				BaseRentTotal: 2000,
				PricePerKm:    25,
				PricePerDay:   4000,
			},
			want: BillTotals{AdditionalCharges: 0, GrandTotal: 2000, BalanceDue: 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBill(tt.items))
		})
	}
}
