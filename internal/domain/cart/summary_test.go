package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWithSubtotal(subtotal string) Cart {
	return Cart{Lines: []Line{{
		ID:          "1",
		ProductID:   "1",
		UnitPrice:   decimal.RequireFromString(subtotal),
		Quantity:    1,
		MaxQuantity: 99,
	}}}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

// ============================================
// Subtotal Tests
// ============================================

func TestCart_Subtotal(t *testing.T) {
	c := Cart{Lines: []Line{
		{UnitPrice: decimal.RequireFromString("29.90"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("19.90"), Quantity: 1},
	}}

	assertDecimal(t, "79.70", c.Subtotal())
}

func TestCart_Subtotal_Empty(t *testing.T) {
	assertDecimal(t, "0", Cart{}.Subtotal())
}

func TestCart_ItemCount(t *testing.T) {
	c := Cart{Lines: []Line{
		{Quantity: 2},
		{Quantity: 3},
	}}
	assert.Equal(t, 5, c.ItemCount())
}

// ============================================
// Shipping Tests
// ============================================

func TestComputeSummary_Shipping(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		shipping string
	}{
		{"exactly at threshold", "39.90", "0"},
		{"one cent below threshold", "39.89", "4.90"},
		{"above threshold", "50.00", "0"},
		{"small order", "10.00", "4.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeSummary(cartWithSubtotal(tt.subtotal), nil)
			assertDecimal(t, tt.shipping, s.Shipping)
		})
	}
}

func TestComputeSummary_FreeShippingDiscount(t *testing.T) {
	d := Discount{Kind: DiscountFreeShipping, Code: "FREESHIP"}
	s := ComputeSummary(cartWithSubtotal("10.00"), &d)

	assertDecimal(t, "0", s.Shipping)
	assertDecimal(t, "0", s.DiscountAmount)
	assertDecimal(t, "10.00", s.Total)
}

// ============================================
// Discount Amount Tests
// ============================================

func TestComputeSummary_PercentageDiscount(t *testing.T) {
	d := Discount{Kind: DiscountPercentage, Value: decimal.NewFromInt(15), Code: "WELCOME15"}
	s := ComputeSummary(cartWithSubtotal("100.00"), &d)

	assertDecimal(t, "15", s.DiscountAmount)
	assertDecimal(t, "85", s.Total) // free shipping above threshold
	assert.Equal(t, "WELCOME15", s.DiscountCode)
}

func TestComputeSummary_FixedDiscountCappedAtSubtotal(t *testing.T) {
	d := Discount{Kind: DiscountFixed, Value: decimal.NewFromInt(50), Code: "FIFTY"}
	s := ComputeSummary(cartWithSubtotal("30.00"), &d)

	assertDecimal(t, "30.00", s.DiscountAmount)
}

func TestComputeSummary_TotalNeverNegative(t *testing.T) {
	// Fixed discount swallows the subtotal; shipping alone would leave a
	// small positive total, a percentage over 100 would not.
	d := Discount{Kind: DiscountPercentage, Value: decimal.NewFromInt(200), Code: "BROKEN"}
	s := ComputeSummary(cartWithSubtotal("10.00"), &d)

	assert.False(t, s.Total.IsNegative())
	assertDecimal(t, "0", s.Total)
}

func TestComputeSummary_NoDiscount(t *testing.T) {
	s := ComputeSummary(cartWithSubtotal("29.90"), nil)

	assertDecimal(t, "29.90", s.Subtotal)
	assertDecimal(t, "0", s.DiscountAmount)
	assertDecimal(t, "4.90", s.Shipping)
	assertDecimal(t, "34.80", s.Total)
	assert.Empty(t, s.DiscountCode)
}

// ============================================
// End-to-end Summary Tests
// ============================================

func TestLedger_Summary_WithPercentageCode(t *testing.T) {
	ledger, _, _ := newTestLedger()
	ctx := context.Background()

	in := braceletInput() // 29.90
	_, err := ledger.AddItem(ctx, "sess-1", in)
	require.NoError(t, err)
	_, err = ledger.AddItem(ctx, "sess-1", in)
	require.NoError(t, err)

	_, err = ledger.ApplyDiscountCode(ctx, "sess-1", "WELCOME15")
	require.NoError(t, err)

	s, err := ledger.Summary(ctx, "sess-1")
	require.NoError(t, err)

	assertDecimal(t, "59.80", s.Subtotal)
	assertDecimal(t, "8.97", s.DiscountAmount) // 59.80 * 0.15
	assertDecimal(t, "0", s.Shipping)          // above threshold
	assertDecimal(t, "50.83", s.Total)
}
