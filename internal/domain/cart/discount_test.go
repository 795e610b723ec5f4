package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// Code Lookup Tests
// ============================================

func TestLookupDiscountCode(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		expectedKind DiscountKind
		expectedCode string
	}{
		{"welcome code", "WELCOME15", DiscountPercentage, "WELCOME15"},
		{"save code", "SAVE10", DiscountPercentage, "SAVE10"},
		{"free shipping code", "FREESHIP", DiscountFreeShipping, "FREESHIP"},
		{"lowercase accepted", "welcome15", DiscountPercentage, "WELCOME15"},
		{"surrounding whitespace trimmed", "  SAVE10  ", DiscountPercentage, "SAVE10"},
		{"mixed case", "FreeShip", DiscountFreeShipping, "FREESHIP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := LookupDiscountCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKind, d.Kind)
			assert.Equal(t, tt.expectedCode, d.Code)
		})
	}
}

func TestLookupDiscountCode_Unknown(t *testing.T) {
	for _, code := range []string{"", "NOPE", "WELCOME", "WELCOME155"} {
		_, err := LookupDiscountCode(code)
		assert.ErrorIs(t, err, ErrUnknownDiscountCode, "code %q", code)
	}
}

// ============================================
// Apply Discount Tests
// ============================================

func TestLedger_ApplyDiscountCode_Persists(t *testing.T) {
	ledger, store, publisher := newTestLedger()
	ctx := context.Background()

	d, err := ledger.ApplyDiscountCode(ctx, "sess-1", "save10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", d.Code)

	require.Len(t, store.PutCalls, 1)
	assert.Equal(t, "discount:sess-1", store.PutCalls[0].Key)
	assert.Len(t, publisher.PublishCalls, 1)
}

func TestLedger_ApplyDiscountCode_ReplacesPrevious(t *testing.T) {
	ledger, _, _ := newTestLedger()
	ctx := context.Background()

	_, err := ledger.ApplyDiscountCode(ctx, "sess-1", "WELCOME15")
	require.NoError(t, err)
	_, err = ledger.ApplyDiscountCode(ctx, "sess-1", "FREESHIP")
	require.NoError(t, err)

	d, err := ledger.ActiveDiscount(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, DiscountFreeShipping, d.Kind)
}

func TestLedger_ApplyDiscountCode_UnknownLeavesStateUntouched(t *testing.T) {
	ledger, store, _ := newTestLedger()
	ctx := context.Background()

	_, err := ledger.ApplyDiscountCode(ctx, "sess-1", "WELCOME15")
	require.NoError(t, err)

	_, err = ledger.ApplyDiscountCode(ctx, "sess-1", "BOGUS")
	assert.ErrorIs(t, err, ErrUnknownDiscountCode)

	d, err := ledger.ActiveDiscount(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "WELCOME15", d.Code)
	assert.Len(t, store.PutCalls, 1)
}

func TestLedger_ActiveDiscount_NoneSet(t *testing.T) {
	ledger, _, _ := newTestLedger()

	d, err := ledger.ActiveDiscount(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, d)
}
