package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownDiscountCode = errors.New("unknown discount code")

// DiscountKind is the closed set of promotional effects.
type DiscountKind string

const (
	DiscountPercentage   DiscountKind = "percentage"
	DiscountFixed        DiscountKind = "fixed"
	DiscountFreeShipping DiscountKind = "free-shipping"
)

// Discount is the single active promotional effect for a session.
// Applying a new valid code replaces any prior one.
type Discount struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
	Code  string          `json:"code"`
}

// discountCodes is the fixed table of recognized codes.
var discountCodes = map[string]Discount{
	"WELCOME15": {Kind: DiscountPercentage, Value: decimal.NewFromInt(15), Code: "WELCOME15"},
	"SAVE10":    {Kind: DiscountPercentage, Value: decimal.NewFromInt(10), Code: "SAVE10"},
	"FREESHIP":  {Kind: DiscountFreeShipping, Value: decimal.Zero, Code: "FREESHIP"},
}

// LookupDiscountCode resolves a user-entered code. Codes are matched after
// trimming whitespace, case-insensitively.
func LookupDiscountCode(code string) (Discount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	d, ok := discountCodes[normalized]
	if !ok {
		return Discount{}, ErrUnknownDiscountCode
	}
	return d, nil
}

// Amount returns the monetary reduction this discount applies to the given
// subtotal. A free-shipping discount reduces nothing here; it affects the
// shipping cost instead.
func (d Discount) Amount(subtotal decimal.Decimal) decimal.Decimal {
	switch d.Kind {
	case DiscountPercentage:
		return subtotal.Mul(d.Value).Div(decimal.NewFromInt(100))
	case DiscountFixed:
		if d.Value.GreaterThan(subtotal) {
			return subtotal
		}
		return d.Value
	case DiscountFreeShipping:
		return decimal.Zero
	}
	return decimal.Zero
}
