package cart

import "github.com/shopspring/decimal"

// FreeShippingThreshold is the subtotal at or above which shipping is free.
var FreeShippingThreshold = decimal.RequireFromString("39.90")

// StandardShipping is the flat shipping rate below the threshold.
var StandardShipping = decimal.RequireFromString("4.90")

// Summary is the derived order overview for the current cart contents.
type Summary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountCode   string          `json:"discount_code,omitempty"`
	Shipping       decimal.Decimal `json:"shipping"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeSummary derives subtotal, discount, shipping and total from the
// cart contents and the active discount (nil when none is applied).
func ComputeSummary(c Cart, d *Discount) Summary {
	subtotal := c.Subtotal()

	var discountAmount decimal.Decimal
	var discountCode string
	freeShipping := false
	if d != nil {
		discountAmount = d.Amount(subtotal)
		discountCode = d.Code
		freeShipping = d.Kind == DiscountFreeShipping
	}

	shipping := StandardShipping
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) || freeShipping {
		shipping = decimal.Zero
	}

	total := subtotal.Sub(discountAmount).Add(shipping)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Summary{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		DiscountCode:   discountCode,
		Shipping:       shipping,
		Total:          total,
	}
}
