package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/boho-storefront/internal/infrastructure/statestore"
	"github.com/example/boho-storefront/internal/infrastructure/stream"
)

// defaultMaxQuantity caps a line when the product stock is unknown.
const defaultMaxQuantity = 99

var (
	ErrMaxQuantityReached = errors.New("maximum quantity reached")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidProduct     = errors.New("product_id is required")
)

// Direction is a quantity change request.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// Line is one cart entry: a product plus its selected options. At most one
// line exists per (product, options) pair.
type Line struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	Name        string            `json:"name"`
	Image       string            `json:"image,omitempty"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	Quantity    int               `json:"quantity"`
	MaxQuantity int               `json:"max_quantity"`
	Options     map[string]string `json:"options,omitempty"`
}

// Cart is the persisted cart state for one session.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the total quantity across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// Subtotal returns the sum of unit price times quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

func (c Cart) findLine(lineID string) int {
	for i, l := range c.Lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

// LineID derives the canonical line identity from a product and its
// selected options. Options are compared structurally, so the id encodes
// them in sorted order.
func LineID(productID string, options map[string]string) string {
	if len(options) == 0 {
		return productID
	}
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(productID)
	for _, k := range keys {
		sb.WriteByte('|')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(options[k])
	}
	return sb.String()
}

// AddInput carries the product data captured when a line is created.
type AddInput struct {
	ProductID string
	Name      string
	Image     string
	UnitPrice decimal.Decimal
	Stock     int
	Options   map[string]string
}

// Ledger maintains the authoritative cart state per session. Every
// mutation overwrites the full persisted cart blob; the last writer wins.
type Ledger struct {
	store     statestore.Store
	publisher stream.Publisher
}

func NewLedger(store statestore.Store, publisher stream.Publisher) *Ledger {
	return &Ledger{store: store, publisher: publisher}
}

func (l *Ledger) load(ctx context.Context, sessionID string) (Cart, error) {
	data, ok, err := l.store.Get(ctx, statestore.Key(statestore.KeyCart, sessionID))
	if err != nil {
		return Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	if !ok {
		return Cart{}, nil
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	return c, nil
}

func (l *Ledger) save(ctx context.Context, sessionID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := l.store.Put(ctx, statestore.Key(statestore.KeyCart, sessionID), data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

func (l *Ledger) record(ctx context.Context, sessionID, eventType string, data any) {
	if err := stream.Record(ctx, l.publisher, sessionID, eventType, data); err != nil {
		log.Printf("[Cart] Failed to publish %s for session %s: %v", eventType, sessionID, err)
	}
}

// Get returns the current cart for a session. A session without a cart
// gets an empty one.
func (l *Ledger) Get(ctx context.Context, sessionID string) (Cart, error) {
	return l.load(ctx, sessionID)
}

// AddItem adds one unit of a product with its selected options. An
// existing line for the same (product, options) pair is incremented
// instead of duplicated; at the line's maximum quantity the add is
// rejected with ErrMaxQuantityReached and nothing changes.
func (l *Ledger) AddItem(ctx context.Context, sessionID string, in AddInput) (Cart, error) {
	if in.ProductID == "" {
		return Cart{}, ErrInvalidProduct
	}

	c, err := l.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	lineID := LineID(in.ProductID, in.Options)
	quantity := 1
	if i := c.findLine(lineID); i >= 0 {
		if c.Lines[i].Quantity >= c.Lines[i].MaxQuantity {
			return c, ErrMaxQuantityReached
		}
		c.Lines[i].Quantity++
		quantity = c.Lines[i].Quantity
	} else {
		maxQuantity := in.Stock
		if maxQuantity <= 0 {
			maxQuantity = defaultMaxQuantity
		}
		c.Lines = append(c.Lines, Line{
			ID:          lineID,
			ProductID:   in.ProductID,
			Name:        in.Name,
			Image:       in.Image,
			UnitPrice:   in.UnitPrice,
			Quantity:    1,
			MaxQuantity: maxQuantity,
			Options:     in.Options,
		})
	}

	if err := l.save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}

	l.record(ctx, sessionID, EventItemAdded, ItemAddedToCart{
		SessionID: sessionID,
		LineID:    lineID,
		ProductID: in.ProductID,
		Options:   in.Options,
		Quantity:  quantity,
		UnitPrice: in.UnitPrice,
		AddedAt:   time.Now(),
	})

	return c, nil
}

// ChangeQuantity increments or decrements a line by one. Increasing past
// the line's maximum is rejected with ErrMaxQuantityReached; decreasing to
// zero removes the line. An unknown line id is a silent no-op.
func (l *Ledger) ChangeQuantity(ctx context.Context, sessionID, lineID string, dir Direction) (Cart, error) {
	c, err := l.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	i := c.findLine(lineID)
	if i < 0 {
		return c, nil
	}

	switch dir {
	case Increase:
		if c.Lines[i].Quantity >= c.Lines[i].MaxQuantity {
			return c, ErrMaxQuantityReached
		}
		c.Lines[i].Quantity++
	case Decrease:
		c.Lines[i].Quantity--
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			if err := l.save(ctx, sessionID, c); err != nil {
				return Cart{}, err
			}
			l.record(ctx, sessionID, EventItemRemoved, ItemRemovedFromCart{
				SessionID: sessionID,
				LineID:    lineID,
				RemovedAt: time.Now(),
			})
			return c, nil
		}
	default:
		return c, nil
	}

	if err := l.save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}

	l.record(ctx, sessionID, EventQuantityChanged, CartQuantityChanged{
		SessionID: sessionID,
		LineID:    lineID,
		Quantity:  c.Lines[i].Quantity,
		ChangedAt: time.Now(),
	})

	return c, nil
}

// RemoveItem deletes a line unconditionally. An unknown line id is a
// silent no-op.
func (l *Ledger) RemoveItem(ctx context.Context, sessionID, lineID string) (Cart, error) {
	c, err := l.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	i := c.findLine(lineID)
	if i < 0 {
		return c, nil
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

	if err := l.save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}

	l.record(ctx, sessionID, EventItemRemoved, ItemRemovedFromCart{
		SessionID: sessionID,
		LineID:    lineID,
		RemovedAt: time.Now(),
	})

	return c, nil
}

// Clear empties the cart. The active discount is kept; it lives under its
// own key and survives an emptied cart.
func (l *Ledger) Clear(ctx context.Context, sessionID string) (Cart, error) {
	c := Cart{}
	if err := l.save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}

	l.record(ctx, sessionID, EventCartCleared, CartCleared{
		SessionID: sessionID,
		ClearedAt: time.Now(),
	})

	return c, nil
}

// ApplyDiscountCode validates a user-entered code and replaces the active
// discount. Unknown codes leave the current discount untouched.
func (l *Ledger) ApplyDiscountCode(ctx context.Context, sessionID, code string) (Discount, error) {
	d, err := LookupDiscountCode(code)
	if err != nil {
		return Discount{}, err
	}

	data, err := json.Marshal(d)
	if err != nil {
		return Discount{}, fmt.Errorf("failed to encode discount: %w", err)
	}
	if err := l.store.Put(ctx, statestore.Key(statestore.KeyDiscount, sessionID), data); err != nil {
		return Discount{}, fmt.Errorf("failed to persist discount: %w", err)
	}

	l.record(ctx, sessionID, EventDiscountApplied, DiscountApplied{
		SessionID: sessionID,
		Code:      d.Code,
		Kind:      string(d.Kind),
		AppliedAt: time.Now(),
	})

	return d, nil
}

// ActiveDiscount returns the session's discount, or nil when none is set.
func (l *Ledger) ActiveDiscount(ctx context.Context, sessionID string) (*Discount, error) {
	data, ok, err := l.store.Get(ctx, statestore.Key(statestore.KeyDiscount, sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to load discount: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var d Discount
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode discount: %w", err)
	}
	return &d, nil
}

// Summary derives the order overview from the current cart and discount.
func (l *Ledger) Summary(ctx context.Context, sessionID string) (Summary, error) {
	c, err := l.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	d, err := l.ActiveDiscount(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return ComputeSummary(c, d), nil
}

// Checkout snapshots the cart for the checkout flow. An empty cart is
// rejected with ErrEmptyCart and nothing is written.
func (l *Ledger) Checkout(ctx context.Context, sessionID string) (Cart, error) {
	c, err := l.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	if c.IsEmpty() {
		return c, ErrEmptyCart
	}

	data, err := json.Marshal(c)
	if err != nil {
		return Cart{}, fmt.Errorf("failed to encode checkout snapshot: %w", err)
	}
	if err := l.store.Put(ctx, statestore.Key(statestore.KeyCheckout, sessionID), data); err != nil {
		return Cart{}, fmt.Errorf("failed to persist checkout snapshot: %w", err)
	}

	d, err := l.ActiveDiscount(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	summary := ComputeSummary(c, d)

	l.record(ctx, sessionID, EventCheckedOut, CheckedOut{
		SessionID: sessionID,
		Lines:     len(c.Lines),
		Items:     c.ItemCount(),
		Total:     summary.Total,
		At:        time.Now(),
	})

	return c, nil
}
