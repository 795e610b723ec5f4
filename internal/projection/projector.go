package projection

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/example/boho-storefront/internal/domain/cart"
	"github.com/example/boho-storefront/internal/domain/wishlist"
	"github.com/example/boho-storefront/internal/forms"
	"github.com/example/boho-storefront/internal/infrastructure/stream"
)

// Stats is a point-in-time snapshot of the aggregated storefront activity.
type Stats struct {
	CartAdds          map[string]int  `json:"cart_adds"`
	WishlistAdds      map[string]int  `json:"wishlist_adds"`
	DiscountUses      map[string]int  `json:"discount_uses"`
	Checkouts         int             `json:"checkouts"`
	CheckoutRevenue   decimal.Decimal `json:"checkout_revenue"`
	NewsletterSignups int             `json:"newsletter_signups"`
	ContactMessages   int             `json:"contact_messages"`
}

// Projector folds the event stream into per-product and per-code activity
// counters.
type Projector struct {
	mu                sync.RWMutex
	cartAdds          map[string]int
	wishlistAdds      map[string]int
	discountUses      map[string]int
	checkouts         int
	checkoutRevenue   decimal.Decimal
	newsletterSignups int
	contactMessages   int
}

func NewProjector() *Projector {
	return &Projector{
		cartAdds:     make(map[string]int),
		wishlistAdds: make(map[string]int),
		discountUses: make(map[string]int),
	}
}

// HandleEvent processes an event from Kafka
func (p *Projector) HandleEvent(ctx context.Context, key, value []byte) error {
	var event stream.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return err
	}

	log.Printf("[Projector] Received event: %s (session: %s)", event.EventType, event.SessionID)

	switch event.EventType {
	case cart.EventItemAdded:
		return p.handleItemAdded(event)
	case cart.EventDiscountApplied:
		return p.handleDiscountApplied(event)
	case cart.EventCheckedOut:
		return p.handleCheckedOut(event)
	case wishlist.EventToggled:
		return p.handleWishlistToggled(event)
	case forms.EventNewsletterSubscribed:
		p.mu.Lock()
		p.newsletterSignups++
		p.mu.Unlock()
	case forms.EventContactSubmitted:
		p.mu.Lock()
		p.contactMessages++
		p.mu.Unlock()
	}

	return nil
}

func (p *Projector) handleItemAdded(event stream.Event) error {
	var e cart.ItemAddedToCart
	if err := json.Unmarshal(event.Data, &e); err != nil {
		return err
	}

	p.mu.Lock()
	p.cartAdds[e.ProductID]++
	p.mu.Unlock()
	return nil
}

func (p *Projector) handleDiscountApplied(event stream.Event) error {
	var e cart.DiscountApplied
	if err := json.Unmarshal(event.Data, &e); err != nil {
		return err
	}

	p.mu.Lock()
	p.discountUses[e.Code]++
	p.mu.Unlock()
	return nil
}

func (p *Projector) handleCheckedOut(event stream.Event) error {
	var e cart.CheckedOut
	if err := json.Unmarshal(event.Data, &e); err != nil {
		return err
	}

	p.mu.Lock()
	p.checkouts++
	p.checkoutRevenue = p.checkoutRevenue.Add(e.Total)
	p.mu.Unlock()
	return nil
}

// handleWishlistToggled counts only additions; removals carry no insight
// about product interest.
func (p *Projector) handleWishlistToggled(event stream.Event) error {
	var e wishlist.WishlistToggled
	if err := json.Unmarshal(event.Data, &e); err != nil {
		return err
	}

	if e.Added {
		p.mu.Lock()
		p.wishlistAdds[e.ProductID]++
		p.mu.Unlock()
	}
	return nil
}

// Snapshot returns a copy of the current counters.
func (p *Projector) Snapshot() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Stats{
		CartAdds:          copyCounts(p.cartAdds),
		WishlistAdds:      copyCounts(p.wishlistAdds),
		DiscountUses:      copyCounts(p.discountUses),
		Checkouts:         p.checkouts,
		CheckoutRevenue:   p.checkoutRevenue,
		NewsletterSignups: p.newsletterSignups,
		ContactMessages:   p.contactMessages,
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
