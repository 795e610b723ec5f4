package command

import (
	"context"
	"errors"
	"strings"

	"github.com/example/boho-storefront/internal/domain/cart"
	"github.com/example/boho-storefront/internal/domain/catalog"
	"github.com/example/boho-storefront/internal/domain/wishlist"
	"github.com/example/boho-storefront/internal/forms"
	"github.com/example/boho-storefront/internal/status"
)

// CartResult is the derived cart state after a cart command, plus the
// status message for the shopper.
type CartResult struct {
	Cart    cart.Cart      `json:"cart"`
	Summary cart.Summary   `json:"summary"`
	Message status.Message `json:"message"`
}

// WishlistResult is the wishlist after a wishlist command.
type WishlistResult struct {
	Entries []wishlist.Entry `json:"entries"`
	Message status.Message   `json:"message"`
}

// FormResult carries per-field validation errors when a submission is
// rejected.
type FormResult struct {
	Fields  []forms.FieldError `json:"fields,omitempty"`
	Message status.Message     `json:"message"`
}

type Handler struct {
	catalog     *catalog.Catalog
	cartLedger  *cart.Ledger
	wishlistSvc *wishlist.Service
	formsSvc    *forms.Service
}

func NewHandler(
	cat *catalog.Catalog,
	cartLedger *cart.Ledger,
	wishlistSvc *wishlist.Service,
	formsSvc *forms.Service,
) *Handler {
	return &Handler{
		catalog:     cat,
		cartLedger:  cartLedger,
		wishlistSvc: wishlistSvc,
		formsSvc:    formsSvc,
	}
}

func (h *Handler) cartResult(ctx context.Context, sessionID string, c cart.Cart, msg status.Message) (*CartResult, error) {
	d, err := h.cartLedger.ActiveDiscount(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &CartResult{Cart: c, Summary: cart.ComputeSummary(c, d), Message: msg}, nil
}

// AddToCart resolves the product from the catalog and adds one unit of it
// with the selected options. Domain rejections (unknown product, line at
// its maximum) come back as status messages, not errors.
func (h *Handler) AddToCart(ctx context.Context, cmd AddToCart) (*CartResult, error) {
	p, err := h.catalog.ByID(cmd.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c, loadErr := h.cartLedger.Get(ctx, cmd.SessionID)
		if loadErr != nil {
			return nil, loadErr
		}
		return h.cartResult(ctx, cmd.SessionID, c, status.Error("Produkt nicht gefunden"))
	}
	if err != nil {
		return nil, err
	}
	if !p.InStock {
		c, loadErr := h.cartLedger.Get(ctx, cmd.SessionID)
		if loadErr != nil {
			return nil, loadErr
		}
		return h.cartResult(ctx, cmd.SessionID, c, status.Warning("Produkt nicht verfügbar"))
	}

	c, err := h.cartLedger.AddItem(ctx, cmd.SessionID, cart.AddInput{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		UnitPrice: p.Price,
		Stock:     p.Stock,
		Options:   cmd.Options,
	})
	if errors.Is(err, cart.ErrMaxQuantityReached) {
		return h.cartResult(ctx, cmd.SessionID, c, status.Warning("Maximale Anzahl erreicht"))
	}
	if err != nil {
		return nil, err
	}

	return h.cartResult(ctx, cmd.SessionID, c, status.Success("Produkt zum Warenkorb hinzugefügt!"))
}

// ChangeQuantity steps a line up or down by one. Decreasing the last unit
// removes the line.
func (h *Handler) ChangeQuantity(ctx context.Context, cmd ChangeQuantity) (*CartResult, error) {
	dir := cart.Direction(cmd.Direction)
	c, err := h.cartLedger.ChangeQuantity(ctx, cmd.SessionID, cmd.LineID, dir)
	if errors.Is(err, cart.ErrMaxQuantityReached) {
		return h.cartResult(ctx, cmd.SessionID, c, status.Warning("Maximale Anzahl erreicht"))
	}
	if err != nil {
		return nil, err
	}

	if dir == cart.Decrease && !lineExists(c, cmd.LineID) {
		return h.cartResult(ctx, cmd.SessionID, c, status.Info("Produkt entfernt"))
	}
	return h.cartResult(ctx, cmd.SessionID, c, status.Success("Menge aktualisiert"))
}

// RemoveFromCart deletes a line unconditionally.
func (h *Handler) RemoveFromCart(ctx context.Context, cmd RemoveFromCart) (*CartResult, error) {
	c, err := h.cartLedger.RemoveItem(ctx, cmd.SessionID, cmd.LineID)
	if err != nil {
		return nil, err
	}
	return h.cartResult(ctx, cmd.SessionID, c, status.Info("Produkt entfernt"))
}

// ClearCart empties the cart. The active discount survives.
func (h *Handler) ClearCart(ctx context.Context, cmd ClearCart) (*CartResult, error) {
	c, err := h.cartLedger.Clear(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	return h.cartResult(ctx, cmd.SessionID, c, status.Info("Warenkorb geleert"))
}

// ApplyDiscount validates a code and replaces the active discount. An
// unknown code leaves the current discount untouched.
func (h *Handler) ApplyDiscount(ctx context.Context, cmd ApplyDiscount) (*CartResult, error) {
	current := func(msg status.Message) (*CartResult, error) {
		c, err := h.cartLedger.Get(ctx, cmd.SessionID)
		if err != nil {
			return nil, err
		}
		return h.cartResult(ctx, cmd.SessionID, c, msg)
	}

	if strings.TrimSpace(cmd.Code) == "" {
		return current(status.Warning("Bitte geben Sie einen Gutscheincode ein"))
	}

	_, err := h.cartLedger.ApplyDiscountCode(ctx, cmd.SessionID, cmd.Code)
	if errors.Is(err, cart.ErrUnknownDiscountCode) {
		return current(status.Error("Ungültiger Gutscheincode"))
	}
	if err != nil {
		return nil, err
	}
	return current(status.Success("Gutscheincode angewendet!"))
}

// Checkout snapshots the cart for the checkout flow. An empty cart is
// rejected with a warning and nothing is written.
func (h *Handler) Checkout(ctx context.Context, cmd Checkout) (*CartResult, error) {
	c, err := h.cartLedger.Checkout(ctx, cmd.SessionID)
	if errors.Is(err, cart.ErrEmptyCart) {
		return h.cartResult(ctx, cmd.SessionID, c, status.Warning("Ihr Warenkorb ist leer"))
	}
	if err != nil {
		return nil, err
	}
	return h.cartResult(ctx, cmd.SessionID, c, status.Success("Weiter zur Kasse"))
}

// ToggleWishlist flips a product's wishlist membership.
func (h *Handler) ToggleWishlist(ctx context.Context, cmd ToggleWishlist) (*WishlistResult, error) {
	p, err := h.catalog.ByID(cmd.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		entries, listErr := h.wishlistSvc.List(ctx, cmd.SessionID)
		if listErr != nil {
			return nil, listErr
		}
		return &WishlistResult{Entries: entries, Message: status.Error("Produkt nicht gefunden")}, nil
	}
	if err != nil {
		return nil, err
	}

	added, err := h.wishlistSvc.Toggle(ctx, cmd.SessionID, wishlist.Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	})
	if err != nil {
		return nil, err
	}

	entries, err := h.wishlistSvc.List(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	msg := status.Info("Aus Wunschliste entfernt")
	if added {
		msg = status.Success("Zur Wunschliste hinzugefügt!")
	}
	return &WishlistResult{Entries: entries, Message: msg}, nil
}

// SubscribeNewsletter validates and records a newsletter signup.
func (h *Handler) SubscribeNewsletter(ctx context.Context, cmd SubscribeNewsletter) (*FormResult, error) {
	fields, err := h.formsSvc.Subscribe(ctx, cmd.SessionID, forms.NewsletterSignup{
		Email: cmd.Email,
		Name:  cmd.Name,
	})
	if errors.Is(err, forms.ErrValidation) {
		return &FormResult{Fields: fields, Message: status.Error("Bitte überprüfen Sie Ihre Eingaben")}, nil
	}
	if err != nil {
		return nil, err
	}
	return &FormResult{Message: status.Success("Vielen Dank für Ihre Anmeldung! Sie erhalten 15% Rabatt.")}, nil
}

// SubmitContact validates and forwards a contact message.
func (h *Handler) SubmitContact(ctx context.Context, cmd SubmitContact) (*FormResult, error) {
	fields, err := h.formsSvc.SubmitContact(ctx, cmd.SessionID, forms.ContactMessage{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Phone:   cmd.Phone,
		Subject: cmd.Subject,
		Message: cmd.Message,
	})
	if errors.Is(err, forms.ErrValidation) {
		return &FormResult{Fields: fields, Message: status.Error("Bitte überprüfen Sie Ihre Eingaben")}, nil
	}
	if err != nil {
		return nil, err
	}
	return &FormResult{Message: status.Success("Ihre Nachricht wurde gesendet!")}, nil
}

func lineExists(c cart.Cart, lineID string) bool {
	for _, l := range c.Lines {
		if l.ID == lineID {
			return true
		}
	}
	return false
}
