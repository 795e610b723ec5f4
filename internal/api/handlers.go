package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/boho-storefront/internal/api/middleware"
	"github.com/example/boho-storefront/internal/command"
	"github.com/example/boho-storefront/internal/domain/cart"
	"github.com/example/boho-storefront/internal/domain/catalog"
	"github.com/example/boho-storefront/internal/domain/wishlist"
)

type Handlers struct {
	cmdHandler  *command.Handler
	catalog     *catalog.Catalog
	cartLedger  *cart.Ledger
	wishlistSvc *wishlist.Service
}

func NewHandlers(
	cmdHandler *command.Handler,
	cat *catalog.Catalog,
	cartLedger *cart.Ledger,
	wishlistSvc *wishlist.Service,
) *Handlers {
	return &Handlers{
		cmdHandler:  cmdHandler,
		catalog:     cat,
		cartLedger:  cartLedger,
		wishlistSvc: wishlistSvc,
	}
}

// Catalog Handlers

type browseResponse struct {
	catalog.Result
	Pages []int `json:"pages,omitempty"`
}

func (h *Handlers) BrowseCatalog(w http.ResponseWriter, r *http.Request) {
	state := stateFromQuery(r)
	result := h.catalog.Browse(state.Filters, state.Sort, state.Page, state.PageSize)
	respondJSON(w, http.StatusOK, browseResponse{
		Result: result,
		Pages:  catalog.PageNumbers(result.Page, result.TotalPages),
	})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/catalog/")
	product, err := h.catalog.ByID(id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// stateFromQuery builds the browse state from query parameters. The page
// parameter is applied last so it survives the page reset every filter
// mutation triggers.
func stateFromQuery(r *http.Request) *catalog.State {
	state := catalog.NewState()
	q := r.URL.Query()

	if category := q.Get("category"); category != "" {
		state.SetCategory(category)
	}
	if raw := q.Get("price_max"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			state.SetPriceMax(max)
		}
	}
	for _, color := range q["color"] {
		state.ToggleColor(color, true)
	}
	for _, size := range q["size"] {
		state.ToggleSize(size, true)
	}
	if q.Get("in_stock") == "true" {
		state.SetInStockOnly(true)
	}
	if q.Get("on_sale") == "true" {
		state.SetOnSaleOnly(true)
	}
	if sortKey := q.Get("sort"); sortKey != "" {
		state.SetSort(catalog.SortKey(sortKey))
	}
	if raw := q.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.SetPage(page)
		}
	}
	return state
}

// Cart Handlers

type cartView struct {
	Cart    cart.Cart    `json:"cart"`
	Summary cart.Summary `json:"summary"`
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r)

	c, err := h.cartLedger.Get(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	summary, err := h.cartLedger.Summary(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, cartView{Cart: c, Summary: summary})
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string            `json:"product_id"`
		Options   map[string]string `json:"options,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd := command.AddToCart{
		SessionID: getSessionID(r),
		ProductID: req.ProductID,
		Options:   req.Options,
	}
	result, err := h.cmdHandler.AddToCart(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	lineID := extractPathParam(r.URL.Path, "/cart/items/")

	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd := command.ChangeQuantity{
		SessionID: getSessionID(r),
		LineID:    lineID,
		Direction: req.Direction,
	}
	result, err := h.cmdHandler.ChangeQuantity(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cmd := command.RemoveFromCart{
		SessionID: getSessionID(r),
		LineID:    extractPathParam(r.URL.Path, "/cart/items/"),
	}
	result, err := h.cmdHandler.RemoveFromCart(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	cmd := command.ClearCart{SessionID: getSessionID(r)}
	result, err := h.cmdHandler.ClearCart(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd := command.ApplyDiscount{SessionID: getSessionID(r), Code: req.Code}
	result, err := h.cmdHandler.ApplyDiscount(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	cmd := command.Checkout{SessionID: getSessionID(r)}
	result, err := h.cmdHandler.Checkout(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Wishlist Handlers

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.wishlistSvc.List(r.Context(), getSessionID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []wishlist.Entry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handlers) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd := command.ToggleWishlist{SessionID: getSessionID(r), ProductID: req.ProductID}
	result, err := h.cmdHandler.ToggleWishlist(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Form Handlers

func (h *Handlers) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var cmd command.SubscribeNewsletter
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cmd.SessionID = getSessionID(r)

	result, err := h.cmdHandler.SubscribeNewsletter(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, formStatus(result), result)
}

func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var cmd command.SubmitContact
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cmd.SessionID = getSessionID(r)

	result, err := h.cmdHandler.SubmitContact(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, formStatus(result), result)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

func formStatus(result *command.FormResult) int {
	if len(result.Fields) > 0 {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

// getSessionID extracts the session id from the middleware context or falls
// back to the X-Session-ID header
func getSessionID(r *http.Request) string {
	if id := middleware.GetSessionID(r.Context()); id != "" {
		return id
	}
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "guest"
}
