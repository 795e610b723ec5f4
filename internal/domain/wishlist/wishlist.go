package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/boho-storefront/internal/infrastructure/statestore"
	"github.com/example/boho-storefront/internal/infrastructure/stream"
)

const EventToggled = "WishlistToggled"

// Entry is a lightweight product reference on the wishlist.
type Entry struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	AddedAt   time.Time       `json:"added_at"`
}

type WishlistToggled struct {
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Added     bool      `json:"added"`
	At        time.Time `json:"at"`
}

// Service maintains the per-session wishlist.
type Service struct {
	store     statestore.Store
	publisher stream.Publisher
}

func NewService(store statestore.Store, publisher stream.Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

func (s *Service) load(ctx context.Context, sessionID string) ([]Entry, error) {
	data, ok, err := s.store.Get(ctx, statestore.Key(statestore.KeyWishlist, sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}
	return entries, nil
}

func (s *Service) save(ctx context.Context, sessionID string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := s.store.Put(ctx, statestore.Key(statestore.KeyWishlist, sessionID), data); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// List returns the session's wishlist in insertion order.
func (s *Service) List(ctx context.Context, sessionID string) ([]Entry, error) {
	return s.load(ctx, sessionID)
}

// Contains reports whether a product is on the wishlist.
func (s *Service) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	entries, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds the product when absent and removes it when present.
// It returns whether the product is on the wishlist afterwards.
func (s *Service) Toggle(ctx context.Context, sessionID string, entry Entry) (bool, error) {
	entries, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	added := true
	for i, e := range entries {
		if e.ProductID == entry.ProductID {
			entries = append(entries[:i], entries[i+1:]...)
			added = false
			break
		}
	}
	if added {
		entry.AddedAt = time.Now()
		entries = append(entries, entry)
	}

	if err := s.save(ctx, sessionID, entries); err != nil {
		return false, err
	}

	if err := stream.Record(ctx, s.publisher, sessionID, EventToggled, WishlistToggled{
		SessionID: sessionID,
		ProductID: entry.ProductID,
		Added:     added,
		At:        time.Now(),
	}); err != nil {
		log.Printf("[Wishlist] Failed to publish toggle for session %s: %v", sessionID, err)
	}

	return added, nil
}
