package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventItemAdded       = "ItemAddedToCart"
	EventQuantityChanged = "CartQuantityChanged"
	EventItemRemoved     = "ItemRemovedFromCart"
	EventCartCleared     = "CartCleared"
	EventDiscountApplied = "DiscountApplied"
	EventCheckedOut      = "CheckedOut"
)

type ItemAddedToCart struct {
	SessionID string            `json:"session_id"`
	LineID    string            `json:"line_id"`
	ProductID string            `json:"product_id"`
	Options   map[string]string `json:"options,omitempty"`
	Quantity  int               `json:"quantity"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	AddedAt   time.Time         `json:"added_at"`
}

type CartQuantityChanged struct {
	SessionID string    `json:"session_id"`
	LineID    string    `json:"line_id"`
	Quantity  int       `json:"quantity"`
	ChangedAt time.Time `json:"changed_at"`
}

type ItemRemovedFromCart struct {
	SessionID string    `json:"session_id"`
	LineID    string    `json:"line_id"`
	RemovedAt time.Time `json:"removed_at"`
}

type CartCleared struct {
	SessionID string    `json:"session_id"`
	ClearedAt time.Time `json:"cleared_at"`
}

type DiscountApplied struct {
	SessionID string    `json:"session_id"`
	Code      string    `json:"code"`
	Kind      string    `json:"kind"`
	AppliedAt time.Time `json:"applied_at"`
}

type CheckedOut struct {
	SessionID string          `json:"session_id"`
	Lines     int             `json:"lines"`
	Items     int             `json:"items"`
	Total     decimal.Decimal `json:"total"`
	At        time.Time       `json:"at"`
}
