package command

// Cart Commands
type AddToCart struct {
	SessionID string            `json:"session_id"`
	ProductID string            `json:"product_id"`
	Options   map[string]string `json:"options,omitempty"`
}

type ChangeQuantity struct {
	SessionID string `json:"session_id"`
	LineID    string `json:"line_id"`
	Direction string `json:"direction"`
}

type RemoveFromCart struct {
	SessionID string `json:"session_id"`
	LineID    string `json:"line_id"`
}

type ClearCart struct {
	SessionID string `json:"session_id"`
}

type ApplyDiscount struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

type Checkout struct {
	SessionID string `json:"session_id"`
}

// Wishlist Commands
type ToggleWishlist struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
}

// Form Commands
type SubscribeNewsletter struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
}

type SubmitContact struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}
