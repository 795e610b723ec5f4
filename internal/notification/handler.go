package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/boho-storefront/internal/domain/cart"
	"github.com/example/boho-storefront/internal/email"
	"github.com/example/boho-storefront/internal/forms"
	"github.com/example/boho-storefront/internal/infrastructure/stream"
)

// Handler processes storefront events for sending notifications
type Handler struct {
	emailService *email.Service
}

// NewHandler creates a new notification handler
func NewHandler(emailSvc *email.Service) *Handler {
	return &Handler{emailService: emailSvc}
}

// HandleEvent processes an event from Kafka
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var event stream.Event
	if err := json.Unmarshal(value, &event); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	switch event.EventType {
	case forms.EventNewsletterSubscribed:
		return h.handleNewsletterSubscribed(event)
	case forms.EventContactSubmitted:
		return h.handleContactSubmitted(event)
	case cart.EventCheckedOut:
		return h.handleCheckedOut(event)
	}

	return nil
}

func (h *Handler) handleNewsletterSubscribed(event stream.Event) error {
	var e forms.NewsletterSubscribed
	if err := json.Unmarshal(event.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal NewsletterSubscribed event: %v", err)
		return err
	}

	log.Printf("[Notifier] Processing newsletter signup for %s", e.Email)

	if err := h.emailService.SendWelcome(e.Email, e.Name); err != nil {
		log.Printf("[Notifier] Failed to send welcome email to %s: %v", e.Email, err)
		return err
	}

	log.Printf("[Notifier] Welcome email sent to %s", e.Email)
	return nil
}

func (h *Handler) handleContactSubmitted(event stream.Event) error {
	var e forms.ContactSubmitted
	if err := json.Unmarshal(event.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal ContactSubmitted event: %v", err)
		return err
	}

	log.Printf("[Notifier] Processing contact message from %s", e.Email)

	if err := h.emailService.SendContactAcknowledgement(e.Email, e.Subject); err != nil {
		log.Printf("[Notifier] Failed to send acknowledgement to %s: %v", e.Email, err)
		return err
	}

	log.Printf("[Notifier] Acknowledgement sent to %s", e.Email)
	return nil
}

// handleCheckedOut only logs; guest sessions carry no email address to
// notify.
func (h *Handler) handleCheckedOut(event stream.Event) error {
	var e cart.CheckedOut
	if err := json.Unmarshal(event.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal CheckedOut event: %v", err)
		return err
	}

	log.Printf("[Notifier] Session %s checked out %d item(s), total %s", e.SessionID, e.Items, e.Total)
	return nil
}
