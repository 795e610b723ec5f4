package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/example/boho-storefront/internal/infrastructure/statestore"
	"github.com/example/boho-storefront/internal/infrastructure/stream"
)

const (
	EventNewsletterSubscribed = "NewsletterSubscribed"
	EventContactSubmitted     = "ContactSubmitted"
)

type NewsletterSubscribed struct {
	SessionID    string    `json:"session_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type ContactSubmitted struct {
	SessionID   string    `json:"session_id"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// subscription is the persisted newsletter record per address.
type subscription struct {
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// Service validates and processes form submissions.
type Service struct {
	validator *Validator
	store     statestore.Store
	publisher stream.Publisher
}

func NewService(store statestore.Store, publisher stream.Publisher) *Service {
	return &Service{
		validator: NewValidator(),
		store:     store,
		publisher: publisher,
	}
}

// Subscribe validates a newsletter signup, records it and announces it on
// the stream. Re-subscribing the same address overwrites the record.
func (s *Service) Subscribe(ctx context.Context, sessionID string, signup NewsletterSignup) ([]FieldError, error) {
	if fields, err := s.validator.Check(signup); err != nil {
		return fields, err
	}

	email := strings.ToLower(strings.TrimSpace(signup.Email))
	record := subscription{
		Email:        email,
		Name:         signup.Name,
		SubscribedAt: time.Now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode subscription: %w", err)
	}
	if err := s.store.Put(ctx, statestore.Key(statestore.KeyNewsletter, email), data); err != nil {
		return nil, fmt.Errorf("failed to persist subscription: %w", err)
	}

	if err := stream.Record(ctx, s.publisher, sessionID, EventNewsletterSubscribed, NewsletterSubscribed{
		SessionID:    sessionID,
		Email:        email,
		Name:         signup.Name,
		SubscribedAt: record.SubscribedAt,
	}); err != nil {
		log.Printf("[Forms] Failed to publish newsletter event for session %s: %v", sessionID, err)
	}

	return nil, nil
}

// SubmitContact validates a contact message and announces it on the stream.
func (s *Service) SubmitContact(ctx context.Context, sessionID string, msg ContactMessage) ([]FieldError, error) {
	if fields, err := s.validator.Check(msg); err != nil {
		return fields, err
	}

	if err := stream.Record(ctx, s.publisher, sessionID, EventContactSubmitted, ContactSubmitted{
		SessionID:   sessionID,
		Email:       msg.Email,
		Subject:     msg.Subject,
		SubmittedAt: time.Now(),
	}); err != nil {
		log.Printf("[Forms] Failed to publish contact event for session %s: %v", sessionID, err)
	}

	return nil, nil
}
