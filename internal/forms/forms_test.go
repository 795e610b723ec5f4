package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/boho-storefront/internal/infrastructure/statestore/mocks"
	streammocks "github.com/example/boho-storefront/internal/infrastructure/stream/mocks"
)

// ============================================
// Validation Rule Tests
// ============================================

func TestValidator_NewsletterSignup(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name        string
		signup      NewsletterSignup
		wantField   string
		wantMessage string
	}{
		{"missing email", NewsletterSignup{}, "Email", "Dieses Feld ist erforderlich"},
		{"malformed email", NewsletterSignup{Email: "not-an-email"}, "Email", "Bitte geben Sie eine gültige E-Mail-Adresse ein"},
		{"name too short", NewsletterSignup{Email: "a@b.de", Name: "x"}, "Name", "Mindestens 2 Zeichen erforderlich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := v.Check(tt.signup)
			assert.ErrorIs(t, err, ErrValidation)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.wantField, fields[0].Field)
			assert.Equal(t, tt.wantMessage, fields[0].Message)
		})
	}
}

func TestValidator_NewsletterSignup_Valid(t *testing.T) {
	v := NewValidator()

	fields, err := v.Check(NewsletterSignup{Email: "anna@example.com", Name: "Anna"})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestValidator_ContactMessage_Phone(t *testing.T) {
	v := NewValidator()

	valid := ContactMessage{
		Name:    "Anna Schmidt",
		Email:   "anna@example.com",
		Message: "Ich habe eine Frage zu meiner Bestellung.",
	}

	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{"empty phone allowed", "", true},
		{"international format", "+49 170 1234567", true},
		{"with separators", "0170-123-4567", true},
		{"too short", "12345", false},
		{"letters rejected", "call me maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			msg.Phone = tt.phone
			fields, err := v.Check(msg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
				require.Len(t, fields, 1)
				assert.Equal(t, "Bitte geben Sie eine gültige Telefonnummer ein", fields[0].Message)
			}
		})
	}
}

func TestValidator_ContactMessage_MessageLength(t *testing.T) {
	v := NewValidator()

	msg := ContactMessage{Name: "Anna", Email: "anna@example.com", Message: "zu kurz"}
	fields, err := v.Check(msg)
	assert.ErrorIs(t, err, ErrValidation)
	require.Len(t, fields, 1)
	assert.Equal(t, "Message", fields[0].Field)
}

// ============================================
// Newsletter Service Tests
// ============================================

func newTestService() (*Service, *mocks.MockStore, *streammocks.MockPublisher) {
	store := mocks.NewMockStore()
	publisher := streammocks.NewMockPublisher()
	return NewService(store, publisher), store, publisher
}

func TestService_Subscribe(t *testing.T) {
	svc, store, publisher := newTestService()
	ctx := context.Background()

	fields, err := svc.Subscribe(ctx, "sess-1", NewsletterSignup{Email: "Anna@Example.COM"})
	require.NoError(t, err)
	assert.Empty(t, fields)

	// Address is normalized before persisting
	require.Len(t, store.PutCalls, 1)
	assert.Equal(t, "newsletter:anna@example.com", store.PutCalls[0].Key)
	assert.Len(t, publisher.PublishCalls, 1)
}

func TestService_Subscribe_InvalidLeavesStateUntouched(t *testing.T) {
	svc, store, publisher := newTestService()
	ctx := context.Background()

	fields, err := svc.Subscribe(ctx, "sess-1", NewsletterSignup{Email: "nope"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotEmpty(t, fields)
	assert.Empty(t, store.PutCalls)
	assert.Empty(t, publisher.PublishCalls)
}

func TestService_SubmitContact(t *testing.T) {
	svc, _, publisher := newTestService()
	ctx := context.Background()

	fields, err := svc.SubmitContact(ctx, "sess-1", ContactMessage{
		Name:    "Anna Schmidt",
		Email:   "anna@example.com",
		Message: "Ich habe eine Frage zu meiner Bestellung.",
	})
	require.NoError(t, err)
	assert.Empty(t, fields)
	assert.Len(t, publisher.PublishCalls, 1)
}
