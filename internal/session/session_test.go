package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("test-secret-key-for-testing-purposes", 30*24*time.Hour)
}

func TestService_IssueAndValidate(t *testing.T) {
	service := newTestService()

	sessionID, token, err := service.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.NotEmpty(t, token)

	got, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestService_Issue_UniqueSessions(t *testing.T) {
	service := newTestService()

	a, _, err := service.Issue()
	require.NoError(t, err)
	b, _, err := service.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestService_Validate_Expired(t *testing.T) {
	service := NewService("test-secret", 1*time.Millisecond)

	_, token, err := service.Issue()
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_Validate_Invalid(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not-a-token"},
		{"wrong secret", mustIssue(t, NewService("other-secret", time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func mustIssue(t *testing.T, s *Service) string {
	t.Helper()
	_, token, err := s.Issue()
	require.NoError(t, err)
	return token
}
