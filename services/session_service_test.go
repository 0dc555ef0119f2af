package services

import (
	"testing"
	"time"

	"car-rental-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewSessionService_Validation(t *testing.T) {
	_, err := NewSessionService("short", time.Hour)
	assert.Error(t, err)
	_, err = NewSessionService(testSecret, 0)
	assert.Error(t, err)
}

func TestSessionService_IssueVerify(t *testing.T) {
	sessions, err := NewSessionService(testSecret, time.Hour)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }

	token, expires, err := sessions.Issue(&models.User{ID: 42})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expires)

	id, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	now = now.Add(2 * time.Hour)
	_, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_RejectsForeignTokens(t *testing.T) {
	sessions, err := NewSessionService(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewSessionService("another-secret-of-enough-length", time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = sessions.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	zero, _, err := sessions.Issue(&models.User{})
	require.NoError(t, err)
	_, err = sessions.Verify(zero)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
