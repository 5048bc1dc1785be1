package token

import (
	"errors"
	"testing"
	"time"

	"movie-tracker/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := manager.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestManager_Verify_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	signed, err := manager.Generate(uuid.New())
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	signed, err := manager.Generate(uuid.New())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestManager_Verify_Malformed(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
