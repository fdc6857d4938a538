package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostvana/property_management_app/internal/utils"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.NewString()
	secret := "test-secret-key-that-is-long-enough"

	token, err := utils.SignAccessToken(userID, secret, time.Hour, "pma-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.VerifyAccessToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "pma-test", claims.Issuer)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	token, err := utils.SignAccessToken(uuid.NewString(), "the-right-secret", time.Hour, "pma-test")
	require.NoError(t, err)

	claims, err := utils.VerifyAccessToken(token, "the-wrong-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, err := utils.SignAccessToken(uuid.NewString(), secret, -time.Minute, "pma-test")
	require.NoError(t, err)

	claims, err := utils.VerifyAccessToken(token, secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
