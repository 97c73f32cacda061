package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(42, "admin", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "admin", claims.Role)
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	tok, err := GenerateToken(42, "admin", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, "other-secret")
	require.ErrorIs(t, err, ErrBadToken)

	_, err = ParseToken("not-a-token", "secret")
	require.ErrorIs(t, err, ErrBadToken)

	expired, err := GenerateToken(42, "admin", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	require.ErrorIs(t, err, ErrBadToken)
}
