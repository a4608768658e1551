package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/core/token"
)

const testSecret = "test-secret-key-0123456789abcdef-xyz"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tkn.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	t.Parallel()

	now := time.Now()
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "user-42",
		"role": "member",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})

	v, err := token.NewVerifier(testSecret)
	require.NoError(t, err)

	claims, err := v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "member", claims.Role)
	assert.True(t, claims.HasExpiry())
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt, time.Second)
}

func TestVerify_RejectsTampering(t *testing.T) {
	t.Parallel()

	// Signed with a different secret: Decode still parses the payload,
	// Verify must reject it.
	signed := signToken(t, "other-secret-key-0123456789abcdef", jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := token.Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)

	v, err := token.NewVerifier(testSecret)
	require.NoError(t, err)

	_, err = v.Verify(signed)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestVerify_RejectsExpired(t *testing.T) {
	t.Parallel()

	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	// Unverified decode still works for expired tokens.
	claims, err := token.Decode(signed)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))

	v, err := token.NewVerifier(testSecret)
	require.NoError(t, err)

	_, err = v.Verify(signed)
	require.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestVerify_RejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	signed := signToken(t, testSecret, jwt.MapClaims{"sub": "user-42"})

	v, err := token.NewVerifier(testSecret)
	require.NoError(t, err)

	_, err = v.Verify(signed)
	require.ErrorIs(t, err, token.ErrClaimMismatch)
}

func TestVerify_ClaimMismatch(t *testing.T) {
	t.Parallel()

	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	v, err := token.NewVerifier(testSecret, token.WithIssuer("daybook-auth"))
	require.NoError(t, err)

	_, err = v.Verify(signed)
	require.ErrorIs(t, err, token.ErrClaimMismatch)
}

func TestVerify_MalformedToken(t *testing.T) {
	t.Parallel()

	v, err := token.NewVerifier(testSecret)
	require.NoError(t, err)

	_, err = v.Verify("not-a-jwt")
	require.ErrorIs(t, err, token.ErrMalformedToken)

	_, err = token.Decode("not-a-jwt")
	require.ErrorIs(t, err, token.ErrMalformedToken)
}

func TestNewVerifier_SecretValidation(t *testing.T) {
	t.Parallel()

	_, err := token.NewVerifier("")
	require.ErrorIs(t, err, token.ErrMissingSecret)

	_, err = token.NewVerifier("short")
	require.ErrorIs(t, err, token.ErrSecretTooShort)
}
