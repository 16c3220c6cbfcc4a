package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)
	id := uuid.New()

	token, err := ts.Issue(id, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	token, err := ts.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestTokenService_Expired(t *testing.T) {
	// Negative TTL mints a token that is already past its expiry
	ts := NewTokenService(testSecret, -time.Minute)

	token, err := ts.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("another-secret-another-secret-00", time.Hour)

	token, err := issuer.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_TamperedPayload(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	token, err := ts.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	// Flip a character in the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = ts.Verify(string(tampered))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}
