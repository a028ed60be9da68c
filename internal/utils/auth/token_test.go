package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/books_ledger/internal/utils/auth"
)

const secret = "test-secret-key-that-is-long-enough"

func TestIssueAndParse(t *testing.T) {
	token, err := auth.IssueToken("ops", secret, time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := auth.ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, auth.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken_Rejects(t *testing.T) {
	expired, err := auth.IssueToken("ops", secret, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = auth.ParseToken(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := auth.IssueToken("ops", secret, time.Hour, time.Now())
	require.NoError(t, err)
	_, err = auth.ParseToken(valid, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = auth.IssueToken("", secret, time.Hour, time.Now())
	assert.ErrorIs(t, err, auth.ErrMissingSubject)
}
