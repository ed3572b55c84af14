package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "eventplanner-api", TTL: ttl}
}

func TestIssueAndVerify(t *testing.T) {
	j := newJWTer(time.Hour)

	token, err := j.Issue("64b0c3f7a1b2c3d4e5f60718")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64b0c3f7a1b2c3d4e5f60718", uid)
}

func TestVerifyExpired(t *testing.T) {
	j := newJWTer(-time.Minute) // already past its expiry boundary

	token, err := j.Issue("someuser")
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	j := newJWTer(time.Hour)
	token, err := j.Issue("someuser")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("a-different-secret"), Issuer: j.Issuer, TTL: j.TTL}
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	j := newJWTer(time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := j.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	j := newJWTer(time.Hour)
	token, err := j.Issue("someuser")
	require.NoError(t, err)

	other := &JWTer{Secret: j.Secret, Issuer: "someone-else", TTL: j.TTL}
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
