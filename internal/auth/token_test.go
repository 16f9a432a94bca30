package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	id := uuid.New()
	token, err := NewIssuer("secret", time.Hour).Issue(id)
	require.NoError(t, err)

	got, err := NewParser("secret").Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewIssuer("secret", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewParser("other").Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := iss.Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewParser("secret").Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParseRejectsGarbageAndForeignTokens(t *testing.T) {
	_, err := NewParser("secret").Parse("not-a-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "not-a-uuid",
		"iss": issuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = NewParser("secret").Parse(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	noIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err = noIssuer.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = NewParser("secret").Parse(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
