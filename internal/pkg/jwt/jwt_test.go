package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc := New("test-secret-123", 7*24*time.Hour)

	in := Claims{
		UserID:    42,
		Email:     "anna@example.com",
		FirstName: "Anna",
		LastName:  "Kovalenko",
		IsAdmin:   true,
	}

	token, err := svc.GenerateToken(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.UserID)
	assert.Equal(t, "anna@example.com", out.Email)
	assert.Equal(t, "Anna", out.FirstName)
	assert.Equal(t, "Kovalenko", out.LastName)
	assert.True(t, out.IsAdmin)
	assert.False(t, out.IsDemo)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := New("test-secret-123", -1*time.Minute)

	token, err := svc.GenerateToken(Claims{UserID: 1, Email: "x@example.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	token, err := issuer.GenerateToken(Claims{UserID: 7, Email: "x@example.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := New("secret", time.Hour)

	_, err := svc.ValidateToken("not-a-jwt-at-all")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_DemoFlagSurvives(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken(Claims{UserID: 999999, Email: "demo@example.com", IsAdmin: true, IsDemo: true})
	require.NoError(t, err)

	out, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, out.IsDemo)
	assert.True(t, out.IsAdmin)
}
