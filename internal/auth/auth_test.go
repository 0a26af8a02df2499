package auth

import (
	"testing"
	"time"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP(6)

	require.NoError(t, err)
	require.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", otp)
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	ownerID := uuid.New()
	now := time.Now()

	token, err := issuer.Issue(ownerID, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, parsed)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)

	// Issued two hours in the past, so it expired an hour ago.
	token, err := issuer.Issue(uuid.New(), time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
	assert.Equal(t, model.ErrCodeUnauthorised, model.ErrorCode(err))
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
	assert.Equal(t, model.ErrCodeUnauthorised, model.ErrorCode(err))
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-token")
	require.Error(t, err)
	assert.Equal(t, model.ErrCodeUnauthorised, model.ErrorCode(err))
}
