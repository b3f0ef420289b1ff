package webhook

import (
	"testing"
	"time"

	"eventlineup/internal/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_SignAndVerify(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	signer := NewSigner("test-secret", time.Hour, clock.NewFixed(now))
	body := []byte(`{"job_id":"job-1"}`)

	token, err := signer.Sign("job-1", body)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &bodyClaims{}, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*bodyClaims)
	require.True(t, ok)
	assert.Equal(t, "job-1", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
	assert.Len(t, claims.BodyDigest, 64)

	jobID, err := signer.Verify(token, body)
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)
}

func TestSigner_VerifyRejects(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	signer := NewSigner("test-secret", time.Hour, clock.NewFixed(now))
	body := []byte(`{"job_id":"job-1"}`)
	token, err := signer.Sign("job-1", body)
	require.NoError(t, err)

	t.Run("tampered body", func(t *testing.T) {
		_, err := signer.Verify(token, []byte(`{"job_id":"job-2"}`))
		require.ErrorIs(t, err, ErrBodyMismatch)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSigner("other-secret", time.Hour, clock.NewFixed(now))
		_, err := other.Verify(token, body)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewSigner("test-secret", time.Hour, clock.NewFixed(now.Add(2*time.Hour)))
		_, err := later.Verify(token, body)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}
