package webhook

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"eventlineup/internal/clock"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"
)

const issuer = "eventlineup"

// ErrBodyMismatch is returned by Verify when the token was issued for a different body.
var ErrBodyMismatch = errors.New("webhook body digest mismatch")

type bodyClaims struct {
	jwt.RegisteredClaims
	BodyDigest string `json:"body_blake2b"`
}

// Signer issues HS256 tokens that bind a webhook delivery to its body and job id.
type Signer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewSigner returns a Signer using secret. Tokens expire ttl after issue.
func NewSigner(secret string, ttl time.Duration, clk clock.Clock) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, clock: clk}
}

func (s *Signer) Sign(jobID string, body []byte) (string, error) {
	now := s.clock.Now()
	claims := bodyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   jobID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		BodyDigest: digest(body),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign webhook token: %w", err)
	}
	return tokenString, nil
}

// Verify checks tokenString against body and returns the job id it was issued for.
// Receivers holding the shared secret use it to authenticate a delivery.
func (s *Signer) Verify(tokenString string, body []byte) (string, error) {
	claims := &bodyClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid webhook token: %w", err)
	}
	if claims.BodyDigest != digest(body) {
		return "", ErrBodyMismatch
	}
	return claims.Subject, nil
}

func digest(body []byte) string {
	sum := blake2b.Sum256(body)
	return hex.EncodeToString(sum[:])
}
