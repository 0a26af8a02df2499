// Package auth provides owner credential hashing, session tokens and
// one-time login codes.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"shopdesk/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateOTP produces a numeric one-time code of the given length.
func GenerateOTP(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

// TokenIssuer signs and verifies owner session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Claims are the JWT claims carried by an owner session token.
type Claims struct {
	OwnerID uuid.UUID `json:"ownerId"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for an owner.
func (i *TokenIssuer) Issue(ownerID uuid.UUID, now time.Time) (string, error) {
	claims := Claims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the owner id it was issued for.
// Expired or malformed tokens fail with the unauthorised domain error.
func (i *TokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, model.NewDomainError(model.ErrCodeUnauthorised, "Invalid or expired session token")
	}

	if claims.OwnerID == uuid.Nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeUnauthorised, "Token carries no owner identity")
	}

	return claims.OwnerID, nil
}
