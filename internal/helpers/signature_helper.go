package helpers

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const flashKeyInfo = "fyyur flash cookie v1"

// FlashClaims is the payload of the flash cookie.
type FlashClaims struct {
	Messages []string `json:"msgs"`
	jwt.RegisteredClaims
}

// FlashSigner seals flash messages into compact HS256 tokens so they can
// travel in a cookie across a redirect without being forged.
type FlashSigner struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewFlashSigner(secret []byte, ttl time.Duration) (*FlashSigner, error) {
	if len(secret) == 0 {
		return nil, errors.New("flash signer: empty secret")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(flashKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("flash signer: derive key: %w", err)
	}
	return &FlashSigner{key: key, ttl: ttl, now: time.Now}, nil
}

func (s *FlashSigner) Sign(messages []string) (string, error) {
	now := s.now()
	claims := FlashClaims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

func (s *FlashSigner) Verify(token string) ([]string, error) {
	var claims FlashClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	return claims.Messages, nil
}
