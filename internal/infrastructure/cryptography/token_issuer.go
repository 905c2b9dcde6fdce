package cryptography

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
)

// TokenBytes is the amount of randomness in a session token
const TokenBytes = 32

// hmacTokenIssuer struct that implements the TokenIssuer interface
type hmacTokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates session tokens whose stored digests are keyed with secret
func NewTokenIssuer(secret string) (accounts.TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret key cannot be empty")
	}
	return &hmacTokenIssuer{secret: []byte(secret)}, nil
}

// NewToken returns 32 random bytes, hex encoded
func (i *hmacTokenIssuer) NewToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Digest returns the HMAC-SHA256 of token, hex encoded
func (i *hmacTokenIssuer) Digest(token string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
