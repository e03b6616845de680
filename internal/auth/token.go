package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for malformed tokens, signature
// mismatches, and any other decoding failure.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed identity tokens presented
// on every ledger request. Tokens carry {sub, role} and nothing else: no
// expiry, no revocation, no server-side state. A token stays valid for as
// long as the signing secret does, including for users that no longer
// exist in the credential store.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService over the shared signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token over the identity's claims.
func (s *TokenService) Issue(identity Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  identity.Username,
		"role": string(identity.Role),
	})
	return token.SignedString(s.secret)
}

// Verify checks signature integrity and rebuilds the identity from the
// embedded claims. The role is trusted as-embedded; the credential store
// is not consulted.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Identity{Username: sub, Role: Role(role)}, nil
}
