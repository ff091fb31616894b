package service

import (
	"github.com/golang-jwt/jwt/v5"

	"userregistry/internal/domain/entity"
)

// Claims defines the custom claims carried by issued bearer tokens.
// The subject is the account email; TokenID is a fresh UUID per token.
type Claims struct {
	TokenID string      `json:"-"` // Mirrors the registered jti claim.
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed bearer token for the given account.
	Issue(account *entity.Account) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	Verify(tokenString string) (*Claims, error)
}
