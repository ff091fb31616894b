// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"userregistry/config"
	"userregistry/internal/domain/entity"
	"userregistry/internal/domain/service"
)

const (
	// tokenTTL is the lifetime of an issued bearer token.
	tokenTTL = 30 * time.Minute
	// verifyLeeway absorbs small clock skew between issuer and verifier.
	verifyLeeway = 30 * time.Second
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte // Secret key for signing tokens.
	issuer   string // Value of the iss claim.
	audience string // Value of the aud claim.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Key == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.Issuer == "" || cfg.JWT.Audience == "" {
		return nil, errors.New("jwt issuer and audience must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Key),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
	}, nil
}

// Issue creates a signed bearer token for the given account.
// The subject is the account email and every token carries a fresh jti,
// so two tokens for the same account are never byte-identical.
func (s *jwtService) Issue(account *entity.Account) (string, error) {
	now := time.Now()
	tokenID := uuid.NewString()
	claims := service.Claims{
		TokenID: tokenID,
		Email:   account.Email,
		Role:    account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Email,
			ID:        tokenID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the validity of a token string and returns its claims.
// Signature, expiry, issuer and audience are all enforced.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(verifyLeeway),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if !claims.Role.IsValid() {
		return nil, errors.Errorf("token carries unknown role: %s", claims.Role)
	}
	if claims.TokenID == "" {
		claims.TokenID = claims.RegisteredClaims.ID
	}

	return claims, nil
}
