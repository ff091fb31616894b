// Package google verifies Google ID tokens against Google's public keys.
package google

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"userregistry/config"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/domain/service"
)

// verifyTimeout caps the round trip to Google's certificate endpoint.
const verifyTimeout = 10 * time.Second

// validateFunc matches idtoken.Validate, swappable in tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier is a concrete implementation of the IdentityVerifier interface
// backed by Google's idtoken validation.
type Verifier struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewVerifier creates a new Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken verifies a raw Google ID token and returns the identity it
// asserts. Signature, expiry and audience are checked by the idtoken
// library; issuer and email verification are checked here.
func (v *Verifier) VerifyIDToken(ctx context.Context, rawToken string) (*service.ExternalIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
			v.logger.Error("Google certificate fetch failed", slog.Any("error", err))

			return nil, domainerrors.ErrIdentityProviderUnavailable.WrapMessage(err.Error())
		}
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if payload.Issuer != "https://accounts.google.com" && payload.Issuer != "accounts.google.com" {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("token carries no email claim")
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return nil, errors.New("email not verified")
	}
	name, _ := payload.Claims["name"].(string)

	v.logger.Info("Google ID token verified",
		slog.String("subject", payload.Subject),
		slog.String("email", email))

	return &service.ExternalIdentity{
		Subject:     payload.Subject,
		Email:       email,
		DisplayName: name,
	}, nil
}
