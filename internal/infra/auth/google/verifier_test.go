package google

import (
	"context"
	"log/slog"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"userregistry/config"
	domainerrors "userregistry/internal/domain/errors"
)

func newTestVerifier(validate validateFunc) *Verifier {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-id"}}

	v := NewVerifier(cfg, slog.Default()).(*Verifier)
	v.validate = validate

	return v
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:  "https://accounts.google.com",
		Subject: "google-sub-123",
		Claims: map[string]any{
			"email":          "alice@example.com",
			"email_verified": true,
			"name":           "Alice Example",
		},
	}
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "client-id", audience)

		return validPayload(), nil
	})

	identity, err := v.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", identity.Subject)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice Example", identity.DisplayName)
}

func TestVerifier_RejectsInvalidToken(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: signature mismatch")
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrIdentityProviderUnavailable)
}

func TestVerifier_NetworkFailureIsProviderUnavailable(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, &url.Error{Op: "Get", URL: "https://www.googleapis.com/oauth2/v3/certs", Err: errors.New("connection refused")}
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityProviderUnavailable)
}

func TestVerifier_RejectsForeignIssuer(t *testing.T) {
	payload := validPayload()
	payload.Issuer = "https://evil.example.com"
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
}

func TestVerifier_RejectsUnverifiedEmail(t *testing.T) {
	payload := validPayload()
	payload.Claims["email_verified"] = false
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
}

func TestVerifier_RejectsMissingEmail(t *testing.T) {
	payload := validPayload()
	delete(payload.Claims, "email")
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
}
