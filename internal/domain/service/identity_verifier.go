package service

import "context"

// ExternalIdentity represents the identity asserted by an external provider
// after its token has been verified.
type ExternalIdentity struct {
	Subject     string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email       string // Verified email address
	DisplayName string // Display name reported by the provider, may be empty
}

// IdentityVerifier defines the interface for validating tokens issued by an
// external identity provider. This is used for Google Sign-In where the
// client sends an ID token directly.
type IdentityVerifier interface {
	// VerifyIDToken verifies a raw ID token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)
}
