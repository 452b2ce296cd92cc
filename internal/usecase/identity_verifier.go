package usecase

import (
	"context"

	"foodshare/internal/domain/identity"
)

//go:generate mockgen -source=identity_verifier.go -destination=../../tests/mock/usecase/identity_verifier_mock.go -package=usecasemock

// IdentityVerifier provides bearer token verification for middleware
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (identity.Identity, error)
}

type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (identity.Identity, error)
}

type identityVerifierImpl struct {
	tokens TokenVerifier
}

func NewIdentityVerifier(tokens TokenVerifier) IdentityVerifier {
	return &identityVerifierImpl{tokens: tokens}
}

// Verify re-normalises the identity so a key source that skips the photo default still gets one.
func (v *identityVerifierImpl) Verify(ctx context.Context, token string) (identity.Identity, error) {
	id, err := v.tokens.Verify(ctx, token)
	if err != nil {
		return identity.Identity{}, err
	}
	return identity.New(id.Email, id.Name, id.PhotoURL, id.UID)
}
