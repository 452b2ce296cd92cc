//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/idtoken"
	"foodshare/tests/common/builder"

	"github.com/stretchr/testify/require"
)

// TokenHelper mints bearer tokens the server's HMAC key source accepts.
type TokenHelper struct {
	signer *idtoken.Signer
}

func NewTokenHelper(cfg config.IdentityConfig) *TokenHelper {
	return &TokenHelper{signer: idtoken.NewSigner(cfg.HMACSecret, cfg.Issuer)}
}

func (h *TokenHelper) Token(t *testing.T, email string) string {
	t.Helper()
	token, err := h.signer.Sign(builder.Caller(email), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *TokenHelper) ExpiredToken(t *testing.T, email string) string {
	t.Helper()
	token, err := h.signer.Sign(builder.Caller(email), -time.Minute)
	require.NoError(t, err)
	return token
}
