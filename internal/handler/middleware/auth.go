package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"foodshare/internal/domain/identity"
	"foodshare/internal/handler/httperr"
	"foodshare/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxIdentityKey = "identity"

var errMissingBearer = errors.New("missing or malformed bearer token")

type AuthMiddleware struct {
	verifier usecase.IdentityVerifier
}

func NewAuthMiddleware(verifier usecase.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects the request before any handler runs when the bearer token is absent or invalid.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingBearer, "Unauthorized-No Token", nil)
			return
		}

		id, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "token verification failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid Token", nil)
			return
		}

		c.Set(ctxIdentityKey, id)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}
	id, ok := v.(identity.Identity)
	return id, ok && !id.IsZero()
}

// SetIdentity is used by tests that bypass token verification.
func SetIdentity(c *gin.Context, id identity.Identity) {
	c.Set(ctxIdentityKey, id)
}
