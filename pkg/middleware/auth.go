package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/textvault/textvault/internal/apikeys"
	"github.com/textvault/textvault/internal/apperr"
)

const (
	// HeaderAPIKey is checked before QueryAPIKey; when both carry different
	// credentials the header wins.
	HeaderAPIKey = "x-api-key"
	QueryAPIKey  = "apiKey"

	// ContextKeyID is the gin context key holding the authenticated key ID.
	ContextKeyID = "apiKeyID"
)

// Authenticator resolves a presented API key secret to a stored key, or nil
// when unknown.
type Authenticator interface {
	Authenticate(ctx context.Context, secret string) (*apikeys.Key, error)
}

// APIKeyAuth returns a Gin middleware gating protected operations on
// possession of a valid API key. It runs before any handler side effects;
// a failed lookup short-circuits the request.
func APIKeyAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(HeaderAPIKey)
		if secret == "" {
			secret = c.Query(QueryAPIKey)
		}
		if secret == "" {
			apperr.Abort(c, apperr.Unauthorized("API key is required"))
			return
		}
		k, err := auth.Authenticate(c.Request.Context(), secret)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		if k == nil {
			apperr.Abort(c, apperr.Unauthorized("Invalid API key"))
			return
		}
		c.Set(ContextKeyID, k.ID)
		c.Next()
	}
}
