// README: Bearer-token auth middleware; resolves the calling user's UID.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yatra/internal/infra"
)

const ctxKeyUID = "authUID"

// Auth verifies the Authorization bearer token and stores the caller's UID
// on the request context. Requests without a valid token never reach a
// handler.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxKeyUID, token.UID)
		c.Next()
	}
}

// CallerUID returns the authenticated user's UID, or "" outside Auth.
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxKeyUID)
}
