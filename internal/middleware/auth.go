package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/service/auth"
	pkgauth "github.com/jwalitptl/clinician-api/pkg/auth"
)

type AuthMiddleware struct {
	authService *auth.Service
	tokens      *pkgauth.TokenService
}

func NewAuthMiddleware(authService *auth.Service, tokens *pkgauth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		tokens:      tokens,
	}
}

// Authenticate requires a Bearer token matching the one persisted in the
// session store. This is deliberately a presence/equality check only; claims
// and expiry are never validated, matching the session semantics of the rest
// of the system.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		stored, err := m.authService.Token(c.Request.Context())
		if err != nil || parts[1] != stored {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
			c.Abort()
			return
		}

		// Claims only enrich the request log; a parse failure is not a
		// rejected session.
		if claims, err := m.tokens.Parse(parts[1]); err == nil {
			if userID, ok := claims["user_id"].(string); ok {
				c.Set("userID", userID)
			}
			if email, ok := claims["email"].(string); ok {
				c.Set("userEmail", email)
			}
		}

		c.Next()
	}
}
