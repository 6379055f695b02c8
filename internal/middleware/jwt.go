package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/user-item-service/internal/apperr"
	"github.com/iliyamo/user-item-service/internal/utils"
)

// Context keys under which verified claims are stored for handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's claims into the request context. The provided
// secret must match the one used when issuing tokens. Per request the flow
// is: no token -> 401; token present but unverifiable -> 403; verified ->
// claims attached and the chain continues. The store is never consulted
// here, so claims may be stale until the token expires.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the token.
			// Absence means the client never authenticated; reject with 401
			// and no detail beyond the generic message.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return apperr.New(apperr.Unauthenticated, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Signature, format and expiry are checked together; any
			// failure yields the same "invalid token" signal so the body
			// leaks nothing about which check tripped.
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return apperr.Wrap(apperr.InvalidToken, "invalid token", err)
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// RoleFromContext reads the role stored by JWTAuth, defaulting to "".
func RoleFromContext(c echo.Context) string {
	if v, ok := c.Get(CtxRole).(string); ok {
		return v
	}
	return ""
}

// RequireRole returns a middleware that rejects requests whose verified
// role is not in the allowed set. It assumes JWTAuth ran earlier in the
// chain and stored the role claim under CtxRole.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allowed[RoleFromContext(c)] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
