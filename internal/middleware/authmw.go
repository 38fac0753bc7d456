// Package middleware holds the Echo middleware of the server: request
// logging and the server-side authorization layer. Every mutating route is
// behind RequireAuth + RequireRoles; client-side gating is advisory only.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/tokens"
)

const claimsContextKey = "auth_claims"

type Auth struct {
	Tokens *tokens.Service
}

func NewAuth(tokens *tokens.Service) *Auth {
	return &Auth{Tokens: tokens}
}

// RequireAuth validates the bearer token and stores its claims in the
// request context. An expired or invalid token answers 401 with a
// "please log in again" message, never with token internals.
func (a *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := a.Tokens.Parse(token)
		if err != nil {
			if errors.Is(err, tokens.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired, please log in again")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token, please log in again")
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// RequireRoles allows only callers whose role is in the given set.
// It must run after RequireAuth. A logged-in caller with a disallowed role
// gets 403, which is distinct from the 401 of a missing session.
func (a *Auth) RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}

// ClaimsFromContext returns the verified claims set by RequireAuth,
// or nil when the route is unauthenticated.
func ClaimsFromContext(c echo.Context) *tokens.Claims {
	claims, _ := c.Get(claimsContextKey).(*tokens.Claims)
	return claims
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
