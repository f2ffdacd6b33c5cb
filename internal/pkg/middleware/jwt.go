package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "costera/internal/pkg/jwt"
	"costera/internal/pkg/models"
	"costera/internal/utils"
)

// Context keys set by the auth middlewares
const (
	ContextUserID   = "user_id"
	ContextIsVendor = "is_vendor"
)

// JWTAuthMiddleware rejects requests without a valid bearer token and sets
// the acting user id and vendor flag in the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFromRequest(c, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextIsVendor, claims.IsVendor)
			return next(c)
		}
	}
}

// OptionalJWTMiddleware sets actor identity when a valid bearer token is
// present but lets anonymous requests through. Handlers decide what reduced
// view an anonymous caller gets.
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			claims, err := claimsFromRequest(c, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextIsVendor, claims.IsVendor)
			return next(c)
		}
	}
}

func claimsFromRequest(c echo.Context, secret string) (*jwtpkg.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errAuthHeaderRequired
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errAuthHeaderFormat
	}

	claims, err := jwtpkg.ValidateToken(parts[1], secret)
	if err != nil {
		return nil, errInvalidToken
	}
	return claims, nil
}

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextUserID).(int64)
	return id, ok
}

// IsVendorFromContext returns the authenticated user's vendor flag
func IsVendorFromContext(c echo.Context) bool {
	v, _ := c.Get(ContextIsVendor).(bool)
	return v
}
