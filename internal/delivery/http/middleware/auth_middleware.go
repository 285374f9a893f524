package middleware

import (
	"net/http"
	"strings"

	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserEmail is the echo context key under which the authenticated
// caller's email is stored.
const ContextKeyUserEmail = "userEmail"

// AuthMiddleware rejects requests that do not carry a valid bearer token.
type AuthMiddleware struct {
	tokenService service.TokenService
}

func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Failure(c, http.StatusUnauthorized, "missing authorization header")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return response.Failure(c, http.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := m.tokenService.Validate(token)
		if err != nil {
			return response.Failure(c, http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(ContextKeyUserEmail, claims.Email)
		return next(c)
	}
}
