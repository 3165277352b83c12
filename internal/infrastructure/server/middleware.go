package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpadapters "github.com/productivityhub/stride/internal/adapters/http"
	"github.com/productivityhub/stride/internal/ports"
)

// apiAuth authenticates API routes via the bearer header, falling back
// to the access token cookie for same-origin page scripts. Failures
// reject the request before any handler runs.
func (s *Server) apiAuth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := requestToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing credentials")
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			setClaims(c, claims)
			return next(c)
		}
	}
}

// pageAuth authenticates page routes via bearer header or the access
// token cookie, redirecting browsers to the login page on failure.
func (s *Server) pageAuth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := s.resolveIdentity(c, authService)
			if !ok {
				return c.Redirect(http.StatusFound, "/login/")
			}

			setClaims(c, claims)
			return next(c)
		}
	}
}

// optionalAuth resolves an identity when one is present but lets
// anonymous requests through. Used on pages that render for everyone.
func (s *Server) optionalAuth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := s.resolveIdentity(c, authService); ok {
				setClaims(c, claims)
			}
			return next(c)
		}
	}
}

// requireAdmin gates the admin console.
func (s *Server) requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !httpadapters.IsAdminFromContext(c) {
				s.logger.LogSecurityEvent("insufficient_permissions",
					httpadapters.GetUserIDFromContext(c).String(),
					c.RealIP(),
					map[string]interface{}{
						"endpoint": c.Request().URL.Path,
					})
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

func (s *Server) resolveIdentity(c echo.Context, authService ports.AuthService) (*ports.Claims, bool) {
	token, ok := requestToken(c)
	if !ok {
		return nil, false
	}

	claims, err := authService.ValidateToken(token)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// requestToken extracts the access token from the Authorization header
// or, failing that, the access token cookie.
func requestToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token, true
		}
		return "", false
	}

	cookie, err := c.Cookie("access_token")
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func setClaims(c echo.Context, claims *ports.Claims) {
	c.Set(httpadapters.ContextKeyUserID, claims.UserID)
	c.Set(httpadapters.ContextKeyUsername, claims.Username)
	c.Set(httpadapters.ContextKeyIsAdmin, claims.IsAdmin)
}
