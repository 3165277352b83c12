package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

// accessTokenCookie carries the access token for server-rendered pages.
const accessTokenCookie = "access_token"

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("Registration failed", "error", err, "username", req.Username)
		if strings.Contains(err.Error(), "already exists") {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Registration failed")
	}

	h.setAccessCookie(c, response)

	return c.JSON(http.StatusCreated, response)
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Errorw("Login failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	h.setAccessCookie(c, response)

	return c.JSON(http.StatusOK, response)
}

// RefreshToken handles token refresh
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	response, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		h.logger.Warnw("Token refresh failed", "error", err, "ip", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	h.setAccessCookie(c, response)

	return c.JSON(http.StatusOK, response)
}

// Logout revokes the caller's refresh tokens and clears the page cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := GetUserIDFromContext(c)

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		h.logger.Errorw("Logout failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
	}

	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// setAccessCookie mirrors the access token into an HttpOnly cookie so
// server-rendered pages can authenticate without a bearer header.
func (h *AuthHandler) setAccessCookie(c echo.Context, response *ports.AuthResponse) {
	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    response.AccessToken,
		Path:     "/",
		MaxAge:   int(response.ExpiresIn),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
