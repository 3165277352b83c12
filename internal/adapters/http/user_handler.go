package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

// UserHandler handles user-related requests
type UserHandler struct {
	userService ports.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService ports.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetCurrentUser returns the authenticated caller's profile.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	userID := GetUserIDFromContext(c)

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		h.logger.Errorw("Get current user failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve user")
	}

	return c.JSON(http.StatusOK, user)
}
