package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

// AdminHandler serves a minimal administrative console. The console is
// deliberately thin: an overview page behind the admin role.
type AdminHandler struct {
	userService ports.UserService
	logger      *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService ports.UserService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		logger:      logger,
	}
}

type adminContext struct {
	Title     string
	Username  string
	UserCount int64
}

// Overview renders the admin console landing page.
func (h *AdminHandler) Overview(c echo.Context) error {
	count, err := h.userService.CountUsers(c.Request().Context())
	if err != nil {
		h.logger.Errorw("Admin overview failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load admin overview")
	}

	return c.Render(http.StatusOK, "admin.html", adminContext{
		Title:     "Admin",
		Username:  GetUsernameFromContext(c),
		UserCount: count,
	})
}
