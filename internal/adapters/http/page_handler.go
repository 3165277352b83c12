package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productivityhub/stride/internal/infrastructure/logger"
)

// PageHandler renders the server-side pages: hub, Stride and profile.
// Rendering is a pure projection of the request plus the authenticated
// identity onto a named template.
type PageHandler struct {
	logger *logger.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(logger *logger.Logger) *PageHandler {
	return &PageHandler{logger: logger}
}

type pageContext struct {
	Title    string
	Username string
}

// Hub renders the hub landing page. No auth requirement on this route.
func (h *PageHandler) Hub(c echo.Context) error {
	return c.Render(http.StatusOK, "hub.html", pageContext{
		Title:    "Hub",
		Username: GetUsernameFromContext(c),
	})
}

// Stride renders the habit tracker app page.
func (h *PageHandler) Stride(c echo.Context) error {
	return c.Render(http.StatusOK, "stride.html", pageContext{
		Title:    "Stride",
		Username: GetUsernameFromContext(c),
	})
}

// Profile renders the profile page. The route is behind the page auth
// middleware, so an identity is always present here.
func (h *PageHandler) Profile(c echo.Context) error {
	return c.Render(http.StatusOK, "profile.html", pageContext{
		Title:    "Profile",
		Username: GetUsernameFromContext(c),
	})
}

// Login renders the login page.
func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageContext{
		Title: "Log in",
	})
}
