package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user"
	ContextKeyUsername = "username"
	ContextKeyIsAdmin  = "is_admin"
)

// GetUserIDFromContext extracts the authenticated caller's ID. Returns
// uuid.Nil when the request was not authenticated.
func GetUserIDFromContext(c echo.Context) uuid.UUID {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// GetUsernameFromContext extracts the authenticated caller's username.
func GetUsernameFromContext(c echo.Context) string {
	username, ok := c.Get(ContextKeyUsername).(string)
	if !ok {
		return ""
	}
	return username
}

// IsAdminFromContext reports whether the caller has the admin role.
func IsAdminFromContext(c echo.Context) bool {
	isAdmin, ok := c.Get(ContextKeyIsAdmin).(bool)
	return ok && isAdmin
}
