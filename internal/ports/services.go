package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/productivityhub/stride/internal/domain/entities"
)

// TaskService is the ownership-scoped task API. Every operation requires
// the resolved caller identity supplied by the auth middleware.
type TaskService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	Create(ctx context.Context, ownerID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	Get(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error)
	Update(ctx context.Context, ownerID uuid.UUID, id int64, req UpdateTaskRequest) (*entities.Task, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
}

// AuthService resolves credentials to identities and issues tokens.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ValidateToken(tokenString string) (*Claims, error)
}

// UserService exposes account lookups for the profile page and admin
// console.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// CreateTaskRequest carries the client-settable fields for task creation.
// The owner is always the authenticated caller; id and created_at are
// store-assigned. Unknown fields in the request body are dropped.
type CreateTaskRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Color       *string          `json:"color"`
	TaskType    *string          `json:"task_type"`
	History     entities.JSONMap `json:"history"`
	Recurrence  entities.JSONMap `json:"recurrence"`
	Archived    *bool            `json:"archived"`
	SortOrder   *int             `json:"order"`
}

// UpdateTaskRequest carries a partial task patch. Nil fields are left
// unchanged. There is deliberately no owner field.
type UpdateTaskRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Color       *string          `json:"color"`
	TaskType    *string          `json:"task_type"`
	History     entities.JSONMap `json:"history"`
	Recurrence  entities.JSONMap `json:"recurrence"`
	Archived    *bool            `json:"archived"`
	SortOrder   *int             `json:"order"`
}

// RegisterRequest carries new account fields.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by login, register and token refresh.
type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
	User         *entities.User `json:"user"`
}

// Claims is the identity extracted from a validated access token.
type Claims struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}
