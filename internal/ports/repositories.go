package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/productivityhub/stride/internal/domain/entities"
)

// TaskRepository defines ownership-scoped task storage. Every read or
// mutation of an existing task takes the owner's ID; a task that exists
// but belongs to someone else is reported as ErrTaskNotFound, so callers
// cannot tell foreign tasks apart from missing ones.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
}

// UserRepository defines the interface for user account storage.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Count(ctx context.Context) (int64, error)
}

// AuthRepository defines the interface for refresh token storage.
type AuthRepository interface {
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// RefreshToken represents a stored refresh token record.
type RefreshToken struct {
	ID        int64      `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// IsExpired checks if the refresh token is expired.
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsRevoked checks if the refresh token is revoked.
func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}
