package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameRequired       = errors.New("task name is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Task defaults applied on create when the client omits the field.
const (
	DefaultTaskColor = "#5e72e4"
	DefaultTaskType  = "habit"
)

// JSONMap is an open-ended JSON document stored in a JSONB column.
// The contents are opaque to the application: whatever the client sends
// is persisted and returned unchanged.
type JSONMap map[string]interface{}

// Value implements driver.Valuer for JSONB storage.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}

	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}

	return json.Unmarshal(data, m)
}

// Task is a habit/todo record. History and Recurrence carry arbitrary
// nested JSON; the application never interprets them.
type Task struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"-" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Color       string    `json:"color" db:"color"`
	TaskType    string    `json:"task_type" db:"task_type"`
	History     JSONMap   `json:"history" db:"history"`
	Recurrence  JSONMap   `json:"recurrence" db:"recurrence"`
	Archived    bool      `json:"archived" db:"archived"`
	SortOrder   int       `json:"order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// User represents an authenticated account. Kept minimal: the task core
// only ever sees the resolved user ID.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
