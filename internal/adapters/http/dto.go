package http

import (
	"time"

	"github.com/productivityhub/stride/internal/domain/entities"
)

// TaskResponse is the wire form of a task. The field list is fixed: the
// owner is bound server-side and never echoed, and id/created_at are
// store-assigned. History and recurrence pass through unchanged.
type TaskResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Color       string           `json:"color"`
	TaskType    string           `json:"task_type"`
	History     entities.JSONMap `json:"history"`
	Recurrence  entities.JSONMap `json:"recurrence"`
	Archived    bool             `json:"archived"`
	SortOrder   int              `json:"order"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toTaskResponse(t *entities.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Color:       t.Color,
		TaskType:    t.TaskType,
		History:     t.History,
		Recurrence:  t.Recurrence,
		Archived:    t.Archived,
		SortOrder:   t.SortOrder,
		CreatedAt:   t.CreatedAt,
	}
}

func toTaskResponses(tasks []*entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

// MessageResponse is a generic message body.
type MessageResponse struct {
	Message string `json:"message"`
}
