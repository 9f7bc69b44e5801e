// Package tasks implements owner-scoped task storage and the task service.
//
// Every repository operation takes the owner identifier explicitly and
// applies it in the same query that locates the row. A task that exists but
// belongs to someone else is indistinguishable from a task that does not
// exist.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	// List returns all tasks owned by userID, newest first.
	List(ctx context.Context, userID string) ([]*models.Task, error)

	// Get returns the task only if it is owned by userID, otherwise
	// common.ErrorNotFound.
	Get(ctx context.Context, userID string, taskID string) (*models.Task, error)

	// Create persists a new task for task.UserID with a fresh identifier
	// and created=updated timestamps.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// Update changes only the supplied fields and refreshes the updated
	// timestamp; a call with both fields nil still refreshes it. Missing or
	// foreign-owned tasks yield common.ErrorNotFound.
	Update(ctx context.Context, userID string, taskID string, title *string, description *string) (*models.Task, error)

	// Delete removes the task permanently. It reports false when the task
	// is missing or owned by someone else.
	Delete(ctx context.Context, userID string, taskID string) (bool, error)

	// Toggle flips the completion flag and refreshes the updated timestamp.
	Toggle(ctx context.Context, userID string, taskID string) (*models.Task, error)
}
