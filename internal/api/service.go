// Package api is the REST client for the task API.
package api

import (
	"context"

	"taskdo/internal/model"
)

// Service defines the remote task operations. The coordinator and the CLI
// only talk to the API through this interface.
type Service interface {
	// List returns all tasks in server order.
	List(ctx context.Context) ([]model.Task, error)

	// Get returns a single task.
	Get(ctx context.Context, id int64) (model.Task, error)

	// Create creates a task and returns it with its server-assigned id.
	Create(ctx context.Context, req model.CreateRequest) (model.Task, error)

	// Update applies a partial update and returns the canonical task.
	Update(ctx context.Context, id int64, p model.Patch) (model.Task, error)

	// Delete removes a task. Success has no payload.
	Delete(ctx context.Context, id int64) error
}
