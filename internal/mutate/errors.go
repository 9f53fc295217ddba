package mutate

import (
	"taskdo/internal/api"
)

// Fallback banner texts used when the API gives no message.
const (
	FallbackLoad   = "Failed to load tasks. Please try again later."
	FallbackAdd    = "Failed to add task. Please try again."
	FallbackToggle = "Failed to update task status."
	FallbackEdit   = "Failed to edit task."
	FallbackDelete = "Failed to delete task. Reverting changes."
)

// LoadError is set when the initial load or a refresh fails.
type LoadError struct {
	Message string
	Err     error
}

func (e LoadError) Error() string { return e.Message }

func (e LoadError) Unwrap() error { return e.Err }

// MutationError is set when add/toggle/edit/delete fails.
type MutationError struct {
	Op      Op
	TaskID  int64
	Message string
	Err     error
}

func (e MutationError) Error() string { return e.Message }

func (e MutationError) Unwrap() error { return e.Err }

func messageOr(err error, fallback string) string {
	if m := api.Message(err); m != "" {
		return m
	}
	return fallback
}
