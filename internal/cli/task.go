// Package cli implements a small interactive todo manager that keeps its
// tasks in process memory. It is a standalone tool and shares nothing with
// the API server: no accounts, no persistence, integer IDs instead of UUIDs.
package cli

// Task is a single todo item.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
}
