// Package db wires storage implementations behind a single manager so the
// application can be assembled against Postgres in production and in-memory
// repositories in tests.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Tasks() tasks.Repository
}
