package tasks

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func taskColumns() []string {
	return []string{"id", "user_id", "title", "description", "is_completed", "created_at", "updated_at"}
}

func TestPostgresRepository_List_ScopedToOwner(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(taskColumns()).
		AddRow("task-2", "owner-1", "Second", nil, false, now.Add(time.Minute), now.Add(time.Minute)).
		AddRow("task-1", "owner-1", "First", "details", true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
		WithArgs("owner-1").
		WillReturnRows(rows)

	result, err := repo.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "task-2", result[0].ID)
	assert.Nil(t, result[0].Description)
	require.NotNil(t, result[1].Description)
	assert.Equal(t, "details", *result[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get_FiltersOwnerInQuery(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs("task-1", "owner-2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "owner-2", "task-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tasks`)).
		WithArgs(sqlmock.AnyArg(), "owner-1", "Buy milk", nil, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	task, err := repo.Create(context.Background(), &models.Task{UserID: "owner-1", Title: "Buy milk"})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.IsCompleted)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Update_NotOwned(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	title := "New title"
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE tasks`)).
		WithArgs("task-1", "owner-2", "New title", nil, sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "owner-2", "task-1", &title, nil)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tasks`)).
		WithArgs("task-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), "owner-1", "task-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tasks`)).
		WithArgs("task-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.Delete(context.Background(), "owner-1", "task-1")
	require.NoError(t, err)
	assert.False(t, deleted, "deleting an already-deleted task must report false")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Toggle(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(taskColumns()).
		AddRow("task-1", "owner-1", "Buy milk", nil, true, now.Add(-time.Minute), now)

	mock.ExpectQuery(regexp.QuoteMeta(`SET is_completed = NOT is_completed`)).
		WithArgs("task-1", "owner-1", sqlmock.AnyArg()).
		WillReturnRows(rows)

	task, err := repo.Toggle(context.Background(), "owner-1", "task-1")
	require.NoError(t, err)
	assert.True(t, task.IsCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
