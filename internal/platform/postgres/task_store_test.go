package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodall/taskboard/internal/domain"
	"github.com/rgoodall/taskboard/internal/platform/postgres"
)

// execRecorder is a store.DBTX that records ExecContext calls and reports
// one affected row. Query methods are never reached by the tests using it.
type execRecorder struct {
	query string
	args  []any
}

func (r *execRecorder) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	r.query = query
	r.args = args
	return fakeResult{rows: 1}, nil
}

func (r *execRecorder) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	panic("not expected")
}

func (r *execRecorder) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	panic("not expected")
}

func (r *execRecorder) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	panic("not expected")
}

func TestTaskStoreUpdateTimestampOwnership(t *testing.T) {
	t.Parallel()

	updatedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	task := &domain.Task{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     "Water the plants",
		Completed: true,
		Priority:  domain.PriorityLow,
		CreatedAt: updatedAt.Add(-time.Hour),
		UpdatedAt: updatedAt,
	}

	db := &execRecorder{}
	taskStore := postgres.NewTaskStore(db)

	require.NoError(t, taskStore.Update(context.Background(), task))

	// The store must persist the caller's timestamp, not a fresh one,
	// and must not mutate its input.
	assert.Equal(t, updatedAt, task.UpdatedAt)

	// Update binds title, description, completed, due_date, priority,
	// updated_at, id in that order.
	require.Len(t, db.args, 7)
	assert.Equal(t, updatedAt, db.args[5])
	assert.Equal(t, task.ID, db.args[6])
}
