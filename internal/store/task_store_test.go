package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/logging"
	"task-manager/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates a task store over an in-memory database with a
// deterministic clock and id sequence.
func setupStore(t *testing.T) *TaskStore {
	t.Helper()

	kv, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	s := New(kv, logging.Nop())

	var seq int
	s.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	clock := time.UnixMilli(1000)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return s
}

func TestTaskStore_AddTask(t *testing.T) {
	tests := []struct {
		name         string
		data         domain.TaskFormData
		wantPriority domain.Priority
	}{
		{
			name: "should create task with supplied fields",
			data: domain.TaskFormData{
				Title:       "Buy milk",
				Description: "semi-skimmed",
				Priority:    domain.PriorityLow,
			},
			wantPriority: domain.PriorityLow,
		},
		{
			name:         "should default unspecified priority to medium",
			data:         domain.TaskFormData{Title: "Buy milk"},
			wantPriority: domain.PriorityMedium,
		},
		{
			name: "should default unknown priority to medium",
			data: domain.TaskFormData{
				Title:    "Buy milk",
				Priority: domain.Priority("urgent"),
			},
			wantPriority: domain.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			ctx := context.Background()

			task := s.AddTask(ctx, tt.data)

			assert.NotEmpty(t, task.ID)
			assert.Equal(t, tt.data.Title, task.Title)
			assert.Equal(t, tt.data.Description, task.Description)
			assert.Equal(t, tt.wantPriority, task.Priority)
			assert.False(t, task.Completed)
			assert.NotZero(t, task.CreatedAt)

			// Observable via the next read.
			tasks := s.Tasks(ctx)
			require.Len(t, tasks, 1)
			assert.Equal(t, task, tasks[0])
		})
	}
}

func TestTaskStore_AddTask_InsertionOrder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first := s.AddTask(ctx, domain.TaskFormData{Title: "first"})
	second := s.AddTask(ctx, domain.TaskFormData{Title: "second"})
	third := s.AddTask(ctx, domain.TaskFormData{Title: "third"})

	// Unique ids, monotonic creation times.
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)
	assert.Less(t, first.CreatedAt, second.CreatedAt)
	assert.Less(t, second.CreatedAt, third.CreatedAt)

	tasks := s.Tasks(ctx)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

func TestTaskStore_UpdateTask(t *testing.T) {
	t.Run("should merge partial fields", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		created := s.AddTask(ctx, domain.TaskFormData{
			Title:       "Buy milk",
			Description: "semi-skimmed",
			Priority:    domain.PriorityLow,
		})

		newTitle := "Buy oat milk"
		newPriority := domain.PriorityHigh
		s.UpdateTask(ctx, created.ID, domain.TaskUpdate{
			Title:    &newTitle,
			Priority: &newPriority,
		})

		tasks := s.Tasks(ctx)
		require.Len(t, tasks, 1)
		got := tasks[0]
		assert.Equal(t, "Buy oat milk", got.Title)
		assert.Equal(t, "semi-skimmed", got.Description, "unset field keeps its value")
		assert.Equal(t, domain.PriorityHigh, got.Priority)
		assert.Equal(t, created.ID, got.ID, "id is immutable")
		assert.Equal(t, created.CreatedAt, got.CreatedAt, "creation time is immutable")
	})

	t.Run("should accept completed through the generic update", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		created := s.AddTask(ctx, domain.TaskFormData{Title: "Buy milk"})

		completed := true
		s.UpdateTask(ctx, created.ID, domain.TaskUpdate{Completed: &completed})

		assert.True(t, s.Tasks(ctx)[0].Completed)
	})

	t.Run("should be a no-op for an unknown id", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		s.AddTask(ctx, domain.TaskFormData{Title: "Buy milk"})
		before := s.Tasks(ctx)

		newTitle := "changed"
		s.UpdateTask(ctx, "missing", domain.TaskUpdate{Title: &newTitle})

		assert.Equal(t, before, s.Tasks(ctx))
	})
}

func TestTaskStore_ToggleComplete(t *testing.T) {
	t.Run("should flip completion both ways", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		created := s.AddTask(ctx, domain.TaskFormData{Title: "Buy milk"})

		s.ToggleComplete(ctx, created.ID)
		assert.True(t, s.Tasks(ctx)[0].Completed)

		s.ToggleComplete(ctx, created.ID)
		assert.False(t, s.Tasks(ctx)[0].Completed)
	})

	t.Run("should be a no-op for an unknown id", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		s.AddTask(ctx, domain.TaskFormData{Title: "Buy milk"})
		before := s.Tasks(ctx)

		s.ToggleComplete(ctx, "missing")

		assert.Equal(t, before, s.Tasks(ctx))
	})
}

func TestTaskStore_DeleteTask(t *testing.T) {
	t.Run("should remove the task and keep relative order", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		first := s.AddTask(ctx, domain.TaskFormData{Title: "first"})
		second := s.AddTask(ctx, domain.TaskFormData{Title: "second"})
		third := s.AddTask(ctx, domain.TaskFormData{Title: "third"})

		s.DeleteTask(ctx, second.ID)

		tasks := s.Tasks(ctx)
		require.Len(t, tasks, 2)
		assert.Equal(t, first.ID, tasks[0].ID)
		assert.Equal(t, third.ID, tasks[1].ID)
	})

	t.Run("should be a no-op for an unknown id", func(t *testing.T) {
		s := setupStore(t)
		ctx := context.Background()

		s.AddTask(ctx, domain.TaskFormData{Title: "Buy milk"})
		before := s.Tasks(ctx)

		s.DeleteTask(ctx, "missing")

		assert.Equal(t, before, s.Tasks(ctx))
	})
}

func TestTaskStore_Counts(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	assert.Equal(t, domain.TaskCounts{}, s.Counts(ctx))

	a := s.AddTask(ctx, domain.TaskFormData{Title: "a"})
	s.AddTask(ctx, domain.TaskFormData{Title: "b"})
	s.ToggleComplete(ctx, a.ID)

	assert.Equal(t, domain.TaskCounts{All: 2, Active: 1, Completed: 1}, s.Counts(ctx))
}

func TestTaskStore_CopyOnWrite(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created := s.AddTask(ctx, domain.TaskFormData{Title: "Buy milk"})
	snapshot := s.Tasks(ctx)

	s.ToggleComplete(ctx, created.ID)
	s.DeleteTask(ctx, created.ID)

	// The previously returned snapshot is unaffected by later mutations.
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Buy milk", snapshot[0].Title)
	assert.False(t, snapshot[0].Completed)
}

func TestTaskStore_PersistsAcrossInstances(t *testing.T) {
	kv, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer kv.Close()
	ctx := context.Background()

	first := New(kv, logging.Nop())
	created := first.AddTask(ctx, domain.TaskFormData{
		Title:    "Buy milk",
		Priority: domain.PriorityLow,
	})

	// A fresh store over the same KV sees the persisted collection.
	second := New(kv, logging.Nop())
	tasks := second.Tasks(ctx)

	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}
