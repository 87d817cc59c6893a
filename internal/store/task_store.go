// Package store owns the canonical ordered task collection and its
// persistence. All mutations are copy-on-write: previously returned
// snapshots stay valid after any change.
package store

import (
	"context"
	"sync"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/storage"
	"task-manager/internal/storage/sqlite"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TasksKey is the durable storage key holding the task collection.
const TasksKey = "tasks"

// TaskStore is the sole owner and writer of the task collection. The
// canonical order is insertion order, oldest first; derived views are the
// query pipeline's concern.
//
// Persistence is best effort: a failed write is logged and the in-memory
// collection keeps the change for the rest of the session. Mutations on
// unknown ids are silent no-ops.
type TaskStore struct {
	mu   sync.Mutex // serializes each read-modify-write cycle
	cell *storage.Cell[[]domain.Task]
	log  *zap.Logger

	// Injection points for tests.
	now   func() time.Time
	newID func() string
}

// New creates a task store backed by the given KV engine.
func New(kv *sqlite.KV, log *zap.Logger) *TaskStore {
	return &TaskStore{
		cell:  storage.NewCell(kv, TasksKey, []domain.Task{}, log),
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Tasks returns a copy of the canonical collection in insertion order.
func (s *TaskStore) Tasks(ctx context.Context) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.cell.Read(ctx)
	snapshot := make([]domain.Task, len(tasks))
	copy(snapshot, tasks)
	return snapshot
}

// AddTask constructs a task from the given form data, appends it to the end
// of the collection and persists. The id is freshly generated and the
// creation time is set once, in epoch milliseconds.
func (s *TaskStore) AddTask(ctx context.Context, data domain.TaskFormData) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	priority := data.Priority
	if !priority.IsValid() {
		priority = domain.DefaultPriority
	}

	task := domain.Task{
		ID:          s.newID(),
		Title:       data.Title,
		Description: data.Description,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   s.now().UnixMilli(),
	}

	s.cell.Update(ctx, func(tasks []domain.Task) []domain.Task {
		next := make([]domain.Task, 0, len(tasks)+1)
		next = append(next, tasks...)
		return append(next, task)
	})

	s.log.Debug("task added", zap.String("id", task.ID))
	return task
}

// UpdateTask merges the set fields of updates into the task with the given
// id. ID and creation time are never touched. Unknown ids leave the
// collection unchanged.
func (s *TaskStore) UpdateTask(ctx context.Context, id string, updates domain.TaskUpdate) {
	s.mutate(ctx, id, func(task domain.Task) domain.Task {
		if updates.Title != nil {
			task.Title = *updates.Title
		}
		if updates.Description != nil {
			task.Description = *updates.Description
		}
		if updates.Priority != nil {
			task.Priority = *updates.Priority
		}
		if updates.Completed != nil {
			task.Completed = *updates.Completed
		}
		return task
	})
}

// ToggleComplete flips the completion flag of the task with the given id.
// Unknown ids leave the collection unchanged.
func (s *TaskStore) ToggleComplete(ctx context.Context, id string) {
	s.mutate(ctx, id, func(task domain.Task) domain.Task {
		task.Completed = !task.Completed
		return task
	})
}

// DeleteTask removes the task with the given id, retaining the relative
// order of the rest. Unknown ids leave the collection unchanged.
func (s *TaskStore) DeleteTask(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cell.Update(ctx, func(tasks []domain.Task) []domain.Task {
		next := make([]domain.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != id {
				next = append(next, t)
			}
		}
		return next
	})
}

// Counts returns per-status totals for the canonical collection.
func (s *TaskStore) Counts(ctx context.Context) domain.TaskCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := domain.TaskCounts{}
	for _, t := range s.cell.Read(ctx) {
		counts.All++
		if t.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
	}
	return counts
}

// mutate rewrites the task with the given id through fn, leaving every other
// task record untouched. Task values are copied, never edited in place.
func (s *TaskStore) mutate(ctx context.Context, id string, fn func(domain.Task) domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cell.Update(ctx, func(tasks []domain.Task) []domain.Task {
		next := make([]domain.Task, len(tasks))
		for i, t := range tasks {
			if t.ID == id {
				t = fn(t)
			}
			next[i] = t
		}
		return next
	})
}
