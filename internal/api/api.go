package api

import (
	"context"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/query"
	"task-manager/internal/store"
	"task-manager/internal/validation"
)

// API defines the interface the UI layer consumes. It is the input boundary:
// form data is validated and cleaned here before it reaches the store, and
// list requests come back already shaped by the query pipeline.
type API interface {
	// Task operations
	AddTask(ctx context.Context, data domain.TaskFormData) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, data domain.TaskFormData) error
	ToggleComplete(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	// Query operations
	ListTasks(ctx context.Context, opts domain.FilterOptions) ([]domain.Task, error)
	Counts(ctx context.Context) (domain.TaskCounts, error)
}

type apiImpl struct {
	store         *store.TaskStore
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(taskStore *store.TaskStore, cfg *config.Config) API {
	return &apiImpl{
		store:         taskStore,
		taskValidator: validation.NewTaskValidator(cfg.Validation),
	}
}

// AddTask validates the form data and appends a new task to the collection.
func (a *apiImpl) AddTask(ctx context.Context, data domain.TaskFormData) (*domain.Task, error) {
	cleaned, err := a.taskValidator.CleanFormData(data)
	if err != nil {
		return nil, err
	}

	task := a.store.AddTask(ctx, cleaned)
	return &task, nil
}

// UpdateTask validates the form data and replaces the mutable fields of the
// task with the given id. An unknown id is a silent no-op.
func (a *apiImpl) UpdateTask(ctx context.Context, id string, data domain.TaskFormData) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	cleaned, err := a.taskValidator.CleanFormData(data)
	if err != nil {
		return err
	}

	a.store.UpdateTask(ctx, id, domain.TaskUpdate{
		Title:       &cleaned.Title,
		Description: &cleaned.Description,
		Priority:    &cleaned.Priority,
	})
	return nil
}

// ToggleComplete flips completion for the task with the given id.
func (a *apiImpl) ToggleComplete(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	a.store.ToggleComplete(ctx, id)
	return nil
}

// DeleteTask removes the task with the given id.
func (a *apiImpl) DeleteTask(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	a.store.DeleteTask(ctx, id)
	return nil
}

// ListTasks returns the current collection transformed by the query pipeline.
func (a *apiImpl) ListTasks(ctx context.Context, opts domain.FilterOptions) ([]domain.Task, error) {
	tasks := a.store.Tasks(ctx)
	return query.Process(tasks, opts), nil
}

// Counts returns per-status totals for the canonical collection.
func (a *apiImpl) Counts(ctx context.Context) (domain.TaskCounts, error) {
	return a.store.Counts(ctx), nil
}
