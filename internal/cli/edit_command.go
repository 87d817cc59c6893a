package cli

import (
	"context"
	"fmt"

	"task-manager/internal/domain"
)

// EditCommand handles the edit command
type EditCommand struct {
	app *App
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// EditOptions holds the flag values for the edit command. Nil fields were
// not supplied and keep their current values.
type EditOptions struct {
	Title       *string
	Description *string
	Priority    *string
}

// Execute updates the task with the given id, carrying over any field the
// caller did not supply.
func (c *EditCommand) Execute(ctx context.Context, id string, opts EditOptions) error {
	current, err := c.findTask(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		fmt.Printf("No task with id %s\n", id)
		return nil
	}

	data := domain.TaskFormData{
		Title:       current.Title,
		Description: current.Description,
		Priority:    current.Priority,
	}
	if opts.Title != nil {
		data.Title = *opts.Title
	}
	if opts.Description != nil {
		data.Description = *opts.Description
	}
	if opts.Priority != nil {
		data.Priority = domain.Priority(*opts.Priority)
	}

	if err := c.app.api.UpdateTask(ctx, id, data); err != nil {
		return err
	}

	fmt.Printf("Updated task %s\n", id)
	return nil
}

// findTask looks the task up in the unfiltered collection.
func (c *EditCommand) findTask(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := c.app.api.ListTasks(ctx, domain.NewFilterOptions())
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}
