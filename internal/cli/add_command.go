package cli

import (
	"context"
	"fmt"

	"task-manager/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// AddOptions holds the flag values for the add command
type AddOptions struct {
	Description string
	Priority    string
}

// Execute creates a new task from the arguments and flags
func (c *AddCommand) Execute(ctx context.Context, args []string, opts AddOptions) error {
	data := domain.TaskFormData{
		Title:       joinArgs(args),
		Description: opts.Description,
		Priority:    domain.Priority(opts.Priority),
	}

	task, err := c.app.api.AddTask(ctx, data)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s\n", task.ID, task.Title)
	return nil
}
