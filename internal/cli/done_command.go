package cli

import (
	"context"
	"fmt"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute toggles completion for the task with the given id
func (c *DoneCommand) Execute(ctx context.Context, id string) error {
	if err := c.app.api.ToggleComplete(ctx, id); err != nil {
		return err
	}

	fmt.Printf("Toggled completion for task %s\n", id)
	return nil
}
