package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// DeleteCommand handles the rm command
type DeleteCommand struct {
	app   *App
	input io.Reader
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, input: os.Stdin}
}

// Execute deletes the task with the given id, prompting for confirmation
// unless skipConfirm is set. Deletion cannot be undone.
func (c *DeleteCommand) Execute(ctx context.Context, id string, skipConfirm bool) error {
	if !skipConfirm {
		confirmed, err := c.confirm(id)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := c.app.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s\n", id)
	return nil
}

// confirm asks the user to approve the deletion.
func (c *DeleteCommand) confirm(id string) (bool, error) {
	fmt.Printf("Delete task %s? This cannot be undone. [y/N]: ", id)

	reader := bufio.NewReader(c.input)
	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
