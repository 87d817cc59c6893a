package cli

import (
	"context"
	"fmt"

	"task-manager/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// ListOptions holds the flag values for the list command
type ListOptions struct {
	Status string
	Sort   string
	Search string
}

// Execute lists tasks filtered, searched and sorted per the options
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	filterOpts := domain.NewFilterOptions()
	if opts.Status != "" {
		filterOpts.Status = domain.FilterStatus(opts.Status)
	}
	if opts.Sort != "" {
		filterOpts.SortBy = domain.SortOption(opts.Sort)
	}
	filterOpts.SearchQuery = opts.Search

	tasks, err := c.app.api.ListTasks(ctx, filterOpts)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range tasks {
		fmt.Println(c.app.formatTask(task))
	}

	counts, err := c.app.api.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Println(c.app.formatCounts(counts))

	return nil
}
