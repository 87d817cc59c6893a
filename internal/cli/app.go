package cli

import (
	"fmt"
	"strings"
	"time"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/theme"
)

// App bundles the dependencies shared by all command handlers.
type App struct {
	api    api.API
	theme  *theme.Preference
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, themePref *theme.Preference, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		theme:  themePref,
		config: cfg,
	}
}

// formatTask renders one task as a single display line:
// checkbox, priority label, title, id and creation time.
func (a *App) formatTask(task domain.Task) string {
	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	format := a.config.Display.TimeFormat
	if a.config.Display.DateOnly {
		format = "2006-01-02"
	}
	created := time.UnixMilli(task.CreatedAt).Format(format)

	line := fmt.Sprintf("%s %-6s  %s  (%s, created %s)",
		checkbox, task.Priority.Label(), task.Title, task.ID, created)

	if a.config.Application.Verbose && task.Description != "" {
		line += "\n      " + task.Description
	}
	return line
}

// formatCounts renders the per-status totals footer.
func (a *App) formatCounts(counts domain.TaskCounts) string {
	return fmt.Sprintf("%d tasks: %d active, %d completed",
		counts.All, counts.Active, counts.Completed)
}

// joinArgs collapses positional arguments into a single text value.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
