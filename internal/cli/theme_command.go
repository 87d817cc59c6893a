package cli

import (
	"context"
	"fmt"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app *App
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{app: app}
}

// Execute toggles the persisted dark-mode preference
func (c *ThemeCommand) Execute(ctx context.Context) error {
	if c.app.theme.Toggle(ctx) {
		fmt.Println("Dark mode enabled")
	} else {
		fmt.Println("Dark mode disabled")
	}
	return nil
}
