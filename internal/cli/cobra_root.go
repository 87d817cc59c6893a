package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "taskman",
		Short: "A command-line task manager",
		Long: `Task Manager (taskman) is a command-line application for managing a personal
to-do list with local persistence.

EXAMPLES:
  taskman add "Buy milk" --priority low      # Create a task
  taskman list                               # List all tasks, newest first
  taskman list --status active --sort priority
  taskman list --search milk                 # Case-insensitive title/description search
  taskman done <id>                          # Toggle completion
  taskman edit <id> --title "Buy oat milk"   # Edit fields
  taskman rm <id>                            # Delete (asks for confirmation)
  taskman theme                              # Toggle the dark-mode preference

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TM_DB_DIR                     Database directory (default: ~/.taskman)
    TM_DB_FILENAME                Database filename (default: taskman.db)
    TM_TIME_DISPLAY_FORMAT        Time format (default: 2006-01-02 15:04)
    TM_DISPLAY_DATE_ONLY          Show date only (default: false)
    TM_VALIDATION_TITLE_MAX       Max title length (default: 100)
    TM_VALIDATION_DESCRIPTION_MAX Max description length (default: 500)
    TM_APP_TIMEOUT                Application timeout (default: 30s)
    TM_APP_VERBOSE                Show descriptions in listings (default: false)
    TM_LOG_ENV                    Logger environment (default: development)
    TM_LOG_LEVEL                  Log level (default: warn)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("time-format", "", "Time display format (overrides TM_TIME_DISPLAY_FORMAT)")
	flags.Bool("date-only", false, "Show date only in listings (overrides TM_DISPLAY_DATE_ONLY)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Show descriptions in listings (overrides TM_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new task",
		Long:  "Create a new task. The title is required and trimmed; priority defaults to medium.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := AddOptions{}
			opts.Description, _ = cmd.Flags().GetString("desc")
			opts.Priority, _ = cmd.Flags().GetString("priority")

			return NewAddCommand(r.app).Execute(ctx, args, opts)
		},
	}
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().String("priority", "", "Task priority: low, medium or high")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with optional filtering, searching and sorting.

Status filters: all, active, completed
Sort options:   date (newest first), priority (high to low)
Search matches case-insensitively within titles and descriptions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := ListOptions{}
			opts.Status, _ = cmd.Flags().GetString("status")
			opts.Sort, _ = cmd.Flags().GetString("sort")
			opts.Search, _ = cmd.Flags().GetString("search")

			return NewListCommand(r.app).Execute(ctx, opts)
		},
	}
	listCmd.Flags().String("status", "all", "Filter by status: all, active or completed")
	listCmd.Flags().String("sort", "date", "Sort by: date or priority")
	listCmd.Flags().String("search", "", "Search text")

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long:  "Edit the title, description or priority of a task. Unspecified fields keep their values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := EditOptions{}
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				opts.Title = &v
			}
			if cmd.Flags().Changed("desc") {
				v, _ := cmd.Flags().GetString("desc")
				opts.Description = &v
			}
			if cmd.Flags().Changed("priority") {
				v, _ := cmd.Flags().GetString("priority")
				opts.Priority = &v
			}

			return NewEditCommand(r.app).Execute(ctx, args[0], opts)
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().String("priority", "", "New priority: low, medium or high")

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(r.app).Execute(ctx, args[0])
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  "Delete a task. This cannot be undone; a confirmation prompt is shown unless --yes is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Confirmation may need longer than the default timeout
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			return NewDeleteCommand(r.app).Execute(ctx, args[0], skipConfirm)
		},
	}
	deleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	// Theme command
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Toggle the dark-mode preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewThemeCommand(r.app).Execute(ctx)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		editCmd,
		doneCmd,
		deleteCmd,
		themeCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app != nil && r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.app == nil || r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.app.config.Display.TimeFormat = timeFormat
	}
	if dateOnly, _ := flags.GetBool("date-only"); dateOnly {
		r.app.config.Display.DateOnly = dateOnly
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.app.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.app.config.Application.Verbose = verbose
	}

	return nil
}
