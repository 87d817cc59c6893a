package main

import (
	"fmt"
	"os"

	"task-manager/internal/api"
	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/storage/sqlite"
	"task-manager/internal/store"
	"task-manager/internal/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration: defaults, then environment overrides
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Build the logger for the configured environment
	logCfg := logging.DefaultConfig(cfg.Logging.Environment)
	logCfg.Level = cfg.Logging.Level
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	// Ensure the database directory exists
	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open the durable key-value store
	kv, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer kv.Close()

	// Wire the core: task store, API facade, theme preference
	taskStore := store.New(kv, logger)
	apiInstance := api.New(taskStore, cfg)
	themePref := theme.NewPreference(kv, logger)

	// Create the CLI and run it
	app := cli.NewApp(apiInstance, themePref, cfg)
	return cli.NewRootCommand(app).Execute()
}
