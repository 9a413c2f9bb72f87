package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
)

// AppContext bundles what every command needs: the loaded config, the resolved theme
// and a logger.
type AppContext struct {
	Config *config.Config
	Theme  components.Theme
	Logger *logger.Logger
}

// newAppContext loads the configuration named by the flags and resolves its theme.
// Logs go to the log file when one is set and to stderr otherwise.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	log, err := logger.New(logger.Options{
		Level:         logLevel(flags.verbose),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		File:          flags.logFile,
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Check that the log file directory exists and is writable.")
	}
	log = log.WithComponent("cli").WithFields(map[string]any{"command": cmd.Name()})

	cfg, err := loadConfig(flags, log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	if flags.scheme != "" {
		cfg.Scheme = flags.scheme
	}
	theme, err := cfg.ResolveTheme()
	if err != nil {
		_ = log.Close()
		return nil, newCommandError(cmd.Name(), "resolving theme", err, "Use --scheme auto, light or dark.")
	}
	components.SetTheme(theme)
	log.Debugf("resolved %s theme", theme.Scheme)

	return &AppContext{Config: cfg, Theme: theme, Logger: log}, nil
}

func loadConfig(flags *rootFlags, log *logger.Logger) (*config.Config, error) {
	if flags.configPath == "" {
		log.Debug("using built-in configuration")
		return config.Default(), nil
	}

	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, newCommandError("load config", flags.configPath, err, "Pass an existing YAML file with --config.")
	}
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		log.Error(err, "configuration rejected")
		return nil, newCommandError("load config", flags.configPath, err, "Fix the reported field and try again.")
	}
	log.WithFields(map[string]any{"path": flags.configPath}).Info("configuration loaded")
	return cfg, nil
}

// Close releases the log file.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	return a.Logger.Close()
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
