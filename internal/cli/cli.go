// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli implements the lipuma command-line host.
//
// # Commands
//
//   - render: replay a gesture script against a fresh session and write
//     the result as a PNG
//   - tui: draw interactively in the terminal with the mouse
//
// # Configuration
//
// The persistent --config flag names a TOML file whose [settings] table
// overrides tool.DefaultSettings. The file is validated before any command
// runs.
//
// # Logging
//
// Every command logs through a charmbracelet/log logger that is also
// installed as the lipuma package logger, so core debug events (commits,
// diffs, aborted gestures) appear with --verbose.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/tool"
)

const appName = "lipuma"

// CLI holds state shared by all commands.
type CLI struct {
	out    io.Writer
	logger *log.Logger

	verbose    bool
	configPath string
	settings   tool.Settings
}

// New creates a CLI that writes command output to out and logs to errw.
func New(out, errw io.Writer) *CLI {
	return &CLI{
		out:      out,
		logger:   newLogger(errw, log.InfoLevel),
		settings: tool.DefaultSettings(),
	}
}

// Logger returns the CLI logger.
func (c *CLI) Logger() *log.Logger {
	return c.logger
}

// Settings returns the settings loaded for the current command.
func (c *CLI) Settings() tool.Settings {
	return c.settings
}

// Execute runs the command line args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Draw organic lines perturbed by fractal noise",
		Long:          `lipuma is a vector drawing surface whose strokes are displaced by a deterministic, seedable fractal noise field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	root.SetOut(c.out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML settings file")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.tuiCommand())

	return root
}

// setup applies the persistent flags.
func (c *CLI) setup() error {
	level := log.InfoLevel
	if c.verbose {
		level = log.DebugLevel
	}
	c.logger.SetLevel(level)
	lipuma.SetLogger(slog.New(c.logger))

	if c.configPath == "" {
		return nil
	}
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.settings = cfg.Settings
	c.logger.Debug("loaded config", "path", c.configPath, "octaves", cfg.Settings.Octaves, "seed", cfg.Settings.Seed)
	return nil
}
