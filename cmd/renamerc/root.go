package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/config"
)

var (
	// Flags
	applyFlag     bool
	recursiveFlag bool
	replaceFlag   string
	prefixFlag    string
	suffixFlag    string
	ignoreFlags   []string
	forceFlag     bool
	configFile    string
	debug         bool
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renamerc [directory]",
		Short: "A tool for safely renaming files by cleaning dots and spaces from filenames",
		Long: `renamerc scans a directory for file names whose stems contain dots or
spaces, shows a preview of the cleaned names, and renames the files only
after an explicit confirmation. Every applied run drops an operation log
into the target directory.`,
		Example: `  # Preview changes
  renamerc /path/to/folder

  # Apply with the default underscore replacement
  renamerc /path/to/folder --apply

  # Use a hyphen instead, or remove dots and spaces entirely
  renamerc /path/to/folder --replace=-
  renamerc /path/to/folder --replace=""

  # Add a date prefix or a version suffix
  renamerc /path/to/folder --prefix="2024-01-15_"
  renamerc /path/to/folder --suffix="_v2"

  # Process subdirectories too, leaving *.bak files alone
  renamerc /path/to/folder -r --ignore="*.bak" --apply`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			return run(ctx, cmd, args[0])
		},
	}

	addRootFlags(cmd)
	return cmd
}

// addRootFlags adds flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&applyFlag, "apply", false, "actually apply the changes (default is preview only)")
	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "process subdirectories recursively")
	cmd.Flags().StringVar(&replaceFlag, "replace", config.DefaultReplacement, `text that replaces dots and spaces, "" removes them entirely`)
	cmd.Flags().StringVar(&prefixFlag, "prefix", "", "text to add at the beginning of each filename")
	cmd.Flags().StringVar(&suffixFlag, "suffix", "", "text to add at the end of each filename, before the extension")
	cmd.Flags().StringArrayVar(&ignoreFlags, "ignore", nil, "glob pattern of files to leave alone, repeatable")
	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "skip the confirmation prompt in apply mode")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path (default: probe .renamerc variants)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
		pterm.EnableDebugMessages()
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// consoleLevel picks the level for the report logger's zerolog mirror: in
// normal runs the human console output stands alone.
func consoleLevel() zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.Disabled
}

// resolveDir expands a leading ~ and makes the target directory absolute.
func resolveDir(arg string) (string, error) {
	dir := arg
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("resolving directory path: %w", err)
	}
	return abs, nil
}
