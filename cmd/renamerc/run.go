package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/plan"
	"github.com/walteh/renamerc/pkg/report"
	"github.com/walteh/renamerc/pkg/scan"
)

// run drives a whole rename run: resolve and validate the target, merge the
// configuration, scan, plan, then preview or apply.
func run(ctx context.Context, cmd *cobra.Command, dirArg string) error {
	logger := report.New(cmd.OutOrStdout(), consoleLevel())
	userLogger := report.NewUserLogger(ctx)

	dir, err := resolveDir(dirArg)
	if err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Errorf("directory does not exist: %s", dir)
		}
		return errors.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("path is not a directory: %s", dir)
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Header("cleaning dots and spaces from file names")
	logger.Settings(dir, cfg)

	res, err := scan.Scan(ctx, dir, scan.Options{
		Recursive:      cfg.Recursive,
		IgnorePatterns: cfg.IgnorePatterns,
	})
	if err != nil {
		return err
	}
	if res.Truncated {
		logger.Warningf("stopped scanning after %d files, results are partial", scan.DefaultMaxFiles)
	}

	p := plan.Build(ctx, res, cfg)
	logger.ScanSummary(res.Stats, p)

	if p.Empty() {
		logger.Info("no files need renaming in this directory")
		return nil
	}

	logger.PlanListing(dir, p)

	op, err := operation.New(operation.Options{
		Config:     cfg,
		Plan:       p,
		Dir:        dir,
		UserLogger: userLogger,
	})
	if err != nil {
		return err
	}

	if !cfg.Apply {
		if _, err := op.Preview(ctx); err != nil {
			return err
		}
		logger.ApplyHint(dir, cfg)
		return nil
	}

	confirmed := cfg.Force
	if !confirmed {
		confirmed = report.Confirm(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	l, err := op.Apply(ctx, confirmed)
	if err != nil {
		return err
	}
	if l.Cancelled {
		logger.Info("Operation cancelled. No files were modified.")
		return nil
	}

	renamed, _, failed := l.Counts()
	logger.LogNewline()
	logger.RunSummary(renamed, failed, l.WrittenPath)
	if len(l.Records) > 0 && l.WrittenPath == "" {
		logger.Warningf("could not write log file to %s", l.Path())
	}

	if failed > 0 {
		return errors.Errorf("%d of %d renames failed", failed, p.ToRename())
	}
	return nil
}

// loadConfig builds the effective configuration: defaults, then the config
// file (explicit path or discovered), then command-line flags on top.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	var file *config.File
	var err error
	if configFile != "" {
		file, err = config.Load(ctx, configFile)
	} else {
		file, _, err = config.Discover(ctx, ".")
	}
	if err != nil {
		return nil, err
	}
	file.ApplyTo(cfg)

	flags := cmd.Flags()
	if flags.Changed("replace") {
		cfg.Replacement = replaceFlag
	}
	if flags.Changed("prefix") {
		cfg.Prefix = prefixFlag
	}
	if flags.Changed("suffix") {
		cfg.Suffix = suffixFlag
	}
	if flags.Changed("recursive") {
		cfg.Recursive = recursiveFlag
	}
	// --ignore adds to the file's patterns instead of replacing them
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, ignoreFlags...)
	cfg.Apply = applyFlag
	cfg.Force = forceFlag

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
