// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nfaross/model-s4plus/table"
)

// version is overridden at link time with -X main.version=...
var version = "dev"

// errUsage marks errors caused by bad user input (exit code 1).
var errUsage = errors.New("usage error")

// app carries per-invocation state shared by all subcommands.
type app struct {
	cfg    *viper.Viper
	out    io.Writer
	log    *slog.Logger
	stderr io.Writer

	configDir string
	verbose   bool
}

// newRootCmd builds the full command tree writing to out and errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: viper.New(), out: out, stderr: errOut}

	root := &cobra.Command{
		Use:           "pqalg",
		Short:         "Exact arithmetic in A⊗A⊗A for two universal projections",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			if err := loadConfig(a.cfg, a.configDir); err != nil {
				return err
			}
			if _, err := parseFormat(a.cfg.GetString(cfgKeyFormat)); err != nil {
				return err
			}
			a.log.Debug("config loaded",
				slog.String("file", a.cfg.ConfigFileUsed()),
				slog.String(cfgKeyFormat, a.cfg.GetString(cfgKeyFormat)),
				slog.String(cfgKeyDB, a.cfg.GetString(cfgKeyDB)))

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%v: %w", err, errUsage)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", ".", "directory holding pqalg.yaml")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.String(cfgKeyFormat, defaultFormat, "output format: text|yaml|json")
	pf.String(cfgKeyDB, defaultDB, "SQLite database for the store commands")
	_ = a.cfg.BindPFlag(cfgKeyFormat, pf.Lookup(cfgKeyFormat))
	_ = a.cfg.BindPFlag(cfgKeyDB, pf.Lookup(cfgKeyDB))

	root.AddCommand(
		newTableCmd(a),
		newMulCmd(a),
		newSquareCmd(a),
		newExportCmd(a),
		newChartCmd(a),
		newStoreCmd(a),
		newVersionCmd(a),
	)

	return root
}

// format returns the validated output format from config.
func (a *app) format() string {
	f, _ := parseFormat(a.cfg.GetString(cfgKeyFormat))

	return f
}

// parseIndex reads a table index in [0, table.Size).
func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= table.Size {
		return 0, fmt.Errorf("index %q must be an integer in [0,%d): %w", s, table.Size, errUsage)
	}

	return i, nil
}

// parseCell reads an (i, j) index pair.
func parseCell(si, sj string) (int, int, error) {
	i, err := parseIndex(si)
	if err != nil {
		return 0, 0, err
	}
	j, err := parseIndex(sj)
	if err != nil {
		return 0, 0, err
	}

	return i, j, nil
}

// usageArgs wraps cobra's positional-argument validators so that argument
// count errors map to exit code 1.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%v: %w", err, errUsage)
		}

		return nil
	}
}
