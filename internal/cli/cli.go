// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

// Package cli is the entrypoint for the strpcmp command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

var (
	// ErrNoMatch is returned by quiet match runs that answered "no".
	ErrNoMatch = errors.New("no match")

	errExpectedTwoArgs = errors.New("expected two arguments")
)

// app holds state shared by all subcommands.
type app struct {
	logLevel string
	logger   log.Logger
}

// Command returns the root command.
//
// With exactly two arguments the root command behaves like "match".
func Command() *cobra.Command {
	a := &app{
		logLevel: "warn",
		logger:   log.NewNopLogger(),
	}
	m := &matchCmd{app: a}

	cmd := &cobra.Command{
		Use:           "strpcmp [flags] QUERY PATTERN",
		Short:         `Match queries against "*" wildcard patterns`,
		Args:          exactTwoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}

			a.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Run(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log.level", a.logLevel, "Log level. Supported values: debug, info, warn, error.")
	cmd.Flags().BoolVarP(&m.quiet, "quiet", "q", false, `Print nothing, exit with status 1 on "no".`)

	cmd.AddCommand(
		matchCommand(a),
		filterCommand(a),
	)

	return cmd
}

// newLogger builds a logfmt logger filtered by level name.
func newLogger(w io.Writer, name string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(name) {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unsupported log level %q", name)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, opt), nil
}

// exactTwoArgs keeps the classic "expected two arguments" failure message.
func exactTwoArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errExpectedTwoArgs
	}

	return nil
}
