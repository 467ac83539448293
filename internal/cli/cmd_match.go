// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package cli

import (
	"fmt"
	"io"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/woozymasta/strpcmp"
)

func matchCommand(a *app) *cobra.Command {
	m := &matchCmd{app: a}

	cmd := &cobra.Command{
		Use:   "match [flags] QUERY PATTERN",
		Short: `Print "yes" when PATTERN matches QUERY, "no" otherwise`,
		Long: `Every "*" in PATTERN matches zero or more bytes of QUERY.
There is no escape: a literal "*" can only be matched by a wildcard.`,
		Args: exactTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Run(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	cmd.Flags().BoolVarP(&m.quiet, "quiet", "q", m.quiet, `Print nothing, exit with status 1 on "no".`)

	return cmd
}

type matchCmd struct {
	app   *app
	quiet bool
}

func (m *matchCmd) Run(w io.Writer, query, pattern string) error {
	matched := strpcmp.MatchString(query, pattern)
	level.Debug(m.app.logger).Log("msg", "matched query", "query", query, "pattern", pattern, "matched", matched)

	if m.quiet {
		if !matched {
			return ErrNoMatch
		}

		return nil
	}

	answer := "no"
	if matched {
		answer = "yes"
	}

	_, err := fmt.Fprintln(w, answer)
	return err
}
