// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/strpcmp"
)

func filterCommand(a *app) *cobra.Command {
	f := &filterCmd{app: a}

	cmd := &cobra.Command{
		Use:   "filter [flags] [QUERY...]",
		Short: "Print queries included by ordered rules",
		Long: `Queries are read from arguments, or from stdin one per line when no
arguments are given. Rules are applied in order: config file, --ext,
--rules files, then --rule lines. The last matching rule wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.defaultSet = cmd.Flags().Changed("default")
			return f.Run(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().StringVar(&f.configFile, "config", f.configFile, "YAML config file with rules_files, rules and options.")
	cmd.Flags().StringArrayVar(&f.rulesFiles, "rules", f.rulesFiles, "Rules file, one rule per line. May be repeated.")
	cmd.Flags().StringArrayVar(&f.rules, "rule", f.rules, `Inline rule line, "!" prefix includes. May be repeated.`)
	cmd.Flags().StringSliceVar(&f.exts, "ext", f.exts, "Extensions to include, e.g. txt,.go,*.md.")
	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", f.ignoreCase, "Fold ASCII case before matching.")
	cmd.Flags().Var(&actionValue{action: &f.defaultAction}, "default", "Action when no rule matched: include or exclude.")
	cmd.Flags().BoolVarP(&f.invert, "invert", "v", f.invert, "Print excluded queries instead.")

	return cmd
}

type filterCmd struct {
	app *app

	configFile string
	rulesFiles []string
	rules      []string
	exts       []string
	ignoreCase bool
	invert     bool

	defaultAction strpcmp.Action
	defaultSet    bool
}

func (f *filterCmd) Run(stdin io.Reader, stdout io.Writer, args []string) error {
	m, err := f.matcher()
	if err != nil {
		return err
	}

	level.Debug(f.app.logger).Log("msg", "compiled rules", "count", m.Len())

	emit := func(query string) error {
		res := m.Decide(query)
		level.Debug(f.app.logger).Log("msg", "decided", "query", query, "included", res.Included, "rule", res.RuleIndex)
		if res.Included == f.invert {
			return nil
		}

		_, err := fmt.Fprintln(stdout, query)
		return err
	}

	if len(args) > 0 {
		for _, q := range args {
			if err := emit(q); err != nil {
				return err
			}
		}

		return nil
	}

	s := bufio.NewScanner(stdin)
	for s.Scan() {
		if err := emit(strings.TrimRight(s.Text(), "\r")); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("read queries: %w", err)
	}

	return nil
}

// matcher merges config, extension, file and inline rules in that order.
func (f *filterCmd) matcher() (*strpcmp.Matcher, error) {
	cfg := &strpcmp.Config{}
	if f.configFile != "" {
		loaded, err := strpcmp.LoadConfigFile(f.configFile)
		if err != nil {
			return nil, err
		}

		level.Info(f.app.logger).Log("msg", "loaded config", "path", f.configFile)
		cfg = loaded
	}

	configRules, err := cfg.ResolveRules()
	if err != nil {
		return nil, err
	}

	fileRules, err := strpcmp.LoadRulesFiles(f.rulesFiles...)
	if err != nil {
		return nil, err
	}

	rules := strpcmp.MergeRules(
		configRules,
		strpcmp.ParseExtensions(f.exts),
		fileRules,
		strpcmp.ParseRuleLines(f.rules),
	)

	opts := cfg.Options
	if f.ignoreCase {
		opts.CaseInsensitive = true
	}

	if f.defaultSet {
		opts.DefaultAction = f.defaultAction
	}

	return strpcmp.NewMatcher(rules, opts)
}

var _ pflag.Value = (*actionValue)(nil)

// actionValue adapts strpcmp.Action to pflag.Value.
type actionValue struct {
	action *strpcmp.Action
}

func (v *actionValue) String() string {
	if v.action == nil || *v.action == strpcmp.ActionUnknown {
		return ""
	}

	return v.action.String()
}

func (v *actionValue) Set(s string) error {
	a, err := strpcmp.ParseAction(s)
	if err != nil {
		return err
	}

	*v.action = a
	return nil
}

func (v *actionValue) Type() string {
	return "action"
}
