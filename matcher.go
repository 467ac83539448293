// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

import "fmt"

// Matcher evaluates query decisions against compiled ordered rules.
type Matcher struct {
	compiled        []compiledRule
	defaultAction   Action
	caseInsensitive bool
}

// compiledRule is matcher-internal compiled representation of one rule.
type compiledRule struct {
	pattern *Pattern
	action  Action
}

// NewMatcher compiles ordered rules into matcher.
//
// Any pattern is valid, including the empty one; only actions are checked.
func NewMatcher(rules []Rule, opts MatcherOptions) (*Matcher, error) {
	opts.applyDefaults()

	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if !rule.Action.valid() {
			return nil, fmt.Errorf("%w: rule %d (%q): unsupported action %d", ErrInvalidRule, i, rule.Pattern, rule.Action)
		}

		pattern := rule.Pattern
		if opts.CaseInsensitive {
			pattern = asciiLower(pattern)
		}

		compiled = append(compiled, compiledRule{
			pattern: Compile(pattern),
			action:  rule.Action,
		})
	}

	return &Matcher{
		compiled:        compiled,
		defaultAction:   opts.DefaultAction,
		caseInsensitive: opts.CaseInsensitive,
	}, nil
}

// Len returns number of compiled rules.
func (m *Matcher) Len() int {
	return len(m.compiled)
}

// Decide returns deterministic include/exclude decision for one query.
//
// Decision policy:
// - last matched rule wins
// - if no rule matched, default action is used
func (m *Matcher) Decide(query string) MatchResult {
	if m.caseInsensitive {
		query = asciiLower(query)
	}

	res := MatchResult{
		Included:  m.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	// Walk backwards so the first hit is the last matching rule.
	for i := len(m.compiled) - 1; i >= 0; i-- {
		if !m.compiled[i].pattern.MatchString(query) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = m.compiled[i].action == ActionInclude
		break
	}

	return res
}

// Included reports whether query is included by decision policy.
func (m *Matcher) Included(query string) bool {
	return m.Decide(query).Included
}

// Excluded reports whether query is excluded by decision policy.
func (m *Matcher) Excluded(query string) bool {
	return !m.Decide(query).Included
}

// Filter returns included queries preserving input order.
func (m *Matcher) Filter(queries []string) []string {
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		if m.Included(q) {
			out = append(out, q)
		}
	}

	return out
}
