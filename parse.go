// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules parses line-oriented rules from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "!" creates include rule
// - plain lines create exclude rule
// - "\#" and "\!" escape leading comment/negation tokens
// - trailing spaces are trimmed unless escaped by "\"
//
// There is no "*" escape: every "*" in a rule is a wildcard.
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		rule, ok := parseRuleLine(s.Text())
		if !ok {
			continue
		}

		rules = append(rules, rule)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// ParseRuleLines parses rules given one per element, e.g. from repeated CLI flags.
func ParseRuleLines(lines []string) []Rule {
	rules := make([]Rule, 0, len(lines))
	for _, line := range lines {
		if rule, ok := parseRuleLine(line); ok {
			rules = append(rules, rule)
		}
	}

	return rules
}

// parseRuleLine parses one rule line; ok is false for blanks and comments.
func parseRuleLine(line string) (Rule, bool) {
	line = strings.TrimRight(line, "\r")
	line = trimTrailingSpaces(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	action := ActionExclude
	if strings.HasPrefix(line, "!") {
		action = ActionInclude
		line = line[1:]
	} else if strings.HasPrefix(line, `\!`) {
		line = line[1:]
	}

	if line == "" {
		return Rule{}, false
	}

	return Rule{
		Action:  action,
		Pattern: line,
	}, true
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
