// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

import "strings"

// ParseExtensions converts extension list to include rules.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values and values containing "*" are skipped. Returned patterns keep the extension bytes as given
// (matching is byte-exact unless MatcherOptions.CaseInsensitive is set) and
// preserve input order.
func ParseExtensions(exts []string) []Rule {
	rules := make([]Rule, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		if ext == "" || HasWildcard(ext) {
			continue
		}

		rules = append(rules, Rule{
			Action:  ActionInclude,
			Pattern: "*." + ext,
		})
	}

	return rules
}
