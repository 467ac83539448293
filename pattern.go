// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

import "strings"

// strategy selects how a compiled pattern is evaluated.
type strategy uint8

const (
	// strategyExact matches patterns without wildcards.
	strategyExact strategy = iota
	// strategyAny matches "*".
	strategyAny
	// strategyPrefix matches "lit*".
	strategyPrefix
	// strategySuffix matches "*lit".
	strategySuffix
	// strategyContains matches "*lit*".
	strategyContains
	// strategySegments matches everything else, e.g. "a*b*c".
	strategySegments
)

// Pattern is a precompiled wildcard pattern.
//
// Pattern matches exactly the same queries as MatchString with its source,
// but never backtracks: worst case is O(len(query) * len(pattern)).
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	// source is the pattern with wildcard runs collapsed.
	source string
	// segments are literal parts between wildcards; first and last may be empty.
	segments []string
	// strategy is the cheapest evaluation that preserves semantics.
	strategy strategy
}

// Compile precompiles pattern. Every input is a valid pattern.
func Compile(pattern string) *Pattern {
	source := CollapseWildcards(pattern)
	p := &Pattern{source: source}

	if !HasWildcard(source) {
		p.strategy = strategyExact
		p.segments = []string{source}
		return p
	}

	p.segments = strings.Split(source, "*")
	first, last := p.segments[0], p.segments[len(p.segments)-1]

	switch {
	case source == "*":
		p.strategy = strategyAny
	case len(p.segments) == 2 && last == "":
		p.strategy = strategyPrefix
	case len(p.segments) == 2 && first == "":
		p.strategy = strategySuffix
	case len(p.segments) == 3 && first == "" && last == "":
		p.strategy = strategyContains
	default:
		p.strategy = strategySegments
	}

	return p
}

// String returns the collapsed pattern source.
func (p *Pattern) String() string {
	return p.source
}

// Literal reports whether pattern has no wildcards.
func (p *Pattern) Literal() bool {
	return p.strategy == strategyExact
}

// Match reports whether query is matched by pattern entirely.
func (p *Pattern) Match(query []byte) bool {
	return matchCompiled(p, query)
}

// MatchString is Match for string queries.
func (p *Pattern) MatchString(query string) bool {
	return matchCompiled(p, query)
}

// matchCompiled dispatches on the strategy chosen by Compile.
func matchCompiled[T ~string | ~[]byte](p *Pattern, query T) bool {
	switch p.strategy {
	case strategyExact:
		return len(query) == len(p.source) && hasLiteralPrefix(query, p.source)
	case strategyAny:
		return true
	case strategyPrefix:
		return hasLiteralPrefix(query, p.segments[0])
	case strategySuffix:
		return hasLiteralSuffix(query, p.segments[1])
	case strategyContains:
		return indexLiteral(query, p.segments[1]) >= 0
	default:
		return matchSegments(p.segments, query)
	}
}

// matchSegments anchors the first and last segments and places the middle
// ones leftmost-first. Leftmost placement of a middle segment never loses a match.
func matchSegments[T ~string | ~[]byte](segments []string, query T) bool {
	first, last := segments[0], segments[len(segments)-1]
	if len(query) < len(first)+len(last) {
		return false
	}

	if !hasLiteralPrefix(query, first) || !hasLiteralSuffix(query, last) {
		return false
	}

	query = query[len(first) : len(query)-len(last)]
	for _, seg := range segments[1 : len(segments)-1] {
		idx := indexLiteral(query, seg)
		if idx < 0 {
			return false
		}

		query = query[idx+len(seg):]
	}

	return true
}

// hasLiteralPrefix reports whether s starts with lit.
func hasLiteralPrefix[T ~string | ~[]byte](s T, lit string) bool {
	if len(s) < len(lit) {
		return false
	}

	for i := 0; i < len(lit); i++ {
		if s[i] != lit[i] {
			return false
		}
	}

	return true
}

// hasLiteralSuffix reports whether s ends with lit.
func hasLiteralSuffix[T ~string | ~[]byte](s T, lit string) bool {
	if len(s) < len(lit) {
		return false
	}

	return hasLiteralPrefix(s[len(s)-len(lit):], lit)
}

// indexLiteral returns the first index of lit in s, or -1.
func indexLiteral[T ~string | ~[]byte](s T, lit string) int {
	if lit == "" {
		return 0
	}

	for i := 0; i+len(lit) <= len(s); i++ {
		if s[i] == lit[0] && hasLiteralPrefix(s[i:], lit) {
			return i
		}
	}

	return -1
}
