// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

// Wildcard is the only pattern meta byte. It matches zero or more query bytes.
const Wildcard = '*'

// Match reports whether query is matched by pattern entirely.
//
// Every "*" in pattern matches any run of query bytes, including an empty one.
// All other bytes must match positionally. Match never fails or panics and
// does not allocate.
func Match(query, pattern []byte) bool {
	return match(query, pattern)
}

// MatchString is Match for string inputs.
func MatchString(query, pattern string) bool {
	return match(query, pattern)
}

// match is the recursive backtracking matcher shared by Match and MatchString.
func match[T ~string | ~[]byte](query, pattern T) bool {
	i := 0
	for i < len(pattern) && pattern[i] != Wildcard {
		if i >= len(query) || pattern[i] != query[i] {
			return false
		}

		i++
	}

	if i == len(pattern) {
		return i == len(query)
	}

	query = query[i:]

	// A run of wildcards is one logical "any".
	for i < len(pattern) && pattern[i] == Wildcard {
		i++
	}

	if i == len(pattern) {
		return true
	}

	pattern = pattern[i:]
	for split := 0; split <= len(query); split++ {
		if match(query[split:], pattern) {
			return true
		}
	}

	return false
}

// HasWildcard reports whether pattern contains at least one "*".
func HasWildcard(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == Wildcard {
			return true
		}
	}

	return false
}

// CollapseWildcards replaces every run of "*" with a single "*".
//
// The result matches exactly the same queries as the input.
func CollapseWildcards(pattern string) string {
	for i := 1; i < len(pattern); i++ {
		if pattern[i] != Wildcard || pattern[i-1] != Wildcard {
			continue
		}

		b := make([]byte, 0, len(pattern)-1)
		b = append(b, pattern[:i]...)
		for j := i + 1; j < len(pattern); j++ {
			if pattern[j] == Wildcard && b[len(b)-1] == Wildcard {
				continue
			}

			b = append(b, pattern[j])
		}

		return string(b)
	}

	return pattern
}
