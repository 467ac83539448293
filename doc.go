// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

/*
Package strpcmp implements byte-exact wildcard matching with reusable include/exclude rules.

A pattern is literal bytes plus "*" wildcards. Every "*" matches zero or more bytes of the
query and there is no escape, so a literal "*" can only be matched by a wildcard. Matching is
positional and exact: no case folding, no Unicode normalization, no path separators.

Basic flow:
  - one-shot predicate (`Match` / `MatchString`)
  - precompile a hot pattern (`Compile`), same results in polynomial time
  - parse ordered rules from text (`ParseRules`) or files (`LoadRulesFile`)
  - optionally build extension-based include rules (`ParseExtensions`)
  - compile matcher (`NewMatcher`) or load a YAML config (`LoadConfigFile`)
  - ask for decision (`Decide` / `Included` / `Excluded` / `Filter`)
*/
package strpcmp
