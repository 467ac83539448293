// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Config is a YAML/JSON document describing one matcher.
//
// Example:
//
//	rules_files:
//	  - base.rules
//	rules:
//	  - pattern: "*.tmp"
//	    action: exclude
//	  - pattern: "keep*"
//	    action: include
//	options:
//	  default_action: include
type Config struct {
	// RulesFiles are line-oriented rules files, relative to the config file directory.
	RulesFiles []string `json:"rules_files,omitempty" yaml:"rules_files,omitempty"`
	// Rules are inline rules evaluated after all rules files.
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
	// Options controls matcher behavior.
	Options MatcherOptions `json:"options" yaml:"options"`

	// baseDir resolves relative RulesFiles, empty means working directory.
	baseDir string
}

// ParseConfig parses a YAML or JSON config document.
//
// Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for i, rule := range cfg.Rules {
		if !rule.Action.valid() {
			return nil, fmt.Errorf("%w: rule %d (%q) has no action", ErrInvalidConfig, i, rule.Pattern)
		}
	}

	return cfg, nil
}

// LoadConfigFile reads and parses a config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// ResolveRules returns rules from RulesFiles in order followed by inline Rules.
func (c *Config) ResolveRules() ([]Rule, error) {
	paths := make([]string, 0, len(c.RulesFiles))
	for _, p := range c.RulesFiles {
		if !filepath.IsAbs(p) && c.baseDir != "" {
			p = filepath.Join(c.baseDir, p)
		}

		paths = append(paths, p)
	}

	fileRules, err := LoadRulesFiles(paths...)
	if err != nil {
		return nil, err
	}

	return MergeRules(fileRules, c.Rules), nil
}

// NewMatcher resolves rules and compiles them with config options.
func (c *Config) NewMatcher() (*Matcher, error) {
	rules, err := c.ResolveRules()
	if err != nil {
		return nil, err
	}

	return NewMatcher(rules, c.Options)
}
