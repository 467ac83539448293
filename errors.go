// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package strpcmp

import "errors"

// Sentinel errors for strpcmp operations.
var (
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidAction indicates unknown action text.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidConfig indicates a config document that cannot be loaded.
	ErrInvalidConfig = errors.New("invalid config")
)
