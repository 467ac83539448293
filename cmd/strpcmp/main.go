// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/strpcmp/internal/cli"
)

func main() {
	if err := cli.Command().Execute(); err != nil {
		if !errors.Is(err, cli.ErrNoMatch) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}
