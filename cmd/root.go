// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command-line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "towerse",
	Short: "Wind turbine tower structural analysis",
	Long: `towerse - wind turbine tower structural analysis

Given a tower definition (.tow JSON file) with sparse geometry control
points, material, foundation, rotor-nacelle assembly and environmental
load cases, towerse computes:

  - mass properties (structural mass, center of mass)
  - natural frequencies and mode shapes
  - per-case internal forces and top deflection
  - von Mises stress, shell-buckling and global-buckling utilizations
  - fatigue damage from a damage-equivalent moment distribution

Use 'towerse --help' to see available commands.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
