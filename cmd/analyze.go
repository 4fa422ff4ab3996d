// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpmech/towerse/inp"
	"github.com/cpmech/towerse/tower"
)

var analyzeVerbose bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.tow>",
	Short: "Run the full tower analysis",
	Long: `Run the complete analysis of a tower definition: mass properties,
natural frequencies, all load cases, failure criteria and fatigue damage.

Example:
  towerse analyze data/onshore.tow`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "print the internal force tables")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	t, err := inp.ReadTower(args[0])
	if err != nil {
		return err
	}
	a, err := tower.NewAnalysis(t)
	if err != nil {
		return err
	}
	res, err := a.Run()
	if err != nil {
		return err
	}
	res.Report()
	if analyzeVerbose {
		ntop := len(a.Model.Nodes) - 1
		for i, c := range res.Cases {
			fmt.Printf("case %d (%s):\n", i, c.Desc)
			fmt.Printf("  reactions = %v\n", c.Reactions)
			fmt.Printf("  top displacement = %v\n", c.Sol.NodeDisp(ntop))
			c.Sol.PrintForces()
		}
	}
	return nil
}
