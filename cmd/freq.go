// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/towerse/fem"
	"github.com/cpmech/towerse/inp"
	"github.com/cpmech/towerse/tower"
)

var freqNmodes int

var freqCmd = &cobra.Command{
	Use:   "freq <file.tow>",
	Short: "Compute the natural frequencies only",
	Args:  cobra.ExactArgs(1),
	RunE:  runFreq,
}

func init() {
	rootCmd.AddCommand(freqCmd)
	freqCmd.Flags().IntVarP(&freqNmodes, "nmodes", "n", 0, "number of modes (0 uses the input file setting)")
}

func runFreq(cmd *cobra.Command, args []string) error {
	t, err := inp.ReadTower(args[0])
	if err != nil {
		return err
	}
	if freqNmodes > 0 {
		t.Data.Nmodes = freqNmodes
	}
	a, err := tower.NewAnalysis(t)
	if err != nil {
		return err
	}
	solver, err := fem.NewSolver(t.Data.Solver)
	if err != nil {
		return err
	}
	mo, err := solver.Modal(a.Model, t.Data.Nmodes)
	if err != nil {
		return err
	}
	for i, f := range mo.Freqs {
		io.Pf("f%d = %14.6f Hz\n", i+1, f)
	}
	return nil
}
