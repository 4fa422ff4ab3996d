// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/towerse/inp"
	"github.com/cpmech/towerse/sec"
)

var massCmd = &cobra.Command{
	Use:   "mass <file.tow>",
	Short: "Compute the mass properties only",
	Args:  cobra.ExactArgs(1),
	RunE:  runMass,
}

func init() {
	rootCmd.AddCommand(massCmd)
}

func runMass(cmd *cobra.Command, args []string) error {
	t, err := inp.ReadTower(args[0])
	if err != nil {
		return err
	}
	s, err := sec.Refine(t.ControlPoints(), t.Material, t.Data.Ndiv)
	if err != nil {
		return err
	}
	io.Pf("structural mass = %14.3f\n", s.TotalMass())
	io.Pf("center of mass  = %14.3f\n", s.CenterOfMass())
	io.Pf("height          = %14.3f\n", s.Height())
	return nil
}
