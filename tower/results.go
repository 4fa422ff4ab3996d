// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tower

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/towerse/crit"
	"github.com/cpmech/towerse/fem"
)

// CaseResult holds the outputs of one load case. The per-point slices have
// two entries per refined section (bottom end first), ordered bottom to top.
type CaseResult struct {
	Desc      string               // case description
	TopDefl   float64              // lateral deflection magnitude at the top
	Reactions []float64            // [6] base reactions
	Stress    []float64            // [2*nele] von Mises utilizations
	Shell     map[string][]float64 // shell-buckling utilizations per method
	Global    map[string][]float64 // global-buckling utilizations per method
	Sol       *fem.Solution        // full static solution, for inspection
}

// Results holds the complete output of one design evaluation
type Results struct {

	// mass properties and manufacturability measures
	Key      string  // input filename key
	Mass     float64 // tower structural mass
	Zcm      float64 // center-of-mass elevation
	Height   float64 // tower height
	MinDt    float64 // smallest diameter-to-thickness ratio of the design
	MaxTaper float64 // largest diameter taper slope of the design

	// dynamics
	Freqs  []float64   // natural frequencies [Hz], ascending
	Shapes [][]float64 // mode shapes

	// per-case and fatigue outputs
	Cases   []*CaseResult
	Fatigue []float64 // [nnod] damage per node; nil when the check is disabled
}

// StressUtil aggregates the von Mises utilizations over all points and cases
func (o *Results) StressUtil(policy string, ρ float64) float64 {
	var vals []float64
	for _, c := range o.Cases {
		vals = append(vals, c.Stress...)
	}
	return crit.Aggregate(policy, ρ, vals...)
}

// ShellUtil aggregates the shell-buckling utilizations over all points,
// methods and cases
func (o *Results) ShellUtil(policy string, ρ float64) float64 {
	var vals []float64
	for _, c := range o.Cases {
		for _, u := range c.Shell {
			vals = append(vals, u...)
		}
	}
	return crit.Aggregate(policy, ρ, vals...)
}

// GlobalUtil aggregates the global-buckling utilizations over all points,
// methods and cases
func (o *Results) GlobalUtil(policy string, ρ float64) float64 {
	var vals []float64
	for _, c := range o.Cases {
		for _, u := range c.Global {
			vals = append(vals, u...)
		}
	}
	return crit.Aggregate(policy, ρ, vals...)
}

// FatigueUtil aggregates the fatigue damage over all nodes
func (o *Results) FatigueUtil(policy string, ρ float64) float64 {
	return crit.Aggregate(policy, ρ, o.Fatigue...)
}

// Report prints a summary of the evaluation
func (o *Results) Report() {
	io.Pf("tower: %s\n", o.Key)
	io.Pf("mass          = %14.3f\n", o.Mass)
	io.Pf("center of mass= %14.3f\n", o.Zcm)
	io.Pf("height        = %14.3f\n", o.Height)
	io.Pf("min d/t       = %14.3f\n", o.MinDt)
	io.Pf("max taper     = %14.5f\n", o.MaxTaper)
	for i, f := range o.Freqs {
		io.Pf("f%d            = %14.6f Hz\n", i+1, f)
	}
	for _, c := range o.Cases {
		io.Pf("case: %s\n", c.Desc)
		io.Pf("  top deflection = %12.5f\n", c.TopDefl)
		io.Pf("  max stress     = %12.5f\n", crit.Max(c.Stress...))
		for name, u := range c.Shell {
			io.Pf("  max shell (%s) = %12.5f\n", name, crit.Max(u...))
		}
		for name, u := range c.Global {
			io.Pf("  max global (%s) = %12.5f\n", name, crit.Max(u...))
		}
	}
	if o.Fatigue != nil {
		io.Pf("max fatigue damage = %12.5f\n", crit.Max(o.Fatigue...))
	}
}
