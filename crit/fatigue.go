// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"gonum.org/v1/gonum/stat/distuv"
)

// SNCurve is the empirical stress-range versus cycles-to-failure relation
//
//	N(Δσ) = A · Δσ^(-m)
//
// with Δσ in [Pa]
type SNCurve struct {
	M float64 // slope exponent
	A float64 // intercept
}

// Cycles returns the number of cycles to failure at stress range Δσ
func (o SNCurve) Cycles(Δσ float64) float64 {
	return o.A * math.Pow(Δσ, -o.M)
}

// FatigueModel accumulates lifetime Palmgren-Miner damage from a
// γ-factored characteristic stress range at one section. Damage is
// continuous and monotonically non-decreasing in the stress range and in
// the number of lifetime cycles; damage ≥ 1 signals failure, consumed by
// the optimizer as a constraint value, not an error.
type FatigueModel interface {
	Init(prms fun.Prms) (err error)
	Damage(Δσ float64) float64
}

// fatiguemodels holds all available fatigue spectrum models
var fatiguemodels = make(map[string]func() FatigueModel)

// NewFatigue returns an initialised fatigue model by name; e.g. "del",
// "weibull"
func NewFatigue(name string, prms fun.Prms) (FatigueModel, error) {
	alloc, ok := fatiguemodels[name]
	if !ok {
		return nil, chk.Err("crit: cannot find fatigue model named %q", name)
	}
	o := alloc()
	if err := o.Init(prms); err != nil {
		return nil, err
	}
	return o, nil
}

// add models to factory
func init() {
	fatiguemodels["del"] = func() FatigueModel { return new(DELFatigue) }
	fatiguemodels["weibull"] = func() FatigueModel { return new(WeibullFatigue) }
}

// DELFatigue interprets Δσ as the damage-equivalent stress range: the
// constant range whose effect over Neq cycles equals the variable history
// over the design life
type DELFatigue struct {
	SN  SNCurve
	Neq float64 // equivalent number of cycles over the design life
}

// Init initialises the model
func (o *DELFatigue) Init(prms fun.Prms) (err error) {

	// default values: DNV curve slope and 1e7 reference cycles
	o.SN.M = 4.0
	o.SN.A = 1e47
	o.Neq = 1e7

	// parameters
	for _, p := range prms {
		switch p.N {
		case "m":
			o.SN.M = p.V
		case "A":
			o.SN.A = p.V
		case "Neq":
			o.Neq = p.V
		}
	}
	if o.SN.M <= 0 || o.SN.A <= 0 || o.Neq <= 0 {
		return chk.Err("del fatigue model: m, A and Neq must be positive. m=%g A=%g Neq=%g", o.SN.M, o.SN.A, o.Neq)
	}
	return
}

// Damage returns the accumulated lifetime damage
func (o *DELFatigue) Damage(Δσ float64) float64 {
	if Δσ <= 0 {
		return 0
	}
	return o.Neq / o.SN.Cycles(Δσ)
}

// WeibullFatigue interprets Δσ as the once-per-lifetime (maximum) stress
// range of a Weibull long-term distribution with shape K. The distribution
// scale follows from the lifetime cycle count, the spectrum is discretized
// into Nbins equal-probability blocks at their median ranges, and the
// Palmgren-Miner sum is taken over the blocks.
type WeibullFatigue struct {
	SN    SNCurve
	Nlife float64 // number of cycles over the design life
	K     float64 // Weibull shape parameter of the stress-range spectrum
	Nbins int     // number of spectrum blocks
}

// Init initialises the model
func (o *WeibullFatigue) Init(prms fun.Prms) (err error) {

	// default values
	o.SN.M = 4.0
	o.SN.A = 1e47
	o.Nlife = 1e9
	o.K = 2.0
	o.Nbins = 100

	// parameters
	for _, p := range prms {
		switch p.N {
		case "m":
			o.SN.M = p.V
		case "A":
			o.SN.A = p.V
		case "Nlife":
			o.Nlife = p.V
		case "k":
			o.K = p.V
		case "nbins":
			o.Nbins = int(p.V)
		}
	}
	if o.SN.M <= 0 || o.SN.A <= 0 || o.Nlife <= 1 || o.K <= 0 || o.Nbins < 1 {
		return chk.Err("weibull fatigue model: invalid parameters. m=%g A=%g Nlife=%g k=%g nbins=%d", o.SN.M, o.SN.A, o.Nlife, o.K, o.Nbins)
	}
	return
}

// Damage returns the accumulated lifetime damage
func (o *WeibullFatigue) Damage(Δσ float64) float64 {
	if Δσ <= 0 {
		return 0
	}

	// scale so that the range exceeded once in Nlife cycles equals Δσ
	λ := Δσ / math.Pow(math.Log(o.Nlife), 1.0/o.K)
	w := distuv.Weibull{K: o.K, Lambda: λ}

	// block-by-block Miner sum at the block median ranges
	nblock := o.Nlife / float64(o.Nbins)
	var dmg float64
	for i := 0; i < o.Nbins; i++ {
		p := (float64(i) + 0.5) / float64(o.Nbins)
		s := w.Quantile(p)
		dmg += nblock / o.SN.Cycles(s)
	}
	return dmg
}
