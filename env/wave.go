// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/towerse/errs"
)

// LinearWave implements linear (Airy) wave theory combined with a Morison
// drag/inertia force model for slender cylinders. Elevations z are absolute;
// the mean water surface is at Zsurf and the seabed at Zsurf-Depth.
type LinearWave struct {

	// input
	H     float64 // wave height (crest to trough)
	T     float64 // wave period
	Depth float64 // water depth
	Zsurf float64 // elevation of the mean water surface
	Rho   float64 // water density
	Cd    float64 // Morison drag coefficient
	Cm    float64 // Morison inertia coefficient
	Uc    float64 // uniform current speed

	// derived
	ω float64 // angular frequency = 2π/T
	k float64 // wavenumber from the dispersion relation
}

// Init initialises the model and solves the dispersion relation
func (o *LinearWave) Init(prms fun.Prms) (err error) {

	// default values
	o.Rho = RhoSeaWater
	o.Cd = 1.0
	o.Cm = 2.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "H":
			o.H = p.V
		case "T":
			o.T = p.V
		case "depth":
			o.Depth = p.V
		case "zsurf":
			o.Zsurf = p.V
		case "rho":
			o.Rho = p.V
		case "cd":
			o.Cd = p.V
		case "cm":
			o.Cm = p.V
		case "uc":
			o.Uc = p.V
		}
	}

	// check
	if o.H < 0 {
		return errs.Domain("linear wave: wave height must be non-negative. H=%g is invalid", o.H)
	}
	if o.H > 0 && o.T <= 0 {
		return errs.Domain("linear wave: wave period must be positive. T=%g is invalid", o.T)
	}
	if o.Depth <= 0 {
		return errs.Domain("linear wave: water depth must be positive. depth=%g is invalid", o.Depth)
	}

	// dispersion relation
	if o.H > 0 {
		o.ω = 2.0 * math.Pi / o.T
		o.k, err = o.Wavenumber()
	}
	return
}

// Wavenumber solves the finite-depth dispersion relation
//
//	ω² = g·k·tanh(k·d)
//
// by fixed-point iteration starting from the deep-water wavenumber ω²/g
func (o *LinearWave) Wavenumber() (k float64, err error) {
	d := o.Depth
	k = o.ω * o.ω / Grav
	tol := 1e-12
	for it := 0; it < 100; it++ {
		knew := o.ω * o.ω / (Grav * math.Tanh(k*d))
		if math.Abs(knew-k) < tol*knew {
			return knew, nil
		}
		k = knew
	}
	return 0, errs.Domain("linear wave: dispersion relation did not converge. T=%g depth=%g", o.T, d)
}

// Kinematics returns the amplitudes of the horizontal water particle
// velocity u and acceleration a at elevation z. Elevations above the
// surface or below the seabed are clamped to the water column.
func (o *LinearWave) Kinematics(z float64) (u, a float64) {
	if o.H == 0 {
		return
	}
	s := z - (o.Zsurf - o.Depth) // height above seabed
	if s < 0 {
		s = 0
	}
	if s > o.Depth {
		s = o.Depth
	}
	f := math.Cosh(o.k*s) / math.Sinh(o.k*o.Depth)
	u = math.Pi * o.H / o.T * f
	a = 2.0 * math.Pi * math.Pi * o.H / (o.T * o.T) * f
	return
}

// Force returns the maximum Morison force per unit length [N/m] acting on a
// cylinder of diameter d at elevation z. Drag and inertia maxima occur at
// different phases; summing the two amplitudes is the conservative combination.
// Elevations above the mean water surface carry no wave load.
func (o *LinearWave) Force(z, d float64) float64 {
	if z > o.Zsurf {
		return 0
	}
	u, a := o.Kinematics(z)
	ut := u + o.Uc
	fd := 0.5 * o.Rho * o.Cd * d * ut * math.Abs(ut)
	fi := o.Rho * o.Cm * math.Pi * d * d / 4.0 * a
	return fd + fi
}

// Forces evaluates the Morison force at a vector of elevations in one call
func (o *LinearWave) Forces(z, d []float64) (f []float64) {
	f = make([]float64, len(z))
	for i := range z {
		f[i] = o.Force(z[i], d[i])
	}
	return
}
