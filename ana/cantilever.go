// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verification
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// CantileverTube computes the solution of a uniform vertical tube cantilever
// fixed at the base and loaded at the tip
//
//	      P →  o  ← M
//	           |
//	           |        uniform tube: E, ρ, d, t
//	        L  |
//	           |
//	         ▬▬▬▬▬      fixed base
type CantileverTube struct {

	// input
	E float64 // Young's modulus
	ρ float64 // density
	d float64 // outer diameter
	t float64 // wall thickness
	L float64 // length

	// derived
	A float64 // cross-sectional area
	I float64 // second moment of area
}

// Init initialises this structure
func (o *CantileverTube) Init(prms fun.Prms) {

	// default values
	o.E = 210e9
	o.ρ = 7850.0
	o.d = 1.0
	o.t = 0.02
	o.L = 10.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "rho":
			o.ρ = p.V
		case "d":
			o.d = p.V
		case "t":
			o.t = p.V
		case "L":
			o.L = p.V
		}
	}

	// derived
	ro := o.d / 2.0
	ri := ro - o.t
	o.A = math.Pi * (ro*ro - ri*ri)
	o.I = math.Pi / 4.0 * (math.Pow(ro, 4) - math.Pow(ri, 4))
}

// TipDeflection computes the lateral tip deflection due to a transverse tip
// load P and a tip moment M
//
//	u = P·L³/(3·E·I) + M·L²/(2·E·I)
func (o CantileverTube) TipDeflection(P, M float64) float64 {
	EI := o.E * o.I
	return P*math.Pow(o.L, 3)/(3.0*EI) + M*o.L*o.L/(2.0*EI)
}

// TipRotation computes the tip rotation due to a transverse tip load P and
// a tip moment M
func (o CantileverTube) TipRotation(P, M float64) float64 {
	EI := o.E * o.I
	return P*o.L*o.L/(2.0*EI) + M*o.L/EI
}

// BaseMoment computes the bending moment at the base
func (o CantileverTube) BaseMoment(P, M float64) float64 {
	return P*o.L + M
}

// AxialShortening computes the tip settlement due to self-weight with
// gravity g
func (o CantileverTube) AxialShortening(g float64) float64 {
	return -o.ρ * g * o.L * o.L / (2.0 * o.E)
}

// Frequency computes the n-th bending natural frequency [Hz] of the
// cantilever (n ≥ 1)
//
//	fₙ = (βₙL)²/(2π·L²)·√(E·I/(ρ·A))
func (o CantileverTube) Frequency(n int) float64 {
	βL := []float64{1.8751040687119611, 4.6940911329741746, 7.8547574382376126}[n-1]
	return βL * βL / (2.0 * math.Pi * o.L * o.L) * math.Sqrt(o.E*o.I/(o.ρ*o.A))
}

// FrequencyWithTipMass computes the first bending natural frequency [Hz]
// with a concentrated tip mass m, using the standard single-DOF
// approximation with the generalized beam mass
//
//	f₁ = (1/2π)·√(3·E·I/L³ / (m + 33·ρ·A·L/140))
func (o CantileverTube) FrequencyWithTipMass(m float64) float64 {
	k := 3.0 * o.E * o.I / math.Pow(o.L, 3)
	meq := m + 33.0*o.ρ*o.A*o.L/140.0
	return math.Sqrt(k/meq) / (2.0 * math.Pi)
}

// CheckDeflection checks a computed tip deflection
func (o CantileverTube) CheckDeflection(tst *testing.T, P, M, u, tol float64) {
	chk.Scalar(tst, "tip deflection", tol, u, o.TipDeflection(P, M))
}

// CheckFrequency checks a computed n-th bending frequency
func (o CantileverTube) CheckFrequency(tst *testing.T, n int, f, tol float64) {
	chk.Scalar(tst, "frequency", tol, f, o.Frequency(n))
}
