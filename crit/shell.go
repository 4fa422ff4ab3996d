// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/towerse/sec"
)

// ShellBuckling computes the local shell-buckling utilization of a thin
// cylindrical wall section under combined meridional, hoop and shear
// stress. Two independent formulations are provided; both are always
// evaluated by the aggregator and reported separately, and the combination
// rule is a configuration choice.
type ShellBuckling interface {
	Util(st State, mat sec.Material, γb, γn float64) float64
}

// shellmethods holds all available shell-buckling formulations
var shellmethods = make(map[string]func() ShellBuckling)

// NewShellBuckling returns a shell-buckling method by name; e.g.
// "eurocode", "dnv"
func NewShellBuckling(name string) (ShellBuckling, error) {
	if alloc, ok := shellmethods[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("crit: cannot find shell-buckling method named %q", name)
}

// add methods to factory
func init() {
	shellmethods["eurocode"] = func() ShellBuckling { return &ECShell{Q: 25} }
	shellmethods["dnv"] = func() ShellBuckling { return &DNVShell{Nu: 0.3} }
}

// ECShell implements the EN 1993-1-6 cylindrical shell buckling check:
// elastic critical stresses reduced by imperfection (fabrication quality
// parameter Q) and plasticity factors, combined with the standard
// interaction expression
type ECShell struct {
	Q float64 // fabrication quality parameter (25 = class B)
}

// χ returns the buckling reduction factor for relative slenderness λ̄ and
// imperfection factor α (β=0.6, η=1, λ̄0=0.2)
func buckRed(λ, α float64) float64 {
	β, λ0 := 0.6, 0.2
	λp := math.Sqrt(α / (1.0 - β))
	switch {
	case λ <= λ0:
		return 1.0
	case λ < λp:
		return 1.0 - β*(λ-λ0)/(λp-λ0)
	}
	return α / (λ * λ)
}

// Util returns the shell-buckling utilization
func (o *ECShell) Util(st State, mat sec.Material, γb, γn float64) float64 {

	// design stresses (compression positive for the buckling check)
	σx := math.Max(0, -st.AxialStress()) * γn
	σθ := math.Max(0, -st.HoopStress()) * γn
	τ := math.Abs(st.ShearStress()) * γn
	if σx == 0 && σθ == 0 && τ == 0 {
		return 0
	}

	r := (st.D - st.T) / 2.0 // mid-thickness radius
	t := st.T
	ω := st.L / math.Sqrt(r*t)

	// meridional: critical stress and imperfection reduction
	cx := 1.0
	if ω < 1.7 {
		cx = 1.36 - 1.83/ω + 2.07/(ω*ω)
	} else if ω > 0.5*r/t {
		cxb := 6.0
		cx = math.Max(0.6, 1.0+0.2/cxb*(1.0-2.0*ω*t/r))
	}
	σxRcr := 0.605 * cx * mat.E * t / r
	Δwk := t / o.Q * math.Sqrt(r/t)
	αx := 0.62 / (1.0 + 1.91*math.Pow(Δwk/t, 1.44))
	λx := math.Sqrt(mat.Fy / σxRcr)
	χx := buckRed(λx, αx)

	// circumferential (external pressure)
	σθRcr := 0.92 * mat.E * t / (r * ω)
	αθ := 0.5
	λθ := math.Sqrt(mat.Fy / σθRcr)
	χθ := buckRed(λθ, αθ)

	// shear
	τRcr := 0.75 * mat.E * math.Sqrt(1.0/ω) * t / r
	ατ := 0.65
	λτ := math.Sqrt(mat.Fy / math.Sqrt(3.0) / τRcr)
	χτ := buckRed(λτ, ατ)

	// design resistances
	σxRd := χx * mat.Fy / γb
	σθRd := χθ * mat.Fy / γb
	τRd := χτ * mat.Fy / math.Sqrt(3.0) / γb

	// interaction
	kx := 1.25 + 0.75*χx
	kθ := 1.25 + 0.75*χθ
	kτ := 1.75 + 0.25*χτ
	ki := math.Pow(χx*χθ, 2)
	ax := σx / σxRd
	aθ := σθ / σθRd
	aτ := τ / τRd
	return math.Pow(ax, kx) - ki*ax*aθ + math.Pow(aθ, kθ) + math.Pow(aτ, kτ)
}

// DNVShell implements a DNV-RP-C202 style buckling check for unstiffened
// cylindrical shells: the equivalent (von Mises) design stress compared
// against a characteristic buckling strength obtained from the combined
// reduced slenderness of all elastic buckling modes
type DNVShell struct {
	Nu float64 // Poisson's coefficient of the wall material
}

// Util returns the shell-buckling utilization
func (o *DNVShell) Util(st State, mat sec.Material, γb, γn float64) float64 {

	// design stress components (compression positive)
	a := st.Fz / st.area()
	b := st.Mb * (st.D / 2.0) / st.inertia()
	σa := math.Max(0, -a) * γn // pure axial part
	σb := b * γn               // bending part
	σh := math.Max(0, -st.HoopStress()) * γn
	τ := math.Abs(st.ShearStress()) * γn
	if σa == 0 && σb == 0 && σh == 0 && τ == 0 {
		return 0
	}

	// equivalent design stress
	σax := σa + σb
	σj := math.Sqrt(σax*σax - σax*σh + σh*σh + 3.0*τ*τ)

	// elastic buckling strengths fE = C·π²E/(12(1-ν²))·(t/l)²
	r := (st.D - st.T) / 2.0
	t, l := st.T, st.L
	ν := o.Nu
	Z := l * l / (r * t) * math.Sqrt(1.0-ν*ν)
	fE := func(ψ, ξ, ρ float64) float64 {
		C := ψ * math.Sqrt(1.0+math.Pow(ρ*ξ/ψ, 2))
		return C * math.Pi * math.Pi * mat.E / (12.0 * (1.0 - ν*ν)) * math.Pow(t/l, 2)
	}
	fEa := fE(1.0, 0.702*Z, 0.5*math.Pow(1.0+r/(150.0*t), -0.5))
	fEb := fE(1.0, 0.702*Z, 0.5*math.Pow(1.0+r/(300.0*t), -0.5))
	fEh := fE(4.0, 1.04*math.Sqrt(Z), 0.6)
	fEτ := fE(5.34, 0.856*math.Pow(Z, 0.75), 0.6)

	// combined reduced slenderness and characteristic strength
	λs2 := mat.Fy / σj * (σa/fEa + σb/fEb + σh/fEh + τ/fEτ)
	fks := mat.Fy / math.Sqrt(1.0+λs2*λs2)
	return σj * γb / fks
}
