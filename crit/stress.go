// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package crit implements the failure-criteria evaluators: von Mises
// stress, shell buckling, global buckling and fatigue damage. All
// evaluators are pure functions of section geometry, material and internal
// forces, returning a utilization value (≤ 1 is safe). Safety factors are
// inputs, never hardcoded.
package crit

import (
	"math"

	"github.com/cpmech/towerse/sec"
)

// State holds the geometry and internal forces at one evaluation location
// of the tower wall (one end of one refined section)
type State struct {
	D    float64 // outer diameter
	T    float64 // wall thickness
	L    float64 // section length
	Fz   float64 // axial force (tension positive)
	Mb   float64 // resultant bending moment
	Vs   float64 // resultant shear force
	Tq   float64 // torsion moment
	Qdyn float64 // dynamic pressure producing hoop stress
}

// section property helpers (thin tube at mid-thickness radius)

func (o State) area() float64 {
	ro := o.D / 2.0
	ri := ro - o.T
	return math.Pi * (ro*ro - ri*ri)
}

func (o State) inertia() float64 {
	ro := o.D / 2.0
	ri := ro - o.T
	return math.Pi / 4.0 * (math.Pow(ro, 4) - math.Pow(ri, 4))
}

// AxialStress returns the meridional stress at the outer fiber with the
// bending contribution added in the compressive sense (worst case)
func (o State) AxialStress() float64 {
	r := o.D / 2.0
	return o.Fz/o.area() - o.Mb*r/o.inertia()
}

// HoopStress returns the circumferential stress due to the external
// dynamic pressure (compressive, hence negative)
func (o State) HoopStress() float64 {
	return -o.Qdyn * o.D / (2.0 * o.T)
}

// ShearStress returns the maximum in-wall shear stress from transverse
// shear and torsion
func (o State) ShearStress() float64 {
	r := o.D / 2.0
	jp := 2.0 * o.inertia()
	return 2.0*o.Vs/o.area() + o.Tq*r/jp
}

// VonMises returns the von Mises stress utilization
//
//	U = γm·γn · σvm / fy
//
// with σvm combining meridional (axial+bending), hoop and shear stresses
func VonMises(st State, mat sec.Material, γm, γn float64) float64 {
	σz := st.AxialStress()
	σθ := st.HoopStress()
	τ := st.ShearStress()
	σvm := math.Sqrt(σz*σz - σz*σθ + σθ*σθ + 3.0*τ*τ)
	return γm * γn * σvm / mat.Fy
}
