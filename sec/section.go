// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec builds the discretized tower geometry from sparse design
// control points and computes cross-section and mass properties
package sec

import (
	"math"

	"github.com/cpmech/towerse/errs"
)

// Material holds isotropic material data of the tower wall
type Material struct {
	Rho float64 `json:"rho"` // density
	E   float64 `json:"E"`   // Young's modulus
	G   float64 `json:"G"`   // shear modulus
	Fy  float64 `json:"fy"`  // yield stress
}

// ControlPoints holds the sparse design parameters of the tapered tower:
// diameters and wall thicknesses at a small number of axial stations
type ControlPoints struct {
	Z []float64 // [np] axial positions (monotonically increasing)
	D []float64 // [np] outer diameters at Z
	T []float64 // [np] wall thicknesses at Z
}

// Validate checks the control points; returns a DomainError on the first
// violated invariant
func (o ControlPoints) Validate() (err error) {
	np := len(o.Z)
	if np < 2 {
		return errs.Domain("geometry: at least two control points are required. np=%d", np)
	}
	if len(o.D) != np || len(o.T) != np {
		return errs.Domain("geometry: control point arrays have mismatched lengths. nz=%d nd=%d nt=%d", np, len(o.D), len(o.T))
	}
	for i := 0; i < np; i++ {
		if o.D[i] <= 0 {
			return errs.Domain("geometry: diameter must be positive. d[%d]=%g", i, o.D[i])
		}
		if o.T[i] <= 0 {
			return errs.Domain("geometry: wall thickness must be positive. t[%d]=%g", i, o.T[i])
		}
		if o.T[i] >= o.D[i]/2.0 {
			return errs.Domain("geometry: wall thickness t[%d]=%g exceeds the radius d/2=%g", i, o.T[i], o.D[i]/2.0)
		}
		if i > 0 && o.Z[i] <= o.Z[i-1] {
			return errs.Domain("geometry: control points must be monotonically increasing in z. z[%d]=%g z[%d]=%g", i-1, o.Z[i-1], i, o.Z[i])
		}
	}
	return
}

// MinDt returns the smallest diameter-to-thickness ratio over the control
// points (manufacturability metric; rolling limits require d/t above a
// configured minimum)
func (o ControlPoints) MinDt() (min float64) {
	min = math.MaxFloat64
	for i := range o.Z {
		if r := o.D[i] / o.T[i]; r < min {
			min = r
		}
	}
	return
}

// MaxTaper returns the largest diameter taper slope |Δd/Δz| over the
// control segments
func (o ControlPoints) MaxTaper() (max float64) {
	for i := 1; i < len(o.Z); i++ {
		s := math.Abs(o.D[i]-o.D[i-1]) / (o.Z[i] - o.Z[i-1])
		if s > max {
			max = s
		}
	}
	return
}

// Sections holds the refined tower discretization: geometry interpolated at
// nnod nodes and derived properties per element (nele = nnod-1). Element i
// spans nodes i and i+1; node 0 is the tower base.
type Sections struct {

	// material
	Mat Material

	// nodal geometry
	Z  []float64 // [nnod] axial positions
	D  []float64 // [nnod] outer diameters
	Tw []float64 // [nnod] wall thicknesses

	// derived, per element (average-section tube properties)
	L    []float64 // [nele] lengths
	Area []float64 // [nele] cross-sectional areas
	Iyy  []float64 // [nele] second moments of area (axisymmetric: Iyy == Ixx)
	Jtt  []float64 // [nele] torsion constants (polar, thin tube)
	Vol  []float64 // [nele] frustum shell volumes (exact)
	Mass []float64 // [nele] masses
	Zcm  []float64 // [nele] centroid elevations
}

// Nnod returns the number of nodes
func (o *Sections) Nnod() int { return len(o.Z) }

// Nele returns the number of elements
func (o *Sections) Nele() int { return len(o.Z) - 1 }

// TotalMass returns the tower structural mass: the sum of the per-element
// frustum volumes times the material density
func (o *Sections) TotalMass() (m float64) {
	for _, mi := range o.Mass {
		m += mi
	}
	return
}

// CenterOfMass returns the elevation of the tower center of mass
func (o *Sections) CenterOfMass() (zcm float64) {
	var m float64
	for i := range o.Mass {
		m += o.Mass[i]
		zcm += o.Mass[i] * o.Zcm[i]
	}
	if m > 0 {
		zcm /= m
	}
	return
}

// Height returns the total tower height
func (o *Sections) Height() float64 {
	return o.Z[len(o.Z)-1] - o.Z[0]
}
