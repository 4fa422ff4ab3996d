// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/towerse/errs"
)

// Soil computes the equivalent 6-DOF spring stiffness of the foundation
// from elastic half-space theory, with embedment corrections. The stiffness
// acts as the boundary condition of the tower base node. Per-DOF rigid
// overrides replace the corresponding spring by a fixed constraint.
//
// DOF order: [ux, uy, uz, rx, ry, rz] (two horizontal, vertical, two
// rocking, torsion).
type Soil struct {

	// input
	G     float64 // soil shear modulus
	Nu    float64 // soil Poisson's coefficient
	R0    float64 // effective foundation radius
	Depth float64 // embedment depth
	Rigid [6]bool // per-DOF rigid condition
}

// Init initialises the model
func (o *Soil) Init(prms fun.Prms) (err error) {

	// default values
	o.Nu = 0.4

	// parameters
	for _, p := range prms {
		switch p.N {
		case "G":
			o.G = p.V
		case "nu":
			o.Nu = p.V
		case "r0":
			o.R0 = p.V
		case "depth":
			o.Depth = p.V
		}
	}

	// check
	if o.allRigid() {
		return
	}
	if o.G <= 0 {
		return errs.Domain("soil: shear modulus must be positive. G=%g is invalid", o.G)
	}
	if o.R0 <= 0 {
		return errs.Domain("soil: foundation radius must be positive. r0=%g is invalid", o.R0)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return errs.Domain("soil: Poisson's coefficient must be within [0, 0.5). nu=%g is invalid", o.Nu)
	}
	return
}

// Stiffness returns the diagonal of the equivalent spring matrix
//
//	kh = 32·(1-ν)·G·r / (7-8ν)       horizontal
//	kv = 4·G·r / (1-ν)               vertical
//	kr = 8·G·r³ / (3·(1-ν))          rocking
//	kt = 16·G·r³ / 3                 torsion
//
// multiplied by the classical embedment factors for depth h. Entries with a
// rigid override are returned as zero; the caller must constrain those DOFs.
func (o Soil) Stiffness() (k [6]float64) {
	if o.allRigid() {
		return
	}
	G, ν, r, h := o.G, o.Nu, o.R0, o.Depth
	r3 := r * r * r
	ηh := 1.0 + 0.55*(2.0-ν)*h/r
	ηv := 1.0 + 0.60*(1.0-ν)*h/r
	ηr := 1.0 + 1.20*(1.0-ν)*h/r + 0.2*(2.0-ν)*(h/r)*(h/r)*(h/r)
	kh := 32.0 * (1.0 - ν) * G * r / (7.0 - 8.0*ν) * ηh
	kv := 4.0 * G * r / (1.0 - ν) * ηv
	kr := 8.0 * G * r3 / (3.0 * (1.0 - ν)) * ηr
	kt := 16.0 * G * r3 / 3.0
	k = [6]float64{kh, kh, kv, kr, kr, kt}
	for i, rigid := range o.Rigid {
		if rigid {
			k[i] = 0
		}
	}
	return
}

// allRigid tells whether every DOF has a rigid override
func (o Soil) allRigid() bool {
	for _, r := range o.Rigid {
		if !r {
			return false
		}
	}
	return true
}

// RigidBase returns a soil condition with all DOFs rigidly constrained
func RigidBase() (o Soil) {
	for i := 0; i < 6; i++ {
		o.Rigid[i] = true
	}
	return
}
