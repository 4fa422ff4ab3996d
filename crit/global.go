// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/towerse/sec"
)

// GlobalBuckling computes the column-type buckling utilization of the
// tower under combined axial and bending load. The effective buckling
// length kl reflects the support condition of the whole tower (2·height
// for a cantilever).
type GlobalBuckling interface {
	Util(st State, mat sec.Material, kl, γb, γn float64) float64
}

// globalmethods holds all available global-buckling formulations
var globalmethods = make(map[string]func() GlobalBuckling)

// NewGlobalBuckling returns a global-buckling method by name; e.g.
// "eurocode", "gl"
func NewGlobalBuckling(name string) (GlobalBuckling, error) {
	if alloc, ok := globalmethods[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("crit: cannot find global-buckling method named %q", name)
}

// add methods to factory
func init() {
	globalmethods["eurocode"] = func() GlobalBuckling { return &ECGlobal{Alpha: 0.21} }
	globalmethods["gl"] = func() GlobalBuckling { return &GLGlobal{Alpha: 0.21} }
}

// ECGlobal implements the EN 1993-1-1 §6.3 member buckling check with the
// χ reduction factor and a second-order amplified bending term
type ECGlobal struct {
	Alpha float64 // imperfection factor (0.21 = curve a, welded tubes)
}

// Util returns the global-buckling utilization
func (o *ECGlobal) Util(st State, mat sec.Material, kl, γb, γn float64) float64 {
	area := st.area()
	inertia := st.inertia()
	w := inertia / (st.D / 2.0) // elastic section modulus

	nEd := math.Max(0, -st.Fz) * γn
	mEd := st.Mb * γn

	// slenderness and reduction factor
	ncr := math.Pi * math.Pi * mat.E * inertia / (kl * kl)
	λ := math.Sqrt(area * mat.Fy / ncr)
	φ := 0.5 * (1.0 + o.Alpha*(λ-0.2) + λ*λ)
	χ := 1.0 / (φ + math.Sqrt(φ*φ-λ*λ))
	if χ > 1 {
		χ = 1
	}

	// interaction with second-order amplification of the bending term; the
	// load ratio is capped so the utilization stays finite and continuous
	// through the (deeply infeasible) region nEd >= ncr
	ratio := nEd / ncr
	if ratio > 0.99 {
		ratio = 0.99
	}
	amp := 1.0 / (1.0 - ratio)
	return γb*nEd/(χ*area*mat.Fy) + γb*amp*mEd/(w*mat.Fy)
}

// GLGlobal implements a GL-2010 style tubular tower buckling check: axial
// utilization magnified by the κ reduction and a slenderness-dependent
// second-order coefficient, plus the bending utilization
type GLGlobal struct {
	Alpha float64 // imperfection factor
}

// Util returns the global-buckling utilization
func (o *GLGlobal) Util(st State, mat sec.Material, kl, γb, γn float64) float64 {
	area := st.area()
	inertia := st.inertia()
	w := inertia / (st.D / 2.0)

	σa := math.Max(0, -st.Fz) / area * γn
	σb := st.Mb / w * γn
	fyd := mat.Fy / γb

	// reduced slenderness
	i := math.Sqrt(inertia / area) // radius of gyration
	σE := math.Pi * math.Pi * mat.E / math.Pow(kl/i, 2)
	λ := math.Sqrt(mat.Fy / σE)

	// κ reduction (same column curve machinery as EC3)
	κ := 1.0
	if λ > 0.2 {
		k := 0.5 * (1.0 + o.Alpha*(λ-0.2) + λ*λ)
		κ = 1.0 / (k + math.Sqrt(k*k-λ*λ))
	}

	// second-order coefficient
	Δn := 0.25 * κ * λ * λ
	return σa/fyd*(1.0/κ+Δn) + σb/fyd
}
