// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Refine interpolates the control points onto a refined discretization with
// ndiv elements per control segment and computes all derived properties.
// Interpolation is piecewise linear in both diameter and thickness.
func Refine(cp ControlPoints, mat Material, ndiv int) (o *Sections, err error) {

	// check
	if err = cp.Validate(); err != nil {
		return
	}
	if ndiv < 1 {
		ndiv = 1
	}

	// interpolate nodal geometry
	o = new(Sections)
	o.Mat = mat
	nseg := len(cp.Z) - 1
	nnod := nseg*ndiv + 1
	o.Z = make([]float64, 0, nnod)
	o.D = make([]float64, 0, nnod)
	o.Tw = make([]float64, 0, nnod)
	for i := 0; i < nseg; i++ {
		zz := utl.LinSpace(cp.Z[i], cp.Z[i+1], ndiv+1)
		dd := utl.LinSpace(cp.D[i], cp.D[i+1], ndiv+1)
		tt := utl.LinSpace(cp.T[i], cp.T[i+1], ndiv+1)
		last := ndiv
		if i == nseg-1 {
			last = ndiv + 1 // include the tower top node once
		}
		o.Z = append(o.Z, zz[:last]...)
		o.D = append(o.D, dd[:last]...)
		o.Tw = append(o.Tw, tt[:last]...)
	}

	// derived properties
	o.calcProps()
	return
}

// calcProps computes per-element section and mass properties. Stiffness
// properties use the tube section at the average diameter and thickness;
// volume and centroid use the exact conical frustum shell.
func (o *Sections) calcProps() {
	nele := o.Nele()
	o.L = make([]float64, nele)
	o.Area = make([]float64, nele)
	o.Iyy = make([]float64, nele)
	o.Jtt = make([]float64, nele)
	o.Vol = make([]float64, nele)
	o.Mass = make([]float64, nele)
	o.Zcm = make([]float64, nele)
	for i := 0; i < nele; i++ {

		// average tube section
		l := o.Z[i+1] - o.Z[i]
		d := 0.5 * (o.D[i] + o.D[i+1])
		t := 0.5 * (o.Tw[i] + o.Tw[i+1])
		ro := d / 2.0
		ri := ro - t
		o.L[i] = l
		o.Area[i] = math.Pi * (ro*ro - ri*ri)
		o.Iyy[i] = math.Pi / 4.0 * (math.Pow(ro, 4) - math.Pow(ri, 4))
		o.Jtt[i] = 2.0 * o.Iyy[i]

		// exact frustum shell volume and centroid
		ro1, ro2 := o.D[i]/2.0, o.D[i+1]/2.0
		ri1, ri2 := ro1-o.Tw[i], ro2-o.Tw[i+1]
		vo := math.Pi / 3.0 * l * (ro1*ro1 + ro1*ro2 + ro2*ro2)
		vi := math.Pi / 3.0 * l * (ri1*ri1 + ri1*ri2 + ri2*ri2)
		co := frustumCentroid(ro1, ro2, l)
		ci := frustumCentroid(ri1, ri2, l)
		o.Vol[i] = vo - vi
		o.Mass[i] = o.Mat.Rho * o.Vol[i]
		o.Zcm[i] = o.Z[i] + (vo*co-vi*ci)/(vo-vi)
	}
}

// frustumCentroid returns the centroid height (from the base) of a solid
// conical frustum with base radius r1, top radius r2 and height l
func frustumCentroid(r1, r2, l float64) float64 {
	return l / 4.0 * (r1*r1 + 2.0*r1*r2 + 3.0*r2*r2) / (r1*r1 + r1*r2 + r2*r2)
}
