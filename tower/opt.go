// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tower

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// The design vector stacks the control-point diameters and wall
// thicknesses: x = [d0 .. dn-1, t0 .. tn-1]. The control-point elevations
// are fixed.

// Ndim returns the number of design variables
func (o *Analysis) Ndim() int { return 2 * len(o.T.Geometry.Z) }

// DesignVars returns the current design vector
func (o *Analysis) DesignVars() (x []float64) {
	x = append(x, o.T.Geometry.D...)
	x = append(x, o.T.Geometry.T...)
	return
}

// Bounds returns the lower and upper bounds of the design variables
func (o *Analysis) Bounds() (xlo, xhi []float64) {
	g := o.T.Geometry
	n := len(g.Z)
	xlo = make([]float64, 2*n)
	xhi = make([]float64, 2*n)
	for i := 0; i < n; i++ {
		xlo[i], xhi[i] = g.Dmin, g.Dmax
		xlo[n+i], xhi[n+i] = g.Tmin, g.Tmax
	}
	return
}

// SetDesignVars writes a design vector back into the geometry and rebuilds
// the sections and the structural model
func (o *Analysis) SetDesignVars(x []float64) (err error) {
	g := &o.T.Geometry
	n := len(g.Z)
	if len(x) != 2*n {
		chk.Panic("design vector has %d entries but %d are required", len(x), 2*n)
	}
	copy(g.D, x[:n])
	copy(g.T, x[n:])
	return o.rebuild()
}

// Eval evaluates one design: the objective (tower mass) and the
// normalized constraint vector (negative entries are feasible)
func (o *Analysis) Eval(x []float64) (mass float64, cons []float64, err error) {
	if err = o.SetDesignVars(x); err != nil {
		return
	}
	res, err := o.Run()
	if err != nil {
		return
	}
	return res.Mass, o.constraints(res), nil
}

// constraints assembles the normalized constraint vector from the
// aggregated utilizations and the manufacturability limits
func (o *Analysis) constraints(res *Results) (cons []float64) {
	pol, ρ := o.T.Data.Aggregation, o.T.Data.KSrho
	cons = append(cons, res.StressUtil(pol, ρ)-1.0)
	cons = append(cons, res.ShellUtil(pol, ρ)-1.0)
	cons = append(cons, res.GlobalUtil(pol, ρ)-1.0)
	if res.Fatigue != nil {
		cons = append(cons, res.FatigueUtil(pol, ρ)-1.0)
	}
	g := o.T.Geometry
	if g.MinDt > 0 {
		cons = append(cons, 1.0-res.MinDt/g.MinDt)
	}
	if g.MaxTaper > 0 {
		cons = append(cons, res.MaxTaper/g.MaxTaper-1.0)
	}
	return
}

// Ncon returns the length of the constraint vector of the current design
func (o *Analysis) Ncon() int {
	n := 3
	if o.fat != nil {
		n++
	}
	if o.T.Geometry.MinDt > 0 {
		n++
	}
	if o.T.Geometry.MaxTaper > 0 {
		n++
	}
	return n
}

// ObjGrad computes the gradient of the mass objective by central finite
// differences with step h
func (o *Analysis) ObjGrad(x []float64, h float64) (grad []float64, err error) {
	xcpy := make([]float64, len(x))
	copy(xcpy, x)
	grad = make([]float64, len(x))
	for i := range x {
		var evalErr error
		d, derr := num.DerivCentral(func(xi float64, args ...interface{}) float64 {
			xcpy[i] = xi
			m, _, e := o.Eval(xcpy)
			if e != nil {
				evalErr = e
			}
			return m
		}, x[i], h)
		xcpy[i] = x[i]
		if evalErr != nil {
			return nil, evalErr
		}
		if derr != nil {
			return nil, derr
		}
		grad[i] = d
	}
	// leave the analysis at the unperturbed design
	if e := o.SetDesignVars(x); e != nil {
		return nil, e
	}
	return
}

// ConJacobian computes the Jacobian of the constraint vector by central
// finite differences with step h: J[k][i] = ∂conₖ/∂xᵢ
func (o *Analysis) ConJacobian(x []float64, h float64) (jac [][]float64, err error) {
	ncon := o.Ncon()
	jac = make([][]float64, ncon)
	for k := range jac {
		jac[k] = make([]float64, len(x))
	}
	xcpy := make([]float64, len(x))
	copy(xcpy, x)
	for i := range x {
		xcpy[i] = x[i] + h
		_, chi, e := o.Eval(xcpy)
		if e != nil {
			return nil, e
		}
		xcpy[i] = x[i] - h
		_, clo, e := o.Eval(xcpy)
		if e != nil {
			return nil, e
		}
		xcpy[i] = x[i]
		for k := 0; k < ncon; k++ {
			jac[k][i] = (chi[k] - clo[k]) / (2.0 * h)
		}
	}
	if e := o.SetDesignVars(x); e != nil {
		return nil, e
	}
	return
}
