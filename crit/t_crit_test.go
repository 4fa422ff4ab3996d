// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/towerse/sec"
)

var testMat = sec.Material{Rho: 7850.0, E: 210e9, G: 80.8e9, Fy: 345e6}

// towerState returns a representative loaded wall section
func towerState() State {
	return State{
		D:  6.0,
		T:  0.027,
		L:  8.76,
		Fz: -4.3e6,
		Mb: 1.1e8,
		Vs: 1.3e6,
		Tq: 3.5e5,
	}
}

func Test_stress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress01. wall stresses")

	st := towerState()
	ro := 3.0
	ri := ro - 0.027
	area := math.Pi * (ro*ro - ri*ri)
	inertia := math.Pi / 4.0 * (math.Pow(ro, 4) - math.Pow(ri, 4))

	// pure axial: no bending term
	pure := State{D: 6.0, T: 0.027, Fz: -4.3e6}
	chk.Scalar(tst, "axial", 1e-8, pure.AxialStress(), -4.3e6/area)

	// bending adds compression at the worst fiber
	chk.Scalar(tst, "axial+bending", 1e-6, st.AxialStress(), -4.3e6/area-1.1e8*ro/inertia)

	// hoop stress from dynamic pressure is compressive
	hp := State{D: 6.0, T: 0.027, Qdyn: 2000.0}
	chk.Scalar(tst, "hoop", 1e-10, hp.HoopStress(), -2000.0*6.0/(2.0*0.027))

	// zero load means zero utilization
	zero := State{D: 6.0, T: 0.027, L: 8.76}
	chk.Scalar(tst, "vm @ zero", 1e-15, VonMises(zero, testMat, 1.1, 1.0), 0)

	// safety factors scale the utilization linearly
	u1 := VonMises(st, testMat, 1.0, 1.0)
	u2 := VonMises(st, testMat, 1.3, 1.0)
	chk.Scalar(tst, "vm safety scaling", 1e-13, u2, 1.3*u1)
	io.Pforan("vm utilization = %v\n", u1)
	if u1 <= 0 {
		tst.Errorf("loaded section must have positive utilization")
		return
	}
}

func Test_shell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell01. shell buckling methods")

	st := towerState()
	for _, name := range []string{"eurocode", "dnv"} {
		meth, err := NewShellBuckling(name)
		if err != nil {
			tst.Errorf("cannot allocate %q: %v\n", name, err)
			return
		}

		// zero load gives zero utilization
		zero := State{D: 6.0, T: 0.027, L: 8.76}
		chk.Scalar(tst, io.Sf("%s @ zero", name), 1e-15, meth.Util(zero, testMat, 1.1, 1.0), 0)

		// a loaded section has positive utilization, growing with load
		u1 := meth.Util(st, testMat, 1.1, 1.0)
		st2 := st
		st2.Mb *= 2
		u2 := meth.Util(st2, testMat, 1.1, 1.0)
		io.Pf("%-8s u=%.5f u(2M)=%.5f\n", name, u1, u2)
		if u1 <= 0 || u2 <= u1 {
			tst.Errorf("%s: utilization must grow with bending: %g -> %g", name, u1, u2)
			return
		}

		// thinner wall is closer to buckling
		thin := st
		thin.T = 0.015
		if meth.Util(thin, testMat, 1.1, 1.0) <= u1 {
			tst.Errorf("%s: thinner wall must have larger utilization", name)
			return
		}
	}

	if _, err := NewShellBuckling("unknown"); err == nil {
		tst.Errorf("unknown method must fail")
		return
	}
}

func Test_shell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell02. buckling reduction factor")

	// stocky shells keep the full strength
	chk.Scalar(tst, "χ @ λ=0.1", 1e-15, buckRed(0.1, 0.62), 1.0)
	chk.Scalar(tst, "χ @ λ=0.2", 1e-15, buckRed(0.2, 0.62), 1.0)

	// slender shells follow the elastic branch
	chk.Scalar(tst, "χ @ λ=3", 1e-15, buckRed(3.0, 0.62), 0.62/9.0)

	// the factor decreases monotonically in between
	prev := 1.0
	for λ := 0.2; λ < 3.0; λ += 0.05 {
		χ := buckRed(λ, 0.62)
		if χ > prev+1e-12 {
			tst.Errorf("χ must not increase with slenderness: χ(%g)=%g prev=%g", λ, χ, prev)
			return
		}
		prev = χ
	}
}

func Test_global01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("global01. global buckling methods")

	st := towerState()
	kl := 2.0 * 87.6
	for _, name := range []string{"eurocode", "gl"} {
		meth, err := NewGlobalBuckling(name)
		if err != nil {
			tst.Errorf("cannot allocate %q: %v\n", name, err)
			return
		}

		// zero load gives zero utilization
		zero := State{D: 6.0, T: 0.027, L: 8.76}
		chk.Scalar(tst, io.Sf("%s @ zero", name), 1e-15, meth.Util(zero, testMat, kl, 1.1, 1.0), 0)

		// longer effective length increases the utilization under the same load
		u1 := meth.Util(st, testMat, kl, 1.1, 1.0)
		u2 := meth.Util(st, testMat, 2.0*kl, 1.1, 1.0)
		io.Pf("%-8s u(kl)=%.5f u(2kl)=%.5f\n", name, u1, u2)
		if u1 <= 0 || u2 <= u1 {
			tst.Errorf("%s: utilization must grow with effective length: %g -> %g", name, u1, u2)
			return
		}

		// the utilization grows monotonically with the axial load and stays
		// finite even past the critical load (the row matters to finite
		// difference gradients probing infeasible designs)
		prev := 0.0
		for _, scale := range []float64{1, 10, 40, 100, 400} {
			su := st
			su.Fz = st.Fz * scale
			u := meth.Util(su, testMat, kl, 1.1, 1.0)
			if math.IsInf(u, 0) || math.IsNaN(u) {
				tst.Errorf("%s: utilization must stay finite: u(%g)=%g", name, scale, u)
				return
			}
			if u < prev {
				tst.Errorf("%s: utilization must not decrease with axial load: u(%g)=%g < %g", name, scale, u, prev)
				return
			}
			prev = u
		}
	}
}

func Test_fatigue01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fatigue01. damage-equivalent load model")

	model, err := NewFatigue("del", fun.Prms{
		&fun.Prm{N: "m", V: 3.0},
		&fun.Prm{N: "A", V: 1.46e30},
		&fun.Prm{N: "Neq", V: 1e7},
	})
	if err != nil {
		tst.Errorf("cannot allocate model: %v\n", err)
		return
	}

	// no stress range means no damage
	chk.Scalar(tst, "damage @ 0", 1e-15, model.Damage(0), 0)

	// direct Miner evaluation
	Δσ := 50e6
	nfail := 1.46e30 * math.Pow(Δσ, -3.0)
	chk.Scalar(tst, "damage", 1e-12, model.Damage(Δσ), 1e7/nfail)

	// damage grows with the m-th power of the range
	d1 := model.Damage(Δσ)
	d2 := model.Damage(2.0 * Δσ)
	chk.Scalar(tst, "power scaling", 1e-10*d2, d2, 8.0*d1)
}

func Test_fatigue02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fatigue02. weibull spectrum model")

	model, err := NewFatigue("weibull", fun.Prms{
		&fun.Prm{N: "m", V: 3.0},
		&fun.Prm{N: "A", V: 1.46e30},
		&fun.Prm{N: "Nlife", V: 1e9},
		&fun.Prm{N: "k", V: 0.8},
		&fun.Prm{N: "nbins", V: 60},
	})
	if err != nil {
		tst.Errorf("cannot allocate model: %v\n", err)
		return
	}

	// no stress range means no damage
	chk.Scalar(tst, "damage @ 0", 1e-15, model.Damage(0), 0)

	// damage is positive and strictly increasing in the maximum range
	d1 := model.Damage(40e6)
	d2 := model.Damage(80e6)
	io.Pforan("d(40MPa)=%v d(80MPa)=%v\n", d1, d2)
	if d1 <= 0 || d2 <= d1 {
		tst.Errorf("damage must increase with the stress range: %g -> %g", d1, d2)
		return
	}

	// the spectrum damage stays below the constant-amplitude damage at the
	// same maximum range over the whole life
	sn := SNCurve{M: 3.0, A: 1.46e30}
	dconst := 1e9 / sn.Cycles(40e6)
	if d1 >= dconst {
		tst.Errorf("spectrum damage must be below constant-amplitude damage: %g >= %g", d1, dconst)
		return
	}
}

func Test_smooth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("smooth01. aggregation")

	vals := []float64{0.31, 0.74, 0.52, 0.11}

	// plain maximum
	chk.Scalar(tst, "max", 1e-15, Max(vals...), 0.74)
	chk.Scalar(tst, "agg max", 1e-15, Aggregate("max", 0, vals...), 0.74)
	chk.Scalar(tst, "agg default", 1e-15, Aggregate("", 0, vals...), 0.74)

	// KS is a conservative upper bound that tightens with ρ
	ks1 := KS(20, vals...)
	ks2 := KS(200, vals...)
	io.Pf("ks(20)=%.6f ks(200)=%.6f\n", ks1, ks2)
	if ks1 < 0.74 || ks2 < 0.74 {
		tst.Errorf("KS must bound the maximum from above: %g %g", ks1, ks2)
		return
	}
	if ks2 >= ks1 {
		tst.Errorf("larger ρ must tighten the bound: %g -> %g", ks1, ks2)
		return
	}
	chk.Scalar(tst, "ks(200)", 1e-3, ks2, 0.74)

	// a single value aggregates to itself
	chk.Scalar(tst, "ks single", 1e-12, KS(50, 0.5), 0.5)
}
