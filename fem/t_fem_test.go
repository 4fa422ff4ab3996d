// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/towerse/ana"
	"github.com/cpmech/towerse/sec"
)

var testMat = sec.Material{Rho: 7850.0, E: 210e9, G: 80.8e9, Fy: 345e6}

// uniformTube builds a uniform cantilever tube model
func uniformTube(d, t, l float64, ndiv int) (*sec.Sections, *Model) {
	cp := sec.ControlPoints{
		Z: []float64{0, l},
		D: []float64{d, d},
		T: []float64{t, t},
	}
	s, err := sec.Refine(cp, testMat, ndiv)
	if err != nil {
		chk.Panic("cannot refine test sections: %v", err)
	}
	return s, NewModel(s)
}

func testSolution(tst *testing.T, m *Model, lo *Loads) *Solution {
	solver, err := NewSolver("dense")
	if err != nil {
		tst.Errorf("cannot allocate solver: %v\n", err)
		return nil
	}
	sol, err := solver.Static(m, lo)
	if err != nil {
		tst.Errorf("static solve failed: %v\n", err)
		return nil
	}
	return sol
}

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. cantilever with tip load")

	var cmp ana.CantileverTube
	cmp.Init(fun.Prms{
		&fun.Prm{N: "d", V: 1.0},
		&fun.Prm{N: "t", V: 0.02},
		&fun.Prm{N: "L", V: 10.0},
	})

	s, m := uniformTube(1.0, 0.02, 10.0, 8)
	P := 1e5
	lo := NewLoads(s.Nnod())
	lo.Nodal[s.Nnod()-1][0] = P

	sol := testSolution(tst, m, lo)
	if sol == nil {
		return
	}

	// Euler-Bernoulli elements are nodally exact for point loads
	chk.Scalar(tst, "tip deflection", 1e-10, sol.TopDeflection(), cmp.TipDeflection(P, 0))
	cmp.CheckDeflection(tst, P, 0, sol.TopDeflection(), 1e-10)

	// per-node displacement access: lateral tip motion with the matching
	// rotation, no axial or out-of-plane components
	ut := sol.NodeDisp(s.Nnod() - 1)
	chk.Scalar(tst, "tip ux", 1e-15, ut[0], sol.U[6*(s.Nnod()-1)])
	chk.Scalar(tst, "tip rot", 1e-10, math.Abs(ut[4]), cmp.TipRotation(P, 0))
	chk.Scalar(tst, "tip uy", 1e-12, ut[1], 0)
	chk.Scalar(tst, "tip uz", 1e-12, ut[2], 0)
	if chk.Verbose {
		sol.PrintForces()
	}

	// base bending moment and shear
	chk.Scalar(tst, "base moment", 1.0, sol.Fint[0].M2[0], cmp.BaseMoment(P, 0))
	chk.Scalar(tst, "base shear", 0.1, sol.Fint[0].V1[0], P)

	// the bending moment vanishes at the tip
	last := len(sol.Fint) - 1
	chk.Scalar(tst, "tip moment", 1.0, sol.Fint[last].M2[1], 0)

	// base reactions balance the applied load
	chk.Scalar(tst, "reaction Fx", 0.1, sol.R[0], -P)
	chk.Scalar(tst, "reaction My", 1.0, math.Abs(sol.R[4]), P*10.0)
}

func Test_static02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static02. cantilever with tip moment")

	var cmp ana.CantileverTube
	cmp.Init(fun.Prms{
		&fun.Prm{N: "d", V: 1.0},
		&fun.Prm{N: "t", V: 0.02},
		&fun.Prm{N: "L", V: 10.0},
	})

	s, m := uniformTube(1.0, 0.02, 10.0, 5)
	M := 2e6
	lo := NewLoads(s.Nnod())
	lo.Nodal[s.Nnod()-1][4] = M // moment about y bends the tower along x

	sol := testSolution(tst, m, lo)
	if sol == nil {
		return
	}
	chk.Scalar(tst, "tip deflection", 1e-10, sol.TopDeflection(), math.Abs(cmp.TipDeflection(0, M)))

	// the moment is constant along the member
	for i, ef := range sol.Fint {
		for k := 0; k < 2; k++ {
			chk.Scalar(tst, io.Sf("moment ele %d end %d", i, k), 2.0, math.Abs(ef.M2[k]), M)
		}
	}
}

func Test_static03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static03. self-weight only")

	s, m := uniformTube(1.0, 0.02, 10.0, 6)
	g := 9.80665
	lo := NewLoads(s.Nnod())
	for e := 0; e < s.Nele(); e++ {
		lo.Wz[e] = -g * s.Mass[e] / s.L[e]
	}

	sol := testSolution(tst, m, lo)
	if sol == nil {
		return
	}

	// no lateral load means no lateral deflection and no bending
	chk.Scalar(tst, "top deflection", 1e-14, sol.TopDeflection(), 0)
	for i, ef := range sol.Fint {
		chk.Scalar(tst, io.Sf("moment ele %d", i), 1e-9, ef.M2[0], 0)
	}

	// axial force: full weight in compression at the base, zero at the top
	W := g * s.TotalMass()
	chk.Scalar(tst, "N at base", 1e-7, sol.Fint[0].N[0], -W)
	chk.Scalar(tst, "N at top", 1e-7, sol.Fint[s.Nele()-1].N[1], 0)

	// vertical reaction carries the full weight
	chk.Scalar(tst, "reaction Fz", 1e-7, sol.R[2], W)
}

func Test_static04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static04. stiff springs approach the rigid base")

	s, m := uniformTube(1.0, 0.02, 10.0, 6)
	P := 1e5
	lo := NewLoads(s.Nnod())
	lo.Nodal[s.Nnod()-1][0] = P

	rigid := testSolution(tst, m, lo)
	if rigid == nil {
		return
	}

	// very stiff springs must reproduce the rigid answer
	sp, msp := uniformTube(1.0, 0.02, 10.0, 6)
	var none [6]bool
	msp.SetBase(none, [6]float64{1e16, 1e16, 1e16, 1e18, 1e18, 1e18})
	soft := testSolution(tst, msp, lo)
	if soft == nil {
		return
	}
	chk.IntAssert(sp.Nnod(), s.Nnod())
	chk.Scalar(tst, "tip deflection", 1e-8, soft.TopDeflection(), rigid.TopDeflection())

	// spring reactions still balance the applied load
	chk.Scalar(tst, "reaction Fx", 1.0, soft.R[0], -P)
}

func Test_modal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal01. cantilever bending frequency")

	var cmp ana.CantileverTube
	cmp.Init(fun.Prms{
		&fun.Prm{N: "d", V: 1.0},
		&fun.Prm{N: "t", V: 0.02},
		&fun.Prm{N: "L", V: 30.0},
	})
	fana := cmp.Frequency(1)

	solver, err := NewSolver("dense")
	if err != nil {
		tst.Errorf("cannot allocate solver: %v\n", err)
		return
	}

	// frequency converges with refinement
	errPrev := math.Inf(1)
	for _, ndiv := range []int{5, 10, 20} {
		_, m := uniformTube(1.0, 0.02, 30.0, ndiv)
		mo, err := solver.Modal(m, 2)
		if err != nil {
			tst.Errorf("modal solve failed: %v\n", err)
			return
		}
		e := math.Abs(mo.Freqs[0]-fana) / fana
		io.Pf("ndiv=%2d f1=%.6f fana=%.6f err=%.2e\n", ndiv, mo.Freqs[0], fana, e)
		if e > errPrev*1.01 {
			tst.Errorf("frequency must converge with refinement: err %g after %g", e, errPrev)
			return
		}
		errPrev = e

		// the two lateral bending directions are degenerate
		chk.Scalar(tst, "degenerate pair", 1e-8*mo.Freqs[0], mo.Freqs[1], mo.Freqs[0])
	}
	if errPrev > 0.01 {
		tst.Errorf("frequency error too large after refinement: %g", errPrev)
		return
	}
}

func Test_modal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal02. tip mass lowers the frequency")

	var cmp ana.CantileverTube
	cmp.Init(fun.Prms{
		&fun.Prm{N: "d", V: 1.0},
		&fun.Prm{N: "t", V: 0.02},
		&fun.Prm{N: "L", V: 30.0},
	})

	solver, err := NewSolver("dense")
	if err != nil {
		tst.Errorf("cannot allocate solver: %v\n", err)
		return
	}

	s, m := uniformTube(1.0, 0.02, 30.0, 15)
	tip := 20e3 // about four times the beam mass
	m.AddPointMass(s.Nnod()-1, tip, 0, 0, 0)

	mo, err := solver.Modal(m, 1)
	if err != nil {
		tst.Errorf("modal solve failed: %v\n", err)
		return
	}

	// single-DOF approximation with the generalized beam mass
	fapp := cmp.FrequencyWithTipMass(tip)
	e := math.Abs(mo.Freqs[0]-fapp) / fapp
	io.Pforan("f1=%.6f approx=%.6f err=%.2e\n", mo.Freqs[0], fapp, e)
	if e > 0.02 {
		tst.Errorf("tip mass frequency off the single-DOF approximation: err=%g", e)
		return
	}
	if mo.Freqs[0] >= cmp.Frequency(1) {
		tst.Errorf("tip mass must lower the first frequency")
		return
	}
}

func Test_modal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal03. free-free structure is rejected")

	_, m := uniformTube(1.0, 0.02, 10.0, 4)
	var none [6]bool
	m.SetBase(none, [6]float64{}) // zero springs leave rigid-body modes

	solver, err := NewSolver("dense")
	if err != nil {
		tst.Errorf("cannot allocate solver: %v\n", err)
		return
	}
	_, err = solver.Modal(m, 2)
	io.Pforan("error: %v\n", err)
	if err == nil {
		tst.Errorf("unconstrained structure must be rejected")
		return
	}

	// the static solve must reject it too
	_, err = solver.Static(m, NewLoads(len(m.Nodes)))
	if err == nil {
		tst.Errorf("unconstrained structure must be rejected by the static solve")
		return
	}

	// a single unsupported base DOF is enough to leave a rigid-body mode
	var springs [6]float64
	for j := 0; j < 6; j++ {
		springs[j] = 1e9
	}
	springs[4] = 0 // free rocking about y
	m.SetBase(none, springs)
	_, err = solver.Modal(m, 2)
	io.Pforan("error: %v\n", err)
	if err == nil {
		tst.Errorf("free rocking DOF must be rejected")
		return
	}
}
