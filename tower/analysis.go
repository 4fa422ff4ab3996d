// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tower implements the full analysis pipeline: refine the sparse
// geometry into sections, assemble the structural model and the
// environmental loads, solve each load case, evaluate the failure criteria
// and aggregate the results for a gradient-based design loop.
package tower

import (
	"math"
	"sync"

	"github.com/cpmech/towerse/crit"
	"github.com/cpmech/towerse/env"
	"github.com/cpmech/towerse/fem"
	"github.com/cpmech/towerse/inp"
	"github.com/cpmech/towerse/sec"
)

// Analysis holds the persistent state of one tower design evaluation: the
// input data, the refined sections, the structural model and the configured
// criteria evaluators. The sections and the model are rebuilt whenever the
// design variables change; the evaluators are fixed.
type Analysis struct {

	// input
	T *inp.Tower

	// derived
	Sec   *sec.Sections
	Model *fem.Model

	// configured engines
	solver fem.Solver
	shell  map[string]crit.ShellBuckling
	global map[string]crit.GlobalBuckling
	fat    crit.FatigueModel
}

// NewAnalysis prepares an analysis from validated input data
func NewAnalysis(t *inp.Tower) (o *Analysis, err error) {
	o = new(Analysis)
	o.T = t

	// solver backend
	if o.solver, err = fem.NewSolver(t.Data.Solver); err != nil {
		return nil, err
	}

	// criteria evaluators
	o.shell = make(map[string]crit.ShellBuckling)
	for _, name := range t.Data.ShellMeths {
		if o.shell[name], err = crit.NewShellBuckling(name); err != nil {
			return nil, err
		}
	}
	o.global = make(map[string]crit.GlobalBuckling)
	for _, name := range t.Data.GlobalMeths {
		if o.global[name], err = crit.NewGlobalBuckling(name); err != nil {
			return nil, err
		}
	}
	if t.Fatigue != nil {
		if o.fat, err = crit.NewFatigue(t.Fatigue.Model, t.Fatigue.FatiguePrms()); err != nil {
			return nil, err
		}
	}

	// sections and structural model
	if err = o.rebuild(); err != nil {
		return nil, err
	}
	return
}

// rebuild refines the current geometry and reassembles the structural
// model: foundation springs at the base, rotor-nacelle mass at the top
func (o *Analysis) rebuild() (err error) {
	o.Sec, err = sec.Refine(o.T.ControlPoints(), o.T.Material, o.T.Data.Ndiv)
	if err != nil {
		return
	}
	o.Model = fem.NewModel(o.Sec)

	// base condition
	soil := env.Soil{Rigid: o.T.RigidFlags()}
	if err = soil.Init(o.T.SoilPrms()); err != nil {
		return
	}
	o.Model.SetBase(soil.Rigid, soil.Stiffness())

	// rotor-nacelle assembly
	top := o.Sec.Nnod() - 1
	o.Model.AddPointMass(top, o.T.RNA.Mass, o.T.RNA.Ixx, o.T.RNA.Iyy, o.T.RNA.Izz)
	return
}

// Run evaluates the current design: mass properties, natural frequencies,
// all load cases and the fatigue damage distribution. Load cases are
// independent and solved concurrently.
func (o *Analysis) Run() (res *Results, err error) {

	// mass properties and manufacturability measures
	res = new(Results)
	res.Key = o.T.Key
	res.Mass = o.Sec.TotalMass()
	res.Zcm = o.Sec.CenterOfMass()
	res.Height = o.Sec.Height()
	cp := o.T.ControlPoints()
	res.MinDt = cp.MinDt()
	res.MaxTaper = cp.MaxTaper()

	// natural frequencies
	mo, err := o.solver.Modal(o.Model, o.T.Data.Nmodes)
	if err != nil {
		return nil, err
	}
	res.Freqs = mo.Freqs
	res.Shapes = mo.Shapes

	// load cases; each goroutine writes only its own slot
	ncases := len(o.T.Cases)
	res.Cases = make([]*CaseResult, ncases)
	cerrs := make([]error, ncases)
	var wg sync.WaitGroup
	for i, c := range o.T.Cases {
		wg.Add(1)
		go func(i int, c *inp.CaseData) {
			defer wg.Done()
			res.Cases[i], cerrs[i] = o.runCase(c)
		}(i, c)
	}
	wg.Wait()
	for _, e := range cerrs {
		if e != nil {
			return nil, e
		}
	}

	// fatigue damage
	if o.fat != nil {
		res.Fatigue = o.fatigueDamage()
	}
	return
}

// runCase evaluates one load case: environment models, load assembly,
// static solve and failure criteria at both ends of every section
func (o *Analysis) runCase(c *inp.CaseData) (cr *CaseResult, err error) {

	// environment and loads
	m, err := buildModels(o.T, c)
	if err != nil {
		return
	}
	lo, qdyn, err := assembleLoads(o.T, c, o.Sec, m)
	if err != nil {
		return
	}

	// solve
	sol, err := o.solver.Static(o.Model, lo)
	if err != nil {
		return
	}

	// criteria at both ends of each section
	γ := o.T.Safety
	kl := o.T.Data.BuckLenFac * o.Sec.Height()
	nele := o.Sec.Nele()
	cr = new(CaseResult)
	cr.Desc = c.Desc
	cr.TopDefl = sol.TopDeflection()
	cr.Reactions = sol.R
	cr.Sol = sol
	cr.Stress = make([]float64, 2*nele)
	cr.Shell = make(map[string][]float64)
	cr.Global = make(map[string][]float64)
	for name := range o.shell {
		cr.Shell[name] = make([]float64, 2*nele)
	}
	for name := range o.global {
		cr.Global[name] = make([]float64, 2*nele)
	}
	for e := 0; e < nele; e++ {
		ef := sol.Fint[e]
		for k := 0; k < 2; k++ {
			n := e + k
			st := crit.State{
				D:    o.Sec.D[n],
				T:    o.Sec.Tw[n],
				L:    o.Sec.L[e],
				Fz:   ef.N[k],
				Mb:   resultant(ef.M1[k], ef.M2[k]),
				Vs:   resultant(ef.V1[k], ef.V2[k]),
				Tq:   math.Abs(ef.Tt[k]),
				Qdyn: qdyn[n],
			}
			p := 2*e + k
			cr.Stress[p] = crit.VonMises(st, o.Sec.Mat, γ.GammaM, γ.GammaN)
			for name, meth := range o.shell {
				cr.Shell[name][p] = meth.Util(st, o.Sec.Mat, γ.GammaB, γ.GammaN)
			}
			for name, meth := range o.global {
				cr.Global[name][p] = meth.Util(st, o.Sec.Mat, kl, γ.GammaB, γ.GammaN)
			}
		}
	}
	return
}

// fatigueDamage evaluates the fatigue damage at every node from the
// damage-equivalent moment distribution
func (o *Analysis) fatigueDamage() (dmg []float64) {
	f := o.T.Fatigue
	γ := o.T.Safety.GammaF * o.T.Safety.GammaN
	dmg = make([]float64, o.Sec.Nnod())
	for i := range dmg {
		mdel := interpDEL(f.ZDEL, f.MDEL, o.Sec.Z[i])
		ro := o.Sec.D[i] / 2.0
		ri := ro - o.Sec.Tw[i]
		inertia := math.Pi / 4.0 * (math.Pow(ro, 4) - math.Pow(ri, 4))
		Δσ := γ * mdel * ro / inertia
		dmg[i] = o.fat.Damage(Δσ)
	}
	return
}
