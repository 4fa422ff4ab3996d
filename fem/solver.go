// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/towerse/errs"
)

// Solution holds the output of a static solve
type Solution struct {
	U    []float64    // [ndof] nodal displacements
	R    []float64    // [6] base reactions (forces/moments transmitted to the foundation)
	Fint []*EndForces // [nele] internal end forces per element
}

// Modal holds the output of a frequency solve
type Modal struct {
	Freqs  []float64   // [nmodes] natural frequencies [Hz], ascending
	Shapes [][]float64 // [nmodes][ndof] mass-normalized mode shapes
}

// Solver is the capability boundary to the numerical engine: given the
// assembled structural model (and loads), return displacements, reactions
// and internal forces, or natural frequencies and mode shapes. A singular
// or non-converged solve is fatal for the evaluation and is not retried.
type Solver interface {
	Static(m *Model, lo *Loads) (*Solution, error)
	Modal(m *Model, nmodes int) (*Modal, error)
}

// solvers holds all available solver backends
var solvers = make(map[string]func() Solver)

// NewSolver returns a solver backend by name; e.g. "dense"
func NewSolver(name string) (Solver, error) {
	if alloc, ok := solvers[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("fem: cannot find solver named %q", name)
}

// add solvers to factory
func init() {
	solvers["dense"] = func() Solver { return new(Dense) }
}

// Dense is the reference solver backend: dense Cholesky factorization for
// the static problem and a symmetric eigen solve on the mass-scaled
// stiffness for the modal problem. Tower models are small (a few hundred
// DOFs), so dense factorizations are adequate.
type Dense struct{}

// Static solves K·u = f on the free DOFs
func (o *Dense) Static(m *Model, lo *Loads) (sol *Solution, err error) {

	// an unsupported base DOF leaves a rigid-body mode
	if j := m.unrestrained(); j >= 0 {
		return nil, errs.Solver("static solve: base DOF %d is neither constrained nor spring supported; structure has a rigid-body mode", j)
	}

	// assemble
	K := m.AssembleK()
	F := m.AssembleF(lo)
	free := freeDofs(m)
	nf := len(free)
	if nf == 0 {
		return nil, errs.Solver("static solve: no free degrees of freedom")
	}

	// reduced system
	Kff := mat.NewSymDense(nf, nil)
	bf := mat.NewVecDense(nf, nil)
	for i, I := range free {
		for j, J := range free {
			if j >= i {
				Kff.SetSym(i, j, K[I][J])
			}
		}
		bf.SetVec(i, F[I])
	}

	// factorize; failure means a singular or non-positive-definite system
	// (e.g. degenerate soil stiffness leaving rigid-body modes)
	var chol mat.Cholesky
	if ok := chol.Factorize(Kff); !ok {
		return nil, errs.Solver("static solve: stiffness matrix is singular or not positive definite; check foundation stiffness")
	}
	var uf mat.VecDense
	if err := chol.SolveVecTo(&uf, bf); err != nil {
		return nil, errs.Solver("static solve: cannot solve linear system: %v", err)
	}

	// expand to full displacement vector
	sol = new(Solution)
	sol.U = make([]float64, m.Ndof())
	for i, I := range free {
		sol.U[I] = uf.AtVec(i)
	}

	// base reactions: constrained DOFs carry K·u - f; spring DOFs carry
	// the spring force -k·u
	sol.R = make([]float64, 6)
	for j := 0; j < 6; j++ {
		if m.BaseRigid[j] {
			var r float64
			for J := 0; J < m.Ndof(); J++ {
				r += K[j][J] * sol.U[J]
			}
			sol.R[j] = r - F[j]
		} else {
			sol.R[j] = -m.BaseSpring[j] * sol.U[j]
		}
	}

	// internal forces
	sol.Fint = make([]*EndForces, len(m.Eles))
	for i, e := range m.Eles {
		sol.Fint[i] = e.CalcEndForces(sol.U, lo.Qx[i], lo.Qy[i], lo.Wz[i])
	}
	return
}

// Modal computes the first nmodes natural frequencies and mode shapes by
// solving the symmetric eigenproblem on S = M^(-1/2)·K·M^(-1/2) (lumped,
// diagonal mass)
func (o *Dense) Modal(m *Model, nmodes int) (res *Modal, err error) {

	// rigid-body modes give numerically zero eigenvalues that a tolerance
	// on the spectrum cannot separate from very soft physical modes, so
	// the degenerate base is rejected structurally before the solve
	if j := m.unrestrained(); j >= 0 {
		return nil, errs.Solver("modal solve: base DOF %d is neither constrained nor spring supported; structure has a rigid-body mode", j)
	}

	// assemble
	K := m.AssembleK()
	M := m.AssembleM()
	free := freeDofs(m)
	nf := len(free)
	if nf == 0 {
		return nil, errs.Solver("modal solve: no free degrees of freedom")
	}

	// mass scaling
	d := make([]float64, nf)
	for i, I := range free {
		if M[I] <= 0 {
			return nil, errs.Solver("modal solve: lumped mass at equation %d is not positive", I)
		}
		d[i] = 1.0 / math.Sqrt(M[I])
	}
	S := mat.NewSymDense(nf, nil)
	for i, I := range free {
		for j, J := range free {
			if j >= i {
				S.SetSym(i, j, d[i]*K[I][J]*d[j])
			}
		}
	}

	// eigen solve
	var es mat.EigenSym
	if ok := es.Factorize(S, true); !ok {
		return nil, errs.Solver("modal solve: symmetric eigen solve did not converge")
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// with the base restrained, a significantly negative eigenvalue can
	// only come from a broken assembly: fatal
	λmax := vals[len(vals)-1]
	tol := 1e-8 * math.Max(λmax, 1)
	idx := make([]int, 0, nf)
	for i, λ := range vals {
		if λ < -tol {
			return nil, errs.Solver("modal solve: negative eigenvalue λ=%g; structure has an unconstrained rigid-body mode", λ)
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	// collect results
	if nmodes > nf {
		nmodes = nf
	}
	res = new(Modal)
	res.Freqs = make([]float64, nmodes)
	res.Shapes = make([][]float64, nmodes)
	for k := 0; k < nmodes; k++ {
		i := idx[k]
		λ := vals[i]
		if λ < 0 {
			λ = 0
		}
		res.Freqs[k] = math.Sqrt(λ) / (2.0 * math.Pi)
		shape := make([]float64, m.Ndof())
		for j, J := range free {
			shape[J] = d[j] * vecs.At(j, i) // φ = M^(-1/2)·q
		}
		res.Shapes[k] = shape
	}
	return
}

// freeDofs returns the unconstrained equation numbers
func freeDofs(m *Model) (free []int) {
	pre := make(map[int]bool)
	for _, p := range m.prescribed() {
		pre[p] = true
	}
	for i := 0; i < m.Ndof(); i++ {
		if !pre[i] {
			free = append(free, i)
		}
	}
	return
}
