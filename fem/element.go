// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// Element is a 2-node tubular Euler-Bernoulli beam aligned with the global
// z-axis (all tower members are vertical). Local axes:
//
//	e0 = (0,0,1)   member axis, node a (bottom) to node b (top)
//	e1 = (1,0,0)
//	e2 = (0,1,0) = e0 cross e1
//
// Local DOF order per node: [u0 (axial), u1, u2, θ0 (torsion), θ1, θ2].
type Element struct {

	// basic data
	Na, Nb int // end node ids: a=bottom, b=top
	Nu     int // number of unknowns == 12

	// parameters and properties
	E   float64 // Young's modulus
	G   float64 // shear modulus
	Rho float64 // density
	A   float64 // cross-sectional area
	Iyy float64 // second moment of area (axisymmetric section)
	Jtt float64 // torsion constant
	L   float64 // length

	// matrices
	T     [][]float64 // global-to-local transformation [12][12]
	Kl    [][]float64 // local stiffness matrix
	K     [][]float64 // global stiffness matrix
	Mdiag []float64   // lumped mass diagonal, global DOF order

	// assembly map (element equations to global equations)
	Umap []int
}

// NewElement computes the element matrices for a vertical tube beam
func NewElement(na, nb int, l, e, g, rho, area, iyy, jtt float64) (o *Element) {

	// basic data
	o = new(Element)
	o.Na, o.Nb = na, nb
	o.Nu = 12
	o.E, o.G, o.Rho = e, g, rho
	o.A, o.Iyy, o.Jtt = area, iyy, jtt
	o.L = l

	// assembly map
	o.Umap = make([]int, o.Nu)
	for j := 0; j < 6; j++ {
		o.Umap[j] = 6*na + j
		o.Umap[6+j] = 6*nb + j
	}

	// global-to-local transformation matrix
	e0 := []float64{0, 0, 1}
	e1 := []float64{1, 0, 0}
	e2 := []float64{0, 1, 0}
	o.T = la.MatAlloc(o.Nu, o.Nu)
	for k := 0; k < 4; k++ {
		o.T[3*k+0][3*k+0], o.T[3*k+0][3*k+1], o.T[3*k+0][3*k+2] = e0[0], e0[1], e0[2]
		o.T[3*k+1][3*k+0], o.T[3*k+1][3*k+1], o.T[3*k+1][3*k+2] = e1[0], e1[1], e1[2]
		o.T[3*k+2][3*k+0], o.T[3*k+2][3*k+1], o.T[3*k+2][3*k+2] = e2[0], e2[1], e2[2]
	}

	// constants
	EI := o.E * o.Iyy
	GJ := o.G * o.Jtt
	EA := o.E * o.A
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	o.Kl = la.MatAlloc(o.Nu, o.Nu)
	o.Kl[0][0] = EA / l
	o.Kl[0][6] = -EA / l

	o.Kl[1][1] = 12.0 * EI / lll
	o.Kl[1][5] = 6.0 * EI / ll
	o.Kl[1][7] = -12.0 * EI / lll
	o.Kl[1][11] = 6.0 * EI / ll

	o.Kl[2][2] = 12.0 * EI / lll
	o.Kl[2][4] = -6.0 * EI / ll
	o.Kl[2][8] = -12.0 * EI / lll
	o.Kl[2][10] = -6.0 * EI / ll

	o.Kl[3][3] = GJ / l
	o.Kl[3][9] = -GJ / l

	o.Kl[4][2] = -6.0 * EI / ll
	o.Kl[4][4] = 4.0 * EI / l
	o.Kl[4][8] = 6.0 * EI / ll
	o.Kl[4][10] = 2.0 * EI / l

	o.Kl[5][1] = 6.0 * EI / ll
	o.Kl[5][5] = 4.0 * EI / l
	o.Kl[5][7] = -6.0 * EI / ll
	o.Kl[5][11] = 2.0 * EI / l

	o.Kl[6][0] = -EA / l
	o.Kl[6][6] = EA / l

	o.Kl[7][1] = -12.0 * EI / lll
	o.Kl[7][5] = -6.0 * EI / ll
	o.Kl[7][7] = 12.0 * EI / lll
	o.Kl[7][11] = -6.0 * EI / ll

	o.Kl[8][2] = -12.0 * EI / lll
	o.Kl[8][4] = 6.0 * EI / ll
	o.Kl[8][8] = 12.0 * EI / lll
	o.Kl[8][10] = 6.0 * EI / ll

	o.Kl[9][3] = -GJ / l
	o.Kl[9][9] = GJ / l

	o.Kl[10][2] = -6.0 * EI / ll
	o.Kl[10][4] = 2.0 * EI / l
	o.Kl[10][8] = 6.0 * EI / ll
	o.Kl[10][10] = 4.0 * EI / l

	o.Kl[11][1] = 6.0 * EI / ll
	o.Kl[11][5] = 2.0 * EI / l
	o.Kl[11][7] = -6.0 * EI / ll
	o.Kl[11][11] = 4.0 * EI / l

	// stiffness matrix in global system
	o.K = la.MatAlloc(o.Nu, o.Nu)
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := trans(T) * Kl * T

	// lumped mass (HRZ lumping of the consistent beam mass): half the
	// element mass on each translational DOF, m·l²/78 on the bending
	// rotations and half the polar rotary inertia on the torsional DOF.
	// The transformation is a signed permutation, so the global diagonal
	// follows directly.
	m := rho * area * l
	mrot := m * ll / 78.0
	mtor := rho * jtt * l / 2.0
	o.Mdiag = make([]float64, o.Nu)
	for k := 0; k < 2; k++ {
		r := 6 * k
		o.Mdiag[r+0] = m / 2.0 // ux
		o.Mdiag[r+1] = m / 2.0 // uy
		o.Mdiag[r+2] = m / 2.0 // uz
		o.Mdiag[r+3] = mrot    // rx
		o.Mdiag[r+4] = mrot    // ry
		o.Mdiag[r+5] = mtor    // rz
	}
	return
}

// fixedEnd returns the local equivalent nodal force vector of the uniform
// distributed loads: q1, q2 lateral (local e1, e2) and w axial (local e0)
func (o *Element) fixedEnd(q1, q2, w float64) (fxl []float64) {
	l := o.L
	ll := l * l
	fxl = make([]float64, o.Nu)
	fxl[0] = w * l / 2.0
	fxl[6] = w * l / 2.0
	fxl[1] = l * q1 / 2.0
	fxl[2] = l * q2 / 2.0
	fxl[4] = -ll * q2 / 12.0
	fxl[5] = ll * q1 / 12.0
	fxl[7] = l * q1 / 2.0
	fxl[8] = l * q2 / 2.0
	fxl[10] = ll * q2 / 12.0
	fxl[11] = -ll * q1 / 12.0
	return
}

// AddEquivLoads adds the equivalent nodal forces of the distributed loads
// (global qx, qy lateral and wz axial, all uniform over the element) to the
// global load vector F
func (o *Element) AddEquivLoads(F []float64, qx, qy, wz float64) {
	if qx == 0 && qy == 0 && wz == 0 {
		return
	}
	// local axes coincide with global axes: e1 == x, e2 == y, e0 == z
	fxl := o.fixedEnd(qx, qy, wz)
	fx := make([]float64, o.Nu)
	la.MatTrVecMulAdd(fx, 1.0, o.T, fxl) // fx := trans(T) * fxl
	for i, I := range o.Umap {
		F[I] += fx[i]
	}
}

// EndForces holds the internal forces at the two ends of an element in the
// local (member) system, with the internal-force sign convention: axial N
// positive in tension; shears V1, V2 along e1, e2; torsion Tt about the
// axis; bending moments M1, M2 about e1, e2. Index 0 is the bottom end
// (node a), index 1 the top end (node b).
type EndForces struct {
	N  [2]float64
	V1 [2]float64
	V2 [2]float64
	Tt [2]float64
	M1 [2]float64
	M2 [2]float64
}

// CalcEndForces recovers the internal end forces from the global nodal
// displacement vector U and the element's distributed loads
func (o *Element) CalcEndForces(U []float64, qx, qy, wz float64) (ef *EndForces) {

	// local displacements
	ue := make([]float64, o.Nu)
	for i, I := range o.Umap {
		ue[i] = U[I]
	}
	ul := make([]float64, o.Nu)
	la.MatVecMul(ul, 1, o.T, ue) // ul := T * ue

	// local end forces: fl = Kl*ul - fxl
	fl := make([]float64, o.Nu)
	la.MatVecMul(fl, 1, o.Kl, ul)
	fxl := o.fixedEnd(qx, qy, wz)
	for i := 0; i < o.Nu; i++ {
		fl[i] -= fxl[i]
	}

	// internal-force sense: at the bottom end the internal forces act on
	// the cut from below (negated end forces); at the top end they equal
	// the end forces directly
	ef = new(EndForces)
	ef.N = [2]float64{-fl[0], fl[6]}
	ef.V1 = [2]float64{-fl[1], fl[7]}
	ef.V2 = [2]float64{-fl[2], fl[8]}
	ef.Tt = [2]float64{-fl[3], fl[9]}
	ef.M1 = [2]float64{-fl[4], fl[10]}
	ef.M2 = [2]float64{-fl[5], fl[11]}
	return
}
