// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements a small finite element kernel for vertical beam
// columns: 12-DOF tubular Euler-Bernoulli elements, elastic or rigid base
// supports, lumped point masses, and dense static/modal solver backends.
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/towerse/sec"
)

// Node is one finite element node on the tower axis
type Node struct {
	Id int     // node id == equation block index
	Z  float64 // elevation
}

// Model is the assembled structural model of the tower: a stack of tube
// beam elements with 6 DOFs per node. Node 0 is the base; the last node is
// the top. Base DOFs are either rigidly constrained or supported by springs.
type Model struct {
	Nodes      []*Node             // all nodes, bottom to top
	Eles       []*Element          // all elements
	BaseRigid  [6]bool             // constrained base DOFs
	BaseSpring [6]float64          // spring stiffness of unconstrained base DOFs
	Pmass      map[int][6]float64  // extra lumped mass per node, DOF order
}

// NewModel builds the structural model from the refined sections. The base
// is initially fully rigid; call SetBase to install foundation springs.
func NewModel(s *sec.Sections) (o *Model) {
	o = new(Model)
	o.Pmass = make(map[int][6]float64)
	for i := 0; i < s.Nnod(); i++ {
		o.Nodes = append(o.Nodes, &Node{Id: i, Z: s.Z[i]})
	}
	for e := 0; e < s.Nele(); e++ {
		o.Eles = append(o.Eles, NewElement(e, e+1, s.L[e],
			s.Mat.E, s.Mat.G, s.Mat.Rho, s.Area[e], s.Iyy[e], s.Jtt[e]))
	}
	for j := 0; j < 6; j++ {
		o.BaseRigid[j] = true
	}
	return
}

// Ndof returns the total number of equations
func (o *Model) Ndof() int { return 6 * len(o.Nodes) }

// SetBase installs the base boundary condition: rigid[j] constrains DOF j
// of node 0; otherwise springs[j] is added to the stiffness diagonal
func (o *Model) SetBase(rigid [6]bool, springs [6]float64) {
	o.BaseRigid = rigid
	o.BaseSpring = springs
}

// AddPointMass lumps an extra mass (and rotary inertias) at a node
func (o *Model) AddPointMass(node int, m, ixx, iyy, izz float64) {
	p := o.Pmass[node]
	p[0] += m
	p[1] += m
	p[2] += m
	p[3] += ixx
	p[4] += iyy
	p[5] += izz
	o.Pmass[node] = p
}

// unrestrained returns the index of the first base DOF that is neither
// rigidly constrained nor spring supported, or -1 if the base restrains
// all six. The base node is the only support of the column, so a fully
// free base DOF leaves a rigid-body mode.
func (o *Model) unrestrained() int {
	for j := 0; j < 6; j++ {
		if !o.BaseRigid[j] && o.BaseSpring[j] <= 0 {
			return j
		}
	}
	return -1
}

// prescribed returns the equation numbers of constrained DOFs
func (o *Model) prescribed() (pre []int) {
	for j := 0; j < 6; j++ {
		if o.BaseRigid[j] {
			pre = append(pre, j)
		}
	}
	return
}

// AssembleK assembles the global stiffness matrix, including the base
// springs on the diagonal
func (o *Model) AssembleK() (K [][]float64) {
	K = la.MatAlloc(o.Ndof(), o.Ndof())
	for _, e := range o.Eles {
		for i, I := range e.Umap {
			for j, J := range e.Umap {
				K[I][J] += e.K[i][j]
			}
		}
	}
	for j := 0; j < 6; j++ {
		if !o.BaseRigid[j] {
			K[j][j] += o.BaseSpring[j]
		}
	}
	return
}

// AssembleM assembles the lumped (diagonal) global mass matrix, including
// the point masses
func (o *Model) AssembleM() (M []float64) {
	M = make([]float64, o.Ndof())
	for _, e := range o.Eles {
		for i, I := range e.Umap {
			M[I] += e.Mdiag[i]
		}
	}
	for n, p := range o.Pmass {
		for j := 0; j < 6; j++ {
			M[6*n+j] += p[j]
		}
	}
	return
}

// Loads holds the external loads of one solve: concentrated nodal loads and
// uniform distributed loads per element (qx, qy lateral force per unit
// length; wz axial force per unit length, e.g. self-weight)
type Loads struct {
	Nodal [][]float64 // [nnod][6] concentrated loads
	Qx    []float64   // [nele] lateral distributed load along x
	Qy    []float64   // [nele] lateral distributed load along y
	Wz    []float64   // [nele] axial distributed load along z
}

// NewLoads returns a zeroed load set for a model with nnod nodes
func NewLoads(nnod int) (o *Loads) {
	o = new(Loads)
	o.Nodal = la.MatAlloc(nnod, 6)
	o.Qx = make([]float64, nnod-1)
	o.Qy = make([]float64, nnod-1)
	o.Wz = make([]float64, nnod-1)
	return
}

// AssembleF assembles the global load vector from the nodal loads and the
// equivalent nodal forces of the distributed loads
func (o *Model) AssembleF(lo *Loads) (F []float64) {
	if len(lo.Nodal) != len(o.Nodes) {
		chk.Panic("loads have %d nodal entries but the model has %d nodes", len(lo.Nodal), len(o.Nodes))
	}
	F = make([]float64, o.Ndof())
	for n, f := range lo.Nodal {
		for j := 0; j < 6; j++ {
			F[6*n+j] += f[j]
		}
	}
	for i, e := range o.Eles {
		e.AddEquivLoads(F, lo.Qx[i], lo.Qy[i], lo.Wz[i])
	}
	return
}
