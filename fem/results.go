// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// TopDeflection returns the lateral deflection magnitude at the tower top
func (o *Solution) TopDeflection() float64 {
	u := o.NodeDisp(len(o.U)/6 - 1)
	return math.Hypot(u[0], u[1])
}

// NodeDisp returns the 6 displacement components of a node
func (o *Solution) NodeDisp(node int) (u [6]float64) {
	copy(u[:], o.U[6*node:6*node+6])
	return
}

// PrintForces prints the internal end-force table (one line per element end)
func (o *Solution) PrintForces() {
	io.Pf("%4s %14s %14s %14s %14s\n", "ele", "N", "Vres", "Mres", "Tt")
	for i, ef := range o.Fint {
		for k := 0; k < 2; k++ {
			v := math.Hypot(ef.V1[k], ef.V2[k])
			m := math.Hypot(ef.M1[k], ef.M2[k])
			io.Pf("%4d %14.6e %14.6e %14.6e %14.6e\n", i, ef.N[k], v, m, ef.Tt[k])
		}
	}
}
