// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01")

	var sol CantileverTube
	sol.Init(fun.Prms{
		&fun.Prm{N: "E", V: 200e9},
		&fun.Prm{N: "rho", V: 7850.0},
		&fun.Prm{N: "d", V: 2.0},
		&fun.Prm{N: "t", V: 0.05},
		&fun.Prm{N: "L", V: 20.0},
	})

	// section properties
	ro, ri := 1.0, 0.95
	chk.Scalar(tst, "A", 1e-14, sol.A, math.Pi*(ro*ro-ri*ri))
	chk.Scalar(tst, "I", 1e-14, sol.I, math.Pi/4.0*(1.0-math.Pow(ri, 4)))

	// superposition: deflection of P and M together equals the sum
	P, M := 1e5, 5e5
	chk.Scalar(tst, "superposition", 1e-15,
		sol.TipDeflection(P, M), sol.TipDeflection(P, 0)+sol.TipDeflection(0, M))

	// hand-computed tip deflection for the tip load
	EI := 200e9 * sol.I
	chk.Scalar(tst, "u(P)", 1e-15, sol.TipDeflection(P, 0), P*8000.0/(3.0*EI))
	chk.Scalar(tst, "base moment", 1e-10, sol.BaseMoment(P, M), P*20.0+M)

	// frequencies are ordered and scale with 1/L²
	f1 := sol.Frequency(1)
	f2 := sol.Frequency(2)
	io.Pforan("f1=%.4f f2=%.4f\n", f1, f2)
	if f2 <= f1 {
		tst.Errorf("higher modes must have higher frequencies")
		return
	}
	var long CantileverTube
	long.Init(fun.Prms{
		&fun.Prm{N: "E", V: 200e9},
		&fun.Prm{N: "rho", V: 7850.0},
		&fun.Prm{N: "d", V: 2.0},
		&fun.Prm{N: "t", V: 0.05},
		&fun.Prm{N: "L", V: 40.0},
	})
	chk.Scalar(tst, "f1 scaling", 1e-12*f1, long.Frequency(1), f1/4.0)

	// a tip mass always lowers the first frequency
	if sol.FrequencyWithTipMass(50e3) >= f1 {
		tst.Errorf("tip mass must lower the frequency")
		return
	}
}
