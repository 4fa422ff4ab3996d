// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/towerse/sec"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. land-based input file")

	t, err := ReadTower("../data/onshore.tow")
	if err != nil {
		tst.Errorf("cannot read input file: %v\n", err)
		return
	}

	// key and explicit data
	chk.String(tst, t.Key, "onshore")
	chk.String(tst, t.Data.Aggregation, "ks")
	chk.Scalar(tst, "ksrho", 1e-15, t.Data.KSrho, 80.0)
	chk.Scalar(tst, "gamma_m", 1e-15, t.Safety.GammaM, 1.3)
	chk.IntAssert(len(t.Cases), 2)
	chk.IntAssert(t.Data.Ndiv, 10)

	// defaults fill what the file omits
	chk.String(tst, t.Data.Solver, "dense")
	chk.IntAssert(len(t.Data.ShellMeths), 2)
	chk.Scalar(tst, "bucklenfac", 1e-15, t.Data.BuckLenFac, 2.0)
	chk.Scalar(tst, "gravity", 1e-15, t.Data.Gravity, 9.80665)

	// geometry control points
	cp := t.ControlPoints()
	if err = cp.Validate(); err != nil {
		tst.Errorf("control points invalid: %v\n", err)
		return
	}
	chk.Scalar(tst, "base diameter", 1e-15, cp.D[0], 6.0)
	chk.Scalar(tst, "top thickness", 1e-15, cp.T[2], 0.019)

	// no soil block means a fully rigid base
	rigid := t.RigidFlags()
	for j := 0; j < 6; j++ {
		if !rigid[j] {
			tst.Errorf("missing soil block must give a rigid base")
			return
		}
	}
	if t.SoilPrms() != nil {
		tst.Errorf("missing soil block must give nil soil parameters")
		return
	}

	// fatigue block
	if t.Fatigue == nil {
		tst.Errorf("fatigue block missing")
		return
	}
	chk.String(tst, t.Fatigue.Model, "del")
	io.Pforan("fatigue prms: %v\n", len(t.Fatigue.FatiguePrms()))
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. offshore input file")

	t, err := ReadTower("../data/monopile.tow")
	if err != nil {
		tst.Errorf("cannot read input file: %v\n", err)
		return
	}

	// soil with per-DOF rigid overrides
	if t.Soil == nil {
		tst.Errorf("soil block missing")
		return
	}
	rigid := t.RigidFlags()
	if !rigid[2] || !rigid[5] {
		tst.Errorf("uz and rz must be rigid: %v", rigid)
		return
	}
	if rigid[0] || rigid[3] {
		tst.Errorf("ux and rx must be spring supported: %v", rigid)
		return
	}

	// wave case
	c := t.Cases[0]
	if c.Wave == nil {
		tst.Errorf("wave block missing")
		return
	}
	wp := c.WavePrms()
	if len(wp) < 5 {
		tst.Errorf("wave parameters incomplete: %d", len(wp))
		return
	}

	// wind parameters carry the explicit roughness and reference plane
	found := false
	for _, p := range c.WindPrms(c.Wave.Zsurf) {
		if p.N == "z0" {
			found = true
			chk.Scalar(tst, "z0", 1e-15, p.V, 0.0002)
		}
	}
	if !found {
		tst.Errorf("explicit roughness length missing from wind parameters")
		return
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. invalid input is rejected")

	// no cases
	bad := new(Tower)
	bad.SetDefault()
	bad.Material = sec.Material{Rho: 7850, E: 210e9, G: 80.8e9, Fy: 345e6}
	bad.Geometry = GeometryData{
		Z: []float64{0, 80},
		D: []float64{6, 4},
		T: []float64{0.027, 0.019},
	}
	if err := bad.Validate(); err == nil {
		tst.Errorf("input without load cases must be rejected")
		return
	} else {
		io.Pforan("error: %v\n", err)
	}

	// bad material and bad geometry accumulate into one error
	bad2 := new(Tower)
	bad2.SetDefault()
	bad2.Geometry = GeometryData{
		Z: []float64{0, 80},
		D: []float64{6, -4},
		T: []float64{0.027, 0.019},
	}
	err := bad2.Validate()
	if err == nil {
		tst.Errorf("invalid geometry and material must be rejected")
		return
	}
	io.Pforan("accumulated error:\n%v\n", err)

	// missing file
	if _, err := ReadTower("/does/not/exist.tow"); err == nil {
		tst.Errorf("missing file must be rejected")
		return
	}
}
