// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tower

import (
	"math"

	"github.com/cpmech/towerse/env"
	"github.com/cpmech/towerse/fem"
	"github.com/cpmech/towerse/inp"
	"github.com/cpmech/towerse/sec"
)

// caseModels holds the environment models of one load case
type caseModels struct {
	wind env.WindProfile
	wave *env.LinearWave // nil for land-based cases
}

// buildModels initialises the environment models of one load case
func buildModels(t *inp.Tower, c *inp.CaseData) (m *caseModels, err error) {
	m = new(caseModels)

	// wind reference plane: water surface when a wave is present
	zbot := t.Geometry.Z[0]
	if c.Wave != nil {
		zbot = c.Wave.Zsurf
	}
	m.wind, err = env.NewWindProfile(c.Wind.Profile)
	if err != nil {
		return nil, err
	}
	if err = m.wind.Init(c.WindPrms(zbot)); err != nil {
		return nil, err
	}

	// wave
	if c.Wave != nil {
		m.wave = new(env.LinearWave)
		if err = m.wave.Init(c.WavePrms()); err != nil {
			return nil, err
		}
	}
	return
}

// assembleLoads combines self-weight, wind drag, wave loading and the
// rotor-nacelle point loads into nodal/distributed loads on the model.
// qdyn is the per-node dynamic pressure used for the hoop-stress term of
// the failure criteria.
func assembleLoads(t *inp.Tower, c *inp.CaseData, s *sec.Sections, m *caseModels) (lo *fem.Loads, qdyn []float64, err error) {

	nnod := s.Nnod()
	lo = fem.NewLoads(nnod)
	qdyn = make([]float64, nnod)
	g := t.Data.Gravity

	// per-node lateral force per unit length (wind along +x; the wave
	// direction is aligned with the wind, the conservative choice). The
	// Morison force is evaluated for all nodes in one call.
	fx := make([]float64, nnod)
	var wf []float64
	if m.wave != nil {
		wf = m.wave.Forces(s.Z, s.D)
	}
	zmin := m.wind.Zmin()
	for i := 0; i < nnod; i++ {
		z, d := s.Z[i], s.D[i]

		// wind drag above the reference plane
		if z > zmin {
			u, e := m.wind.Speed(z)
			if e != nil {
				return nil, nil, e
			}
			cd := c.Wind.Cd
			if cd <= 0 {
				cd = env.DragCoef(u * d / env.KinViscAir)
			}
			q := 0.5 * t.Data.RhoAir * u * u
			fx[i] += q * cd * d
			qdyn[i] += q
		}

		// wave loading below the waterline
		if m.wave != nil && z <= m.wave.Zsurf {
			fx[i] += wf[i]
			uw, _ := m.wave.Kinematics(z)
			ut := uw + m.wave.Uc
			qdyn[i] += 0.5 * m.wave.Rho * ut * ut
		}
	}

	// element loads: trapezoid lumping of the lateral line load and
	// uniform axial self-weight
	for e := 0; e < s.Nele(); e++ {
		lo.Qx[e] = 0.5 * (fx[e] + fx[e+1])
		lo.Wz[e] = -g * s.Mass[e] / s.L[e]
	}

	// rotor-nacelle loads at the top node; the RNA weight and its
	// center-of-mass offset enter as a vertical force and a moment
	top := nnod - 1
	w := t.RNA.Mass * g
	lo.Nodal[top][0] += c.Fx
	lo.Nodal[top][1] += c.Fy
	lo.Nodal[top][2] += c.Fz - w
	lo.Nodal[top][3] += c.Mxx
	lo.Nodal[top][4] += c.Myy + w*t.RNA.CgX
	lo.Nodal[top][5] += c.Mzz
	return
}

// interpDEL interpolates the damage-equivalent moment table at elevation z
// (constant extrapolation outside the table)
func interpDEL(zs, ms []float64, z float64) float64 {
	n := len(zs)
	if n == 0 {
		return 0
	}
	if z <= zs[0] {
		return ms[0]
	}
	if z >= zs[n-1] {
		return ms[n-1]
	}
	for i := 1; i < n; i++ {
		if z <= zs[i] {
			ξ := (z - zs[i-1]) / (zs[i] - zs[i-1])
			return (1.0-ξ)*ms[i-1] + ξ*ms[i]
		}
	}
	return ms[n-1]
}

// resultant returns the magnitude of two orthogonal components
func resultant(a, b float64) float64 { return math.Hypot(a, b) }
