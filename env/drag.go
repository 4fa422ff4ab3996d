// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import "math"

// DragCoef returns the drag coefficient of a smooth circular cylinder as a
// function of the Reynolds number. The curve is a smooth fit to the
// classical measured data: cd ≈ 1.2 in the subcritical range, dropping to
// ≈ 0.35 through the drag crisis near Re = 2·10⁵ and recovering to ≈ 0.7
// in the supercritical range. Smoothness (tanh blending in log10 Re) keeps
// the wind load differentiable for gradient-based optimization.
func DragCoef(re float64) float64 {
	if re < 1 {
		re = 1
	}
	x := math.Log10(re)
	s1 := 0.5 * (1.0 + math.Tanh(4.0*(x-5.35))) // drag crisis
	s2 := 0.5 * (1.0 + math.Tanh(2.0*(x-6.20))) // supercritical recovery
	return 1.2 - 0.85*s1 + 0.35*s2
}

// KinViscAir is the kinematic viscosity of air at 15°C [m²/s]
const KinViscAir = 1.464e-5

// RhoAir is the default air density [kg/m³]
const RhoAir = 1.225

// RhoSeaWater is the default sea water density [kg/m³]
const RhoSeaWater = 1025.0

// Grav is the standard gravity acceleration [m/s²]
const Grav = 9.80665
