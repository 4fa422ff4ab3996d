// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package env implements environment models: wind profiles, linear wave
// loading and equivalent soil-foundation stiffness
package env

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/towerse/errs"
)

// WindProfile computes the mean horizontal wind speed as a function of the
// elevation z [m] above the reference plane (ground or mean water line)
type WindProfile interface {
	Init(prms fun.Prms) (err error)
	Speed(z float64) (u float64, err error)
	Zmin() float64 // lowest elevation with a nonzero, valid wind speed
}

// windprofiles holds all available wind profile allocators
var windprofiles = make(map[string]func() WindProfile)

// NewWindProfile returns a wind profile model by name; e.g. "log", "power"
func NewWindProfile(name string) (WindProfile, error) {
	if alloc, ok := windprofiles[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("env: cannot find wind profile named %q", name)
}

// WindSpeeds evaluates a profile at a vector of elevations in one call
func WindSpeeds(p WindProfile, z []float64) (u []float64, err error) {
	u = make([]float64, len(z))
	for i, zz := range z {
		u[i], err = p.Speed(zz)
		if err != nil {
			return nil, err
		}
	}
	return
}

// LogWind implements the logarithmic wind profile
//
//	u(z) = Uref · ln(z/z0) / ln(zref/z0)      for z > z0
//
// where z0 is the roughness length. Heights are measured from Zbot, the
// elevation of the ground or mean water line.
type LogWind struct {
	Uref float64 // reference wind speed
	Zref float64 // reference elevation (absolute)
	Z0   float64 // roughness length
	Zbot float64 // elevation of the reference plane
}

// PowerWind implements the power-law wind profile
//
//	u(z) = Uref · (z/zref)^α
type PowerWind struct {
	Uref  float64 // reference wind speed
	Zref  float64 // reference elevation (absolute)
	Alpha float64 // shear exponent
	Zbot  float64 // elevation of the reference plane
}

// add profiles to factory
func init() {
	windprofiles["log"] = func() WindProfile { return new(LogWind) }
	windprofiles["power"] = func() WindProfile { return new(PowerWind) }
}

// LogWind ////////////////////////////////////////////////////////////////////////////////////////

// Init initialises the model
func (o *LogWind) Init(prms fun.Prms) (err error) {

	// default values
	o.Z0 = 0.01

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Uref":
			o.Uref = p.V
		case "zref":
			o.Zref = p.V
		case "z0":
			o.Z0 = p.V
		case "zbot":
			o.Zbot = p.V
		}
	}

	// check
	if o.Z0 <= 0 {
		return errs.Domain("log wind profile: roughness length must be positive. z0=%g is invalid", o.Z0)
	}
	if o.Zref-o.Zbot <= o.Z0 {
		return errs.Domain("log wind profile: reference height (%g) must be above the roughness length (%g)", o.Zref-o.Zbot, o.Z0)
	}
	if o.Uref < 0 {
		return errs.Domain("log wind profile: reference speed must be non-negative. Uref=%g is invalid", o.Uref)
	}
	return
}

// Speed returns the wind speed at elevation z
func (o *LogWind) Speed(z float64) (u float64, err error) {
	h := z - o.Zbot
	if h <= o.Z0 {
		return 0, errs.Domain("log wind profile: elevation %g is not above the roughness length %g", h, o.Z0)
	}
	return o.Uref * math.Log(h/o.Z0) / math.Log((o.Zref-o.Zbot)/o.Z0), nil
}

// Zmin returns the lowest valid elevation (reference plane plus roughness)
func (o *LogWind) Zmin() float64 { return o.Zbot + o.Z0 }

// PowerWind //////////////////////////////////////////////////////////////////////////////////////

// Init initialises the model
func (o *PowerWind) Init(prms fun.Prms) (err error) {

	// default values
	o.Alpha = 0.14

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Uref":
			o.Uref = p.V
		case "zref":
			o.Zref = p.V
		case "alpha":
			o.Alpha = p.V
		case "zbot":
			o.Zbot = p.V
		}
	}

	// check
	if o.Zref-o.Zbot <= 0 {
		return errs.Domain("power wind profile: reference height must be above the reference plane. zref=%g zbot=%g", o.Zref, o.Zbot)
	}
	if o.Uref < 0 {
		return errs.Domain("power wind profile: reference speed must be non-negative. Uref=%g is invalid", o.Uref)
	}
	return
}

// Speed returns the wind speed at elevation z. Elevations at or below the
// reference plane have zero speed.
func (o *PowerWind) Speed(z float64) (u float64, err error) {
	h := z - o.Zbot
	if h <= 0 {
		return 0, nil
	}
	return o.Uref * math.Pow(h/(o.Zref-o.Zbot), o.Alpha), nil
}

// Zmin returns the lowest valid elevation (the reference plane)
func (o *PowerWind) Zmin() float64 { return o.Zbot }
