// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.tow) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	errtree "github.com/Konstantin8105/errors"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/towerse/sec"
)

// Data holds global analysis data
type Data struct {
	Desc        string   `json:"desc"`        // description of the analysis
	Ndiv        int      `json:"ndiv"`        // number of elements per control segment
	Nmodes      int      `json:"nmodes"`      // number of natural frequencies to extract
	Solver      string   `json:"solver"`      // solver backend name; e.g. "dense"
	Aggregation string   `json:"aggregation"` // utilization combination policy: "max" or "ks"
	KSrho       float64  `json:"ksrho"`       // KS aggregation parameter
	ShellMeths  []string `json:"shellmeths"`  // shell-buckling formulations to evaluate
	GlobalMeths []string `json:"globalmeths"` // global-buckling formulations to evaluate
	BuckLenFac  float64  `json:"bucklenfac"`  // effective buckling length factor (2 = cantilever)
	Gravity     float64  `json:"gravity"`     // gravity acceleration
	RhoAir      float64  `json:"rhoair"`      // air density
}

// GeometryData holds the sparse tower geometry control points and the
// manufacturability limits
type GeometryData struct {
	Z        []float64 `json:"z"`        // control point elevations
	D        []float64 `json:"d"`        // outer diameters
	T        []float64 `json:"t"`        // wall thicknesses
	MinDt    float64   `json:"mindt"`    // minimum allowed diameter-to-thickness ratio
	MaxTaper float64   `json:"maxtaper"` // maximum allowed diameter taper slope
	Dmin     float64   `json:"dmin"`     // lower bound of the diameter design variables
	Dmax     float64   `json:"dmax"`     // upper bound of the diameter design variables
	Tmin     float64   `json:"tmin"`     // lower bound of the thickness design variables
	Tmax     float64   `json:"tmax"`     // upper bound of the thickness design variables
}

// SafetyData holds the partial safety factors, one per limit state
type SafetyData struct {
	GammaM float64 `json:"gamma_m"` // material (stress)
	GammaB float64 `json:"gamma_b"` // buckling (stability)
	GammaF float64 `json:"gamma_f"` // fatigue
	GammaN float64 `json:"gamma_n"` // consequence of failure
}

// SoilData holds the foundation soil properties; DOFs listed in Rigid are
// constrained instead of spring-supported ("all" constrains every DOF)
type SoilData struct {
	G     float64  `json:"G"`     // soil shear modulus
	Nu    float64  `json:"nu"`    // soil Poisson's coefficient
	R0    float64  `json:"r0"`    // effective foundation radius
	Depth float64  `json:"depth"` // embedment depth
	Rigid []string `json:"rigid"` // e.g. ["all"] or ["ux","uy","uz"]
}

// RNAData holds the rotor-nacelle-assembly mass properties lumped at the
// tower top
type RNAData struct {
	Mass float64 `json:"mass"` // total mass
	Ixx  float64 `json:"ixx"`  // rotary inertia about x
	Iyy  float64 `json:"iyy"`  // rotary inertia about y
	Izz  float64 `json:"izz"`  // rotary inertia about z
	CgX  float64 `json:"cgx"`  // horizontal offset of the center of mass
}

// WindData holds the wind profile parameters of one load case
type WindData struct {
	Profile string  `json:"profile"` // "log" or "power"
	Uref    float64 `json:"Uref"`    // reference wind speed
	Zref    float64 `json:"zref"`    // reference elevation
	Z0      float64 `json:"z0"`      // roughness length (log profile)
	Alpha   float64 `json:"alpha"`   // shear exponent (power profile)
	Cd      float64 `json:"cd"`      // drag coefficient; ≤ 0 selects the Reynolds curve
}

// WaveData holds the wave parameters of one load case
type WaveData struct {
	H     float64 `json:"H"`     // wave height
	T     float64 `json:"T"`     // wave period
	Depth float64 `json:"depth"` // water depth
	Zsurf float64 `json:"zsurf"` // mean water surface elevation
	Rho   float64 `json:"rho"`   // water density
	Cd    float64 `json:"cd"`    // Morison drag coefficient
	Cm    float64 `json:"cm"`    // Morison inertia coefficient
	Uc    float64 `json:"uc"`    // current speed
}

// CaseData holds one environmental/operational load case. Rotor loads are
// boundary conditions applied at the tower top.
type CaseData struct {
	Desc string    `json:"desc"` // description; e.g. "rated wind"
	Wind *WindData `json:"wind"` // wind parameters
	Wave *WaveData `json:"wave"` // wave parameters (offshore only)
	Fx   float64   `json:"Fx"`   // rotor thrust
	Fy   float64   `json:"Fy"`   // rotor side force
	Fz   float64   `json:"Fz"`   // rotor vertical force
	Mxx  float64   `json:"Mxx"`  // rotor moment about x
	Myy  float64   `json:"Myy"`  // rotor moment about y
	Mzz  float64   `json:"Mzz"`  // rotor torque about z
}

// FatigueData holds the fatigue spectrum model and the damage-equivalent
// moment distribution along the tower
type FatigueData struct {
	Model string    `json:"model"` // "del" or "weibull"
	M     float64   `json:"m"`     // S-N slope exponent
	A     float64   `json:"A"`     // S-N intercept (stress in Pa)
	Neq   float64   `json:"Neq"`   // equivalent cycles over the design life (del)
	Nlife float64   `json:"Nlife"` // lifetime cycle count (weibull)
	Shape float64   `json:"shape"` // Weibull shape parameter
	Nbins int       `json:"nbins"` // spectrum blocks (weibull)
	ZDEL  []float64 `json:"zdel"`  // elevations of the DEL moment table
	MDEL  []float64 `json:"mdel"`  // damage-equivalent moments at ZDEL
}

// Tower holds all input data of one tower analysis
type Tower struct {

	// input
	Data     Data         `json:"data"`
	Material sec.Material `json:"material"`
	Geometry GeometryData `json:"geometry"`
	Safety   SafetyData   `json:"safety"`
	Soil     *SoilData    `json:"soil"` // nil means rigid base
	RNA      RNAData      `json:"rna"`
	Fatigue  *FatigueData `json:"fatigue"` // nil disables the fatigue check
	Cases    []*CaseData  `json:"cases"`

	// derived
	Key string // input filename key; e.g. mytower.tow => mytower
}

// ReadTower reads all tower data from a .tow JSON file
func ReadTower(path string) (o *Tower, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("ReadTower: cannot read input file %q", path)
	}
	o = new(Tower)
	o.SetDefault()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadTower: cannot unmarshal input file %q: %v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// SetDefault sets default values
func (o *Tower) SetDefault() {
	o.Data.Ndiv = 10
	o.Data.Nmodes = 5
	o.Data.Solver = "dense"
	o.Data.Aggregation = "max"
	o.Data.KSrho = 50.0
	o.Data.ShellMeths = []string{"eurocode", "dnv"}
	o.Data.GlobalMeths = []string{"eurocode", "gl"}
	o.Data.BuckLenFac = 2.0
	o.Data.Gravity = 9.80665
	o.Data.RhoAir = 1.225
	o.Safety = SafetyData{GammaM: 1.1, GammaB: 1.1, GammaF: 1.0, GammaN: 1.0}
}

// Validate checks the input data, accumulating all problems before failing
func (o *Tower) Validate() (err error) {
	et := errtree.New("tower input")
	if e := o.ControlPoints().Validate(); e != nil {
		et.Add(e)
	}
	if o.Material.Rho <= 0 || o.Material.E <= 0 || o.Material.G <= 0 || o.Material.Fy <= 0 {
		et.Add(chk.Err("material properties must all be positive. rho=%g E=%g G=%g fy=%g",
			o.Material.Rho, o.Material.E, o.Material.G, o.Material.Fy))
	}
	if o.Safety.GammaM < 1 || o.Safety.GammaB < 1 || o.Safety.GammaF < 1 || o.Safety.GammaN < 1 {
		et.Add(chk.Err("partial safety factors must be ≥ 1. γm=%g γb=%g γf=%g γn=%g",
			o.Safety.GammaM, o.Safety.GammaB, o.Safety.GammaF, o.Safety.GammaN))
	}
	if len(o.Cases) < 1 {
		et.Add(chk.Err("at least one load case is required"))
	}
	for i, c := range o.Cases {
		if c.Wind == nil {
			et.Add(chk.Err("case %d: wind data is required", i))
			continue
		}
		if c.Wind.Profile == "" {
			c.Wind.Profile = "log"
		}
		if c.Wave != nil && c.Wave.Depth <= 0 {
			et.Add(chk.Err("case %d: water depth must be positive. depth=%g", i, c.Wave.Depth))
		}
	}
	if o.Fatigue != nil {
		if len(o.Fatigue.ZDEL) != len(o.Fatigue.MDEL) {
			et.Add(chk.Err("fatigue: zdel and mdel tables have mismatched lengths. nz=%d nm=%d",
				len(o.Fatigue.ZDEL), len(o.Fatigue.MDEL)))
		}
		if o.Fatigue.Model == "" {
			o.Fatigue.Model = "del"
		}
	}
	if et.IsError() {
		return et
	}
	return
}

// ControlPoints returns the geometry control points
func (o *Tower) ControlPoints() sec.ControlPoints {
	return sec.ControlPoints{Z: o.Geometry.Z, D: o.Geometry.D, T: o.Geometry.T}
}

// RigidFlags converts the soil rigid-DOF names into flags. A nil SoilData
// means a fully rigid base.
func (o *Tower) RigidFlags() (rigid [6]bool) {
	if o.Soil == nil {
		for i := 0; i < 6; i++ {
			rigid[i] = true
		}
		return
	}
	keys := map[string]int{"ux": 0, "uy": 1, "uz": 2, "rx": 3, "ry": 4, "rz": 5}
	for _, name := range o.Soil.Rigid {
		if name == "all" {
			for i := 0; i < 6; i++ {
				rigid[i] = true
			}
			return
		}
		if j, ok := keys[name]; ok {
			rigid[j] = true
		} else {
			chk.Panic("soil: unknown DOF name %q in rigid list", name)
		}
	}
	return
}

// SoilPrms returns the soil model parameters
func (o *Tower) SoilPrms() fun.Prms {
	if o.Soil == nil {
		return nil
	}
	return fun.Prms{
		&fun.Prm{N: "G", V: o.Soil.G},
		&fun.Prm{N: "nu", V: o.Soil.Nu},
		&fun.Prm{N: "r0", V: o.Soil.R0},
		&fun.Prm{N: "depth", V: o.Soil.Depth},
	}
}

// WindPrms returns the wind profile parameters of one case; zbot is the
// elevation of the reference plane (water surface when a wave is present)
func (o *CaseData) WindPrms(zbot float64) (prms fun.Prms) {
	prms = fun.Prms{
		&fun.Prm{N: "Uref", V: o.Wind.Uref},
		&fun.Prm{N: "zref", V: o.Wind.Zref},
		&fun.Prm{N: "zbot", V: zbot},
	}
	// zero-valued entries are omitted so the model defaults apply
	if o.Wind.Z0 > 0 {
		prms = append(prms, &fun.Prm{N: "z0", V: o.Wind.Z0})
	}
	if o.Wind.Alpha > 0 {
		prms = append(prms, &fun.Prm{N: "alpha", V: o.Wind.Alpha})
	}
	return
}

// WavePrms returns the wave model parameters of one case
func (o *CaseData) WavePrms() (prms fun.Prms) {
	if o.Wave == nil {
		return nil
	}
	prms = fun.Prms{
		&fun.Prm{N: "H", V: o.Wave.H},
		&fun.Prm{N: "T", V: o.Wave.T},
		&fun.Prm{N: "depth", V: o.Wave.Depth},
		&fun.Prm{N: "zsurf", V: o.Wave.Zsurf},
		&fun.Prm{N: "uc", V: o.Wave.Uc},
	}
	// zero-valued entries are omitted so the model defaults apply
	if o.Wave.Rho > 0 {
		prms = append(prms, &fun.Prm{N: "rho", V: o.Wave.Rho})
	}
	if o.Wave.Cd > 0 {
		prms = append(prms, &fun.Prm{N: "cd", V: o.Wave.Cd})
	}
	if o.Wave.Cm > 0 {
		prms = append(prms, &fun.Prm{N: "cm", V: o.Wave.Cm})
	}
	return
}

// FatiguePrms returns the fatigue model parameters
func (o *FatigueData) FatiguePrms() (prms fun.Prms) {
	add := func(n string, v float64) {
		if v > 0 {
			prms = append(prms, &fun.Prm{N: n, V: v})
		}
	}
	add("m", o.M)
	add("A", o.A)
	add("Neq", o.Neq)
	add("Nlife", o.Nlife)
	add("k", o.Shape)
	add("nbins", float64(o.Nbins))
	return
}
