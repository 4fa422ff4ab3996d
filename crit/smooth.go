// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Max returns the plain maximum of vals
func Max(vals ...float64) (res float64) {
	res = math.Inf(-1)
	for _, v := range vals {
		if v > res {
			res = v
		}
	}
	return
}

// KS returns the Kreisselmeier-Steinhauser smooth maximum of vals
//
//	KS(g) = max(g) + ln(Σ exp(ρ·(gᵢ - max(g)))) / ρ
//
// a conservative, differentiable upper bound on the maximum; larger ρ
// follows the true maximum more closely
func KS(ρ float64, vals ...float64) float64 {
	m := Max(vals...)
	var s float64
	for _, v := range vals {
		s += math.Exp(ρ * (v - m))
	}
	return m + math.Log(s)/ρ
}

// Aggregate combines utilization values according to the configured policy:
// "max" (default) or "ks" with parameter ρ
func Aggregate(policy string, ρ float64, vals ...float64) float64 {
	switch policy {
	case "", "max":
		return Max(vals...)
	case "ks":
		return KS(ρ, vals...)
	}
	chk.Panic("crit: unknown aggregation policy %q", policy)
	return 0
}
