// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_errs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errs01")

	de := Domain("bad diameter d=%g", -1.0)
	chk.String(tst, de.Error(), "bad diameter d=-1")
	if !IsDomain(de) || IsSolver(de) {
		tst.Errorf("domain error misclassified")
		return
	}

	se := Solver("singular matrix at equation %d", 3)
	chk.String(tst, se.Error(), "singular matrix at equation 3")
	if !IsSolver(se) || IsDomain(se) {
		tst.Errorf("solver error misclassified")
		return
	}

	if IsDomain(nil) || IsSolver(nil) {
		tst.Errorf("nil must not classify as any error kind")
		return
	}
}
