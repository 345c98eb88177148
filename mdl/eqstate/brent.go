// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqstate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// RootFinder finds a root of f in [a, b]
type RootFinder interface {
	Root(f func(x float64) float64, a, b float64) (float64, error)
}

// Brent finds roots with Brent's method
type Brent struct {
	Tol   float64 // tolerance; zero selects the default
	MaxIt int     // max number of iterations; zero selects the default
}

// Root finds a root of f in [a, b]; the root must be bracketed
func (o *Brent) Root(f func(x float64) float64, a, b float64) (x float64, err error) {
	if a > b {
		a, b = b, a
	}
	fa, fb := f(a), f(b)
	switch {
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case fa*fb > 0:
		return 0, chk.Err("root is not bracketed in [%g, %g]: f(a)=%g, f(b)=%g", a, b, fa, fb)
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("brent failed in [%g, %g]: %v", a, b, r)
		}
	}()
	solver := num.NewBrent(f, nil)
	if o.Tol > 0 {
		solver.Tol = o.Tol
	}
	if o.MaxIt > 0 {
		solver.MaxIt = o.MaxIt
	}
	x = solver.Root(a, b)
	return
}
