// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nnewton

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// ErrNotConverged indicates that the iterations did not reach the tolerance
var ErrNotConverged = errors.New("nnewton: iterations did not converge")

// NotConvergedError wraps ErrNotConverged with the state of the iterations
type NotConvergedError struct {
	Loop  string  // "outer", "inner" or "cg"
	It    int     // number of iterations performed
	Norm  float64 // last residual norm
	Tol   float64 // tolerance
	Outer int     // outer iteration at failure
}

func (e *NotConvergedError) Error() string {
	return io.Sf("%v: %s loop stopped after %d iterations (outer iteration %d) with residual %g > %g", ErrNotConverged, e.Loop, e.It, e.Outer, e.Norm, e.Tol)
}

func (e *NotConvergedError) Unwrap() error {
	return ErrNotConverged
}
