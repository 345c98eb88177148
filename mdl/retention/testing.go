// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Check checks the derivatives of a retention model against the 5-point central difference
//  ψ0, ψf -- suction range
//  npts   -- number of stations
//  tolD1  -- tolerance for dθ/dψ
//  tolD2  -- tolerance for d²θ/dψ²
//  ψSkip  -- suctions where derivatives are not continuous
func Check(tst *testing.T, mdl Model, ψ0, ψf float64, npts int, T float64, id int, tolD1, tolD2 float64, ψSkip []float64, tolSkip float64, verbose bool) {
	h := 1e-6
	for _, ψ := range utl.LinSpace(ψ0, ψf, npts) {

		// skip point on checking of derivatives
		if doskip(ψ, ψSkip, tolSkip) || doskip(ψ, []float64{0}, 2*h) {
			continue
		}

		// dθ/dψ
		chk.DerivScaSca(tst, io.Sf("dθ/dψ @ %g", ψ), tolD1, mdl.DTheta(ψ, T, id), ψ, h, verbose, func(x float64) float64 {
			return mdl.Theta(x, T, id)
		})

		// d²θ/dψ²
		chk.DerivScaSca(tst, io.Sf("d²θ/dψ² @ %g", ψ), tolD2, mdl.D2Theta(ψ, T, id), ψ, h, verbose, func(x float64) float64 {
			return mdl.DTheta(x, T, id)
		})
	}
}

// doskip analyse whether a point should be skip or not
func doskip(x float64, xskip []float64, tol float64) bool {
	for _, v := range xskip {
		if math.Abs(x-v) < tol {
			return true
		}
	}
	return false
}
