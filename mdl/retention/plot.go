// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/cpmech/gosl/utl"
)

// Curve tabulates a retention model
//  ψ0, ψf -- suction range
//  npts   -- number of stations
//  T      -- temperature
//  id     -- parameter set
func Curve(mdl Model, ψ0, ψf float64, npts int, T float64, id int) (Ψ, Θ, D []float64) {
	Ψ = utl.LinSpace(ψ0, ψf, npts)
	Θ = make([]float64, npts)
	D = make([]float64, npts)
	for i, ψ := range Ψ {
		Θ[i] = mdl.Theta(ψ, T, id)
		D[i] = mdl.DTheta(ψ, T, id)
	}
	return
}
