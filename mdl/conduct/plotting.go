// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/utl"
)

// Curve tabulates the hydraulic conductivity over the suction range [ψ0, ψf]
func Curve(o Model, ψ0, ψf float64, npts int, T float64, id int) (Ψ, K []float64) {
	Ψ = utl.LinSpace(ψ0, ψf, npts)
	K = make([]float64, npts)
	for i, ψ := range Ψ {
		K[i] = o.K(ψ, T, id, 0)
	}
	return
}
