// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Romano implements the bimodal lognormal model of Romano et al.
//  Par[0] = w ∈ [0,1] weight of the first mode
//  Par[1] = σ1, Par[2] = σ2   standard deviations
//  Par[3] = ψm1, Par[4] = ψm2 median suctions (negative)
//  θ = θr + (θs - θr) [w Se1(ψ) + (1-w) Se2(ψ)]
type Romano struct {
	tbl *soil.Table
}

// add model to factory
func init() {
	allocators["romano"] = func() Model { return new(Romano) }
}

// Init initialises model
func (o *Romano) Init(tbl *soil.Table) (err error) {
	o.tbl = tbl
	return
}

// Check checks parameters
func (o Romano) Check(id int) error {
	s, err := checkSet(o.tbl, id, "romano")
	if err != nil {
		return err
	}
	if s.Par[0] < 0 || s.Par[0] > 1 {
		return chk.Err("romano: weight must be in [0,1]. w=%g (set %d)", s.Par[0], id)
	}
	if err = checkMode(s.Par[3], s.Par[1], id, "romano"); err != nil {
		return err
	}
	return checkMode(s.Par[4], s.Par[2], id, "romano")
}

// Theta computes θ(ψ)
func (o Romano) Theta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return saturated(s, ψ)
	}
	w := s.Par[0]
	se1, _, _ := lognormal(ψ, s.Par[3], s.Par[1])
	se2, _, _ := lognormal(ψ, s.Par[4], s.Par[2])
	return s.ThetaR + (s.ThetaS-s.ThetaR)*(w*se1+(1.0-w)*se2)
}

// DTheta computes dθ/dψ
func (o Romano) DTheta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ss()
	}
	w := s.Par[0]
	_, a, _ := lognormal(ψ, s.Par[3], s.Par[1])
	_, b, _ := lognormal(ψ, s.Par[4], s.Par[2])
	return (s.ThetaS - s.ThetaR) * (w*a + (1.0-w)*b)
}

// D2Theta computes d²θ/dψ²
func (o Romano) D2Theta(ψ, T float64, id int) float64 {
	if ψ >= 0 {
		return 0
	}
	s := o.tbl.Sets[id]
	w := s.Par[0]
	_, _, a := lognormal(ψ, s.Par[3], s.Par[1])
	_, _, b := lognormal(ψ, s.Par[4], s.Par[2])
	return (s.ThetaS - s.ThetaR) * (w*a + (1.0-w)*b)
}

// Inflections returns the peaks of each mode, ψmi exp(-σi²), most negative first
func (o Romano) Inflections(T float64, id int) []float64 {
	s := o.tbl.Sets[id]
	x1 := s.Par[3] * math.Exp(-s.Par[1]*s.Par[1])
	x2 := s.Par[4] * math.Exp(-s.Par[2]*s.Par[2])
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return []float64{x1, x2}
}
