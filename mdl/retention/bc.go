// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// BrooksCorey implements Brooks and Corey's model
//  Par[0] = λ > 0  pore-size distribution index
//  Par[1] = ψb < 0 air-entry suction [m]
//  θ = θr + (θs - θr) (ψb/ψ)^λ  for ψ < ψb
type BrooksCorey struct {
	tbl *soil.Table
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
	allocators["brooks corey"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(tbl *soil.Table) (err error) {
	o.tbl = tbl
	return
}

// Check checks parameters
func (o BrooksCorey) Check(id int) error {
	s, err := checkSet(o.tbl, id, "bc")
	if err != nil {
		return err
	}
	if s.Par[0] <= 0 {
		return chk.Err("bc: parameter λ must be positive. λ=%g (set %d)", s.Par[0], id)
	}
	if s.Par[1] >= 0 {
		return chk.Err("bc: air-entry suction must be negative. ψb=%g (set %d)", s.Par[1], id)
	}
	return nil
}

// Theta computes θ(ψ)
func (o BrooksCorey) Theta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return saturated(s, ψ)
	}
	λ, ψb := s.Par[0], s.Par[1]
	if ψ >= ψb {
		return s.ThetaS
	}
	return s.ThetaR + (s.ThetaS-s.ThetaR)*math.Pow(ψb/ψ, λ)
}

// DTheta computes dθ/dψ
func (o BrooksCorey) DTheta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ss()
	}
	λ, ψb := s.Par[0], s.Par[1]
	if ψ >= ψb {
		return 0
	}
	return -(s.ThetaS - s.ThetaR) * λ * math.Pow(ψb/ψ, λ) / ψ
}

// D2Theta computes d²θ/dψ²
func (o BrooksCorey) D2Theta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	λ, ψb := s.Par[0], s.Par[1]
	if ψ >= ψb {
		return 0
	}
	return (s.ThetaS - s.ThetaR) * λ * (λ + 1.0) * math.Pow(ψb/ψ, λ) / (ψ * ψ)
}
