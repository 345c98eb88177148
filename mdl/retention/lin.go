// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Lin implements a linear retention model: θ(ψ) := θs - λ (ψae - ψ)
//  Par[0] = λ > 0   slope coefficient [1/m]
//  Par[1] = ψae ≤ 0 air-entry suction [m]
//  θ = θr for ψ below the residual suction ψres = ψae - (θs - θr)/λ
type Lin struct {
	tbl *soil.Table
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(tbl *soil.Table) (err error) {
	o.tbl = tbl
	return
}

// Check checks parameters
func (o Lin) Check(id int) error {
	s, err := checkSet(o.tbl, id, "lin")
	if err != nil {
		return err
	}
	if s.Par[0] <= 0 {
		return chk.Err("lin: slope must be positive. λ=%g (set %d)", s.Par[0], id)
	}
	if s.Par[1] > 0 {
		return chk.Err("lin: air-entry suction must not be positive. ψae=%g (set %d)", s.Par[1], id)
	}
	return nil
}

// Theta computes θ(ψ)
func (o Lin) Theta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return saturated(s, ψ)
	}
	λ, ψae := s.Par[0], s.Par[1]
	if ψ >= ψae {
		return s.ThetaS
	}
	if ψ <= o.ψres(s) {
		return s.ThetaR
	}
	return s.ThetaS - λ*(ψae-ψ)
}

// DTheta computes dθ/dψ
func (o Lin) DTheta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ss()
	}
	if ψ >= s.Par[1] || ψ <= o.ψres(s) {
		return 0
	}
	return s.Par[0]
}

// D2Theta computes d²θ/dψ²
func (o Lin) D2Theta(ψ, T float64, id int) float64 {
	return 0
}

// ψres returns the residual suction
func (o Lin) ψres(s *soil.Set) float64 {
	return s.Par[1] - (s.ThetaS-s.ThetaR)/s.Par[0]
}
