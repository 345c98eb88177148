// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// VanGen implements van Genuchten's model
//  Par[0] = n > 1
//  Par[1] = α > 0 [1/m]
//  m = 1 - 1/n
type VanGen struct {
	tbl *soil.Table
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
	allocators["van genuchten"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(tbl *soil.Table) (err error) {
	o.tbl = tbl
	return
}

// Check checks parameters
func (o VanGen) Check(id int) error {
	s, err := checkSet(o.tbl, id, "vg")
	if err != nil {
		return err
	}
	if s.Par[0] <= 1 {
		return chk.Err("vg: parameter n must be greater than 1. n=%g (set %d)", s.Par[0], id)
	}
	if s.Par[1] <= 0 {
		return chk.Err("vg: parameter α must be positive. α=%g (set %d)", s.Par[1], id)
	}
	return nil
}

// Theta computes θ(ψ)
func (o VanGen) Theta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return saturated(s, ψ)
	}
	n, α := s.Par[0], s.Par[1]
	m := 1.0 - 1.0/n
	c := math.Pow(-α*ψ, n)
	return s.ThetaR + (s.ThetaS-s.ThetaR)*math.Pow(1.0+c, -m)
}

// DTheta computes dθ/dψ
func (o VanGen) DTheta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ss()
	}
	n, α := s.Par[0], s.Par[1]
	m := 1.0 - 1.0/n
	h := -ψ
	c := math.Pow(α*h, n)
	return (s.ThetaS - s.ThetaR) * m * n * c * math.Pow(1.0+c, -m-1.0) / h
}

// D2Theta computes d²θ/dψ²
func (o VanGen) D2Theta(ψ, T float64, id int) float64 {
	if ψ >= 0 {
		return 0
	}
	s := o.tbl.Sets[id]
	n, α := s.Par[0], s.Par[1]
	m := 1.0 - 1.0/n
	h := -ψ
	c := math.Pow(α*h, n)
	return -(s.ThetaS - s.ThetaR) * m * n * c * math.Pow(1.0+c, -m-2.0) * ((n-1.0)*(1.0+c) - (m+1.0)*n*c) / (h * h)
}

// Inflections returns the suction at which dθ/dψ peaks: ψ = -m^(1/n) / α
func (o VanGen) Inflections(T float64, id int) []float64 {
	s := o.tbl.Sets[id]
	n, α := s.Par[0], s.Par[1]
	m := 1.0 - 1.0/n
	return []float64{-math.Pow(m, 1.0/n) / α}
}
