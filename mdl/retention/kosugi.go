// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Kosugi implements Kosugi's unimodal lognormal model
//  Par[0] = ψm < 0 median suction [m]
//  Par[1] = σ > 0  standard deviation of ln(ψ/ψm)
//  θ = θr + (θs - θr) ½ erfc(ln(ψ/ψm) / (σ√2))
type Kosugi struct {
	tbl *soil.Table
}

// add model to factory
func init() {
	allocators["kosugi"] = func() Model { return new(Kosugi) }
}

// Init initialises model
func (o *Kosugi) Init(tbl *soil.Table) (err error) {
	o.tbl = tbl
	return
}

// Check checks parameters
func (o Kosugi) Check(id int) error {
	s, err := checkSet(o.tbl, id, "kosugi")
	if err != nil {
		return err
	}
	return checkMode(s.Par[0], s.Par[1], id, "kosugi")
}

// Theta computes θ(ψ)
func (o Kosugi) Theta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return saturated(s, ψ)
	}
	se, _, _ := lognormal(ψ, s.Par[0], s.Par[1])
	return s.ThetaR + (s.ThetaS-s.ThetaR)*se
}

// DTheta computes dθ/dψ
func (o Kosugi) DTheta(ψ, T float64, id int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ss()
	}
	_, d1, _ := lognormal(ψ, s.Par[0], s.Par[1])
	return (s.ThetaS - s.ThetaR) * d1
}

// D2Theta computes d²θ/dψ²
func (o Kosugi) D2Theta(ψ, T float64, id int) float64 {
	if ψ >= 0 {
		return 0
	}
	s := o.tbl.Sets[id]
	_, _, d2 := lognormal(ψ, s.Par[0], s.Par[1])
	return (s.ThetaS - s.ThetaR) * d2
}

// Inflections returns the suction at which dθ/dψ peaks: ψ = ψm exp(-σ²)
func (o Kosugi) Inflections(T float64, id int) []float64 {
	s := o.tbl.Sets[id]
	return []float64{s.Par[0] * math.Exp(-s.Par[1]*s.Par[1])}
}

// lognormal computes the effective saturation of one lognormal mode and its derivatives
//  se = ½ erfc(z)  with  z = ln(ψ/ψm) / (σ√2)  and ψ, ψm < 0
func lognormal(ψ, ψm, σ float64) (se, d1, d2 float64) {
	z := math.Log(ψ/ψm) / (σ * math.Sqrt2)
	e := math.Exp(-z * z)
	c := σ * math.Sqrt(2.0*math.Pi)
	se = 0.5 * math.Erfc(z)
	d1 = -e / (c * ψ)
	d2 = e * (1.0 + math.Sqrt2*z/σ) / (c * ψ * ψ)
	return
}

// checkMode checks the parameters of one lognormal mode
func checkMode(ψm, σ float64, id int, model string) error {
	if ψm >= 0 {
		return chk.Err("%s: median suction must be negative. ψm=%g (set %d)", model, ψm, id)
	}
	if σ <= 0 {
		return chk.Err("%s: standard deviation must be positive. σ=%g (set %d)", model, σ, id)
	}
	return nil
}
