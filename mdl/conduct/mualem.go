// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// mualem holds the data shared by all Mualem-type models
//  The effective saturation Se = (θ - θr)/(θs - θr) is computed by the closure equation
type mualem struct {
	closure retention.Model
	tbl     *soil.Table
	name    string
}

// Init initialises this structure
func (o *mualem) Init(closure retention.Model, tbl *soil.Table) (err error) {
	if closure == nil || tbl == nil {
		return chk.Err("%s: closure equation and table of parameters must be non-nil", o.name)
	}
	o.closure, o.tbl = closure, tbl
	return
}

// check checks the common parameters
func (o *mualem) check(id int) (s *soil.Set, err error) {
	if o.tbl == nil {
		return nil, chk.Err("%s: model must be initialised", o.name)
	}
	if err = o.tbl.Check(id); err != nil {
		return nil, chk.Err("%s: %v", o.name, err)
	}
	return o.tbl.Sets[id], nil
}

// se computes the effective saturation, clipped to [0, 1]
func (o *mualem) se(ψ, T float64, s *soil.Set, id int) float64 {
	se := (o.closure.Theta(ψ, T, id) - s.ThetaR) / (s.ThetaS - s.ThetaR)
	return math.Min(math.Max(se, 0), 1)
}

// MualemVG implements the Mualem-van Genuchten model
//  kr = √Se [1 - (1 - Se^(1/m))^m]²   with m = 1 - 1/n and n = Par[0]
type MualemVG struct {
	mualem
}

// MualemBC implements the Mualem-Brooks-Corey model
//  kr = Se^(5/2 + 2/λ)   with λ = Par[0]
type MualemBC struct {
	mualem
}

// MualemKosugi implements the Mualem-Kosugi model
//  kr = √Se [½ erfc(ln(ψ/ψm)/(σ√2) + σ/√2)]²   with ψm = Par[0] and σ = Par[1]
type MualemKosugi struct {
	mualem
}

// MualemRomano implements the Mualem integral of the bimodal lognormal model
//  kr = √Se [Σ cᵢ Qᵢ(ψ) / Σ cᵢ]²
//  cᵢ = wᵢ exp(σᵢ²/2) / |ψmᵢ|
//  Qᵢ = ½ erfc(ln(ψ/ψmᵢ)/(σᵢ√2) + σᵢ/√2)
//  with w₁ = Par[0], w₂ = 1 - Par[0], σ₁ = Par[1], σ₂ = Par[2], ψm₁ = Par[3], ψm₂ = Par[4]
type MualemRomano struct {
	mualem
}

// add models to factory
func init() {
	for _, name := range []string{"mvg", "mualem vg", "mualem van genuchten"} {
		allocators[name] = func() Model { return &MualemVG{mualem{name: "mualem vg"}} }
	}
	for _, name := range []string{"mbc", "mualem bc", "mualem brooks corey"} {
		allocators[name] = func() Model { return &MualemBC{mualem{name: "mualem bc"}} }
	}
	for _, name := range []string{"mk", "mualem kosugi"} {
		allocators[name] = func() Model { return &MualemKosugi{mualem{name: "mualem kosugi"}} }
	}
	for _, name := range []string{"mr", "mualem romano"} {
		allocators[name] = func() Model { return &MualemRomano{mualem{name: "mualem romano"}} }
	}
}

// Check checks parameters
func (o *MualemVG) Check(id int) error {
	s, err := o.check(id)
	if err != nil {
		return err
	}
	if s.Par[0] <= 1 {
		return chk.Err("%s: parameter n must be greater than 1. n=%g (set %d)", o.name, s.Par[0], id)
	}
	return nil
}

// K computes the hydraulic conductivity
func (o *MualemVG) K(ψ, T float64, id, element int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ks
	}
	m := 1.0 - 1.0/s.Par[0]
	se := o.se(ψ, T, s, id)
	a := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/m), m)
	return s.Ks * math.Sqrt(se) * a * a
}

// Check checks parameters
func (o *MualemBC) Check(id int) error {
	s, err := o.check(id)
	if err != nil {
		return err
	}
	if s.Par[0] <= 0 {
		return chk.Err("%s: parameter λ must be positive. λ=%g (set %d)", o.name, s.Par[0], id)
	}
	return nil
}

// K computes the hydraulic conductivity
func (o *MualemBC) K(ψ, T float64, id, element int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ks
	}
	return s.Ks * math.Pow(o.se(ψ, T, s, id), 2.5+2.0/s.Par[0])
}

// Check checks parameters
func (o *MualemKosugi) Check(id int) error {
	s, err := o.check(id)
	if err != nil {
		return err
	}
	return checkMode(s.Par[0], s.Par[1], id, o.name)
}

// K computes the hydraulic conductivity
func (o *MualemKosugi) K(ψ, T float64, id, element int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ks
	}
	r := q(ψ, s.Par[0], s.Par[1])
	return s.Ks * math.Sqrt(o.se(ψ, T, s, id)) * r * r
}

// Check checks parameters
func (o *MualemRomano) Check(id int) error {
	s, err := o.check(id)
	if err != nil {
		return err
	}
	if s.Par[0] < 0 || s.Par[0] > 1 {
		return chk.Err("%s: weight must be in [0,1]. w=%g (set %d)", o.name, s.Par[0], id)
	}
	if err = checkMode(s.Par[3], s.Par[1], id, o.name); err != nil {
		return err
	}
	return checkMode(s.Par[4], s.Par[2], id, o.name)
}

// K computes the hydraulic conductivity
func (o *MualemRomano) K(ψ, T float64, id, element int) float64 {
	s := o.tbl.Sets[id]
	if ψ >= 0 {
		return s.Ks
	}
	w, σ1, σ2, ψm1, ψm2 := s.Par[0], s.Par[1], s.Par[2], s.Par[3], s.Par[4]
	c1 := w * math.Exp(σ1*σ1/2.0) / math.Abs(ψm1)
	c2 := (1.0 - w) * math.Exp(σ2*σ2/2.0) / math.Abs(ψm2)
	r := (c1*q(ψ, ψm1, σ1) + c2*q(ψ, ψm2, σ2)) / (c1 + c2)
	return s.Ks * math.Sqrt(o.se(ψ, T, s, id)) * r * r
}

// q computes ½ erfc(ln(ψ/ψm)/(σ√2) + σ/√2)
func q(ψ, ψm, σ float64) float64 {
	return 0.5 * math.Erfc(math.Log(ψ/ψm)/(σ*math.Sqrt2)+σ/math.Sqrt2)
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
