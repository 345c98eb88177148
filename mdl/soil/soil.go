// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil implements the table of soil hydraulic parameters shared by
// retention, equation-state and conductivity models
package soil

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// GammaW is the specific weight of water [N/m³]; converts compressibilities [1/Pa] into [1/m]
const GammaW = 9810.0

// Set holds one set of soil hydraulic parameters
//  Par holds up to five shape parameters of the retention curve; each
//  retention model documents which entries it reads
type Set struct {
	ThetaS  float64    `json:"thetas" yaml:"thetas"`   // saturated water content
	ThetaR  float64    `json:"thetar" yaml:"thetar"`   // residual water content
	Par     [5]float64 `json:"par" yaml:"par"`         // shape parameters of the retention curve
	Ks      float64    `json:"ks" yaml:"ks"`           // saturated hydraulic conductivity [m/s]
	AlphaSS float64    `json:"alphass" yaml:"alphass"` // compressibility of the soil matrix [1/Pa]
	BetaSS  float64    `json:"betass" yaml:"betass"`   // compressibility of water [1/Pa]
}

// Ss returns the specific storage [1/m] used for ψ ≥ 0
func (o *Set) Ss() float64 {
	return GammaW * (o.AlphaSS + o.ThetaS*o.BetaSS)
}

// Params returns the set as a list of named parameters
func (o *Set) Params() dbf.Params {
	prms := dbf.Params{
		&dbf.P{N: "thetas", V: o.ThetaS},
		&dbf.P{N: "thetar", V: o.ThetaR},
	}
	for i, v := range o.Par {
		prms = append(prms, &dbf.P{N: io.Sf("par%d", i+1), V: v})
	}
	return append(prms,
		&dbf.P{N: "ks", V: o.Ks},
		&dbf.P{N: "alphass", V: o.AlphaSS},
		&dbf.P{N: "betass", V: o.BetaSS},
	)
}

// Table holds all parameter sets; sets are addressed directly by the element parameter id
type Table struct {
	Sets   []*Set  `json:"sets" yaml:"sets"`     // parameter sets
	Tref   float64 `json:"tref" yaml:"tref"`     // reference temperature of the retention curves [K]
	Beta0  float64 `json:"beta0" yaml:"beta0"`   // Grant and Salehzadeh β0 [K]
	TrefKs float64 `json:"trefks" yaml:"trefks"` // temperature at which the saturated conductivities were measured [K]
}

// SetDefault sets the default temperature constants when they are not given
func (o *Table) SetDefault() {
	if o.Tref == 0 {
		o.Tref = 278.15
	}
	if o.Beta0 == 0 {
		o.Beta0 = -776.45
	}
	if o.TrefKs == 0 {
		o.TrefKs = 293.15
	}
}

// Get returns the parameter set with the given id
func (o *Table) Get(id int) (*Set, error) {
	if id < 0 || id >= len(o.Sets) || o.Sets[id] == nil {
		return nil, chk.Err("soil parameter set %d is not available; table has %d sets", id, len(o.Sets))
	}
	return o.Sets[id], nil
}

// Check checks the basic consistency of the parameter set with the given id
func (o *Table) Check(id int) error {
	s, err := o.Get(id)
	if err != nil {
		return err
	}
	if s.ThetaR < 0 || s.ThetaS <= s.ThetaR || s.ThetaS > 1 {
		return chk.Err("soil parameter set %d: water contents must satisfy 0 ≤ θr < θs ≤ 1. θr=%g, θs=%g", id, s.ThetaR, s.ThetaS)
	}
	if s.Ks <= 0 {
		return chk.Err("soil parameter set %d: saturated conductivity must be positive. ks=%g", id, s.Ks)
	}
	if s.AlphaSS < 0 || s.BetaSS < 0 {
		return chk.Err("soil parameter set %d: compressibilities must not be negative. αss=%g, βss=%g", id, s.AlphaSS, s.BetaSS)
	}
	return nil
}
