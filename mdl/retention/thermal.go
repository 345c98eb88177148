// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Thermal decorates a retention model with the temperature dependence of Grant and Salehzadeh
//  θ(ψ, T) = θref(ψ (β0 + Tref) / (β0 + T))
//  References:
//   [1] Grant SA and Salehzadeh A (1996) Calculation of temperature effects on wetting
//       coefficients of porous solids and their capillary pressure functions.
//       Water Resources Research, 32(2), 261-270
type Thermal struct {
	Base Model // model at reference temperature
	tbl  *soil.Table
}

// NewThermal returns a temperature dependent version of base
//  name -- "none" or "" returns base; "grant" returns a Thermal decorator
func NewThermal(name string, base Model, tbl *soil.Table) (Model, error) {
	switch key(name) {
	case "", "none", "notemperature":
		return base, nil
	case "grant", "grant salehzadeh":
		if tbl == nil {
			return nil, chk.Err("retention: temperature model %q requires a table of parameters", name)
		}
		return &Thermal{Base: base, tbl: tbl}, nil
	}
	return nil, chk.Err("temperature model %q is not available in 'retention' database", name)
}

// Init initialises model
func (o *Thermal) Init(tbl *soil.Table) (err error) {
	o.tbl = tbl
	return o.Base.Init(tbl)
}

// Check checks parameters
func (o *Thermal) Check(id int) error {
	if o.tbl.Beta0+o.tbl.Tref == 0 {
		return chk.Err("retention: β0 + Tref must not be zero. β0=%g, Tref=%g", o.tbl.Beta0, o.tbl.Tref)
	}
	return o.Base.Check(id)
}

// Theta computes θ(ψ, T)
func (o *Thermal) Theta(ψ, T float64, id int) float64 {
	if ψ >= 0 {
		return o.Base.Theta(ψ, T, id)
	}
	f := o.factor(T)
	return o.Base.Theta(ψ*f, T, id)
}

// DTheta computes dθ/dψ
func (o *Thermal) DTheta(ψ, T float64, id int) float64 {
	if ψ >= 0 {
		return o.Base.DTheta(ψ, T, id)
	}
	f := o.factor(T)
	return o.Base.DTheta(ψ*f, T, id) * f
}

// D2Theta computes d²θ/dψ²
func (o *Thermal) D2Theta(ψ, T float64, id int) float64 {
	if ψ >= 0 {
		return o.Base.D2Theta(ψ, T, id)
	}
	f := o.factor(T)
	return o.Base.D2Theta(ψ*f, T, id) * f * f
}

// Inflections returns the peaks of the base model moved to temperature T
func (o *Thermal) Inflections(T float64, id int) []float64 {
	m, ok := o.Base.(Inflector)
	if !ok {
		return nil
	}
	f := o.factor(T)
	res := m.Inflections(T, id)
	for i := range res {
		res[i] /= f
	}
	return res
}

// factor returns the suction scaling factor (β0 + Tref)/(β0 + T)
func (o *Thermal) factor(T float64) float64 {
	return (o.tbl.Beta0 + o.tbl.Tref) / (o.tbl.Beta0 + T)
}
