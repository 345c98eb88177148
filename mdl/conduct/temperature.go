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

// Viscosity corrects a conductivity model for the temperature dependence of the water viscosity
//  k(T) = k(Tref) μ(Tref) / μ(T)
//  μ(T) = 2.414e-5 × 10^(247.8 / (T - 140))  [Pa s], T in Kelvin
type Viscosity struct {
	Base Model   // model at reference temperature
	Tref float64 // reference temperature of the saturated conductivity [K]
}

// NewTemperature returns base corrected by the temperature model with the given name
//  "notemperature", "none" or "" -- returns base
//  "viscosity"                   -- returns a Viscosity decorator with Tref = tbl.TrefKs
func NewTemperature(name string, base Model, tbl *soil.Table) (Model, error) {
	switch key(name) {
	case "", "none", "notemperature":
		return base, nil
	case "viscosity":
		if tbl == nil || tbl.TrefKs <= 0 {
			return nil, chk.Err("viscosity model needs a positive reference temperature of the saturated conductivity")
		}
		return &Viscosity{Base: base, Tref: tbl.TrefKs}, nil
	}
	return nil, chk.Err("temperature model %q is not available in 'conduct' database", name)
}

// Init initialises this structure
func (o *Viscosity) Init(closure retention.Model, tbl *soil.Table) error {
	return o.Base.Init(closure, tbl)
}

// Check checks parameter set id
func (o *Viscosity) Check(id int) error {
	return o.Base.Check(id)
}

// K computes the hydraulic conductivity
func (o *Viscosity) K(ψ, T float64, id, element int) float64 {
	return o.Base.K(ψ, T, id, element) * Mu(o.Tref) / Mu(T)
}

// Mu computes the dynamic viscosity of water [Pa s] at temperature T [K]
func Mu(T float64) float64 {
	return 2.414e-5 * math.Pow(10, 247.8/(T-140.0))
}
