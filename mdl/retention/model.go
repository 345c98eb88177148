// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements soil-water retention curves (closure equations)
//  θ(ψ) gives the volumetric water content as a function of the suction ψ (negative
//  in unsaturated conditions). For ψ ≥ 0 all models return θs + Ss ψ where Ss is the
//  specific storage of the parameter set.
//  References:
//   [1] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44(5), 892-898
//   [2] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers, Colorado State University
//   [3] Kosugi K (1996) Lognormal distribution model for unsaturated soil hydraulic
//       properties. Water Resources Research, 32(9), 2697-2703
//   [4] Romano N, Nasta P, Severino G and Hopmans JW (2011) Using bimodal lognormal
//       functions to describe soil hydraulic properties. Soil Sci Soc Am J, 75(2), 468-480
package retention

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Model implements a soil-water retention curve
//  ψ  -- suction (pressure head) [m]
//  T  -- temperature [K]
//  id -- index of parameter set in soil table
type Model interface {
	Init(tbl *soil.Table) error           // initialises model with the table of parameters
	Check(id int) error                   // checks whether parameter set id is valid for this model
	Theta(ψ, T float64, id int) float64   // computes θ(ψ)
	DTheta(ψ, T float64, id int) float64  // computes dθ/dψ
	D2Theta(ψ, T float64, id int) float64 // computes d²θ/dψ²
}

// Inflector is implemented by models whose derivative dθ/dψ has one or more peaks
type Inflector interface {
	Inflections(T float64, id int) []float64 // approximate suctions of the peaks of dθ/dψ, most negative first
}

// New returns new retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[key(name)]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// key normalises model names; e.g. "Van Genuchten" => "van genuchten"
func key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// saturated computes θ for ψ ≥ 0
func saturated(s *soil.Set, ψ float64) float64 {
	return s.ThetaS + s.Ss()*ψ
}

// checkSet checks the common part of a parameter set
func checkSet(tbl *soil.Table, id int, model string) (s *soil.Set, err error) {
	if tbl == nil {
		return nil, chk.Err("%s: model must be initialised with a table of parameters", model)
	}
	err = tbl.Check(id)
	if err != nil {
		return nil, chk.Err("%s: %v", model, err)
	}
	return tbl.Sets[id], nil
}
