// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for the unsaturated hydraulic conductivity and
// for the conductivity at the interface between two cells
//  References:
//   [1] Mualem Y (1976) A new model for predicting the hydraulic conductivity of
//       unsaturated porous media. Water Resources Research, 12(3), 513-522
package conduct

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Model defines hydraulic conductivity models
type Model interface {
	Init(closure retention.Model, tbl *soil.Table) error // initialises this structure
	Check(id int) error                                  // checks parameter set id
	K(ψ, T float64, id, element int) float64             // computes the hydraulic conductivity
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[key(name)]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() []string {
	return sortedKeys(allocators)
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// key normalises model names; e.g. "Mualem Van Genuchten" => "mualem van genuchten"
func key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func sortedKeys[T any](m map[string]T) (names []string) {
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
