// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eqstate implements the equation of state of the water volume in a cell
//  V(ψ) = θ(ψ) × area
//  and the splitting V = P - Q used by the nested Newton method, where P is the
//  non-decreasing part of dV/dψ and Q is the remainder.
//  References:
//   [1] Casulli V and Zanolli P (2010) A nested Newton-type algorithm for finite volume
//       methods solving Richards' equation in mixed form. SIAM J Sci Comput, 32(4), 2255-2273
package eqstate

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
)

// Unset is the breakpoint value stored by models that do not split the volume curve
const Unset = -9999.0

// Cells gives access to the cell data needed by the equation of state
//  implementations must be comparable; e.g. pointers
type Cells interface {
	Area(e int) float64                // area of element e
	Star(e int) (s1, s2, s3 float64)   // breakpoints of element e
	SetStar(e int, s1, s2, s3 float64) // stores the breakpoints of element e
}

// Model defines the equation of state of the water volume
//  ψ  -- suction [m]
//  T  -- temperature [K]
//  id -- index of parameter set in soil table
//  e  -- element id
type Model interface {
	Init(closure retention.Model, cells Cells, finder RootFinder) error // initialises model; finder may be nil
	Volume(ψ, T float64, id, e int) float64                             // water volume
	DVolume(ψ, T float64, id, e int) float64                            // dV/dψ
	D2Volume(ψ, T float64, id, e int) float64                           // d²V/dψ²
	P(ψ, T float64, id, e int) float64                                  // non-decreasing part of dV/dψ
	PIntegral(ψ, T float64, id, e int) float64                          // antiderivative of P
	ComputeXStar(T float64, id, e int) error                            // computes and stores the breakpoints of element e
	InitialGuess(ψ float64, id, e int) float64                          // starting point of the nested Newton iterations
}

// New returns a new equation of state
func New(name string) (model Model, err error) {
	allocator, ok := allocators[key(name)]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eqstate' database", name)
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

func key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// volume implements the part shared by all models: V = θ × area
type volume struct {
	closure retention.Model
	cells   Cells
	finder  RootFinder
}

// Init initialises this structure; a model already bound to other cells cannot be rebound
func (o *volume) Init(closure retention.Model, cells Cells, finder RootFinder) (err error) {
	if closure == nil || cells == nil {
		return chk.Err("eqstate: closure equation and cells must be non-nil")
	}
	if o.cells != nil && o.cells != cells {
		return chk.Err("eqstate: model is already bound to other cells")
	}
	if finder == nil {
		finder = new(Brent)
	}
	o.closure, o.cells, o.finder = closure, cells, finder
	return
}

// Volume computes the water volume
func (o *volume) Volume(ψ, T float64, id, e int) float64 {
	return o.closure.Theta(ψ, T, id) * o.cells.Area(e)
}

// DVolume computes dV/dψ
func (o *volume) DVolume(ψ, T float64, id, e int) float64 {
	return o.closure.DTheta(ψ, T, id) * o.cells.Area(e)
}

// D2Volume computes d²V/dψ²
func (o *volume) D2Volume(ψ, T float64, id, e int) float64 {
	return o.closure.D2Theta(ψ, T, id) * o.cells.Area(e)
}
