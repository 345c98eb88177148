// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Interface reduces the conductivities of the two cells sharing an edge to a single value
//  kR, kL -- conductivities of right and left cells
//  aR, aL -- areas of right and left cells
type Interface interface {
	Compute(kR, kL, aR, aL float64) float64
}

// NewInterface returns a new interface conductivity model
func NewInterface(name string) (Interface, error) {
	allocator, ok := ifaceAllocators[key(name)]
	if !ok {
		return nil, chk.Err("interface model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// InterfaceNames returns the names of all interface models
func InterfaceNames() []string {
	return sortedKeys(ifaceAllocators)
}

// ifaceAllocators holds all available interface models
var ifaceAllocators = map[string]func() Interface{
	"mean":              func() Interface { return Mean{} },
	"arithmetic mean":   func() Interface { return Mean{} },
	"max":               func() Interface { return Max{} },
	"min":               func() Interface { return Min{} },
	"weighted":          func() Interface { return Weighted{} },
	"weighted average":  func() Interface { return Weighted{} },
	"harmonic":          func() Interface { return Harmonic{} },
	"weighted harmonic": func() Interface { return Harmonic{} },
}

// Mean computes the arithmetic mean
type Mean struct{}

// Compute computes the interface conductivity
func (Mean) Compute(kR, kL, aR, aL float64) float64 {
	return 0.5 * (kR + kL)
}

// Max takes the largest conductivity
type Max struct{}

// Compute computes the interface conductivity
func (Max) Compute(kR, kL, aR, aL float64) float64 {
	return math.Max(kR, kL)
}

// Min takes the smallest conductivity
type Min struct{}

// Compute computes the interface conductivity
func (Min) Compute(kR, kL, aR, aL float64) float64 {
	return math.Min(kR, kL)
}

// Weighted computes the area-weighted arithmetic mean
type Weighted struct{}

// Compute computes the interface conductivity
func (Weighted) Compute(kR, kL, aR, aL float64) float64 {
	if aR+aL <= 0 {
		return 0.5 * (kR + kL)
	}
	return (kR*aR + kL*aL) / (aR + aL)
}

// Harmonic computes the area-weighted harmonic mean
//  conductivities must be positive; they are floored by the caller
type Harmonic struct{}

// Compute computes the interface conductivity
func (Harmonic) Compute(kR, kL, aR, aL float64) float64 {
	if aR+aL <= 0 {
		aR, aL = 1, 1
	}
	return (aR + aL) / (aR/kR + aL/kL)
}
