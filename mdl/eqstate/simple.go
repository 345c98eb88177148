// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqstate

// Simple implements the equation of state of closure equations whose derivative has
// a single peak at ψ = 0 (e.g. Gardner); the whole volume curve goes into P
type Simple struct {
	volume
}

// add model to factory
func init() {
	allocators["simple"] = func() Model { return new(Simple) }
	allocators["gardner"] = func() Model { return new(Simple) }
}

// P returns dV/dψ
func (o *Simple) P(ψ, T float64, id, e int) float64 {
	return o.DVolume(ψ, T, id, e)
}

// PIntegral returns V
func (o *Simple) PIntegral(ψ, T float64, id, e int) float64 {
	return o.Volume(ψ, T, id, e)
}

// ComputeXStar stores the Unset sentinel
func (o *Simple) ComputeXStar(T float64, id, e int) error {
	o.cells.SetStar(e, Unset, Unset, Unset)
	return nil
}

// InitialGuess returns ψ
func (o *Simple) InitialGuess(ψ float64, id, e int) float64 {
	return ψ
}
