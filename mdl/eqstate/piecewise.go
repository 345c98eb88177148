// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqstate

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
)

// Piecewise implements the equation of state of closure equations whose derivative has
// one or two peaks (unimodal or bimodal curves)
//
//  The breakpoints s1 ≤ s3 ≤ s2 ≤ 0 are the peaks (s1, s2) and the trough (s3) of dV/dψ.
//  With V' = dV/dψ and C = V'(s2) + V'(s1) - V'(s3):
//
//   P(ψ) = V'(ψ)                     ψ ≤ s1
//        = V'(s1)                    s1 < ψ < s3
//        = V'(ψ) + V'(s1) - V'(s3)   s3 ≤ ψ ≤ s2
//        = C                         s2 < ψ < 0
//        = C + V'(ψ)                 ψ ≥ 0
//
//  Unimodal curves have s1 = s2 = s3.
type Piecewise struct {
	volume
}

// add model to factory
func init() {
	allocators["piecewise"] = func() Model { return new(Piecewise) }
	allocators["romano"] = func() Model { return new(Piecewise) }
}

// P computes the non-decreasing part of dV/dψ
func (o *Piecewise) P(ψ, T float64, id, e int) float64 {
	s1, s2, s3 := o.cells.Star(e)
	switch {
	case ψ <= s1:
		return o.DVolume(ψ, T, id, e)
	case ψ < s3:
		return o.DVolume(s1, T, id, e)
	case ψ <= s2:
		return o.DVolume(ψ, T, id, e) + o.DVolume(s1, T, id, e) - o.DVolume(s3, T, id, e)
	case ψ < 0:
		return o.plateau(T, id, e, s1, s2, s3)
	}
	return o.plateau(T, id, e, s1, s2, s3) + o.DVolume(ψ, T, id, e)
}

// PIntegral computes the antiderivative of P, equal to V for ψ ≤ s1
func (o *Piecewise) PIntegral(ψ, T float64, id, e int) float64 {
	s1, s2, s3 := o.cells.Star(e)
	if ψ <= s1 {
		return o.Volume(ψ, T, id, e)
	}
	v1, d1 := o.Volume(s1, T, id, e), o.DVolume(s1, T, id, e)
	if ψ < s3 {
		return v1 + d1*(ψ-s1)
	}
	v3, d3 := o.Volume(s3, T, id, e), o.DVolume(s3, T, id, e)
	r3 := func(x float64) float64 {
		return v1 + d1*(s3-s1) + o.Volume(x, T, id, e) - v3 + (d1-d3)*(x-s3)
	}
	if ψ <= s2 {
		return r3(ψ)
	}
	c := o.DVolume(s2, T, id, e) + d1 - d3
	if ψ < 0 {
		return r3(s2) + c*(ψ-s2)
	}
	return r3(s2) - c*s2 + c*ψ + o.Volume(ψ, T, id, e) - o.Volume(0, T, id, e)
}

// ComputeXStar computes the breakpoints from the roots of d²V/dψ² near the peaks
// reported by the closure equation
func (o *Piecewise) ComputeXStar(T float64, id, e int) (err error) {
	m, ok := o.closure.(retention.Inflector)
	if !ok {
		return chk.Err("eqstate: piecewise model requires a closure equation with inflection points (element %d)", e)
	}
	x := m.Inflections(T, id)
	f := func(ψ float64) float64 { return o.D2Volume(ψ, T, id, e) }
	var s1, s2, s3 float64
	switch len(x) {
	case 1:
		if s1, err = o.finder.Root(f, 1.1*x[0], 0.9*x[0]); err != nil {
			return chk.Err("eqstate: cannot compute breakpoint of element %d: %v", e, err)
		}
		s2, s3 = s1, s1
	case 2:
		if s1, err = o.finder.Root(f, 1.1*x[0], 0.9*x[0]); err != nil {
			return chk.Err("eqstate: cannot compute first breakpoint of element %d: %v", e, err)
		}
		if s2, err = o.finder.Root(f, 1.2*x[1], 0.8*x[1]); err != nil {
			return chk.Err("eqstate: cannot compute second breakpoint of element %d: %v", e, err)
		}
		if s3, err = o.finder.Root(f, 0.9*s1, 1.1*s2); err != nil {
			return chk.Err("eqstate: cannot compute third breakpoint of element %d: %v", e, err)
		}
	default:
		return chk.Err("eqstate: piecewise model handles one or two inflection points; closure gives %d (element %d)", len(x), e)
	}
	if !(s1 <= s3 && s3 <= s2 && s2 <= 0) {
		return chk.Err("eqstate: breakpoints of element %d must satisfy s1 ≤ s3 ≤ s2 ≤ 0. s1=%g, s3=%g, s2=%g", e, s1, s3, s2)
	}
	o.cells.SetStar(e, s1, s2, s3)
	return
}

// InitialGuess returns min(ψ, s1)
func (o *Piecewise) InitialGuess(ψ float64, id, e int) float64 {
	s1, _, _ := o.cells.Star(e)
	return math.Min(ψ, s1)
}

// plateau returns C = V'(s2) + V'(s1) - V'(s3)
func (o *Piecewise) plateau(T float64, id, e int, s1, s2, s3 float64) float64 {
	return o.DVolume(s2, T, id, e) + o.DVolume(s1, T, id, e) - o.DVolume(s3, T, id, e)
}
