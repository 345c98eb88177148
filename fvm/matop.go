// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/la"

	"github.com/geoframecomponents/WHETGEO-2D/mesh"
)

// Matop applies the discrete diffusion operator without assembling a matrix
type Matop struct {
	dom *mesh.Domain
	Dt  float64 // time step
}

// NewMatop returns a new Matop
func NewMatop(dom *mesh.Domain) *Matop {
	return &Matop{dom: dom}
}

// Apply computes y := dis∘x + T x
//  interior edges move Δt κ (xR - xL)/δ from the left element to the right one;
//  Dirichlet and total head edges add Δt κ xL/δ to the left element
func (o *Matop) Apply(y, dis, x la.Vector) {
	msh, sta := o.dom.Msh, o.dom.Sta
	y[0] = 0
	for e := 1; e <= msh.Nelems(); e++ {
		y[e] = dis[e] * x[e]
	}
	for j := 1; j <= msh.Nedges(); j++ {
		l, r := msh.Left[j], msh.Right[j]
		if !msh.Boundary(j) {
			flux := o.Dt * sta.KInterface[j] * (x[r] - x[l]) / msh.Delta[j]
			y[l] -= flux
			y[r] += flux
			continue
		}
		switch msh.BcType[j] {
		case mesh.BcDirichlet, mesh.BcTotalHead:
			y[l] -= o.Dt * sta.KInterface[j] * (-x[l]) / msh.Delta[j]
		}
	}
}
