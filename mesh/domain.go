// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"
)

// Domain holds the mesh and the state shared by all components of a simulation
type Domain struct {
	Msh *Mesh  // geometry and topology
	Sta *State // fields
}

// NewDomain checks the mesh and allocates the state
func NewDomain(msh *Mesh) (o *Domain, err error) {
	if msh == nil {
		return nil, chk.Err("mesh must be non-nil")
	}
	if err = msh.Check(); err != nil {
		return
	}
	return &Domain{Msh: msh, Sta: NewState(msh.Nelems(), msh.Nedges())}, nil
}

// SetUniform sets the same suction, temperature, parameter set and family to all elements
func (o *Domain) SetUniform(ψ, T float64, paramID, eqstateID int) {
	for e := 1; e <= o.Msh.Nelems(); e++ {
		o.Sta.Psi[e] = ψ
		o.Sta.Temperature[e] = T
		o.Sta.ParamID[e] = paramID
		o.Sta.EqStateID[e] = eqstateID
	}
}

// Area returns the area of element e
func (o *Domain) Area(e int) float64 {
	return o.Msh.Area[e]
}

// Star returns the breakpoints of element e
func (o *Domain) Star(e int) (s1, s2, s3 float64) {
	return o.Sta.Star1[e], o.Sta.Star2[e], o.Sta.Star3[e]
}

// SetStar sets the breakpoints of element e
func (o *Domain) SetStar(e int, s1, s2, s3 float64) {
	o.Sta.Star1[e], o.Sta.Star2[e], o.Sta.Star3[e] = s1, s2, s3
}
