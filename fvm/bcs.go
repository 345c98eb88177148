// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mesh"
)

// BcValues maps the value ids of boundary edges to values; the first entry is the value
// used by the boundary condition and the remaining ones are auxiliary data
type BcValues map[int][]float64

// Value returns the value of boundary condition id
func (o BcValues) Value(id int) (float64, error) {
	v, ok := o[id]
	if !ok || len(v) == 0 {
		return 0, chk.Err("boundary condition value %d is not available", id)
	}
	return v[0], nil
}

// needsValue tells whether boundary condition type bctype reads a value
func needsValue(bctype int) bool {
	switch bctype {
	case mesh.BcNeumann, mesh.BcDirichlet, mesh.BcTotalHead:
		return true
	}
	return false
}

// bcValue returns the value of boundary edge j, or zero when its type does not use one
func bcValue(msh *mesh.Mesh, bc BcValues, j int) (float64, error) {
	if !needsValue(msh.BcType[j]) {
		return 0, nil
	}
	v, err := bc.Value(msh.BcValueID[j])
	if err != nil {
		return 0, chk.Err("edge %d with boundary condition type %d: %v", j, msh.BcType[j], err)
	}
	return v, nil
}
