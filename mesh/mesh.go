// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh holds the geometry and topology of a 2D finite volume mesh and the
// fields updated at each time step
//  Elements and edges are numbered from 1; index 0 of every slice is not used.
//  An edge has a left element (always ≥ 1) and a right element (0 for boundary edges).
package mesh

import (
	"github.com/cpmech/gosl/chk"
)

// boundary condition types
const (
	BcImpervious   = 0 // no flux
	BcNeumann      = 1 // prescribed flux per unit length
	BcDirichlet    = 2 // prescribed suction
	BcFreeDrainage = 3 // unit gradient; outflow only
	BcTotalHead    = 4 // prescribed total head
)

// Mesh holds the geometry and topology of the mesh
type Mesh struct {

	// elements [nelems+1]
	Area []float64 // element area
	X    []float64 // [optional] horizontal coordinate of centroid
	Z    []float64 // elevation of centroid

	// edges [nedges+1]
	Length    []float64 // edge length
	EdgeX     []float64 // [optional] horizontal coordinate of edge midpoint
	EdgeZ     []float64 // elevation of edge midpoint
	Delta     []float64 // distance between left and right centroids; or between left centroid and edge for boundary edges
	Left      []int     // left element
	Right     []int     // right element; 0 means boundary edge
	BcType    []int     // boundary condition type; used by boundary edges only
	BcValueID []int     // key of boundary values; used by boundary edges only
}

// Nelems returns the number of elements
func (o *Mesh) Nelems() int {
	return len(o.Area) - 1
}

// Nedges returns the number of edges
func (o *Mesh) Nedges() int {
	return len(o.Length) - 1
}

// Boundary tells whether edge j is on the boundary
func (o *Mesh) Boundary(j int) bool {
	return o.Right[j] == 0
}

// Check checks the consistency of the mesh
func (o *Mesh) Check() error {
	ne, nj := o.Nelems(), o.Nedges()
	if ne < 1 || nj < 1 {
		return chk.Err("mesh must have at least one element and one edge. nelems=%d, nedges=%d", ne, nj)
	}
	if len(o.Z) != ne+1 || (o.X != nil && len(o.X) != ne+1) {
		return chk.Err("element coordinates must have %d entries (index 0 not used)", ne+1)
	}
	for name, n := range map[string]int{"EdgeZ": len(o.EdgeZ), "Delta": len(o.Delta), "Left": len(o.Left), "Right": len(o.Right), "BcType": len(o.BcType), "BcValueID": len(o.BcValueID)} {
		if n != nj+1 {
			return chk.Err("edge array %s must have %d entries (index 0 not used). %d is incorrect", name, nj+1, n)
		}
	}
	if o.EdgeX != nil && len(o.EdgeX) != nj+1 {
		return chk.Err("edge array EdgeX must have %d entries (index 0 not used)", nj+1)
	}
	for e := 1; e <= ne; e++ {
		if o.Area[e] <= 0 {
			return chk.Err("area of element %d must be positive. area=%g", e, o.Area[e])
		}
	}
	for j := 1; j <= nj; j++ {
		l, r := o.Left[j], o.Right[j]
		if l < 1 || l > ne {
			return chk.Err("left element of edge %d must be in [1, %d]. left=%d", j, ne, l)
		}
		if r < 0 || r > ne || r == l {
			return chk.Err("right element of edge %d must be in [0, %d] and differ from the left one. left=%d, right=%d", j, ne, l, r)
		}
		if o.Length[j] <= 0 || o.Delta[j] <= 0 {
			return chk.Err("length and δ of edge %d must be positive. length=%g, δ=%g", j, o.Length[j], o.Delta[j])
		}
		if r == 0 && (o.BcType[j] < BcImpervious || o.BcType[j] > BcTotalHead) {
			return chk.Err("boundary edge %d has unknown boundary condition type %d", j, o.BcType[j])
		}
	}
	return nil
}

// Column returns a vertical column of nz elements with thickness dz and width w
//  The top edge is at z = 0 and the elements are numbered from the top.
//  Edge 1 is the top boundary with value id 1; edge nz+1 is the bottom boundary with value id 2.
//  Edge j (2 ≤ j ≤ nz) has element j-1 on the left and element j on the right.
func Column(nz int, dz, w float64, topBc, bottomBc int) *Mesh {
	o := &Mesh{
		Area:      make([]float64, nz+1),
		X:         make([]float64, nz+1),
		Z:         make([]float64, nz+1),
		Length:    make([]float64, nz+2),
		EdgeX:     make([]float64, nz+2),
		EdgeZ:     make([]float64, nz+2),
		Delta:     make([]float64, nz+2),
		Left:      make([]int, nz+2),
		Right:     make([]int, nz+2),
		BcType:    make([]int, nz+2),
		BcValueID: make([]int, nz+2),
	}
	for e := 1; e <= nz; e++ {
		o.Area[e] = w * dz
		o.X[e] = w / 2
		o.Z[e] = -(float64(e) - 0.5) * dz
	}
	for j := 1; j <= nz+1; j++ {
		o.Length[j] = w
		o.EdgeX[j] = w / 2
		o.EdgeZ[j] = -float64(j-1) * dz
		o.Delta[j] = dz
		o.Left[j] = j - 1
		o.Right[j] = j
	}
	o.Left[1], o.Right[1], o.Delta[1] = 1, 0, dz/2
	o.BcType[1], o.BcValueID[1] = topBc, 1
	o.Left[nz+1], o.Right[nz+1], o.Delta[nz+1] = nz, 0, dz/2
	o.BcType[nz+1], o.BcValueID[nz+1] = bottomBc, 2
	return o
}
