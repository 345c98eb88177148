// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/mesh"
)

// KMin is the smallest hydraulic conductivity; conductivities are floored to it
var KMin = math.Nextafter(1, 2) - 1

// Quantities computes the fields derived from the suctions
//  Each method is one pass over elements or edges; the order of the calls within a
//  time step is fixed by Simulation.Step
type Quantities struct {
	dom *mesh.Domain
	mdl *Models
}

// NewQuantities returns a new Quantities
func NewQuantities(dom *mesh.Domain, mdl *Models) *Quantities {
	return &Quantities{dom: dom, mdl: mdl}
}

// GravityGradient computes (zR - zL)/δ; boundary edges use the edge midpoint instead of the right centroid
func (o *Quantities) GravityGradient() {
	msh, sta := o.dom.Msh, o.dom.Sta
	for j := 1; j <= msh.Nedges(); j++ {
		zl := msh.Z[msh.Left[j]]
		if msh.Boundary(j) {
			sta.GravityGradient[j] = (msh.EdgeZ[j] - zl) / msh.Delta[j]
			continue
		}
		sta.GravityGradient[j] = (msh.Z[msh.Right[j]] - zl) / msh.Delta[j]
	}
}

// WaterVolume computes the volumes at the beginning of the step and their sum
func (o *Quantities) WaterVolume() {
	o.dom.Sta.WaterVolume = o.volumes(o.dom.Sta.Volume)
}

// WaterVolumeNew computes the volumes at the end of the step and their sum
func (o *Quantities) WaterVolumeNew() {
	o.dom.Sta.WaterVolumeNew = o.volumes(o.dom.Sta.VolumeNew)
}

// Thetas computes the water contents at the beginning of the step
func (o *Quantities) Thetas() {
	o.thetas(o.dom.Sta.Theta)
}

// ThetasNew computes the water contents at the end of the step
func (o *Quantities) ThetasNew() {
	o.thetas(o.dom.Sta.ThetaNew)
}

// SaturationDegreeNew computes (θnew - θr)/(θs - θr)
func (o *Quantities) SaturationDegreeNew() {
	sta := o.dom.Sta
	for e := 1; e <= o.dom.Msh.Nelems(); e++ {
		s := o.mdl.Tbl.Sets[sta.ParamID[e]]
		sta.Saturation[e] = (sta.ThetaNew[e] - s.ThetaR) / (s.ThetaS - s.ThetaR)
	}
}

// XStar computes the breakpoints of the equations of state
func (o *Quantities) XStar() error {
	sta := o.dom.Sta
	for e := 1; e <= o.dom.Msh.Nelems(); e++ {
		if err := o.mdl.EqStates[sta.EqStateID[e]].ComputeXStar(sta.Temperature[e], sta.ParamID[e], e); err != nil {
			return err
		}
	}
	return nil
}

// HydraulicConductivity computes the conductivities floored to KMin
func (o *Quantities) HydraulicConductivity() {
	sta := o.dom.Sta
	for e := 1; e <= o.dom.Msh.Nelems(); e++ {
		k := o.mdl.Conducts[sta.EqStateID[e]].K(sta.Psi[e], sta.Temperature[e], sta.ParamID[e], e)
		sta.K[e] = math.Max(k, KMin)
	}
}

// InterfaceConductivity computes the edge conductivities times the edge lengths
//  boundary edges take the conductivity of the left element
func (o *Quantities) InterfaceConductivity() {
	msh, sta := o.dom.Msh, o.dom.Sta
	for j := 1; j <= msh.Nedges(); j++ {
		l, r := msh.Left[j], msh.Right[j]
		if msh.Boundary(j) {
			sta.KInterface[j] = sta.K[l] * msh.Length[j]
			continue
		}
		sta.KInterface[j] = o.mdl.Interface.Compute(sta.K[r], sta.K[l], msh.Area[r], msh.Area[l]) * msh.Length[j]
	}
}

// DarcyVelocities computes the fluxes through edges and the sum of fluxes through the boundary
//  fluxes are positive from the right element into the left one; i.e. into the domain
//  at boundary edges
func (o *Quantities) DarcyVelocities(bc BcValues) error {
	msh, sta := o.dom.Msh, o.dom.Sta
	sta.BoundaryFlux = 0
	for j := 1; j <= msh.Nedges(); j++ {
		l, r := msh.Left[j], msh.Right[j]
		κ, δ, g := sta.KInterface[j], msh.Delta[j], sta.GravityGradient[j]
		if !msh.Boundary(j) {
			sta.Darcy[j] = κ * ((sta.Psi[r]-sta.Psi[l])/δ + g)
			continue
		}
		v, err := bcValue(msh, bc, j)
		if err != nil {
			return err
		}
		switch msh.BcType[j] {
		case mesh.BcNeumann:
			sta.Darcy[j] = msh.Length[j] * v
		case mesh.BcDirichlet:
			sta.Darcy[j] = κ * ((v-sta.Psi[l])/δ + g)
		case mesh.BcFreeDrainage:
			sta.Darcy[j] = κ * msh.Length[j] * math.Min(0, g)
		case mesh.BcTotalHead:
			sta.Darcy[j] = κ * ((v-msh.EdgeZ[j]-sta.Psi[l])/δ + g)
		case mesh.BcImpervious:
			sta.Darcy[j] = 0
		default:
			return chk.Err("edge %d has unknown boundary condition type %d", j, msh.BcType[j])
		}
		sta.BoundaryFlux += sta.Darcy[j]
	}
	return nil
}

// Error computes the mass balance error VolumeNew - Volume - Δt × BoundaryFlux
func (o *Quantities) Error(dt float64) {
	sta := o.dom.Sta
	sta.VolumeError = sta.WaterVolumeNew - sta.WaterVolume - dt*sta.BoundaryFlux
}

// volumes computes the volumes with the current suctions and returns their sum
func (o *Quantities) volumes(v []float64) (sum float64) {
	sta := o.dom.Sta
	for e := 1; e <= o.dom.Msh.Nelems(); e++ {
		v[e] = o.mdl.EqStates[sta.EqStateID[e]].Volume(sta.Psi[e], sta.Temperature[e], sta.ParamID[e], e)
		sum += v[e]
	}
	return
}

// thetas computes the water contents with the current suctions
func (o *Quantities) thetas(θ []float64) {
	sta := o.dom.Sta
	for e := 1; e <= o.dom.Msh.Nelems(); e++ {
		θ[e] = o.mdl.Closures[sta.EqStateID[e]].Theta(sta.Psi[e], sta.Temperature[e], sta.ParamID[e])
	}
}
