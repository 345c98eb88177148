// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/geoframecomponents/WHETGEO-2D/mesh"
	"github.com/geoframecomponents/WHETGEO-2D/nnewton"
)

// NonlinearSolver solves V(ψ) + T ψ = b; x holds the suctions at the beginning of the
// step and receives the solution
type NonlinearSolver interface {
	Solve(prob nnewton.Problem, x, rhs la.Vector) error
}

// Assembler builds the right-hand side and the main diagonal of the operator and
// calls the nonlinear solver
type Assembler struct {
	dom *mesh.Domain
	mdl *Models
	op  *Matop
	nls NonlinearSolver

	// results of the last assembly [nelems+1]
	Rhs  la.Vector // right-hand side
	Diag la.Vector // main diagonal of T

	// workspace
	x la.Vector
}

// NewAssembler returns a new Assembler
func NewAssembler(dom *mesh.Domain, mdl *Models, op *Matop, nls NonlinearSolver) *Assembler {
	n := dom.Msh.Nelems() + 1
	return &Assembler{dom: dom, mdl: mdl, op: op, nls: nls, Rhs: la.NewVector(n), Diag: la.NewVector(n), x: la.NewVector(n)}
}

// Assemble computes Rhs and Diag
func (o *Assembler) Assemble(dt float64, bc BcValues) error {
	msh, sta := o.dom.Msh, o.dom.Sta
	for e := 1; e <= msh.Nelems(); e++ {
		o.Rhs[e] = sta.Volume[e]
		o.Diag[e] = 0
	}
	for j := 1; j <= msh.Nedges(); j++ {
		l, r := msh.Left[j], msh.Right[j]
		κ, δ, g := sta.KInterface[j], msh.Delta[j], sta.GravityGradient[j]
		if !msh.Boundary(j) {
			o.Rhs[r] -= dt * κ * g
			o.Rhs[l] += dt * κ * g
			o.Diag[r] += dt * κ / δ
			o.Diag[l] += dt * κ / δ
			continue
		}
		v, err := bcValue(msh, bc, j)
		if err != nil {
			return err
		}
		switch msh.BcType[j] {
		case mesh.BcNeumann:
			o.Rhs[l] += dt * msh.Length[j] * v
		case mesh.BcDirichlet:
			o.Rhs[l] += dt * κ * (v/δ + g)
			o.Diag[l] += dt * κ / δ
		case mesh.BcFreeDrainage:
			o.Rhs[l] += dt * κ * msh.Length[j] * math.Min(0, g)
		case mesh.BcTotalHead:
			o.Rhs[l] += dt * κ * ((v-msh.EdgeZ[j])/δ + g)
			o.Diag[l] += dt * κ / δ
		case mesh.BcImpervious:
		default:
			return chk.Err("edge %d has unknown boundary condition type %d", j, msh.BcType[j])
		}
	}
	return nil
}

// Solve assembles the system, solves it and stores the new suctions in the state
//  the suctions are not modified when the solver fails
func (o *Assembler) Solve(dt float64, bc BcValues) (la.Vector, error) {
	if err := o.Assemble(dt, bc); err != nil {
		return nil, err
	}
	o.op.Dt = dt
	copy(o.x, o.dom.Sta.Psi)
	if err := o.nls.Solve(&problem{o}, o.x, o.Rhs); err != nil {
		return nil, err
	}
	copy(o.dom.Sta.Psi, o.x)
	return o.dom.Sta.Psi, nil
}

// problem exposes the assembled system to the nonlinear solver
type problem struct {
	*Assembler
}

func (o *problem) Size() int {
	return o.dom.Msh.Nelems()
}

func (o *problem) InitialGuess(x la.Vector) {
	sta := o.dom.Sta
	for e := 1; e <= o.Size(); e++ {
		x[e] = o.mdl.EqStates[sta.EqStateID[e]].InitialGuess(x[e], sta.ParamID[e], e)
	}
}

func (o *problem) Volume(e int, ψ float64) float64 {
	sta := o.dom.Sta
	return o.mdl.EqStates[sta.EqStateID[e]].Volume(ψ, sta.Temperature[e], sta.ParamID[e], e)
}

func (o *problem) DVolume(e int, ψ float64) float64 {
	sta := o.dom.Sta
	return o.mdl.EqStates[sta.EqStateID[e]].DVolume(ψ, sta.Temperature[e], sta.ParamID[e], e)
}

func (o *problem) P(e int, ψ float64) float64 {
	sta := o.dom.Sta
	return o.mdl.EqStates[sta.EqStateID[e]].P(ψ, sta.Temperature[e], sta.ParamID[e], e)
}

func (o *problem) PIntegral(e int, ψ float64) float64 {
	sta := o.dom.Sta
	return o.mdl.EqStates[sta.EqStateID[e]].PIntegral(ψ, sta.Temperature[e], sta.ParamID[e], e)
}

func (o *problem) Apply(y, dis, x la.Vector) {
	o.op.Apply(y, dis, x)
}

func (o *problem) Diagonal() la.Vector {
	return o.Diag
}
