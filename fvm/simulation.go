// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the finite volume discretisation of the mixed form of Richards'
// equation on 2D meshes
//  The suctions are advanced in time with the backward Euler method; the nonlinear system
//  of each time step is solved with the nested Newton method (package nnewton).
package fvm

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/geoframecomponents/WHETGEO-2D/inp"
	"github.com/geoframecomponents/WHETGEO-2D/mesh"
	"github.com/geoframecomponents/WHETGEO-2D/nnewton"
)

// Simulation holds the components of a simulation sharing one Domain
type Simulation struct {
	Dom     *mesh.Domain // mesh and state
	Mdl     *Models      // models
	Qty     *Quantities  // derived quantities
	Op      *Matop       // operator
	Asm     *Assembler   // assembler
	Picard  int          // number of Picard iterations per step
	ShowMsg bool         // show messages

	// auxiliary
	initialised bool      // Init has been called
	nsteps      int       // number of steps performed
	psi0        []float64 // suctions at the beginning of the step
}

// New returns a new Simulation
//  nls may be nil; in this case the nested Newton solver is configured with slv
func New(dom *mesh.Domain, mdl *Models, slv *inp.SolverData, nls NonlinearSolver, verbose bool) (o *Simulation, err error) {
	if dom == nil || mdl == nil || slv == nil {
		return nil, chk.Err("domain, models and solver data must be non-nil")
	}
	if err = slv.Check(); err != nil {
		return
	}
	if err = mdl.Check(dom); err != nil {
		return
	}
	if nls == nil {
		s := nnewton.New(slv.NewtonTol, slv.CgTol, slv.NmaxIt)
		s.CgMaxIt = slv.CgMaxIt
		s.ShowR = slv.ShowR
		nls = s
	}
	o = &Simulation{Dom: dom, Mdl: mdl, Picard: slv.Picard, ShowMsg: verbose, psi0: make([]float64, len(dom.Sta.Psi))}
	o.Qty = NewQuantities(dom, mdl)
	o.Op = NewMatop(dom)
	o.Asm = NewAssembler(dom, mdl, o.Op, nls)
	return
}

// NewFromSim allocates the models given in sim and returns a new Simulation with the nested Newton solver
func NewFromSim(sim *inp.Simulation, dom *mesh.Domain) (*Simulation, error) {
	mdl, err := NewModels(&sim.Models, &sim.Soil, dom)
	if err != nil {
		return nil, err
	}
	return New(dom, mdl, &sim.Solver, nil, sim.Data.Verbose)
}

// Init computes the breakpoints of the equations of state and the gravity gradients
//  Init must be called once, after the initial suctions are set and before the first step
func (o *Simulation) Init() error {
	if o.initialised {
		return chk.Err("simulation has already been initialised")
	}
	if err := o.Qty.XStar(); err != nil {
		return err
	}
	o.Qty.GravityGradient()
	o.initialised = true
	if o.ShowMsg {
		io.Pfyel("initialised: %d elements, %d edges\n", o.Dom.Msh.Nelems(), o.Dom.Msh.Nedges())
	}
	return nil
}

// Step advances the suctions by dt with the boundary values bc
//  on error, the suctions and conductivities of the beginning of the step are restored
func (o *Simulation) Step(dt float64, bc BcValues) (err error) {
	if !o.initialised {
		return chk.Err("simulation must be initialised before the first step")
	}
	if dt <= 0 {
		return chk.Err("time step must be positive. dt=%g", dt)
	}
	o.Dom.Sta.Dt = dt
	copy(o.psi0, o.Dom.Sta.Psi)
	defer func() {
		if err != nil {
			copy(o.Dom.Sta.Psi, o.psi0)
			o.Qty.HydraulicConductivity()
			o.Qty.InterfaceConductivity()
		}
	}()

	// beginning of the step
	o.Qty.Thetas()
	o.Qty.WaterVolume()

	// Picard iterations
	for it := 0; it < o.Picard; it++ {
		o.Qty.HydraulicConductivity()
		o.Qty.InterfaceConductivity()
		if _, err = o.Asm.Solve(dt, bc); err != nil {
			return fmt.Errorf("step %d, Picard iteration %d: %w", o.nsteps, it, err)
		}
	}

	// end of the step
	o.Qty.WaterVolumeNew()
	o.Qty.ThetasNew()
	o.Qty.SaturationDegreeNew()
	if err = o.Qty.DarcyVelocities(bc); err != nil {
		return
	}
	o.Qty.Error(dt)
	o.nsteps++
	if o.ShowMsg {
		sta := o.Dom.Sta
		io.Pf("step %4d: dt = %g  volume = %.10g  boundary flux = %g  error = %g\n", o.nsteps, dt, sta.WaterVolumeNew, sta.BoundaryFlux, sta.VolumeError)
	}
	return
}
