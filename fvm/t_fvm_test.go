// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/geoframecomponents/WHETGEO-2D/inp"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
	"github.com/geoframecomponents/WHETGEO-2D/mesh"
)

// pair returns two unit cells side by side sharing edge 1; edges 2 and 3 are boundaries of cells 1 and 2
func pair(tst *testing.T, bc2, bc3 int) *mesh.Domain {
	msh := &mesh.Mesh{
		Area:      []float64{0, 1, 1},
		Z:         []float64{0, -0.5, -0.5},
		Length:    []float64{0, 1, 1, 1},
		EdgeZ:     []float64{0, -0.5, 0, -1},
		Delta:     []float64{0, 1, 0.5, 0.5},
		Left:      []int{0, 1, 1, 2},
		Right:     []int{0, 2, 0, 0},
		BcType:    []int{0, 0, bc2, bc3},
		BcValueID: []int{0, 0, 7, 8},
	}
	dom, err := mesh.NewDomain(msh)
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	return dom
}

// vgTable returns a table with one van Genuchten set
func vgTable() *soil.Table {
	tbl := &soil.Table{Sets: []*soil.Set{
		{ThetaS: 0.43, ThetaR: 0.045, Par: [5]float64{1.56, 3.6}, Ks: 2.9e-6, AlphaSS: 1e-8, BetaSS: 4.4e-10},
	}}
	tbl.SetDefault()
	return tbl
}

func Test_darcy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy01")

	dom := pair(tst, mesh.BcImpervious, mesh.BcImpervious)
	sta := dom.Sta
	sta.KInterface[1] = 2.0
	sta.Psi[1], sta.Psi[2] = 0.0, 1.0

	qty := NewQuantities(dom, nil)
	if err := qty.DarcyVelocities(nil); err != nil {
		tst.Errorf("DarcyVelocities failed: %v\n", err)
		return
	}
	chk.Float64(tst, "darcy", 1e-15, sta.Darcy[1], 2.0)
	chk.Float64(tst, "boundary flux", 1e-15, sta.BoundaryFlux, 0)

	// operator: -Δt 2 to the left and +Δt 2 to the right
	op := NewMatop(dom)
	op.Dt = 0.25
	y := la.NewVector(3)
	op.Apply(y, la.NewVector(3), la.Vector(sta.Psi))
	chk.Float64(tst, "y[left]", 1e-15, y[1], -0.25*2.0)
	chk.Float64(tst, "y[right]", 1e-15, y[2], 0.25*2.0)
	chk.Float64(tst, "reciprocity", 1e-15, y[1]+y[2], 0)

	// diagonal part
	op.Apply(y, la.Vector{0, 3, 4}, la.Vector{0, 1, 1})
	chk.Array(tst, "y with dis", 1e-15, y, []float64{0, 3, 4})
}

func Test_darcy02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy02")

	// free drainage
	dom := pair(tst, mesh.BcFreeDrainage, mesh.BcFreeDrainage)
	sta := dom.Sta
	sta.KInterface[2], sta.KInterface[3] = 1.0, 1.0
	sta.GravityGradient[2], sta.GravityGradient[3] = -1.0, 1.0
	qty := NewQuantities(dom, nil)
	if err := qty.DarcyVelocities(BcValues{}); err != nil {
		tst.Errorf("DarcyVelocities failed: %v\n", err)
		return
	}
	chk.Float64(tst, "free drainage g=-1", 1e-15, sta.Darcy[2], -1.0)
	chk.Float64(tst, "free drainage g=+1", 1e-15, sta.Darcy[3], 0.0)
	chk.Float64(tst, "boundary flux", 1e-15, sta.BoundaryFlux, -1.0)

	// Neumann and Dirichlet
	dom = pair(tst, mesh.BcNeumann, mesh.BcDirichlet)
	sta = dom.Sta
	sta.KInterface[2], sta.KInterface[3] = 1.5, 2.0
	sta.GravityGradient[3] = -0.5
	sta.Psi[2] = -0.3
	qty = NewQuantities(dom, nil)
	bc := BcValues{7: {1e-3}, 8: {0.2, 99}}
	if err := qty.DarcyVelocities(bc); err != nil {
		tst.Errorf("DarcyVelocities failed: %v\n", err)
		return
	}
	chk.Float64(tst, "neumann", 1e-15, sta.Darcy[2], 1e-3)
	chk.Float64(tst, "dirichlet", 1e-15, sta.Darcy[3], 1.0)
	chk.Float64(tst, "boundary flux", 1e-15, sta.BoundaryFlux, 1e-3+1.0)

	// total head
	dom = pair(tst, mesh.BcTotalHead, mesh.BcImpervious)
	sta = dom.Sta
	sta.KInterface[2] = 3.0
	sta.GravityGradient[2] = 1
	sta.Psi[1] = -0.4
	qty = NewQuantities(dom, nil)
	if err := qty.DarcyVelocities(BcValues{7: {0.5}}); err != nil {
		tst.Errorf("DarcyVelocities failed: %v\n", err)
		return
	}
	chk.Float64(tst, "total head", 1e-15, sta.Darcy[2], 3.0*((0.5-0+0.4)/0.5+1))
	chk.Float64(tst, "impervious", 1e-15, sta.Darcy[3], 0)

	// missing value
	if err := qty.DarcyVelocities(BcValues{8: {0.5}}); err == nil {
		tst.Errorf("missing boundary value must fail\n")
	}
	if err := qty.DarcyVelocities(BcValues{7: {}}); err == nil {
		tst.Errorf("empty boundary value must fail\n")
	}
}

func Test_assembler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler01")

	dt := 0.5
	dom := pair(tst, mesh.BcDirichlet, mesh.BcNeumann)
	sta := dom.Sta
	sta.Volume[1], sta.Volume[2] = 0.3, 0.4
	sta.KInterface = []float64{0, 2, 3, 4}
	sta.GravityGradient = []float64{0, -1, 1, 0}
	asm := NewAssembler(dom, nil, NewMatop(dom), nil)
	if err := asm.Assemble(dt, BcValues{7: {-0.2}, 8: {1e-2}}); err != nil {
		tst.Errorf("Assemble failed: %v\n", err)
		return
	}
	rhs1 := 0.3 + dt*2*(-1) + dt*3*(-0.2/0.5+1)
	rhs2 := 0.4 - dt*2*(-1) + dt*1*1e-2
	chk.Array(tst, "rhs", 1e-15, asm.Rhs, []float64{0, rhs1, rhs2})
	chk.Array(tst, "diag", 1e-15, asm.Diag, []float64{0, dt*2/1 + dt*3/0.5, dt * 2 / 1})

	// free drainage and total head
	dom = pair(tst, mesh.BcFreeDrainage, mesh.BcTotalHead)
	sta = dom.Sta
	sta.KInterface = []float64{0, 0, 3, 4}
	sta.GravityGradient = []float64{0, 0, -1, -1}
	asm = NewAssembler(dom, nil, NewMatop(dom), nil)
	if err := asm.Assemble(dt, BcValues{8: {0.1}}); err != nil {
		tst.Errorf("Assemble failed: %v\n", err)
		return
	}
	chk.Array(tst, "rhs", 1e-15, asm.Rhs, []float64{0, dt * 3 * 1 * (-1), dt * 4 * ((0.1+1)/0.5 - 1)})
	chk.Array(tst, "diag", 1e-15, asm.Diag, []float64{0, 0, dt * 4 / 0.5})

	if err := asm.Assemble(dt, BcValues{}); err == nil {
		tst.Errorf("missing boundary value must fail\n")
	}
}

func Test_matop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matop01")

	// column with Dirichlet bottom: T must be symmetric and its diagonal must equal Diag
	dom, err := mesh.NewDomain(mesh.Column(4, 0.25, 1, mesh.BcNeumann, mesh.BcDirichlet))
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}
	for j := 1; j <= dom.Msh.Nedges(); j++ {
		dom.Sta.KInterface[j] = float64(j)
	}
	NewQuantities(dom, nil).GravityGradient()
	chk.Array(tst, "gravity gradient", 1e-15, dom.Sta.GravityGradient, []float64{0, 1, -1, -1, -1, -1})

	dt := 2.0
	op := NewMatop(dom)
	op.Dt = dt
	asm := NewAssembler(dom, nil, op, nil)
	if err = asm.Assemble(dt, BcValues{1: {0}, 2: {0}}); err != nil {
		tst.Errorf("Assemble failed: %v\n", err)
		return
	}
	n := dom.Msh.Nelems()
	T := make([][]float64, n+1)
	zero := la.NewVector(n + 1)
	for k := 1; k <= n; k++ {
		x := la.NewVector(n + 1)
		x[k] = 1
		T[k] = make([]float64, n+1)
		op.Apply(T[k], zero, x)
	}
	for i := 1; i <= n; i++ {
		chk.Float64(tst, "diagonal", 1e-13, T[i][i], asm.Diag[i])
		sum := 0.0
		for k := 1; k <= n; k++ {
			chk.Float64(tst, "symmetry", 1e-13, T[i][k], T[k][i])
			sum += T[k][i]
		}
		if i < n {
			chk.Float64(tst, "column sum", 1e-13, sum, 0)
		}
	}
}

func Test_quantities01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quantities01")

	// lin closure: θ(-1) = 0.6 - 0.3 × 1 = 0.3
	tbl := &soil.Table{Sets: []*soil.Set{
		{ThetaS: 0.6, ThetaR: 0.0, Par: [5]float64{0.3, 0}, Ks: 1e-5},
	}}
	tbl.SetDefault()
	dom, err := mesh.NewDomain(mesh.Column(2, 1, 2, mesh.BcImpervious, mesh.BcImpervious))
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}
	dom.SetUniform(-1, 293.15, 0, 0)
	mdl, err := NewModels(&inp.ModelsData{
		Closure:      []string{"lin"},
		EqState:      []string{"simple"},
		Conductivity: []string{"mualem bc"},
		Interface:    "mean",
	}, tbl, dom)
	if err != nil {
		tst.Errorf("NewModels failed: %v\n", err)
		return
	}
	qty := NewQuantities(dom, mdl)
	qty.WaterVolume()
	chk.Array(tst, "volume", 1e-15, dom.Sta.Volume, []float64{0, 0.6, 0.6})
	chk.Float64(tst, "water volume", 1e-15, dom.Sta.WaterVolume, 1.2)
	chk.Float64(tst, "dV/dψ", 1e-15, mdl.EqStates[0].DVolume(-1, 293.15, 0, 1), 0.6)

	qty.Thetas()
	chk.Array(tst, "θ", 1e-15, dom.Sta.Theta, []float64{0, 0.3, 0.3})

	dom.Sta.Psi[2] = -0.5
	qty.WaterVolumeNew()
	qty.ThetasNew()
	qty.SaturationDegreeNew()
	chk.Float64(tst, "water volume new", 1e-15, dom.Sta.WaterVolumeNew, 0.6+0.9)
	chk.Array(tst, "θ new", 1e-15, dom.Sta.ThetaNew, []float64{0, 0.3, 0.45})
	chk.Array(tst, "saturation", 1e-15, dom.Sta.Saturation, []float64{0, 0.5, 0.75})

	dom.Sta.BoundaryFlux = 0.1
	qty.Error(2)
	chk.Float64(tst, "error", 1e-15, dom.Sta.VolumeError, 1.5-1.2-2*0.1)

	if err = qty.XStar(); err != nil {
		tst.Errorf("XStar failed: %v\n", err)
		return
	}
	chk.Array(tst, "star1", 1e-15, dom.Sta.Star1, []float64{0, -9999, -9999})
}

func Test_quantities02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quantities02")

	tbl := vgTable()
	dom, err := mesh.NewDomain(mesh.Column(3, 0.5, 2, mesh.BcImpervious, mesh.BcFreeDrainage))
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}
	dom.SetUniform(-1, 293.15, 0, 0)
	dom.Sta.Psi[2] = -1e12
	dom.Sta.Psi[3] = 0.5
	mdl, err := NewModels(&inp.ModelsData{
		Closure:      []string{"vg"},
		EqState:      []string{"piecewise"},
		Conductivity: []string{"mvg"},
		Interface:    "max",
	}, tbl, dom)
	if err != nil {
		tst.Errorf("NewModels failed: %v\n", err)
		return
	}
	qty := NewQuantities(dom, mdl)

	// floor
	qty.HydraulicConductivity()
	sta := dom.Sta
	for e := 1; e <= 3; e++ {
		if sta.K[e] < KMin {
			tst.Errorf("conductivity of element %d is below the floor: %g\n", e, sta.K[e])
		}
	}
	chk.Float64(tst, "floored", 1e-30, sta.K[2], 2.220446049250313e-16)
	chk.Float64(tst, "saturated", 1e-20, sta.K[3], 2.9e-6)

	// interface: length = 2
	qty.InterfaceConductivity()
	chk.Float64(tst, "top", 1e-20, sta.KInterface[1], sta.K[1]*2)
	chk.Float64(tst, "1-2", 1e-20, sta.KInterface[2], sta.K[1]*2)
	chk.Float64(tst, "2-3", 1e-20, sta.KInterface[3], 2.9e-6*2)
	chk.Float64(tst, "bottom", 1e-20, sta.KInterface[4], 2.9e-6*2)
}
