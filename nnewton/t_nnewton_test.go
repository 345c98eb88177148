// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nnewton

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// chain is a row of cells connected with conductance c; cell 1 is also connected to a fixed zero
//  kind = "atan": V = atan(ψ) split at ψ = 0
//  kind = "exp":  V = exp(ψ) without splitting
type chain struct {
	n    int
	c    float64
	kind string
}

func (o *chain) Size() int { return o.n }

func (o *chain) InitialGuess(x la.Vector) {
	if o.kind == "atan" {
		for e := 1; e <= o.n; e++ {
			x[e] = math.Min(x[e], 0)
		}
	}
}

func (o *chain) Volume(e int, ψ float64) float64 {
	switch o.kind {
	case "atan":
		return math.Atan(ψ)
	case "lin":
		return ψ
	}
	return math.Exp(ψ)
}

func (o *chain) DVolume(e int, ψ float64) float64 {
	switch o.kind {
	case "atan":
		return 1.0 / (1.0 + ψ*ψ)
	case "lin":
		return 1
	}
	return math.Exp(ψ)
}

func (o *chain) P(e int, ψ float64) float64 {
	if o.kind == "atan" && ψ > 0 {
		return 1
	}
	return o.DVolume(e, ψ)
}

func (o *chain) PIntegral(e int, ψ float64) float64 {
	if o.kind == "atan" && ψ > 0 {
		return ψ
	}
	return o.Volume(e, ψ)
}

func (o *chain) Apply(y, dis, x la.Vector) {
	y[0] = 0
	for e := 1; e <= o.n; e++ {
		y[e] = dis[e] * x[e]
	}
	y[1] += o.c * x[1]
	for e := 1; e < o.n; e++ {
		flux := o.c * (x[e+1] - x[e])
		y[e] -= flux
		y[e+1] += flux
	}
}

func (o *chain) Diagonal() la.Vector {
	d := la.NewVector(o.n + 1)
	d[1] = o.c
	for e := 1; e < o.n; e++ {
		d[e] += o.c
		d[e+1] += o.c
	}
	return d
}

// rhs returns b = V(x) + T x
func (o *chain) rhs(x la.Vector) la.Vector {
	b := la.NewVector(o.n + 1)
	o.Apply(b, la.NewVector(o.n+1), x)
	for e := 1; e <= o.n; e++ {
		b[e] += o.Volume(e, x[e])
	}
	return b
}

func Test_nnewton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nnewton01")

	for _, kind := range []string{"atan", "exp"} {
		prob := &chain{n: 5, c: 0.7, kind: kind}
		xs := la.Vector{0, -2, -1, -0.3, 0.5, 1.5}
		b := prob.rhs(xs)
		x := la.NewVector(6)

		solver := New(1e-12, 1e-12, 50)
		solver.ShowR = chk.Verbose
		if err := solver.Solve(prob, x, b); err != nil {
			tst.Errorf("%s: Solve failed: %v\n", kind, err)
			return
		}
		io.Pforan("%s: outer=%d inner=%d cg=%d\n", kind, solver.NumOuter, solver.NumInner, solver.NumCg)
		chk.Array(tst, kind+": x", 1e-9, x, xs)
	}
}

func Test_nnewton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nnewton02")

	// already converged: no inner iterations
	prob := &chain{n: 3, c: 1, kind: "exp"}
	xs := la.Vector{0, -1, -1, -1}
	b := prob.rhs(xs)
	x := la.Vector{0, -1, -1, -1}
	solver := New(1e-9, 1e-9, 10)
	if err := solver.Solve(prob, x, b); err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Int(tst, "outer", solver.NumOuter, 1)
	chk.Int(tst, "inner", solver.NumInner, 0)

	// not enough iterations
	prob = &chain{n: 5, c: 0.7, kind: "atan"}
	b = prob.rhs(la.Vector{0, -2, -1, -0.3, 0.5, 1.5})
	x = la.NewVector(6)
	solver = New(1e-12, 1e-12, 1)
	err := solver.Solve(prob, x, b)
	if err == nil {
		tst.Errorf("Solve must fail with one iteration\n")
		return
	}
	io.Pforan("%v\n", err)
	if !errors.Is(err, ErrNotConverged) {
		tst.Errorf("error must wrap ErrNotConverged\n")
	}
	var nc *NotConvergedError
	if !errors.As(err, &nc) {
		tst.Errorf("error must be a NotConvergedError\n")
		return
	}
	if nc.Loop != "inner" && nc.Loop != "outer" {
		tst.Errorf("failure must happen in the Newton loops. loop=%q\n", nc.Loop)
	}

	// not enough conjugate gradient iterations
	x = la.NewVector(6)
	solver = New(1e-12, 1e-14, 50)
	solver.CgMaxIt = 1
	err = solver.Solve(prob, x, b)
	if !errors.As(err, &nc) || nc.Loop != "cg" {
		tst.Errorf("conjugate gradient must fail with one iteration. err=%v\n", err)
	}
}

func Test_nnewton03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nnewton03. solution found in the last iteration")

	// one Newton step solves the linear problem
	prob := &chain{n: 5, c: 0.7, kind: "lin"}
	xs := la.Vector{0, -2, -1, -0.3, 0.5, 1.5}
	b := prob.rhs(xs)
	x := la.NewVector(6)
	solver := New(1e-9, 1e-12, 1)
	solver.ShowR = chk.Verbose
	if err := solver.Solve(prob, x, b); err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Int(tst, "outer", solver.NumOuter, 1)
	chk.Int(tst, "inner", solver.NumInner, 1)
	chk.Array(tst, "x", 1e-10, x, xs)
}
