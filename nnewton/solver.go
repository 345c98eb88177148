// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nnewton implements the nested Newton method for the mixed form of Richards' equation
//  The system V(ψ) + T ψ = b is solved with V = P - Q, where P and Q have non-decreasing
//  derivatives. The outer iterations linearise Q and the inner ones solve the resulting
//  system with Newton's method; each linear system is solved with the conjugate gradient
//  method preconditioned by the diagonal.
//  References:
//   [1] Casulli V and Zanolli P (2010) A nested Newton-type algorithm for finite volume
//       methods solving Richards' equation in mixed form. SIAM J Sci Comput, 32(4), 2255-2273
package nnewton

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Problem defines the system V(ψ) + T ψ = b
//  vectors have Size()+1 entries; index 0 is not used and must remain zero
type Problem interface {
	Size() int                          // number of unknowns
	InitialGuess(x la.Vector)           // replaces x by the starting point of the iterations
	Volume(e int, ψ float64) float64    // V
	DVolume(e int, ψ float64) float64   // dV/dψ
	P(e int, ψ float64) float64         // non-decreasing part of dV/dψ
	PIntegral(e int, ψ float64) float64 // antiderivative of P
	Apply(y, dis, x la.Vector)          // y := dis∘x + T x
	Diagonal() la.Vector                // main diagonal of T
}

// Solver implements the nested Newton method
type Solver struct {

	// parameters
	Tol     float64 // tolerance of the Newton iterations
	CgTol   float64 // tolerance of the conjugate gradient iterations
	NmaxIt  int     // max number of outer and inner iterations
	CgMaxIt int     // max number of conjugate gradient iterations; 0 means 10 n + 100
	ShowR   bool    // show residuals

	// statistics of the last call to Solve
	NumOuter int // number of outer iterations
	NumInner int // total number of inner iterations
	NumCg    int // total number of conjugate gradient iterations

	// workspace
	zero, tx, f, dis, dx, xo, qo, bq la.Vector
	r, z, p, ap                     la.Vector
}

// New returns a new solver
func New(tol, cgTol float64, nmaxit int) *Solver {
	return &Solver{Tol: tol, CgTol: cgTol, NmaxIt: nmaxit}
}

// Solve solves the system; x holds the suctions at the beginning of the step and receives the solution
func (o *Solver) Solve(prob Problem, x, rhs la.Vector) (err error) {

	// workspace
	n := prob.Size()
	o.alloc(n)
	o.NumOuter, o.NumInner, o.NumCg = 0, 0, 0

	// initial guess
	prob.InitialGuess(x)
	x[0] = 0

	// outer iterations
	var norm float64
	for it := 0; it < o.NmaxIt; it++ {
		o.NumOuter++
		norm = o.outerResidual(prob, x, rhs)
		if o.ShowR {
			io.Pf("%4d%23.15e\n", it, norm)
		}
		if norm < o.Tol {
			return
		}

		// linearise Q around the outer iterate: Q(xo) + q(xo) (x - xo)
		for e := 1; e <= n; e++ {
			o.xo[e] = x[e]
			o.qo[e] = prob.P(e, x[e]) - prob.DVolume(e, x[e])
			o.bq[e] = prob.PIntegral(e, x[e]) - prob.Volume(e, x[e])
		}

		// inner iterations
		if err = o.inner(prob, x, rhs, it); err != nil {
			return
		}
	}

	// the last inner solution may already satisfy the outer tolerance
	if norm = o.outerResidual(prob, x, rhs); norm < o.Tol {
		return
	}
	return &NotConvergedError{Loop: "outer", It: o.NmaxIt, Norm: norm, Tol: o.Tol, Outer: o.NmaxIt}
}

// inner performs the inner Newton iterations
func (o *Solver) inner(prob Problem, x, rhs la.Vector, outer int) (err error) {
	n := prob.Size()
	var norm float64
	for k := 0; k < o.NmaxIt; k++ {
		o.NumInner++
		norm = o.innerResidual(prob, x, rhs)
		if o.ShowR {
			io.Pf("%8d%23.15e\n", k, norm)
		}
		if norm < o.Tol {
			return
		}
		if err = o.cg(prob, o.dx, o.f, outer); err != nil {
			return
		}
		for e := 1; e <= n; e++ {
			x[e] -= o.dx[e]
		}
	}
	if norm = o.innerResidual(prob, x, rhs); norm < o.Tol {
		return
	}
	return &NotConvergedError{Loop: "inner", It: o.NmaxIt, Norm: norm, Tol: o.Tol, Outer: outer}
}

// outerResidual computes f = V(x) + T x - rhs and returns its norm
func (o *Solver) outerResidual(prob Problem, x, rhs la.Vector) float64 {
	prob.Apply(o.tx, o.zero, x)
	for e := 1; e <= prob.Size(); e++ {
		o.f[e] = prob.Volume(e, x[e]) + o.tx[e] - rhs[e]
	}
	return o.f.Norm()
}

// innerResidual computes f = ∫P(x) - [Q(xo) + q(xo) (x - xo)] + T x - rhs and the diagonal P(x) - q(xo);
// returns the norm of f
func (o *Solver) innerResidual(prob Problem, x, rhs la.Vector) float64 {
	prob.Apply(o.tx, o.zero, x)
	for e := 1; e <= prob.Size(); e++ {
		o.f[e] = prob.PIntegral(e, x[e]) - (o.bq[e] + o.qo[e]*(x[e]-o.xo[e])) + o.tx[e] - rhs[e]
		o.dis[e] = prob.P(e, x[e]) - o.qo[e]
	}
	return o.f.Norm()
}

// cg solves (diag(dis) + T) u = b with the Jacobi preconditioned conjugate gradient method
//  the tolerance is relative to the norm of b
func (o *Solver) cg(prob Problem, u, b la.Vector, outer int) error {
	n := prob.Size()
	maxit := o.CgMaxIt
	if maxit <= 0 {
		maxit = 10*n + 100
	}
	d := prob.Diagonal()
	precond := func(z, r la.Vector) {
		for e := 1; e <= n; e++ {
			m := o.dis[e] + d[e]
			if m == 0 {
				m = 1
			}
			z[e] = r[e] / m
		}
	}

	// u = 0; r = b; z = M⁻¹ r; p = z
	u.Fill(0)
	copy(o.r, b)
	precond(o.z, o.r)
	copy(o.p, o.z)
	rz := la.VecDot(o.r, o.z)
	norm := o.r.Norm()
	tol := o.CgTol * norm
	for it := 0; it < maxit; it++ {
		if norm <= tol {
			return nil
		}
		o.NumCg++
		prob.Apply(o.ap, o.dis, o.p)
		pap := la.VecDot(o.p, o.ap)
		if pap <= 0 || math.IsNaN(pap) {
			return &NotConvergedError{Loop: "cg", It: it, Norm: norm, Tol: tol, Outer: outer}
		}
		α := rz / pap
		la.VecAdd(u, 1, u, α, o.p)
		la.VecAdd(o.r, 1, o.r, -α, o.ap)
		precond(o.z, o.r)
		rzNew := la.VecDot(o.r, o.z)
		la.VecAdd(o.p, 1, o.z, rzNew/rz, o.p)
		rz = rzNew
		norm = o.r.Norm()
	}
	if norm <= tol {
		return nil
	}
	return &NotConvergedError{Loop: "cg", It: maxit, Norm: norm, Tol: tol, Outer: outer}
}

// alloc allocates the workspace
func (o *Solver) alloc(n int) {
	if len(o.f) == n+1 {
		return
	}
	o.zero, o.tx, o.f = la.NewVector(n+1), la.NewVector(n+1), la.NewVector(n+1)
	o.dis, o.dx, o.xo = la.NewVector(n+1), la.NewVector(n+1), la.NewVector(n+1)
	o.qo, o.bq = la.NewVector(n+1), la.NewVector(n+1)
	o.r, o.z, o.p, o.ap = la.NewVector(n+1), la.NewVector(n+1), la.NewVector(n+1), la.NewVector(n+1)
}
