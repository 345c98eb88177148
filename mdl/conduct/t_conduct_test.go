// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// table returns sets for 0: vg, 1: bc, 2: kosugi, 3: romano
func table() *soil.Table {
	tbl := &soil.Table{Sets: []*soil.Set{
		{ThetaS: 0.4, ThetaR: 0.05, Par: [5]float64{2.0, 1.0}, Ks: 1e-5},
		{ThetaS: 0.4, ThetaR: 0.05, Par: [5]float64{0.5, -0.2}, Ks: 2e-5},
		{ThetaS: 0.45, ThetaR: 0.02, Par: [5]float64{-1.0, 1.0}, Ks: 3e-5},
		{ThetaS: 0.45, ThetaR: 0.02, Par: [5]float64{0.3, 0.5, 0.8, -5.0, -0.3}, Ks: 4e-5},
	}}
	tbl.SetDefault()
	return tbl
}

func newModel(tst *testing.T, closureName, name string, tbl *soil.Table, id int) Model {
	closure, err := retention.New(closureName)
	if err != nil {
		tst.Fatalf("retention.New failed: %v\n", err)
	}
	closure.Init(tbl)
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	if err = mdl.Init(closure, tbl); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	if err = mdl.Check(id); err != nil {
		tst.Fatalf("Check failed: %v\n", err)
	}
	return mdl
}

func Test_mualem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mualem01")

	tbl := table()
	T := tbl.Tref
	cases := []struct {
		closure, name string
		id            int
	}{
		{"vg", "Mualem Van Genuchten", 0},
		{"bc", "mbc", 1},
		{"kosugi", "mualem kosugi", 2},
		{"romano", "mr", 3},
	}
	for _, c := range cases {
		mdl := newModel(tst, c.closure, c.name, tbl, c.id)
		ks := tbl.Sets[c.id].Ks

		// saturated
		chk.Float64(tst, c.name+": k(0)", 1e-20, mdl.K(0, T, c.id, 1), ks)
		chk.Float64(tst, c.name+": k(1)", 1e-20, mdl.K(1, T, c.id, 1), ks)

		// monotonic and bounded
		prev := ks
		for _, ψ := range []float64{-0.001, -0.01, -0.1, -0.5, -1, -2, -5, -10} {
			k := mdl.K(ψ, T, c.id, 1)
			if chk.Verbose {
				io.Pforan("%s: k(%g) = %g\n", c.name, ψ, k)
			}
			if k > prev*(1+1e-12) || k < 0 {
				tst.Errorf("%s: k must decrease with suction. k(%g)=%g, previous=%g\n", c.name, ψ, k, prev)
			}
			prev = k
		}
	}
}

func Test_mualem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mualem02")

	tbl := table()
	T := tbl.Tref

	// vg: se = 1/√2 at ψ = -1 (n = 2, m = 1/2)
	mvg := newModel(tst, "vg", "mvg", tbl, 0)
	se := 1.0 / math.Sqrt2
	a := 1.0 - math.Pow(1.0-se*se, 0.5)
	chk.Float64(tst, "mvg: k(-1)", 1e-18, mvg.K(-1, T, 0, 1), 1e-5*math.Sqrt(se)*a*a)

	// bc: se = 0.5 at ψ = -0.8
	mbc := newModel(tst, "bc", "mbc", tbl, 1)
	chk.Float64(tst, "mbc: k(-0.8)", 1e-18, mbc.K(-0.8, T, 1, 1), 2e-5*math.Pow(0.5, 6.5))

	// kosugi at the median suction: se = 1/2
	mk := newModel(tst, "kosugi", "mk", tbl, 2)
	r := 0.5 * math.Erfc(1.0/math.Sqrt2)
	chk.Float64(tst, "mk: k(ψm)", 1e-18, mk.K(-1, T, 2, 1), 3e-5*math.Sqrt(0.5)*r*r)

	// romano with w = 1 reduces to kosugi
	tbl.Sets = append(tbl.Sets, &soil.Set{ThetaS: 0.45, ThetaR: 0.02, Par: [5]float64{1, 1.0, 0.8, -1.0, -0.3}, Ks: 3e-5})
	mr := newModel(tst, "romano", "mr", tbl, 4)
	for _, ψ := range []float64{-3, -1, -0.1} {
		chk.Float64(tst, "mr(w=1) == mk", 1e-18, mr.K(ψ, T, 4, 1), mk.K(ψ, T, 2, 1))
	}
}

func Test_viscosity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscosity01")

	tbl := table()
	base := newModel(tst, "vg", "mvg", tbl, 0)
	mdl, err := NewTemperature("viscosity", base, tbl)
	if err != nil {
		tst.Errorf("NewTemperature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "default Tref of Ks", 1e-15, tbl.TrefKs, 293.15)
	chk.Float64(tst, "k(Tref)", 1e-20, mdl.K(-1, 293.15, 0, 1), base.K(-1, 293.15, 0, 1))
	if mdl.K(-1, 313.15, 0, 1) <= base.K(-1, 313.15, 0, 1) {
		tst.Errorf("warmer water must flow faster\n")
	}
	chk.Float64(tst, "μ(20°C)", 1e-5, Mu(293.15), 1.0016e-3)

	// conductivities measured at another temperature
	tbl.TrefKs = 283.15
	cold, err := NewTemperature("viscosity", base, tbl)
	if err != nil {
		tst.Errorf("NewTemperature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "k(TrefKs)", 1e-20, cold.K(-1, 283.15, 0, 1), base.K(-1, 283.15, 0, 1))
	chk.Float64(tst, "k(293.15)", 1e-20, cold.K(-1, 293.15, 0, 1), base.K(-1, 293.15, 0, 1)*Mu(283.15)/Mu(293.15))
	tbl.TrefKs = 0
	if _, err = NewTemperature("viscosity", base, tbl); err == nil {
		tst.Errorf("zero reference temperature must fail\n")
	}
	if _, err = NewTemperature("viscosity", base, nil); err == nil {
		tst.Errorf("missing soil table must fail\n")
	}

	same, err := NewTemperature("notemperature", base, nil)
	if err != nil || same != base {
		tst.Errorf("'notemperature' must return the base model\n")
	}
	if _, err = NewTemperature("arrhenius", base, tbl); err == nil {
		tst.Errorf("unknown temperature model must fail\n")
	}
}

func Test_interface01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interface01")

	kR, kL, aR, aL := 2.0, 1.0, 3.0, 1.0
	res := map[string]float64{
		"mean":     1.5,
		"max":      2.0,
		"min":      1.0,
		"weighted": 7.0 / 4.0,
		"harmonic": 4.0 / 2.5,
	}
	for name, correct := range res {
		f, err := NewInterface(name)
		if err != nil {
			tst.Errorf("NewInterface failed: %v\n", err)
			return
		}
		chk.Float64(tst, name, 1e-15, f.Compute(kR, kL, aR, aL), correct)

		// symmetry
		chk.Float64(tst, name+" symmetry", 1e-15, f.Compute(kL, kR, aL, aR), correct)

		// zero areas
		k := f.Compute(kR, kL, 0, 0)
		if math.IsNaN(k) || math.IsInf(k, 0) {
			tst.Errorf("%s: zero areas must not divide by zero\n", name)
		}
		k = f.Compute(kR, kL, 0, aL)
		if math.IsNaN(k) || math.IsInf(k, 0) {
			tst.Errorf("%s: zero area must not divide by zero\n", name)
		}
	}
	if _, err := NewInterface("geometric"); err == nil {
		tst.Errorf("unknown interface model must fail\n")
	}
}
