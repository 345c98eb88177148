// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/geoframecomponents/WHETGEO-2D/inp"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/conduct"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/eqstate"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
	"github.com/geoframecomponents/WHETGEO-2D/mesh"
)

// Models holds the models of each family; element e uses family Sta.EqStateID[e]
type Models struct {
	Dom       *mesh.Domain      // domain the equations of state are bound to
	Tbl       *soil.Table       // soil parameters
	Closures  []retention.Model // closure equations
	EqStates  []eqstate.Model   // equations of state
	Conducts  []conduct.Model   // conductivity models
	Interface conduct.Interface // interface conductivity
}

// NewModels allocates and initialises all models; the equations of state are bound to dom
func NewModels(dat *inp.ModelsData, tbl *soil.Table, dom *mesh.Domain) (o *Models, err error) {
	if dom == nil {
		return nil, chk.Err("models must be bound to a non-nil domain")
	}
	if err = dat.Check(tbl); err != nil {
		return
	}
	n := len(dat.Closure)
	o = &Models{
		Dom:      dom,
		Tbl:      tbl,
		Closures: make([]retention.Model, n),
		EqStates: make([]eqstate.Model, n),
		Conducts: make([]conduct.Model, n),
	}
	for i := 0; i < n; i++ {

		// closure
		closure, err := retention.New(dat.Closure[i])
		if err != nil {
			return nil, err
		}
		if err = closure.Init(tbl); err != nil {
			return nil, err
		}
		if o.Closures[i], err = retention.NewThermal(dat.SwrcTemperature, closure, tbl); err != nil {
			return nil, err
		}

		// equation of state
		if o.EqStates[i], err = eqstate.New(dat.EqState[i]); err != nil {
			return nil, err
		}
		if err = o.EqStates[i].Init(o.Closures[i], dom, nil); err != nil {
			return nil, err
		}

		// conductivity
		cond, err := conduct.New(dat.Conductivity[i])
		if err != nil {
			return nil, err
		}
		if err = cond.Init(o.Closures[i], tbl); err != nil {
			return nil, err
		}
		if o.Conducts[i], err = conduct.NewTemperature(dat.Temperature, cond, tbl); err != nil {
			return nil, err
		}
	}
	o.Interface, err = conduct.NewInterface(dat.Interface)
	return
}

// Check checks that the models are bound to dom and that every element refers to an existent
// family and to a parameter set accepted by the models of that family
func (o *Models) Check(dom *mesh.Domain) error {
	if o.Dom != dom {
		return chk.Err("models are bound to another domain")
	}
	n := len(o.Closures)
	if len(o.EqStates) != n || len(o.Conducts) != n || o.Interface == nil || o.Tbl == nil {
		return chk.Err("models are incomplete: %d closures, %d equations of state, %d conductivities", n, len(o.EqStates), len(o.Conducts))
	}
	checked := make(map[[2]int]bool)
	for e := 1; e <= dom.Msh.Nelems(); e++ {
		f, id := dom.Sta.EqStateID[e], dom.Sta.ParamID[e]
		if f < 0 || f >= n {
			return chk.Err("element %d refers to family %d but only %d families are available", e, f, n)
		}
		if checked[[2]int{f, id}] {
			continue
		}
		if err := o.Closures[f].Check(id); err != nil {
			return chk.Err("element %d: %v", e, err)
		}
		if err := o.Conducts[f].Check(id); err != nil {
			return chk.Err("element %d: %v", e, err)
		}
		checked[[2]int{f, id}] = true
	}
	return nil
}
