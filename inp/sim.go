// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file or from a YAML file
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"

	"github.com/geoframecomponents/WHETGEO-2D/mdl/conduct"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/eqstate"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/soil"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	Verbose bool   `json:"verbose" yaml:"verbose"` // show messages
}

// ModelsData holds the names of the models
//  Closure, EqState and Conductivity have one entry per family; elements select a
//  family with their equation-state id
type ModelsData struct {
	Closure         []string `json:"closure" yaml:"closure"`                 // retention models; e.g. "vg"
	EqState         []string `json:"eqstate" yaml:"eqstate"`                 // equation-state models; e.g. "piecewise"
	Conductivity    []string `json:"conductivity" yaml:"conductivity"`       // conductivity models; e.g. "mualem vg"
	Temperature     string   `json:"temperature" yaml:"temperature"`         // temperature correction of conductivity; e.g. "notemperature"
	Interface       string   `json:"interface" yaml:"interface"`             // interface conductivity; e.g. "weighted harmonic"
	SwrcTemperature string   `json:"swrctemperature" yaml:"swrctemperature"` // temperature correction of retention; e.g. "none"
}

// SolverData holds data for the nonlinear solver
type SolverData struct {
	NewtonTol float64 `json:"newtontol" yaml:"newtontol"` // tolerance of the nested Newton iterations
	CgTol     float64 `json:"cgtol" yaml:"cgtol"`         // tolerance of the conjugate gradient iterations
	NmaxIt    int     `json:"nmaxit" yaml:"nmaxit"`       // max number of Newton iterations
	CgMaxIt   int     `json:"cgmaxit" yaml:"cgmaxit"`     // max number of conjugate gradient iterations; 0 means automatic
	Picard    int     `json:"picard" yaml:"picard"`       // number of Picard iterations per time step
	ShowR     bool    `json:"showr" yaml:"showr"`         // show residuals
}

// Simulation holds all simulation data
type Simulation struct {
	Data   Data       `json:"data" yaml:"data"`     // global data
	Models ModelsData `json:"models" yaml:"models"` // models
	Solver SolverData `json:"solver" yaml:"solver"` // solver data
	Soil   soil.Table `json:"soil" yaml:"soil"`     // soil parameters

	// derived
	Key string `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01
}

// ReadSim reads all simulation data from a file
//  files with extension ".sim" or ".json" are decoded as JSON; all others as YAML
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q: %v", simfilepath, err)
	}
	format := "yaml"
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".sim", ".json":
		format = "json"
	}
	if o, err = ParseSim(b, format); err != nil {
		return nil, chk.Err("ReadSim: cannot load simulation file %q: %v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	return
}

// readFile reads a file; io.ReadFile panics on failure
func readFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	return io.ReadFile(path), nil
}

// ParseSim decodes simulation data in the given format ("json" or "yaml"), sets defaults and checks it
func ParseSim(b []byte, format string) (o *Simulation, err error) {
	o = new(Simulation)
	o.Solver.SetDefault()
	o.Models.SetDefault()
	switch format {
	case "json":
		err = json.Unmarshal(b, o)
	case "yaml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("format %q is not available; use json or yaml", format)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal %s data: %v", format, err)
	}
	o.Soil.SetDefault()
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}

// Check checks the consistency of the simulation data
func (o *Simulation) Check() (err error) {
	if err = o.Models.Check(&o.Soil); err != nil {
		return
	}
	if err = o.Solver.Check(); err != nil {
		return
	}
	if len(o.Soil.Sets) == 0 {
		return chk.Err("soil table must have at least one parameter set")
	}
	for i := range o.Soil.Sets {
		if err = o.Soil.Check(i); err != nil {
			return
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo() (l string) {
	l = io.Sf("description       = %q\n", o.Data.Desc)
	for i := range o.Models.Closure {
		l += io.Sf("family %d          = %s / %s / %s\n", i, o.Models.Closure[i], o.Models.EqState[i], o.Models.Conductivity[i])
	}
	l += io.Sf("interface         = %s\n", o.Models.Interface)
	l += io.Sf("temperature       = %s (conductivity), %s (retention)\n", o.Models.Temperature, o.Models.SwrcTemperature)
	l += io.Sf("number of soils   = %d\n", len(o.Soil.Sets))
	l += io.Sf("newton tolerance  = %g\n", o.Solver.NewtonTol)
	l += io.Sf("picard iterations = %d\n", o.Solver.Picard)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *ModelsData) SetDefault() {
	o.Temperature = "notemperature"
	o.Interface = "mean"
	o.SwrcTemperature = "none"
}

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.NewtonTol = 1e-9
	o.CgTol = 1e-9
	o.NmaxIt = 50
	o.Picard = 1
}

// Check checks the names of the models
func (o *ModelsData) Check(tbl *soil.Table) (err error) {
	n := len(o.Closure)
	if n == 0 {
		return chk.Err("at least one closure equation must be given")
	}
	if len(o.EqState) != n || len(o.Conductivity) != n {
		return chk.Err("closure, equation-state and conductivity lists must have the same length. %d, %d, %d are incorrect", n, len(o.EqState), len(o.Conductivity))
	}
	for i := 0; i < n; i++ {
		if _, err = retention.New(o.Closure[i]); err != nil {
			return
		}
		if _, err = eqstate.New(o.EqState[i]); err != nil {
			return
		}
		if _, err = conduct.New(o.Conductivity[i]); err != nil {
			return
		}
	}
	if _, err = conduct.NewTemperature(o.Temperature, nil, tbl); err != nil {
		return
	}
	if _, err = conduct.NewInterface(o.Interface); err != nil {
		return
	}
	_, err = retention.NewThermal(o.SwrcTemperature, nil, tbl)
	return
}

// Check checks the solver parameters
func (o *SolverData) Check() error {
	if o.NewtonTol <= 0 || o.CgTol <= 0 {
		return chk.Err("tolerances must be positive. newtontol=%g, cgtol=%g", o.NewtonTol, o.CgTol)
	}
	if o.NmaxIt < 1 || o.Picard < 1 || o.CgMaxIt < 0 {
		return chk.Err("numbers of iterations must be positive. nmaxit=%d, picard=%d, cgmaxit=%d", o.NmaxIt, o.Picard, o.CgMaxIt)
	}
	return nil
}
