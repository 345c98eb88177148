// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoframecomponents/WHETGEO-2D/inp"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/conduct"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/eqstate"
	"github.com/geoframecomponents/WHETGEO-2D/mdl/retention"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the available constitutive models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), runModels())
			return nil
		},
	}
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check <simfile>",
		Short: "Read and check a simulation file",
		Long:  "Read a simulation file (.sim or .json as JSON; anything else as YAML), set defaults and check all model names and parameter sets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := runCheck(args[0], v.GetBool("verbose"))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), l)
			return nil
		},
	}
}

func newCurveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve <simfile>",
		Short: "Tabulate the retention and conductivity curves of one family and parameter set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := inp.ReadSim(args[0])
			if err != nil {
				return err
			}
			l, err := runCurve(sim, curveOptions{
				Family: v.GetInt("family"),
				Set:    v.GetInt("set"),
				Npts:   v.GetInt("npts"),
				Psi0:   v.GetFloat64("psi0"),
				Psif:   v.GetFloat64("psif"),
				T:      v.GetFloat64("temperature"),
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), l)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Int("family", 0, "model family (index in the closure list)")
	flags.Int("set", 0, "soil parameter set")
	flags.Int("npts", 11, "number of stations")
	flags.Float64("psi0", -10, "initial suction [m]")
	flags.Float64("psif", 0, "final suction [m]")
	flags.Float64("temperature", 293.15, "temperature [K]")
	for _, name := range []string{"family", "set", "npts", "psi0", "psif", "temperature"} {
		v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

// runModels returns the names of all models in the databases
func runModels() (l string) {
	list := func(title string, names []string) string {
		return io.Sf("%-14s: %s\n", title, strings.Join(names, ", "))
	}
	l += list("closure", retention.Names())
	l += list("eqstate", eqstate.Names())
	l += list("conductivity", conduct.Names())
	l += list("interface", conduct.InterfaceNames())
	return
}

// runCheck reads a simulation file and returns its summary
func runCheck(simfile string, verbose bool) (l string, err error) {
	sim, err := inp.ReadSim(simfile)
	if err != nil {
		return
	}
	l = io.Sf("simulation %q is valid\n", sim.Key)
	if verbose || sim.Data.Verbose {
		l += sim.GetInfo()
	}
	return
}

// curveOptions holds the arguments of the curve command
type curveOptions struct {
	Family int     // index of model family
	Set    int     // soil parameter set
	Npts   int     // number of stations
	Psi0   float64 // initial suction
	Psif   float64 // final suction
	T      float64 // temperature
}

// runCurve tabulates θ, dθ/dψ and K of one family and parameter set
func runCurve(sim *inp.Simulation, opt curveOptions) (l string, err error) {
	if opt.Family < 0 || opt.Family >= len(sim.Models.Closure) {
		return "", chk.Err("family %d is not available; simulation has %d families", opt.Family, len(sim.Models.Closure))
	}
	if opt.Npts < 2 {
		return "", chk.Err("number of stations must be at least 2; npts = %d is invalid", opt.Npts)
	}
	set, err := sim.Soil.Get(opt.Set)
	if err != nil {
		return
	}

	// models
	base, err := retention.New(sim.Models.Closure[opt.Family])
	if err != nil {
		return
	}
	if err = base.Init(&sim.Soil); err != nil {
		return
	}
	closure, err := retention.NewThermal(sim.Models.SwrcTemperature, base, &sim.Soil)
	if err != nil {
		return
	}
	if err = closure.Check(opt.Set); err != nil {
		return
	}
	cond, err := conduct.New(sim.Models.Conductivity[opt.Family])
	if err != nil {
		return
	}
	if err = cond.Init(closure, &sim.Soil); err != nil {
		return
	}
	if cond, err = conduct.NewTemperature(sim.Models.Temperature, cond, &sim.Soil); err != nil {
		return
	}
	if err = cond.Check(opt.Set); err != nil {
		return
	}

	// parameters
	l = io.Sf("family %d (%s, %s), set %d, T = %g\n", opt.Family, sim.Models.Closure[opt.Family], sim.Models.Conductivity[opt.Family], opt.Set, opt.T)
	for _, p := range set.Params() {
		l += io.Sf("  %-8s = %g\n", p.N, p.V)
	}

	// table
	Ψ, Θ, D := retention.Curve(closure, opt.Psi0, opt.Psif, opt.Npts, opt.T, opt.Set)
	_, K := conduct.Curve(cond, opt.Psi0, opt.Psif, opt.Npts, opt.T, opt.Set)
	l += io.Sf("%14s%14s%14s%14s\n", "ψ", "θ", "dθ/dψ", "K")
	for i := range Ψ {
		l += io.Sf("%14.6e%14.6e%14.6e%14.6e\n", Ψ[i], Θ[i], D[i], K[i])
	}
	return
}
