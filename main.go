// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the whetgeo command with all subcommands attached
//  flags may also be given as environment variables; e.g. WHETGEO_VERBOSE=true
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("whetgeo")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "whetgeo",
		Short:        "WHETGEO-2D finite-volume Richards kernel",
		Long:         "Inspect the constitutive models and the simulation files of the WHETGEO-2D Richards kernel.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "show messages")
	v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newModelsCmd(), newCheckCmd(v), newCurveCmd(v))
	return root
}
