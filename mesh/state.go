// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// State holds the fields of the simulation
type State struct {

	// elements [nelems+1]
	Psi         []float64 // suction ψ [m]
	Temperature []float64 // temperature [K]
	Theta       []float64 // water content at the beginning of the step
	ThetaNew    []float64 // water content at the end of the step
	Saturation  []float64 // saturation degree at the end of the step
	Volume      []float64 // water volume at the beginning of the step
	VolumeNew   []float64 // water volume at the end of the step
	K           []float64 // hydraulic conductivity
	Star1       []float64 // first breakpoint of the equation of state
	Star2       []float64 // second breakpoint of the equation of state
	Star3       []float64 // third breakpoint of the equation of state
	ParamID     []int     // index of soil parameter set
	EqStateID   []int     // index of closure/equation-state/conductivity family

	// edges [nedges+1]
	KInterface      []float64 // interface conductivity times edge length
	GravityGradient []float64 // gradient of elevation
	Darcy           []float64 // flux; positive from right to left or into the domain at boundary edges

	// totals
	WaterVolume    float64 // total water volume at the beginning of the step
	WaterVolumeNew float64 // total water volume at the end of the step
	BoundaryFlux   float64 // sum of fluxes through boundary edges
	VolumeError    float64 // mass balance error of the last step
	Dt             float64 // time step of the last step
}

// NewState allocates a new State
func NewState(nelems, nedges int) *State {
	n, m := nelems+1, nedges+1
	return &State{
		Psi:             make([]float64, n),
		Temperature:     make([]float64, n),
		Theta:           make([]float64, n),
		ThetaNew:        make([]float64, n),
		Saturation:      make([]float64, n),
		Volume:          make([]float64, n),
		VolumeNew:       make([]float64, n),
		K:               make([]float64, n),
		Star1:           make([]float64, n),
		Star2:           make([]float64, n),
		Star3:           make([]float64, n),
		ParamID:         make([]int, n),
		EqStateID:       make([]int, n),
		KInterface:      make([]float64, m),
		GravityGradient: make([]float64, m),
		Darcy:           make([]float64, m),
	}
}
