// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements models for liquid retention curves
//  The liquid (wetting, defending) saturation sl decreases as the capillary pressure pc
//  increases. Besides closed-form curves, a tabulated model is built from the drainage
//  curve of a percolation run.
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media. Hydrology
//       Papers 3, Colorado State University
//   [2] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci. Soc. Am. J. 44, 892-898
package retention

import (
	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model implements a liquid retention model (LRM)
type Model interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SlMin() float64                  // returns sl_min
	SlMax() float64                  // returns sl_max
	Sl(pc float64) float64           // computes sl directly from pc
	Cc(pc float64) float64           // computes Cc = ∂sl/∂pc
}

// New returns new liquid retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database: %w", name, nwk.ErrConfig)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Curve computes sl at npts capillary pressures equally spaced in [pc0, pcf]
func Curve(mdl Model, pc0, pcf float64, npts int) (pc, sl []float64) {
	pc = utl.LinSpace(pc0, pcf, npts)
	sl = make([]float64, npts)
	for i, x := range pc {
		sl[i] = mdl.Sl(x)
	}
	return
}

// checkLimits checks saturation limits
func checkLimits(model string, slmin, slmax float64) error {
	if slmin < 0 || slmin >= slmax || slmax > 1 {
		return chk.Err("%s: saturation limits must satisfy 0 <= slmin < slmax <= 1; got slmin=%g slmax=%g: %w", model, slmin, slmax, nwk.ErrConfig)
	}
	return nil
}
