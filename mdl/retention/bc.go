// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrooksCorey implements Brooks and Corey's model [1]
//  sl = slmin + (slmax - slmin) (pcae / pc)^λ   for pc > pcae
type BrooksCorey struct {

	// parameters
	λ     float64 // pore size distribution index
	pcae  float64 // air-entry pressure
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.slmin, o.slmax = 0, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect: %w", p.N, nwk.ErrConfig)
		}
	}
	if o.λ <= 0 || o.pcae <= 0 {
		return chk.Err("bc: lam and pcae must be positive; got lam=%g pcae=%g: %w", o.λ, o.pcae, nwk.ErrConfig)
	}
	return checkLimits("bc", o.slmin, o.slmax)
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 0.5},
			&dbf.P{N: "pcae", V: 0.2},
			&dbf.P{N: "slmin", V: 0.1},
			&dbf.P{N: "slmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
	}
}

// SlMin returns sl_min
func (o BrooksCorey) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o BrooksCorey) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o BrooksCorey) Sl(pc float64) float64 {
	if pc <= o.pcae {
		return o.slmax
	}
	return o.slmin + (o.slmax-o.slmin)*math.Pow(o.pcae/pc, o.λ)
}

// Cc computes Cc(pc) := dsl/dpc
func (o BrooksCorey) Cc(pc float64) float64 {
	if pc <= o.pcae {
		return 0
	}
	return -(o.slmax - o.slmin) * o.λ * math.Pow(o.pcae/pc, o.λ) / pc
}
