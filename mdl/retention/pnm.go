// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"sort"
	"strings"

	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Tabulated implements a retention curve interpolated from a drainage curve
//  sl = slmax - (slmax - slmin) snw(pc)
//  where snw is the saturation of the invading (non-wetting) phase, linearly interpolated
//  between points and constant outside the table
type Tabulated struct {

	// parameters
	slmin float64 // minimum saturation
	slmax float64 // maximum saturation

	// table
	pc  []float64 // capillary pressures; strictly increasing
	snw []float64 // invading phase saturation; non-decreasing in [0,1]
}

// add model to factory
func init() {
	allocators["pnm"] = func() Model { return &Tabulated{slmax: 1} }
}

// NewTabulated returns a tabulated model with slmin = 0 and slmax = 1
func NewTabulated(pc, snw []float64) (o *Tabulated, err error) {
	o = &Tabulated{slmax: 1}
	if err = o.SetCurve(pc, snw); err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *Tabulated) Init(prms dbf.Params) (err error) {
	o.slmin, o.slmax = 0, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("pnm: parameter named %q is incorrect: %w", p.N, nwk.ErrConfig)
		}
	}
	return checkLimits("pnm", o.slmin, o.slmax)
}

// GetPrms gets (an example) of parameters
func (o Tabulated) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "slmin", V: 0},
			&dbf.P{N: "slmax", V: 1},
		}
	}
	return dbf.Params{
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
	}
}

// SetCurve sets the table
func (o *Tabulated) SetCurve(pc, snw []float64) error {
	if len(pc) == 0 || len(pc) != len(snw) {
		return chk.Err("pnm: table must have equal and non-zero lengths; got %d pressures and %d saturations: %w", len(pc), len(snw), nwk.ErrConfig)
	}
	for i := range pc {
		if snw[i] < 0 || snw[i] > 1 {
			return chk.Err("pnm: saturation %g at point %d is outside [0,1]: %w", snw[i], i, nwk.ErrConfig)
		}
		if i > 0 && (pc[i] <= pc[i-1] || snw[i] < snw[i-1]) {
			return chk.Err("pnm: table must have increasing pressures and non-decreasing saturations; see point %d: %w", i, nwk.ErrConfig)
		}
	}
	o.pc = append([]float64(nil), pc...)
	o.snw = append([]float64(nil), snw...)
	return nil
}

// SlMin returns sl_min
func (o Tabulated) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o Tabulated) SlMax() float64 {
	return o.slmax
}

// Snw returns the interpolated invading phase saturation
func (o Tabulated) Snw(pc float64) float64 {
	n := len(o.pc)
	if n == 0 {
		return 0
	}
	if pc <= o.pc[0] {
		return o.snw[0]
	}
	if pc >= o.pc[n-1] {
		return o.snw[n-1]
	}
	i := sort.SearchFloat64s(o.pc, pc) // o.pc[i-1] < pc <= o.pc[i]
	ξ := (pc - o.pc[i-1]) / (o.pc[i] - o.pc[i-1])
	return o.snw[i-1] + ξ*(o.snw[i]-o.snw[i-1])
}

// Sl computes sl directly from pc
func (o Tabulated) Sl(pc float64) float64 {
	return o.slmax - (o.slmax-o.slmin)*o.Snw(pc)
}

// Cc computes Cc(pc) := dsl/dpc
func (o Tabulated) Cc(pc float64) float64 {
	n := len(o.pc)
	if n < 2 || pc <= o.pc[0] || pc >= o.pc[n-1] {
		return 0
	}
	i := sort.SearchFloat64s(o.pc, pc)
	return -(o.slmax - o.slmin) * (o.snw[i] - o.snw[i-1]) / (o.pc[i] - o.pc[i-1])
}
