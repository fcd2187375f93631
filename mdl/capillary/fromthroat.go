// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"strings"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FromThroat computes the pore entry pressure by reducing the values of incident throats
//  op = 0: minimum (default)
//  op = 1: maximum
//  op = 2: mean; any other value also selects the mean
//  Pores without throats get zero.
type FromThroat struct {
	CapillaryPressure nwk.Key       // throat array on the phase
	Red               nwk.Reduction // reduction of incident throats
	op                float64       // op parameter as given
}

// add model to factory
func init() {
	allocators["fromthroat"] = func() phys.Model {
		return &FromThroat{CapillaryPressure: nwk.ThroatKey("capillary_pressure"), Red: nwk.Min}
	}
}

// Init initialises model
func (o *FromThroat) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "op":
			o.op = p.V
			switch p.V {
			case 0:
				o.Red = nwk.Min
			case 1:
				o.Red = nwk.Max
			default:
				o.Red = nwk.Mean
			}
		default:
			return chk.Err("fromthroat: parameter named %q is incorrect: %w", p.N, nwk.ErrConfig)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o FromThroat) GetPrms(example bool) dbf.Params {
	return dbf.Params{&dbf.P{N: "op", V: o.op}}
}

// SetKey replaces the key of the throat array
//  name -- "capillary_pressure"
func (o *FromThroat) SetKey(name string, k nwk.Key) error {
	if name != "capillary_pressure" {
		return chk.Err("fromthroat: key named %q is incorrect; option is \"capillary_pressure\": %w", name, nwk.ErrConfig)
	}
	if k.Ent != nwk.Throat {
		return chk.Err("fromthroat: key %q must be a throat array: %w", k, nwk.ErrConfig)
	}
	o.CapillaryPressure = k
	return nil
}

// Calc computes the entry pressure of the pores in the scope of p
func (o *FromThroat) Calc(p *phys.Physics) ([]float64, error) {
	tvals, err := p.Phase.Get(o.CapillaryPressure)
	if err != nil {
		return nil, chk.Err("fromthroat: %w", err)
	}
	res := make([]float64, len(p.Pores()))
	var buf []float64
	for j, i := range p.Pores() {
		buf = buf[:0]
		for _, t := range p.Net.NeighborThroats(i) {
			buf = append(buf, tvals[t])
		}
		if len(buf) > 0 {
			res[j] = o.Red.Reduce(buf...)
		}
	}
	return res, nil
}
