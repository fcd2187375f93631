// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements fluids occupying the pore network
package phase

import (
	"strings"

	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// names maps parameter names to the pore arrays they initialise
var names = map[string]string{
	"sigma": "surface_tension",  // [N/m]
	"theta": "contact_angle",    // [deg]
	"rho":   "density",          // [kg/m³]
	"t":     "temperature",      // [K]
	"pvap":  "vapor_pressure",   // [Pa]
	"mw":    "molecular_weight", // [kg/mol]
	"mu":    "viscosity",        // [Pa・s]
	"dab":   "diffusivity",      // [m²/s]
}

// Phase holds the physical properties of a fluid over all pores and throats
type Phase struct {
	nwk.Props

	// input
	Name string       // name of phase; e.g. "water"
	Net  *nwk.Network // network occupied by this phase
	Gas  bool         // gas instead of liquid; selects example parameters

	// parameters used in Init
	prms dbf.Params
}

// New returns a new phase without properties
func New(name string, net *nwk.Network) *Phase {
	o := &Phase{Name: name, Net: net}
	o.InitProps(net.Np(), net.Nt())
	return o
}

// Init sets constant pore properties from parameters
//  sigma -- pore.surface_tension
//  theta -- pore.contact_angle
//  rho   -- pore.density
//  T     -- pore.temperature
//  pvap  -- pore.vapor_pressure
//  mw    -- pore.molecular_weight
//  mu    -- pore.viscosity
//  dab   -- pore.diffusivity
func (o *Phase) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		name, ok := names[strings.ToLower(p.N)]
		if !ok {
			return chk.Err("phase %q: parameter named %q is incorrect: %w", o.Name, p.N, nwk.ErrConfig)
		}
		o.SetConst(nwk.PoreKey(name), p.V)
	}
	o.prms = prms
	return
}

// GetPrms gets (an example of) parameters
//  Note: Gas is used to return dry air properties instead of water
func (o Phase) GetPrms(example bool) dbf.Params {
	if !example {
		return o.prms
	}
	if o.Gas {
		return dbf.Params{ // dry air at 298 K
			&dbf.P{N: "rho", V: 1.185},   // [kg/m³]
			&dbf.P{N: "T", V: 298.0},     // [K]
			&dbf.P{N: "mw", V: 0.0291},   // [kg/mol]
			&dbf.P{N: "mu", V: 1.85e-5},  // [Pa・s]
			&dbf.P{N: "dab", V: 2.07e-5}, // [m²/s]
			&dbf.P{N: "theta", V: 180.0}, // [deg]
			&dbf.P{N: "sigma", V: 0.0},   // [N/m]
			&dbf.P{N: "pvap", V: 0.0},    // [Pa]
		}
	}
	return dbf.Params{ // water at 298 K
		&dbf.P{N: "sigma", V: 0.072}, // [N/m]
		&dbf.P{N: "theta", V: 110.0}, // [deg]
		&dbf.P{N: "rho", V: 997.0},   // [kg/m³]
		&dbf.P{N: "T", V: 298.0},     // [K]
		&dbf.P{N: "pvap", V: 3141.0}, // [Pa]
		&dbf.P{N: "mw", V: 0.0181},   // [kg/mol]
		&dbf.P{N: "mu", V: 8.9e-4},   // [Pa・s]
		&dbf.P{N: "dab", V: 2.0e-9},  // [m²/s]
	}
}

// Resolve returns the array with key k aligned to the target entity.
// Arrays on the other entity are interpolated using red
func (o *Phase) Resolve(k nwk.Key, target nwk.Entity, red nwk.Reduction) ([]float64, error) {
	v, err := o.Get(k)
	if err != nil {
		return nil, chk.Err("phase %q: %w", o.Name, err)
	}
	if k.Ent == target {
		return v, nil
	}
	if target == nwk.Throat {
		return o.Net.Interpolate(v, red)
	}
	return o.Net.ToPores(v, red)
}
