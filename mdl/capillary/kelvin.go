// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// GasConstant is the universal gas constant [J/(mol・K)]
const GasConstant = 8.314

// Kelvin implements the critical vapour pressure for condensation in a pore
//  P = P0 exp(2 M γ / (ρ R T r))
//  Note: only meaningful for site percolation
type Kelvin struct {
	interfacial
	Temperature     nwk.Key // T
	VaporPressure   nwk.Key // P0
	MolecularWeight nwk.Key // M
	Density         nwk.Key // ρ
}

// add model to factory
func init() {
	allocators["kelvin"] = func() phys.Model {
		o := new(Kelvin)
		o.setDefault()
		o.Diameter = nwk.PoreKey("diameter")
		o.Temperature = nwk.PoreKey("temperature")
		o.VaporPressure = nwk.PoreKey("vapor_pressure")
		o.MolecularWeight = nwk.PoreKey("molecular_weight")
		o.Density = nwk.PoreKey("density")
		return o
	}
}

// Init initialises model
func (o *Kelvin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if err = o.setPrm("kelvin", p); err != nil {
			return
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Kelvin) GetPrms(example bool) dbf.Params {
	return o.getPrms()
}

// SetKey replaces the key of an input array
//  name -- "diameter", "surface_tension", "temperature", "vapor_pressure",
//          "molecular_weight" or "density"
func (o *Kelvin) SetKey(name string, k nwk.Key) error {
	switch name {
	case "temperature":
		o.Temperature = k
	case "vapor_pressure":
		o.VaporPressure = k
	case "molecular_weight":
		o.MolecularWeight = k
	case "density":
		o.Density = k
	case "contact_angle":
		return chk.Err("kelvin: contact angle is not used: %w", nwk.ErrConfig)
	default:
		return o.interfacial.SetKey(name, k)
	}
	return nil
}

// Calc computes the condensation pressure of the elements in the scope of p
func (o *Kelvin) Calc(p *phys.Physics) ([]float64, error) {
	ent := o.Diameter.Ent
	r, err := o.radii(p.Net)
	if err != nil {
		return nil, err
	}
	keys := []nwk.Key{o.Temperature, o.VaporPressure, o.MolecularWeight, o.Density, o.SurfaceTension}
	vals := make([][]float64, len(keys))
	for j, k := range keys {
		if vals[j], err = p.Phase.Resolve(k, ent, o.Red); err != nil {
			return nil, err
		}
	}
	T, P0, M, ρ, γ := vals[0], vals[1], vals[2], vals[3], vals[4]
	pv := make([]float64, len(r))
	for i := range r {
		pv[i] = P0[i] * math.Exp(2*M[i]*γ[i]/(ρ[i]*GasConstant*T[i]*r[i]))
	}
	res := finish(p, "kelvin", ent, pv)
	if err := checkNaN(p, "kelvin", ent, res); err != nil {
		return nil, err
	}
	return res, nil
}
