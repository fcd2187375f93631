// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for hydraulic and diffusive conductance of throats
//  Each throat is a conduit made of three segments in series: half of pore 1, the throat
//  and half of pore 2. Pore segments are cylinders with the pore radius and length equal
//  to the pore radius; pores with zero diameter offer no resistance.
package conduct

import (
	"strings"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// New returns a new conductance model
func New(name string) (model phys.Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database: %w", name, nwk.ErrConfig)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() phys.Model{}

// segment returns the conductance of a cylinder with radius r and length L given
// the fluid property v (e.g. viscosity)
type segment func(r, L, v float64) float64

// conduit holds keys of geometry arrays on the network and of the fluid property on the phase
type conduit struct {
	PoreDiameter   nwk.Key // pore diameter
	ThroatDiameter nwk.Key // throat diameter
	ThroatLength   nwk.Key // throat length
	Property       nwk.Key // fluid property; e.g. pore.viscosity
	name           string  // model name for messages
	prop           string  // name of the fluid property key
}

// setDefault sets default keys
func (o *conduit) setDefault(name, prop string, k nwk.Key) {
	o.PoreDiameter = nwk.PoreKey("diameter")
	o.ThroatDiameter = nwk.ThroatKey("diameter")
	o.ThroatLength = nwk.ThroatKey("length")
	o.Property = k
	o.name, o.prop = name, prop
}

// Init initialises model. No parameters are needed
func (o *conduit) Init(prms dbf.Params) error {
	if len(prms) > 0 {
		return chk.Err("%s: parameter named %q is incorrect: %w", o.name, prms[0].N, nwk.ErrConfig)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o conduit) GetPrms(example bool) dbf.Params {
	return nil
}

// SetKey replaces the key of an input array
//  name -- "pore_diameter", "throat_diameter", "throat_length" or the fluid property name
func (o *conduit) SetKey(name string, k nwk.Key) error {
	switch strings.ToLower(name) {
	case "pore_diameter":
		o.PoreDiameter = k
	case "throat_diameter":
		o.ThroatDiameter = k
	case "throat_length":
		o.ThroatLength = k
	case o.prop:
		o.Property = k
	default:
		return chk.Err("%s: key named %q is incorrect: %w", o.name, name, nwk.ErrConfig)
	}
	return nil
}

// series computes the conductance of the throats in the scope of p
func (o conduit) series(p *phys.Physics, g segment) ([]float64, error) {
	net := p.Net
	pdia, err := net.Get(o.PoreDiameter)
	if err != nil {
		return nil, chk.Err("%s: %w", o.name, err)
	}
	tdia, err := net.Get(o.ThroatDiameter)
	if err != nil {
		return nil, chk.Err("%s: %w", o.name, err)
	}
	tlen, err := net.Get(o.ThroatLength)
	if err != nil {
		return nil, chk.Err("%s: %w", o.name, err)
	}
	vp, err := p.Phase.Resolve(o.Property, nwk.Pore, nwk.Mean)
	if err != nil {
		return nil, chk.Err("%s: %w", o.name, err)
	}
	vt, err := p.Phase.Resolve(o.Property, nwk.Throat, nwk.Mean)
	if err != nil {
		return nil, chk.Err("%s: %w", o.name, err)
	}
	res := make([]float64, len(p.Throats()))
	for j, t := range p.Throats() {
		if tdia[t] <= 0 || tlen[t] <= 0 {
			return nil, chk.Err("%s: throat %d has diameter %g and length %g; both must be positive: %w", o.name, t, tdia[t], tlen[t], nwk.ErrGeometry)
		}
		resistance := 1 / g(tdia[t]/2, tlen[t], vt[t])
		for _, i := range net.Conns[t] {
			if r := pdia[i] / 2; r > 0 {
				resistance += 1 / g(r, r, vp[i])
			}
		}
		res[j] = 1 / resistance
	}
	return res, nil
}
