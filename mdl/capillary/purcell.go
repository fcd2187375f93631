// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"
	"strings"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Purcell implements the entry pressure of a toroidal throat [2]
//  α  = θ - 180 + asin(sin(θ) / (1 + r/R))
//  Pc = (-2 σ / r) cos(θ - α) / (1 + R/r (1 - cos(α)))
//  where R is the radius of the toroid. Angles in degrees.
//  Note: for θ ≥ 90 the entry pressure approaches Washburn's as R/r → ∞
type Purcell struct {
	interfacial
	R float64 // radius of toroid
}

// add model to factory
func init() {
	allocators["purcell"] = func() phys.Model {
		o := new(Purcell)
		o.setDefault()
		return o
	}
}

// Init initialises model
func (o *Purcell) Init(prms dbf.Params) (err error) {
	found := false
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rtoroid":
			o.R, found = p.V, true
		default:
			if err = o.setPrm("purcell", p); err != nil {
				return
			}
		}
	}
	if !found {
		return chk.Err("purcell: parameter rtoroid is required: %w", nwk.ErrConfig)
	}
	if o.R <= 0 {
		return chk.Err("purcell: rtoroid must be positive; got %g: %w", o.R, nwk.ErrConfig)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Purcell) GetPrms(example bool) dbf.Params {
	prms := dbf.Params{&dbf.P{N: "rtoroid", V: 1e-5}}
	if !example {
		prms[0].V = o.R
	}
	return append(prms, o.getPrms()...)
}

// Calc computes the entry pressure of the elements in the scope of p
func (o *Purcell) Calc(p *phys.Physics) ([]float64, error) {
	if o.R <= 0 {
		return nil, chk.Err("purcell: rtoroid must be positive; got %g: %w", o.R, nwk.ErrConfig)
	}
	r, sigma, theta, err := o.resolve(p)
	if err != nil {
		return nil, err
	}
	ent := o.Diameter.Ent
	pc := make([]float64, len(r))
	for i := range r {
		s := math.Sin(rad(theta[i])) / (1 + r[i]/o.R)
		α := theta[i] - 180 + deg(math.Asin(s))
		pc[i] = (-2 * sigma[i] / r[i]) * math.Cos(rad(theta[i]-α)) / (1 + o.R/r[i]*(1-math.Cos(rad(α))))
	}
	res := finish(p, "purcell", ent, pc)
	for j, i := range p.Scope(ent) {
		if !math.IsNaN(res[j]) {
			continue
		}
		if s := math.Sin(rad(theta[i])) / (1 + r[i]/o.R); math.Abs(s) > 1 {
			return nil, chk.Err("purcell: asin argument %g at %s %d is outside [-1,1]: %w", s, ent, i, nwk.ErrGeometry)
		}
		return nil, chk.Err("purcell: capillary pressure at %s %d is undefined: %w", ent, i, nwk.ErrGeometry)
	}
	return res, nil
}
