// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"

	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/fun/dbf"
)

// Cuboid implements the entry pressure of a throat with square cross-section [3]
//  Θ  = (θ + cos²θ - π/4 - sinθ cosθ) / (cosθ - sqrt(π/4 - θ + sinθ cosθ))
//  Pc = σ Θ / r
//  with θ in radians
type Cuboid struct {
	interfacial
}

// add model to factory
func init() {
	allocators["cuboid"] = func() phys.Model {
		o := new(Cuboid)
		o.setDefault()
		return o
	}
}

// Init initialises model
func (o *Cuboid) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if err = o.setPrm("cuboid", p); err != nil {
			return
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Cuboid) GetPrms(example bool) dbf.Params {
	return o.getPrms()
}

// Calc computes the entry pressure of the elements in the scope of p
func (o *Cuboid) Calc(p *phys.Physics) ([]float64, error) {
	r, sigma, theta, err := o.resolve(p)
	if err != nil {
		return nil, err
	}
	pc := make([]float64, len(r))
	for i := range r {
		pc[i] = sigma[i] * ShapeFactor(rad(theta[i])) / r[i]
	}
	res := finish(p, "cuboid", o.Diameter.Ent, pc)
	if err = checkNaN(p, "cuboid", o.Diameter.Ent, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ShapeFactor returns Θ for a square cross-section given the contact angle θ in radians
//  Note: the result is NaN when π/4 - θ + sinθ cosθ < 0
func ShapeFactor(θ float64) float64 {
	s, c := math.Sin(θ), math.Cos(θ)
	return (θ + c*c - math.Pi/4 - s*c) / (c - math.Sqrt(math.Pi/4-θ+s*c))
}
