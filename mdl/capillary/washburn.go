// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"

	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/fun/dbf"
)

// Washburn implements the entry pressure of a cylindrical tube [1]
//  Pc = -2 σ cos(θ) / r
type Washburn struct {
	interfacial
}

// add model to factory
func init() {
	allocators["washburn"] = func() phys.Model {
		o := new(Washburn)
		o.setDefault()
		return o
	}
}

// Init initialises model
func (o *Washburn) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if err = o.setPrm("washburn", p); err != nil {
			return
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Washburn) GetPrms(example bool) dbf.Params {
	return o.getPrms()
}

// Calc computes the entry pressure of the elements in the scope of p
func (o *Washburn) Calc(p *phys.Physics) ([]float64, error) {
	r, sigma, theta, err := o.resolve(p)
	if err != nil {
		return nil, err
	}
	pc := make([]float64, len(r))
	for i := range r {
		pc[i] = -2 * sigma[i] * math.Cos(rad(theta[i])) / r[i]
	}
	res := finish(p, "washburn", o.Diameter.Ent, pc)
	if err = checkNaN(p, "washburn", o.Diameter.Ent, res); err != nil {
		return nil, err
	}
	return res, nil
}
