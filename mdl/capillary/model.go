// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package capillary implements models for capillary entry pressure in pores and throats
//  References:
//   [1] Washburn EW (1921) The dynamics of capillary flow. Physical Review, 17(3), 273-283
//   [2] Mason G and Morrow NR (1994) Effect of contact angle on capillary displacement
//       curvatures in pore throats formed by spheres. J. Colloid Interface Sci. 168, 130-141
//   [3] Joekar-Niasar V, Hassanizadeh SM and Dahle HK (2010) Non-equilibrium effects in
//       capillarity and interfacial area in two-phase flow: dynamic pore-network modelling.
//       J. Fluid Mech. 655, 38-71
package capillary

import (
	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
)

// New returns a new capillary pressure model
func New(name string) (model phys.Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'capillary' database: %w", name, nwk.ErrConfig)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() phys.Model{}
