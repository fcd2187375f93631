// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"
)

// HagenPoiseuille implements the hydraulic conductance of laminar flow in cylinders
//  g = π r⁴ / (8 μ L)   [m³/(Pa・s)]
type HagenPoiseuille struct {
	conduit
}

// add model to factory
func init() {
	allocators["hagenpoiseuille"] = func() phys.Model {
		o := new(HagenPoiseuille)
		o.setDefault("hagenpoiseuille", "viscosity", nwk.PoreKey("viscosity"))
		return o
	}
}

// Calc computes the conductance of the throats in the scope of p
func (o *HagenPoiseuille) Calc(p *phys.Physics) ([]float64, error) {
	return o.series(p, Poiseuille)
}

// Poiseuille returns the hydraulic conductance of a cylinder
func Poiseuille(r, L, μ float64) float64 {
	return math.Pi * math.Pow(r, 4) / (8 * μ * L)
}
