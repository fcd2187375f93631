// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"
)

// BulkDiffusion implements the diffusive conductance of cylinders
//  g = D π r² / L   [m³/s]
//  Multiplying by the molar concentration gives the molar conductance
type BulkDiffusion struct {
	conduit
}

// add model to factory
func init() {
	allocators["bulkdiffusion"] = func() phys.Model {
		o := new(BulkDiffusion)
		o.setDefault("bulkdiffusion", "diffusivity", nwk.PoreKey("diffusivity"))
		return o
	}
}

// Calc computes the conductance of the throats in the scope of p
func (o *BulkDiffusion) Calc(p *phys.Physics) ([]float64, error) {
	return o.series(p, Fick)
}

// Fick returns the diffusive conductance of a cylinder
func Fick(r, L, D float64) float64 {
	return D * math.Pi * r * r / L
}
