// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify pore-network computations
package ana

import (
	"math"
)

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g):
//
//    R  = R0 + C・(p - p0)   thus   dR/dp = C
//    dp = -R(p)・g・dz
//
//  with (R0, p0) known at the top (z = H). For C = 0, p = p0 + R0・g・(H - z)
type ColumnFluidPressure struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation where (R0,p0) is known
}

// Init initialises this structure
func (o *ColumnFluidPressure) Init(R0, p0, C, g, H float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
}

// Calc computes pressure and density
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*math.Expm1(o.C*o.Grav*(o.H-z))
	R = o.R0 + o.C*(p-o.P0)
	return
}
