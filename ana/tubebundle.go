// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
)

// TubeBundle computes the drainage curve of parallel cylindrical tubes of equal length
//  Each tube is invaded when the pressure reaches its Washburn entry pressure
//    Pc = -2 σ cos(θ) / r
//  and the saturation is the fraction of the volume of invaded tubes
type TubeBundle struct {
	Radii []float64 // radii of tubes
	Sigma float64   // surface tension
	Theta float64   // contact angle [deg]
}

// Entry returns the entry pressure of a tube with radius r
func (o TubeBundle) Entry(r float64) float64 {
	return -2 * o.Sigma * math.Cos(o.Theta*math.Pi/180) / r
}

// Snw returns the saturation of the invading phase at pressure pc
func (o TubeBundle) Snw(pc float64) float64 {
	inv, total := 0.0, 0.0
	for _, r := range o.Radii {
		total += r * r
		if o.Entry(r) <= pc {
			inv += r * r
		}
	}
	if total == 0 {
		return 0
	}
	return inv / total
}
