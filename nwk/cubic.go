// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwk

import (
	"github.com/cpmech/gosl/chk"
)

// NewCubic generates a simple cubic lattice with nx×ny×nz pores
//  Pore (i,j,k) has index i + nx*(j + ny*k) and is located at the centre of its cell.
//  Labels follow the faces of the box:
//   front/back  -- x-min/x-max
//   left/right  -- y-min/y-max
//   bottom/top  -- z-min/z-max
//  plus "internal" and "surface" pores.
func NewCubic(name string, shape [3]int, spacing float64) (o *Network, err error) {

	// check
	nx, ny, nz := shape[0], shape[1], shape[2]
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("cubic: shape must be positive; got %v: %w", shape, ErrConfig)
	}
	if spacing <= 0 {
		return nil, chk.Err("cubic: spacing must be positive; got %g: %w", spacing, ErrConfig)
	}

	// pores
	np := nx * ny * nz
	idx := func(i, j, k int) int { return i + nx*(j+ny*k) }
	coords := make([][3]float64, np)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				coords[idx(i, j, k)] = [3]float64{
					(float64(i) + 0.5) * spacing,
					(float64(j) + 0.5) * spacing,
					(float64(k) + 0.5) * spacing,
				}
			}
		}
	}

	// throats: x-direction first, then y and z
	var conns [][2]int
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx-1; i++ {
				conns = append(conns, [2]int{idx(i, j, k), idx(i+1, j, k)})
			}
		}
	}
	for k := 0; k < nz; k++ {
		for j := 0; j < ny-1; j++ {
			for i := 0; i < nx; i++ {
				conns = append(conns, [2]int{idx(i, j, k), idx(i, j+1, k)})
			}
		}
	}
	for k := 0; k < nz-1; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				conns = append(conns, [2]int{idx(i, j, k), idx(i, j, k+1)})
			}
		}
	}

	// network
	o, err = New(name, coords, conns)
	if err != nil {
		return
	}

	// face labels
	faces := map[string][]int{}
	var internal, surface []int
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := idx(i, j, k)
				onface := false
				add := func(face string, cond bool) {
					if cond {
						faces[face] = append(faces[face], p)
						onface = true
					}
				}
				add("front", i == 0)
				add("back", i == nx-1)
				add("left", j == 0)
				add("right", j == ny-1)
				add("bottom", k == 0)
				add("top", k == nz-1)
				if onface {
					surface = append(surface, p)
				} else {
					internal = append(internal, p)
				}
			}
		}
	}
	for face, pores := range faces {
		if err = o.SetLabel(PoreKey(face), pores); err != nil {
			return
		}
	}
	if err = o.SetLabel(PoreKey("surface"), surface); err != nil {
		return
	}
	err = o.SetLabel(PoreKey("internal"), internal)
	return
}
