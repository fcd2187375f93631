// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"strings"

	"github.com/harlinb/gopnm/clu"
	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Static computes the hydrostatic pressure within each cluster of occupied pores
//  P = ρ Σ_k g_k (top_k - x_k) for all k with g_k > 0
//  where top is the component-wise maximum coordinate of the cluster. The top of the
//  network thus corresponds to the maximum coordinate. Unoccupied pores get zero.
//  Note: clusters are found from pore occupancy (site percolation); two neighbouring pores
//        on different fluid clusters are merged
type Static struct {
	G         [3]float64 // gravity vector; default (0, 0, 9.81)
	Density   nwk.Key    // pore density on the phase
	Occupancy nwk.Key    // pore occupancy on the phase; occupied if > 0.5
}

// add model to factory
func init() {
	allocators["static"] = func() phys.Model {
		return &Static{
			G:         [3]float64{0, 0, 9.81},
			Density:   nwk.PoreKey("density"),
			Occupancy: nwk.PoreKey("occupancy"),
		}
	}
}

// Init initialises model
func (o *Static) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gx":
			o.G[0] = p.V
		case "gy":
			o.G[1] = p.V
		case "gz":
			o.G[2] = p.V
		default:
			return chk.Err("static: parameter named %q is incorrect: %w", p.N, nwk.ErrConfig)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Static) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "gx", V: o.G[0]},
		&dbf.P{N: "gy", V: o.G[1]},
		&dbf.P{N: "gz", V: o.G[2]},
	}
}

// SetKey replaces the key of an input array
//  name -- "density" or "occupancy"
func (o *Static) SetKey(name string, k nwk.Key) error {
	if k.Ent != nwk.Pore {
		return chk.Err("static: key %q must be a pore array: %w", k, nwk.ErrConfig)
	}
	switch name {
	case "density":
		o.Density = k
	case "occupancy":
		o.Occupancy = k
	default:
		return chk.Err("static: key named %q is incorrect; options are \"density\" and \"occupancy\": %w", name, nwk.ErrConfig)
	}
	return nil
}

// Calc computes the static pressure of the pores in the scope of p
func (o *Static) Calc(p *phys.Physics) ([]float64, error) {
	ρ, err := p.Phase.Get(o.Density)
	if err != nil {
		return nil, chk.Err("static: %w", err)
	}
	occ, err := p.Phase.Get(o.Occupancy)
	if err != nil {
		return nil, chk.Err("static: %w", err)
	}
	full, err := StaticPressure(p.Net, occ, ρ, o.G)
	if err != nil {
		return nil, err
	}
	return p.Slice(nwk.Pore, full), nil
}

// StaticPressure computes the hydrostatic pressure of all pores given occupancy and density
func StaticPressure(net *nwk.Network, occupancy, ρ []float64, g [3]float64) ([]float64, error) {
	occ := make([]bool, len(occupancy))
	for i, v := range occupancy {
		occ[i] = v > 0.5
	}
	labels, err := clu.Find(net, occ)
	if err != nil {
		return nil, err
	}
	res := make([]float64, net.Np())
	_, members := clu.Groups(labels)
	for _, pores := range members {
		top := net.Coords[pores[0]]
		for _, i := range pores[1:] {
			for k := 0; k < 3; k++ {
				if net.Coords[i][k] > top[k] {
					top[k] = net.Coords[i][k]
				}
			}
		}
		for _, i := range pores {
			for k := 0; k < 3; k++ {
				if g[k] > 0 {
					res[i] += ρ[i] * g[k] * (top[k] - net.Coords[i][k])
				}
			}
		}
	}
	return res, nil
}
