// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwk

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// MinLengthFrac is the smallest throat length as a fraction of the pore-to-pore distance
const MinLengthFrac = 1e-3

// StickAndBall generates spherical pores connected by cylindrical throats
//  pore.diameter   -- uniform random in [dmin, dmax] times the spacing (constant if dmin == dmax)
//  throat.diameter -- ratio times the smallest of the two pore diameters
//  throat.length   -- centre distance minus the two pore radii
//  pore.volume, throat.volume
type StickAndBall struct {
	Spacing float64 // lattice spacing
	Dmin    float64 // minimum pore diameter as a fraction of Spacing
	Dmax    float64 // maximum pore diameter as a fraction of Spacing
	Ratio   float64 // throat to pore diameter ratio
	Seed    int     // seed for random numbers; 0 means a random seed
}

// Init initialises geometry
func (o *StickAndBall) Init(prms dbf.Params) (err error) {
	o.Dmin, o.Dmax, o.Ratio = 0.5, 0.9, 0.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "spacing":
			o.Spacing = p.V
		case "dmin":
			o.Dmin = p.V
		case "dmax":
			o.Dmax = p.V
		case "ratio":
			o.Ratio = p.V
		case "seed":
			o.Seed = int(p.V)
		default:
			return chk.Err("stick-and-ball: parameter named %q is incorrect: %w", p.N, ErrConfig)
		}
	}
	return o.check()
}

// GetPrms gets (an example) of parameters
func (o StickAndBall) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "spacing", V: 1e-4},
			&dbf.P{N: "dmin", V: 0.5},
			&dbf.P{N: "dmax", V: 0.9},
			&dbf.P{N: "ratio", V: 0.5},
			&dbf.P{N: "seed", V: 1234},
		}
	}
	return dbf.Params{
		&dbf.P{N: "spacing", V: o.Spacing},
		&dbf.P{N: "dmin", V: o.Dmin},
		&dbf.P{N: "dmax", V: o.Dmax},
		&dbf.P{N: "ratio", V: o.Ratio},
		&dbf.P{N: "seed", V: float64(o.Seed)},
	}
}

// Generate sets the geometry arrays on the network
func (o *StickAndBall) Generate(net *Network) (err error) {
	if err = o.check(); err != nil {
		return
	}

	// pores
	var rng *rand.Rand
	if o.Seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(o.Seed), 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	pdia := make([]float64, net.Np())
	pvol := make([]float64, net.Np())
	for i := range pdia {
		if o.Dmin == o.Dmax {
			pdia[i] = o.Dmin * o.Spacing
		} else {
			pdia[i] = (o.Dmin + (o.Dmax-o.Dmin)*rng.Float64()) * o.Spacing
		}
		pvol[i] = math.Pi * math.Pow(pdia[i], 3) / 6.0
	}

	// throats
	tdia := make([]float64, net.Nt())
	tlen := make([]float64, net.Nt())
	tvol := make([]float64, net.Nt())
	for t, c := range net.Conns {
		a, b := net.Coords[c[0]], net.Coords[c[1]]
		dist := math.Sqrt(sq(a[0]-b[0]) + sq(a[1]-b[1]) + sq(a[2]-b[2]))
		tdia[t] = o.Ratio * utl.Min(pdia[c[0]], pdia[c[1]])
		tlen[t] = utl.Max(dist-0.5*(pdia[c[0]]+pdia[c[1]]), MinLengthFrac*dist)
		tvol[t] = math.Pi * sq(tdia[t]/2.0) * tlen[t]
	}

	// set
	for _, s := range []struct {
		k Key
		v []float64
	}{
		{PoreKey("diameter"), pdia},
		{PoreKey("volume"), pvol},
		{ThroatKey("diameter"), tdia},
		{ThroatKey("length"), tlen},
		{ThroatKey("volume"), tvol},
	} {
		if err = net.Set(s.k, s.v); err != nil {
			return
		}
	}
	return
}

// check checks parameters
func (o StickAndBall) check() error {
	if o.Spacing <= 0 {
		return chk.Err("stick-and-ball: spacing must be positive; got %g: %w", o.Spacing, ErrConfig)
	}
	if o.Dmin <= 0 || o.Dmin > o.Dmax || o.Dmax > 1 {
		return chk.Err("stick-and-ball: diameters must satisfy 0 < dmin <= dmax <= 1; got dmin=%g dmax=%g: %w", o.Dmin, o.Dmax, ErrConfig)
	}
	if o.Ratio <= 0 || o.Ratio > 1 {
		return chk.Err("stick-and-ball: ratio must be in (0,1]; got %g: %w", o.Ratio, ErrConfig)
	}
	return nil
}

func sq(x float64) float64 { return x * x }
