// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package alg implements quasi-static displacement algorithms on pore networks
package alg

import (
	"math"
	"sort"
	"time"

	"github.com/harlinb/gopnm/metrics"
	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phase"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// PadFrac is the fraction of the largest threshold magnitude added below and above the
// range of thresholds when generating pressure points
const PadFrac = 0.02

// OrdinaryPercolation simulates drainage by ordinary (quasi-static) bond percolation
//  At each pressure step, every throat with threshold not larger than the pressure and
//  connected to an inlet through such throats is invaded together with its two pores.
type OrdinaryPercolation struct {
	Net     *nwk.Network      // network
	Verbose bool              // show messages
	Key     nwk.Key           // throat thresholds on the invading phase; default throat.capillary_pressure
	Points  []float64         // pressure points; if empty, npts points spanning the thresholds are used
	Rec     *metrics.Recorder // records run statistics; may be nil
}

// NewOrdinaryPercolation returns a new algorithm with the default threshold key
func NewOrdinaryPercolation(net *nwk.Network) *OrdinaryPercolation {
	return &OrdinaryPercolation{Net: net, Key: nwk.ThroatKey("capillary_pressure")}
}

// Run invades the network with inv displacing def from the inlet pores
//  outlets -- optional; if given, trapping of the defending phase is evaluated
//  npts    -- number of pressure points; ignored if Points is set
func (o *OrdinaryPercolation) Run(inv, def *phase.Phase, inlets, outlets []int, npts int) (res *Results, err error) {
	start := time.Now()
	defer func() {
		steps, invaded, trapped := 0, 0, 0
		if res != nil {
			steps, invaded, trapped = len(res.Pc), len(res.Record), res.NumTrappedPores()
		}
		o.Rec.Run(time.Since(start), steps, invaded, trapped, err)
	}()

	// input
	if err = o.check(inv, def, inlets, outlets, npts); err != nil {
		return nil, err
	}
	net := o.Net
	key := o.Key
	if key.Name == "" {
		key = nwk.ThroatKey("capillary_pressure")
	}
	if key.Ent != nwk.Throat {
		return nil, chk.Err("percolation: threshold key %q must be a throat array: %w", key, nwk.ErrConfig)
	}
	thresholds, err := inv.Get(key)
	if err != nil {
		return nil, chk.Err("percolation: invading phase %q: %w", inv.Name, err)
	}
	pvol, err := net.Get(nwk.PoreKey("volume"))
	if err != nil {
		return nil, chk.Err("percolation: %w", err)
	}
	tvol, err := net.Get(nwk.ThroatKey("volume"))
	if err != nil {
		return nil, chk.Err("percolation: %w", err)
	}

	// results
	res = &Results{
		Net:        net,
		Pc:         o.points(thresholds, npts),
		Inlets:     sorted(inlets),
		PoreStep:   steps(net.Np()),
		ThroatStep: steps(net.Nt()),
		Threshold:  thresholds,
		pvol:       pvol,
		tvol:       tvol,
		rec:        o.Rec,
	}
	if o.Verbose {
		io.Pf("percolation: %d pores, %d throats, %d inlets, %d pressure points in [%g, %g]\n",
			net.Np(), net.Nt(), len(inlets), len(res.Pc), res.Pc[0], res.Pc[len(res.Pc)-1])
	}

	// invade
	reached := make([]bool, net.Np())
	queue := make([]int, 0, len(inlets))
	for _, i := range res.Inlets {
		if !reached[i] {
			reached[i] = true
			queue = append(queue, i)
		}
	}
	for s, pc := range res.Pc {
		front := append([]int(nil), queue...)
		for k := 0; k < len(front); k++ {
			i := front[k]
			ts, ps := net.NeighborThroats(i), net.NeighborPores(i)
			for j, t := range ts {
				if res.ThroatStep[t] != None || !(thresholds[t] <= pc) {
					continue
				}
				res.ThroatStep[t] = s
				for _, q := range [2]int{i, ps[j]} {
					if res.PoreStep[q] == None {
						res.PoreStep[q] = s
					}
				}
				if q := ps[j]; !reached[q] {
					reached[q] = true
					front = append(front, q)
					queue = append(queue, q)
				}
			}
		}
	}
	if err = res.finish(); err != nil {
		return nil, err
	}
	if o.Verbose {
		res.Print()
	}

	// trapping
	if len(outlets) > 0 {
		if err = res.EvaluateTrapping(outlets); err != nil {
			return nil, err
		}
		if o.Verbose {
			io.Pf("percolation: %d pores and %d throats trapped\n", res.NumTrappedPores(), res.NumTrappedThroats())
		}
	}
	return
}

// check checks input
func (o *OrdinaryPercolation) check(inv, def *phase.Phase, inlets, outlets []int, npts int) error {
	if o.Net == nil || inv == nil || def == nil {
		return chk.Err("percolation: network and both phases are required: %w", nwk.ErrConfig)
	}
	if inv.Net != o.Net || def.Net != o.Net {
		return chk.Err("percolation: phases %q and %q must belong to network %q: %w", inv.Name, def.Name, o.Net.Name, nwk.ErrConfig)
	}
	if len(o.Points) == 0 && npts <= 0 {
		return chk.Err("percolation: number of pressure points must be positive; got %d: %w", npts, nwk.ErrConfig)
	}
	for _, p := range o.Points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return chk.Err("percolation: pressure point %g is not finite: %w", p, nwk.ErrConfig)
		}
	}
	if len(inlets) == 0 {
		return chk.Err("percolation: at least one inlet pore is required: %w", nwk.ErrConfig)
	}
	for _, set := range []struct {
		name string
		idx  []int
	}{{"inlet", inlets}, {"outlet", outlets}} {
		for _, i := range set.idx {
			if i < 0 || i >= o.Net.Np() {
				return chk.Err("percolation: %s pore %d is out of range [0,%d): %w", set.name, i, o.Net.Np(), nwk.ErrConfig)
			}
		}
	}
	return nil
}

// points returns sorted and distinct pressure points
func (o *OrdinaryPercolation) points(thresholds []float64, npts int) []float64 {
	if len(o.Points) > 0 {
		pts := append([]float64(nil), o.Points...)
		sort.Float64s(pts)
		res := pts[:1]
		for _, p := range pts[1:] {
			if p != res[len(res)-1] {
				res = append(res, p)
			}
		}
		return res
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range thresholds {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		lo, hi = utl.Min(lo, t), utl.Max(hi, t)
	}
	if lo > hi {
		lo, hi = 0, 0
	}
	pad := PadFrac * utl.Max(math.Abs(lo), math.Abs(hi))
	if pad == 0 {
		pad = 1
	}
	if npts == 1 {
		return []float64{hi + pad}
	}
	return utl.LinSpace(lo-pad, hi+pad, npts)
}

// steps returns n steps set to None
func steps(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = None
	}
	return s
}

// sorted returns a sorted copy of distinct indices
func sorted(idx []int) []int {
	res := append([]int(nil), idx...)
	sort.Ints(res)
	k := 0
	for i, v := range res {
		if i == 0 || v != res[k-1] {
			res[k] = v
			k++
		}
	}
	return res[:k]
}
