// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"math"
	"sort"

	"github.com/harlinb/gopnm/mdl/retention"
	"github.com/harlinb/gopnm/metrics"
	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// None marks elements never invaded or never trapped
const None = -1

// Record holds the invasion of one throat
type Record struct {
	Throat int     // throat index
	Pc     float64 // threshold of throat
	Step   int     // pressure step at which the throat was invaded
}

// Results holds the outcome of a percolation run
type Results struct {
	Net     *nwk.Network // network
	Pc      []float64    // pressure points; increasing
	Snw     []float64    // invading phase saturation at each pressure point
	Record  []Record     // invaded throats sorted by step, threshold and index
	Inlets  []int        // inlet pores
	Outlets []int        // outlet pores; empty if trapping was not evaluated

	// invasion and trapping steps; None if never
	PoreStep   []int // step at which each pore was invaded
	ThroatStep []int // step at which each throat was invaded
	PoreTrap   []int // step at which each pore was trapped
	ThroatTrap []int // step at which each throat was trapped

	// input
	Threshold []float64 // throat thresholds

	// internal
	pvol []float64         // pore volumes
	tvol []float64         // throat volumes
	rec  *metrics.Recorder // recorder
}

// finish computes the invasion record and the saturation curve from the invasion steps
func (o *Results) finish() error {
	o.Record = o.Record[:0]
	for t, s := range o.ThroatStep {
		if s != None {
			o.Record = append(o.Record, Record{t, o.Threshold[t], s})
		}
	}
	sort.Slice(o.Record, func(i, j int) bool {
		a, b := o.Record[i], o.Record[j]
		if a.Step != b.Step {
			return a.Step < b.Step
		}
		if a.Pc != b.Pc {
			return a.Pc < b.Pc
		}
		return a.Throat < b.Throat
	})

	total := 0.0
	added := make([]float64, len(o.Pc))
	for _, set := range []struct {
		vol   []float64
		steps []int
	}{{o.pvol, o.PoreStep}, {o.tvol, o.ThroatStep}} {
		for i, v := range set.vol {
			total += v
			if s := set.steps[i]; s != None {
				added[s] += v
			}
		}
	}
	if !(total > 0) {
		return chk.Err("percolation: total pore and throat volume must be positive; got %g: %w", total, nwk.ErrGeometry)
	}
	o.Snw = make([]float64, len(o.Pc))
	sum := 0.0
	for s := range o.Pc {
		sum += added[s]
		o.Snw[s] = math.Min(sum/total, 1)
	}
	return nil
}

// Print prints the saturation curve
func (o *Results) Print() {
	io.Pf("%5s%16s%12s\n", "step", "Pc", "Snw")
	for s, pc := range o.Pc {
		io.Pf("%5d%16.6e%12.6f\n", s, pc, o.Snw[s])
	}
}

// InvasionPc returns the pressure at which each pore and throat was invaded; +Inf if never
func (o *Results) InvasionPc() (pores, throats []float64) {
	conv := func(steps []int) []float64 {
		res := make([]float64, len(steps))
		for i, s := range steps {
			if s == None {
				res[i] = math.Inf(1)
			} else {
				res[i] = o.Pc[s]
			}
		}
		return res
	}
	return conv(o.PoreStep), conv(o.ThroatStep)
}

// Occupancy returns the elements occupied by the invading phase at pressure pc
func (o *Results) Occupancy(pc float64) (pores, throats []bool) {
	s := sort.SearchFloat64s(o.Pc, pc) // Pc[s-1] < pc <= Pc[s]
	if s == len(o.Pc) || o.Pc[s] != pc {
		s--
	}
	occ := func(steps []int) []bool {
		res := make([]bool, len(steps))
		for i, k := range steps {
			res[i] = k != None && k <= s
		}
		return res
	}
	return occ(o.PoreStep), occ(o.ThroatStep)
}

// Invaded returns the throats invaded at or before step, sorted
func (o *Results) Invaded(step int) (throats []int) {
	for t, s := range o.ThroatStep {
		if s != None && s <= step {
			throats = append(throats, t)
		}
	}
	return
}

// NumTrappedPores returns the number of trapped pores
func (o *Results) NumTrappedPores() int { return count(o.PoreTrap) }

// NumTrappedThroats returns the number of trapped throats
func (o *Results) NumTrappedThroats() int { return count(o.ThroatTrap) }

// Retention returns a retention model interpolating the saturation curve
func (o *Results) Retention() (*retention.Tabulated, error) {
	return retention.NewTabulated(o.Pc, o.Snw)
}

// count counts entries different from None
func count(steps []int) (n int) {
	for _, s := range steps {
		if s != None {
			n++
		}
	}
	return
}
