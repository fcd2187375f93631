// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"github.com/harlinb/gopnm/clu"
	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
)

// EvaluateTrapping finds the defending phase trapped at each pressure step
//  At each step, clusters of pores not yet invaded without an outlet pore are trapped.
//  Throats not yet invaded touching a trapped pore or with both pores invaded are trapped.
//  Trapped elements are never invaded; the record and saturation are updated accordingly.
//  Note: clusters are found on pore occupancy (site percolation)
func (o *Results) EvaluateTrapping(outlets []int) error {
	net := o.Net
	if len(outlets) == 0 {
		return chk.Err("trapping: at least one outlet pore is required: %w", nwk.ErrConfig)
	}
	for _, i := range outlets {
		if i < 0 || i >= net.Np() {
			return chk.Err("trapping: outlet pore %d is out of range [0,%d): %w", i, net.Np(), nwk.ErrConfig)
		}
	}
	o.Outlets = sorted(outlets)
	o.PoreTrap, o.ThroatTrap = steps(net.Np()), steps(net.Nt())

	defending := make([]bool, net.Np())
	for s := range o.Pc {
		for i, k := range o.PoreStep {
			defending[i] = k == None || k > s || o.PoreTrap[i] != None
		}
		labels, err := clu.Find(net, defending)
		if err != nil {
			return err
		}
		ids, members := clu.Groups(labels)
		o.rec.DefendingClusters(len(ids))

		// clusters connected to outlets
		open := make(map[int]bool)
		for _, i := range o.Outlets {
			if labels[i] != clu.None {
				open[labels[i]] = true
			}
		}

		// pores
		for j, l := range ids {
			if open[l] {
				continue
			}
			for _, i := range members[j] {
				if o.PoreTrap[i] == None {
					o.PoreTrap[i] = s
				}
			}
		}

		// throats
		for t, c := range net.Conns {
			if o.ThroatTrap[t] != None || (o.ThroatStep[t] != None && o.ThroatStep[t] <= s) {
				continue
			}
			a, b := c[0], c[1]
			touches := o.PoreTrap[a] != None || o.PoreTrap[b] != None
			if touches || (!defending[a] && !defending[b]) {
				o.ThroatTrap[t] = s
			}
		}
	}

	// trapped elements are never invaded
	for _, set := range []struct {
		trap, inv []int
	}{{o.PoreTrap, o.PoreStep}, {o.ThroatTrap, o.ThroatStep}} {
		for i, s := range set.trap {
			if s != None && set.inv[i] != None && set.inv[i] > s {
				set.inv[i] = None
			}
		}
	}
	return o.finish()
}
