// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package clu implements connected-component labelling of pore occupancy states
//  Labels are only meaningful for grouping: pores sharing a label belong to the same
//  cluster; pores outside the state receive the sentinel label None.
package clu

import (
	"sort"

	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
)

// None is the label of pores not satisfying the occupancy state
const None = -1

// Find labels clusters of occupied pores (site percolation)
//  Two occupied pores belong to the same cluster if a path of throats connects them
//  through occupied pores only.
func Find(net *nwk.Network, occ []bool) (labels []int, err error) {
	if len(occ) != net.Np() {
		return nil, chk.Err("clusters: occupancy has length %d but Np = %d: %w", len(occ), net.Np(), nwk.ErrConfig)
	}
	labels = newLabels(net.Np())
	queue := make([]int, 0, 64)
	lbl := 0
	for p0 := range occ {
		if !occ[p0] || labels[p0] != None {
			continue
		}
		labels[p0] = lbl
		queue = append(queue[:0], p0)
		for k := 0; k < len(queue); k++ {
			for _, q := range net.NeighborPores(queue[k]) {
				if occ[q] && labels[q] == None {
					labels[q] = lbl
					queue = append(queue, q)
				}
			}
		}
		lbl++
	}
	return
}

// FindBond labels clusters formed by the throats in tmask (bond percolation)
//  Pores not attached to any throat in tmask receive None.
func FindBond(net *nwk.Network, tmask []bool) (labels []int, err error) {
	if len(tmask) != net.Nt() {
		return nil, chk.Err("clusters: throat mask has length %d but Nt = %d: %w", len(tmask), net.Nt(), nwk.ErrConfig)
	}
	labels = newLabels(net.Np())
	queue := make([]int, 0, 64)
	lbl := 0
	for t0, c := range net.Conns {
		if !tmask[t0] || labels[c[0]] != None {
			continue
		}
		labels[c[0]] = lbl
		queue = append(queue[:0], c[0])
		for k := 0; k < len(queue); k++ {
			p := queue[k]
			ts, ps := net.NeighborThroats(p), net.NeighborPores(p)
			for j, t := range ts {
				if tmask[t] && labels[ps[j]] == None {
					labels[ps[j]] = lbl
					queue = append(queue, ps[j])
				}
			}
		}
		lbl++
	}
	return
}

// Groups returns the distinct labels (sorted, None excluded) and the pores of each
func Groups(labels []int) (ids []int, members [][]int) {
	pos := make(map[int]int)
	for _, l := range labels {
		if l == None {
			continue
		}
		if _, ok := pos[l]; !ok {
			pos[l] = len(ids)
			ids = append(ids, l)
		}
	}
	sort.Ints(ids)
	for i, l := range ids {
		pos[l] = i
	}
	members = make([][]int, len(ids))
	for p, l := range labels {
		if l != None {
			members[pos[l]] = append(members[pos[l]], p)
		}
	}
	return
}

// Count returns the number of clusters
func Count(labels []int) int {
	ids, _ := Groups(labels)
	return len(ids)
}

// SamePartition tells whether two labellings induce the same grouping of pores,
// regardless of the label values
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ab := make(map[int]int)
	ba := make(map[int]int)
	for i := range a {
		if (a[i] == None) != (b[i] == None) {
			return false
		}
		if a[i] == None {
			continue
		}
		if l, ok := ab[a[i]]; ok && l != b[i] {
			return false
		}
		if l, ok := ba[b[i]]; ok && l != a[i] {
			return false
		}
		ab[a[i]], ba[b[i]] = b[i], a[i]
	}
	return true
}

// newLabels returns n labels set to None
func newLabels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = None
	}
	return labels
}
