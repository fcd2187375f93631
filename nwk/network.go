// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nwk implements the pore network: topology, geometry arrays and labels
//  Pores are the nodes of the graph and throats its edges. Arrays are indexed by
//  position; i.e. the index of a pore or throat is its identity.
package nwk

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Network holds pores (nodes), throats (edges) and their properties
type Network struct {
	Props

	// input
	Name   string       // name of network
	Coords [][3]float64 // [Np] coordinates of pores
	Conns  [][2]int     // [Nt] the two pores connected by each throat

	// derived
	start  []int             // [Np+1] start of incidence list of each pore (CSR)
	adjT   []int             // [2*Nt] incident throats
	adjP   []int             // [2*Nt] pore on the other side of adjT
	labels map[Key][]int     // labelled subsets; sorted indices
	lnames map[string]Entity // entity of each label name
}

// New returns a new network. Throat endpoints must be valid pore indices
func New(name string, coords [][3]float64, conns [][2]int) (o *Network, err error) {
	o = new(Network)
	o.Name = name
	o.Coords = coords
	o.Conns = conns
	np, nt := len(coords), len(conns)
	for t, c := range conns {
		if c[0] < 0 || c[0] >= np || c[1] < 0 || c[1] >= np {
			return nil, chk.Err("throat %d connects pores (%d,%d) but Np = %d: %w", t, c[0], c[1], np, ErrGeometry)
		}
	}
	o.InitProps(np, nt)
	o.labels = make(map[Key][]int)
	o.lnames = make(map[string]Entity)

	// incidence lists
	o.start = make([]int, np+1)
	for _, c := range conns {
		o.start[c[0]+1]++
		o.start[c[1]+1]++
	}
	for i := 0; i < np; i++ {
		o.start[i+1] += o.start[i]
	}
	o.adjT = make([]int, 2*nt)
	o.adjP = make([]int, 2*nt)
	pos := append([]int(nil), o.start[:np]...)
	for t, c := range conns {
		o.adjT[pos[c[0]]], o.adjP[pos[c[0]]] = t, c[1]
		pos[c[0]]++
		o.adjT[pos[c[1]]], o.adjP[pos[c[1]]] = t, c[0]
		pos[c[1]]++
	}
	return
}

// Np returns the number of pores
func (o *Network) Np() int { return o.np }

// Nt returns the number of throats
func (o *Network) Nt() int { return o.nt }

// NeighborThroats returns the throats incident to pore p. The slice must not be modified
func (o *Network) NeighborThroats(p int) []int {
	return o.adjT[o.start[p]:o.start[p+1]]
}

// NeighborPores returns the pores connected to pore p, one per incident throat
func (o *Network) NeighborPores(p int) []int {
	return o.adjP[o.start[p]:o.start[p+1]]
}

// FindNeighborThroats returns the sorted set of throats incident to any of the given pores
func (o *Network) FindNeighborThroats(pores []int) (throats []int) {
	seen := make(map[int]bool)
	for _, p := range pores {
		for _, t := range o.NeighborThroats(p) {
			if !seen[t] {
				seen[t] = true
				throats = append(throats, t)
			}
		}
	}
	sort.Ints(throats)
	return
}

// Interpolate computes throat values from pore values using red over the two endpoints
func (o *Network) Interpolate(pvals []float64, red Reduction) ([]float64, error) {
	if len(pvals) != o.np {
		return nil, chk.Err("cannot interpolate to throats: pore array has length %d but Np = %d: %w", len(pvals), o.np, ErrConfig)
	}
	res := make([]float64, o.nt)
	for t, c := range o.Conns {
		res[t] = red.Reduce(pvals[c[0]], pvals[c[1]])
	}
	return res, nil
}

// ToPores computes pore values from throat values using red over the incident throats.
// Isolated pores receive NaN
func (o *Network) ToPores(tvals []float64, red Reduction) ([]float64, error) {
	if len(tvals) != o.nt {
		return nil, chk.Err("cannot interpolate to pores: throat array has length %d but Nt = %d: %w", len(tvals), o.nt, ErrConfig)
	}
	res := make([]float64, o.np)
	buf := make([]float64, 0, 8)
	for p := 0; p < o.np; p++ {
		buf = buf[:0]
		for _, t := range o.NeighborThroats(p) {
			buf = append(buf, tvals[t])
		}
		res[p] = red.Reduce(buf...)
	}
	return res, nil
}

// labels ////////////////////////////////////////////////////////////////////////////////////////

// SetLabel attaches a label to the given pores or throats
func (o *Network) SetLabel(k Key, idx []int) error {
	n := o.Size(k.Ent)
	set := append([]int(nil), idx...)
	sort.Ints(set)
	for _, i := range set {
		if i < 0 || i >= n {
			return chk.Err("label %q: index %d is out of range [0,%d): %w", k, i, n, ErrConfig)
		}
	}
	o.labels[k] = set
	o.lnames[k.Name] = k.Ent
	return nil
}

// Label returns the sorted indices with given label. "all" is always available
func (o *Network) Label(k Key) ([]int, error) {
	if k.Name == "all" {
		return utl.IntRange(o.Size(k.Ent)), nil
	}
	idx, ok := o.labels[k]
	if !ok {
		return nil, chk.Err("label %q is not available: %w", k, ErrDataMissing)
	}
	return idx, nil
}

// Pores returns the pores with any of the given labels (sorted, unique)
func (o *Network) Pores(labels ...string) ([]int, error) {
	return o.union(Pore, labels)
}

// Throats returns the throats with any of the given labels (sorted, unique)
func (o *Network) Throats(labels ...string) ([]int, error) {
	return o.union(Throat, labels)
}

// LabelNames returns all label names
func (o *Network) LabelNames() (names []string) {
	for n := range o.lnames {
		names = append(names, n)
	}
	sort.Strings(names)
	return
}

// union returns the union of labelled sets
func (o *Network) union(ent Entity, labels []string) ([]int, error) {
	if len(labels) == 1 {
		return o.Label(Key{ent, labels[0]})
	}
	seen := make(map[int]bool)
	var res []int
	for _, l := range labels {
		idx, err := o.Label(Key{ent, l})
		if err != nil {
			return nil, err
		}
		for _, i := range idx {
			if !seen[i] {
				seen[i] = true
				res = append(res, i)
			}
		}
	}
	sort.Ints(res)
	return res, nil
}
