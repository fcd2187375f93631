// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys implements physics objects: pore-scale models of one phase over a subset
// (scope) of pores and throats
package phys

import (
	"sort"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phase"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model defines pore-scale models computing one value per pore or throat in the scope
type Model interface {
	Init(prms dbf.Params) error         // initialises model
	GetPrms(example bool) dbf.Params    // gets (an example) of parameters
	Calc(p *Physics) ([]float64, error) // computes values aligned with the scope of p
}

// Keyed is implemented by models reading arrays whose keys may be replaced
type Keyed interface {
	SetKey(name string, k nwk.Key) error // replaces key; e.g. name = "diameter"
}

// entry holds a model and the property it computes
type entry struct {
	prop nwk.Key
	mdl  Model
}

// Physics holds models and values of one phase over a subset of the network
type Physics struct {
	Name    string       // name of physics
	Net     *nwk.Network // network
	Phase   *phase.Phase // phase described by this physics
	Verbose bool         // show messages

	// scope
	pores   []int // sorted pores governed by this physics
	throats []int // sorted throats governed by this physics

	// models and results
	models []*entry
	vals   map[nwk.Key][]float64 // values aligned with the scope
}

// New returns a new physics object governing the given pores and throats
func New(name string, ph *phase.Phase, pores, throats []int) (o *Physics, err error) {
	o = &Physics{Name: name, Net: ph.Net, Phase: ph}
	o.vals = make(map[nwk.Key][]float64)
	if o.pores, err = scope(name, nwk.Pore, pores, ph.Net.Np()); err != nil {
		return nil, err
	}
	if o.throats, err = scope(name, nwk.Throat, throats, ph.Net.Nt()); err != nil {
		return nil, err
	}
	return
}

// Pores returns the pores governed by this physics. The slice must not be modified
func (o *Physics) Pores() []int { return o.pores }

// Throats returns the throats governed by this physics. The slice must not be modified
func (o *Physics) Throats() []int { return o.throats }

// Scope returns the pores or throats governed by this physics
func (o *Physics) Scope(ent nwk.Entity) []int {
	if ent == nwk.Throat {
		return o.throats
	}
	return o.pores
}

// Slice extracts the entries of a full array (length Np or Nt) belonging to the scope
func (o *Physics) Slice(ent nwk.Entity, full []float64) []float64 {
	idx := o.Scope(ent)
	res := make([]float64, len(idx))
	for i, j := range idx {
		res[i] = full[j]
	}
	return res
}

// Add appends a model computing the property prop. Models are computed in order
func (o *Physics) Add(prop nwk.Key, mdl Model) {
	o.models = append(o.models, &entry{prop, mdl})
}

// Regenerate computes all models in order, stores their values and copies them into the phase
func (o *Physics) Regenerate() (err error) {
	for _, e := range o.models {
		var v []float64
		v, err = e.mdl.Calc(o)
		if err != nil {
			return chk.Err("physics %q cannot compute %q:\n%w", o.Name, e.prop, err)
		}
		idx := o.Scope(e.prop.Ent)
		if len(v) != len(idx) {
			return chk.Err("physics %q: model for %q returned %d values but the scope has %d %ss: %w", o.Name, e.prop, len(v), len(idx), e.prop.Ent, nwk.ErrConfig)
		}
		o.vals[e.prop] = v
		if err = o.Phase.SetSub(e.prop, idx, v); err != nil {
			return
		}
		if o.Verbose {
			io.Pf("physics %q: %q computed for %d %ss\n", o.Name, e.prop, len(v), e.prop.Ent)
		}
	}
	return
}

// Get returns values of property k aligned with the scope
func (o *Physics) Get(k nwk.Key) ([]float64, error) {
	v, ok := o.vals[k]
	if !ok {
		return nil, chk.Err("physics %q: property %q is not available: %w", o.Name, k, nwk.ErrDataMissing)
	}
	return v, nil
}

// scope checks and sorts indices
func scope(name string, ent nwk.Entity, idx []int, n int) ([]int, error) {
	res := append([]int(nil), idx...)
	sort.Ints(res)
	for i, j := range res {
		if j < 0 || j >= n {
			return nil, chk.Err("physics %q: %s index %d is out of range [0,%d): %w", name, ent, j, n, nwk.ErrConfig)
		}
		if i > 0 && res[i-1] == j {
			return nil, chk.Err("physics %q: %s index %d is repeated: %w", name, ent, j, nwk.ErrConfig)
		}
	}
	return res, nil
}
