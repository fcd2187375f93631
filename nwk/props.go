// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwk

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Entity selects the set a property array is attached to
type Entity int

const (
	Pore   Entity = iota // arrays of length Np
	Throat               // arrays of length Nt
)

// String returns "pore" or "throat"
func (o Entity) String() string {
	if o == Throat {
		return "throat"
	}
	return "pore"
}

// Key identifies a property array: the entity it is attached to and its name
type Key struct {
	Ent  Entity // pore or throat
	Name string // e.g. "diameter"
}

// PoreKey returns a pore-scoped key
func PoreKey(name string) Key { return Key{Pore, name} }

// ThroatKey returns a throat-scoped key
func ThroatKey(name string) Key { return Key{Throat, name} }

// String returns the composite name; e.g. "pore.diameter"
func (o Key) String() string {
	return o.Ent.String() + "." + o.Name
}

// ParseKey converts a composite name such as "throat.diameter" into a Key
func ParseKey(s string) (k Key, err error) {
	ent, name, found := strings.Cut(s, ".")
	if !found || name == "" {
		return k, chk.Err("key %q must be formatted as <entity>.<property>: %w", s, ErrConfig)
	}
	switch ent {
	case "pore":
		k.Ent = Pore
	case "throat":
		k.Ent = Throat
	default:
		return k, chk.Err("key %q has unknown entity %q; options are \"pore\" and \"throat\": %w", s, ent, ErrConfig)
	}
	k.Name = name
	return
}

// Reduction selects how several values are combined into one
type Reduction int

const (
	Mean Reduction = iota // arithmetic mean (default)
	Min                   // minimum
	Max                   // maximum
)

// ParseReduction converts "mean", "min" or "max" into a Reduction
func ParseReduction(s string) (Reduction, error) {
	switch strings.ToLower(s) {
	case "", "mean":
		return Mean, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	}
	return Mean, chk.Err("reduction %q is incorrect; options are \"mean\", \"min\" and \"max\": %w", s, ErrConfig)
}

// String returns the name of the reduction
func (o Reduction) String() string {
	switch o {
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return "mean"
}

// Reduce combines values. An empty list yields NaN
func (o Reduction) Reduce(vals ...float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	res := vals[0]
	switch o {
	case Min:
		for _, v := range vals[1:] {
			res = math.Min(res, v)
		}
	case Max:
		for _, v := range vals[1:] {
			res = math.Max(res, v)
		}
	default:
		for _, v := range vals[1:] {
			res += v
		}
		res /= float64(len(vals))
	}
	return res
}

// Props holds dense property arrays aligned with pores (Np) or throats (Nt)
type Props struct {
	np, nt int
	arrays map[Key][]float64
}

// InitProps allocates an empty store for np pores and nt throats
func (o *Props) InitProps(np, nt int) {
	o.np, o.nt = np, nt
	o.arrays = make(map[Key][]float64)
}

// Size returns Np or Nt
func (o *Props) Size(ent Entity) int {
	if ent == Throat {
		return o.nt
	}
	return o.np
}

// Has tells whether the array exists
func (o *Props) Has(k Key) bool {
	_, ok := o.arrays[k]
	return ok
}

// Get returns the array with given key. The returned slice is shared and must not be modified
func (o *Props) Get(k Key) ([]float64, error) {
	v, ok := o.arrays[k]
	if !ok {
		return nil, chk.Err("property %q is not available: %w", k, ErrDataMissing)
	}
	return v, nil
}

// Set stores a copy of v
func (o *Props) Set(k Key, v []float64) error {
	if len(v) != o.Size(k.Ent) {
		return chk.Err("property %q must have length %d; got %d: %w", k, o.Size(k.Ent), len(v), ErrConfig)
	}
	o.arrays[k] = append([]float64(nil), v...)
	return nil
}

// SetConst sets all entries of an array to c
func (o *Props) SetConst(k Key, c float64) {
	v := make([]float64, o.Size(k.Ent))
	for i := range v {
		v[i] = c
	}
	o.arrays[k] = v
}

// SetSub sets the entries at idx; the array is created with zeros if absent
func (o *Props) SetSub(k Key, idx []int, vals []float64) error {
	if len(idx) != len(vals) {
		return chk.Err("cannot set %q: %d indices but %d values: %w", k, len(idx), len(vals), ErrConfig)
	}
	n := o.Size(k.Ent)
	v, ok := o.arrays[k]
	if !ok {
		v = make([]float64, n)
		o.arrays[k] = v
	}
	for j, i := range idx {
		if i < 0 || i >= n {
			return chk.Err("cannot set %q: index %d is out of range [0,%d): %w", k, i, n, ErrConfig)
		}
		v[i] = vals[j]
	}
	return nil
}

// Keys returns all keys sorted by name
func (o *Props) Keys() (keys []Key) {
	for k := range o.arrays {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return
}
