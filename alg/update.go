// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phase"

	"github.com/cpmech/gosl/chk"
)

// Update sets the occupancy arrays of both phases at pressure pc
//  inv -- pore.occupancy and throat.occupancy are 1 where invaded and 0 elsewhere
//  def -- the complement
func Update(inv, def *phase.Phase, res *Results, pc float64) error {
	if inv.Net != res.Net || def.Net != res.Net {
		return chk.Err("update: phases %q and %q must belong to the network of the results: %w", inv.Name, def.Name, nwk.ErrConfig)
	}
	pores, throats := res.Occupancy(pc)
	for _, set := range []struct {
		k   nwk.Key
		occ []bool
	}{
		{nwk.PoreKey("occupancy"), pores},
		{nwk.ThroatKey("occupancy"), throats},
	} {
		a := make([]float64, len(set.occ))
		b := make([]float64, len(set.occ))
		for i, invaded := range set.occ {
			if invaded {
				a[i] = 1
			} else {
				b[i] = 1
			}
		}
		if err := inv.Set(set.k, a); err != nil {
			return err
		}
		if err := def.Set(set.k, b); err != nil {
			return err
		}
	}
	return nil
}
