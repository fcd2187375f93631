// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"context"
	"runtime"

	"github.com/harlinb/gopnm/phase"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Job holds the input of one percolation run
type Job struct {
	Alg     *OrdinaryPercolation // algorithm
	Inv     *phase.Phase         // invading phase
	Def     *phase.Phase         // defending phase
	Inlets  []int                // inlet pores
	Outlets []int                // outlet pores; may be empty
	Npts    int                  // number of pressure points
}

// RunMany runs independent jobs in parallel
//  Jobs may share networks and phases since runs only read them. The first error cancels
//  the jobs not yet started. Results are aligned with jobs.
func RunMany(ctx context.Context, jobs []Job) ([]*Results, error) {
	res := make([]*Results, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := job.Alg.Run(job.Inv, job.Def, job.Inlets, job.Outlets, job.Npts)
			if err != nil {
				return chk.Err("job %d: %w", i, err)
			}
			res[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
