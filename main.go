// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/harlinb/gopnm/alg"
	"github.com/harlinb/gopnm/inp"
	"github.com/harlinb/gopnm/metrics"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	showMetrics := io.ArgToBool(2, false)
	doprof := io.ArgToInt(3, 0)

	// message
	if verbose {
		io.PfWhite("\nGopnm -- Go Pore Network Modelling\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"show metrics", "showMetrics", showMetrics,
		"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, !verbose)()
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("ReadSim failed:\n%v", err)
	}
	reg := prometheus.NewRegistry()
	sim.SetRecorder(metrics.NewRecorder(reg))

	// run percolation
	res, err := alg.RunMany(context.Background(), sim.Jobs)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if err = sim.Finish(res); err != nil {
		chk.Panic("Finish failed:\n%v", err)
	}

	// results
	for i, r := range res {
		io.Pforan("\n%s: %s\n", sim.Key, sim.Percolation[i].Desc)
		r.Print()
		if len(r.Outlets) > 0 {
			io.Pf("trapped: %d pores, %d throats\n", r.NumTrappedPores(), r.NumTrappedThroats())
		}
		pc, sl, slm, err := sim.Retention(i, r)
		if err != nil {
			chk.Panic("Retention failed:\n%v", err)
		}
		if slm == nil {
			continue
		}
		io.Pf("%13s%13s%13s\n", "pc", "sl", "sl(model)")
		for k := range pc {
			io.Pf("%13g%13.6f%13.6f\n", pc[k], sl[k], slm[k])
		}
	}
	if showMetrics {
		io.Pf("\n")
		if err = metrics.Print(reg); err != nil {
			chk.Panic("cannot print metrics:\n%v", err)
		}
	}
}
