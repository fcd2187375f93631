// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/harlinb/gopnm/alg"
	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read and run cubic01.sim")

	sim, err := ReadSim("data/cubic01.sim")
	require.NoError(tst, err)
	require.Equal(tst, "cubic01", sim.Key)
	chk.Int(tst, "Np", sim.Net.Np(), 27)
	chk.Int(tst, "Nt", sim.Net.Nt(), 54)
	require.Len(tst, sim.Fluids, 2)
	require.Len(tst, sim.Phys, 3)
	require.Len(tst, sim.Jobs, 2)

	// geometry
	for _, k := range []nwk.Key{nwk.PoreKey("diameter"), nwk.PoreKey("volume"), nwk.ThroatKey("diameter"), nwk.ThroatKey("length"), nwk.ThroatKey("volume")} {
		require.True(tst, sim.Net.Has(k), "network must have %q", k)
	}

	// physics
	water, air := sim.Fluids["water"], sim.Fluids["air"]
	require.False(tst, water.Gas)
	require.True(tst, air.Gas)
	for _, k := range []nwk.Key{nwk.ThroatKey("capillary_pressure"), nwk.PoreKey("capillary_pressure"), nwk.ThroatKey("hydraulic_conductance")} {
		v, err := water.Get(k)
		require.NoError(tst, err, "water must have %q", k)
		for _, x := range v {
			require.True(tst, x > 0, "%q must be positive; got %g", k, x)
		}
	}
	require.True(tst, air.Has(nwk.ThroatKey("diffusive_conductance")))
	require.False(tst, water.Has(nwk.PoreKey("static_pressure")))

	// jobs
	job := sim.Jobs[0]
	require.Same(tst, water, job.Inv)
	require.Same(tst, air, job.Def)
	chk.Int(tst, "inlets", len(job.Inlets), 9)
	chk.Int(tst, "outlets", len(job.Outlets), 9)
	chk.Int(tst, "npts", job.Npts, 25)
	chk.Int(tst, "default npts", sim.Jobs[1].Npts, 20)
	require.Empty(tst, sim.Jobs[1].Outlets)
	chk.Int(tst, "retention models", len(sim.Lrms), 2)
	if sim.Lrms[0] == nil || sim.Lrms[1] != nil {
		tst.Errorf("only the first run has a retention model\n")
		return
	}

	// run
	res, err := alg.RunMany(context.Background(), sim.Jobs)
	require.NoError(tst, err)
	chk.Float64(tst, "Snw last (no trapping)", 1e-15, res[1].Snw[19], 1)
	require.NoError(tst, sim.Finish(res))
	occ, err := water.Get(nwk.PoreKey("occupancy"))
	require.NoError(tst, err)
	ps, err := water.Get(nwk.PoreKey("static_pressure"))
	require.NoError(tst, err)
	for i := range ps {
		if occ[i] < 0.5 {
			chk.Float64(tst, "static pressure of defending pore", 1e-17, ps[i], 0)
		} else {
			require.True(tst, ps[i] >= 0)
		}
	}
	require.Error(tst, sim.Finish(res[:1]))

	// retention
	pc, sl, slm, err := sim.Retention(0, res[0])
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "retention points", len(pc), 25)
	snw := make([]float64, len(res[0].Snw))
	for k, x := range res[0].Snw {
		snw[k] = 1 - x
	}
	chk.Array(tst, "tabulated sl", 1e-15, sl, snw)
	for k := range slm {
		correct := 1.0
		if pc[k] > 1e-3 {
			correct = math.Pow(1+math.Pow(1e-4*pc[k], 2), -0.5)
		}
		chk.Float64(tst, "vg sl", 1e-15, slm[k], correct)
	}
	_, _, slm, err = sim.Retention(1, res[1])
	if err != nil || slm != nil {
		tst.Errorf("run without retention model should return nil model curve; got %v, %v\n", slm, err)
	}
	_, _, _, err = sim.Retention(2, res[1])
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("bad run index should fail with ErrConfig; got %v\n", err)
	}

	// info
	var buf bytes.Buffer
	require.NoError(tst, sim.GetInfo(&buf))
	require.Contains(tst, buf.String(), "hagenpoiseuille")
}

// write writes a simulation file with the given physics and percolation sections
func write(tst *testing.T, physics, percolation string) string {
	fn := filepath.Join(tst.TempDir(), "bad.sim")
	txt := `{
  "network" : { "shape" : [2, 2, 2], "spacing" : 1e-4 },
  "phases"  : [ { "name" : "water" }, { "name" : "air", "gas" : true } ],
  "physics" : ` + physics + `,
  "percolation" : ` + percolation + `
}`
	require.NoError(tst, os.WriteFile(fn, []byte(txt), 0644))
	return fn
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. errors")

	washburn := `[ { "name":"p", "phase":"water", "models":[ { "prop":"throat.capillary_pressure", "type":"capillary", "model":"washburn" } ] } ]`
	perc := `[ { "invading":"water", "defending":"air", "inlets":["bottom"] } ]`

	// ok
	sim, err := ReadSim(write(tst, washburn, perc))
	require.NoError(tst, err)
	chk.Int(tst, "Np", sim.Net.Np(), 8)
	require.Equal(tst, "net", sim.Net.Name)

	for _, c := range []struct {
		name, physics, percolation string
		target                     error
	}{
		{"unknown model", `[ { "name":"p", "phase":"water", "models":[ { "prop":"throat.x", "type":"capillary", "model":"laplace" } ] } ]`, perc, nwk.ErrConfig},
		{"unknown type", `[ { "name":"p", "phase":"water", "models":[ { "prop":"throat.x", "type":"thermal", "model":"washburn" } ] } ]`, perc, nwk.ErrConfig},
		{"bad prop", `[ { "name":"p", "phase":"water", "models":[ { "prop":"edge.x", "type":"capillary", "model":"washburn" } ] } ]`, perc, nwk.ErrConfig},
		{"bad key", `[ { "name":"p", "phase":"water", "models":[ { "prop":"throat.x", "type":"capillary", "model":"washburn", "keys":{"radius":"throat.diameter"} } ] } ]`, perc, nwk.ErrConfig},
		{"bad parameter", `[ { "name":"p", "phase":"water", "models":[ { "prop":"throat.x", "type":"capillary", "model":"purcell", "prms":[{"n":"rtoroid","v":-1}] } ] } ]`, perc, nwk.ErrConfig},
		{"unknown phase", `[ { "name":"p", "phase":"oil", "models":[] } ]`, perc, nwk.ErrConfig},
		{"unknown label", `[ { "name":"p", "phase":"water", "pores":["middle"], "models":[] } ]`, perc, nwk.ErrDataMissing},
		{"missing data", `[ { "name":"p", "phase":"water", "models":[ { "prop":"pore.ps", "type":"capillary", "model":"static" } ] } ]`, perc, nwk.ErrDataMissing},
		{"no inlets", washburn, `[ { "invading":"water", "defending":"air" } ]`, nwk.ErrConfig},
		{"unknown defending", washburn, `[ { "invading":"water", "defending":"oil", "inlets":["bottom"] } ]`, nwk.ErrConfig},
		{"bad outlet label", washburn, `[ { "invading":"water", "defending":"air", "inlets":["bottom"], "outlets":["side"] } ]`, nwk.ErrDataMissing},
		{"bad threshold key", washburn, `[ { "invading":"water", "defending":"air", "inlets":["bottom"], "key":"capillary_pressure" } ]`, nwk.ErrConfig},
		{"unknown retention model", washburn, `[ { "invading":"water", "defending":"air", "inlets":["bottom"], "retention":{ "model":"xyz" } } ]`, nwk.ErrConfig},
		{"bad retention parameter", washburn, `[ { "invading":"water", "defending":"air", "inlets":["bottom"], "retention":{ "model":"bc", "prms":[{"n":"lam","v":-1}] } } ]`, nwk.ErrConfig},
	} {
		_, err = ReadSim(write(tst, c.physics, c.percolation))
		require.True(tst, errors.Is(err, c.target), "%s: %v", c.name, err)
	}

	// explicit zero number of points is kept and rejected by the run
	sim, err = ReadSim(write(tst, washburn, `[ { "invading":"water", "defending":"air", "inlets":["bottom"], "npts":0 } ]`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "npts", sim.Jobs[0].Npts, 0)
	_, err = alg.RunMany(context.Background(), sim.Jobs)
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("npts = 0 should fail with ErrConfig; got %v\n", err)
	}

	// points override the default number of points
	sim, err = ReadSim(write(tst, washburn, `[ { "invading":"water", "defending":"air", "inlets":["bottom"], "points":[1e3, 1e4, 1e5] } ]`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "npts with points", sim.Jobs[0].Npts, 0)
	res, err := alg.RunMany(context.Background(), sim.Jobs)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "points", 1e-17, res[0].Pc, []float64{1e3, 1e4, 1e5})

	// file
	_, err = ReadSim("data/nonexistent.sim")
	require.True(tst, errors.Is(err, nwk.ErrConfig), "nonexistent file: %v", err)
	_, err = ReadSim(write(tst, `{`, `[]`))
	require.True(tst, errors.Is(err, nwk.ErrConfig), "bad json: %v", err)
}
