// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"errors"
	"math"
	"testing"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phase"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func init() {
	io.Verbose = false
}

// chain returns a physics over a chain of n pores spaced by 1 along z with all
// pores and throats in scope; throat diameters are set to 2*r
func chain(tst *testing.T, n int, r, sigma, theta float64) *phys.Physics {
	coords := make([][3]float64, n)
	conns := make([][2]int, n-1)
	for i := range coords {
		coords[i] = [3]float64{0, 0, float64(i)}
		if i > 0 {
			conns[i-1] = [2]int{i - 1, i}
		}
	}
	net, err := nwk.New("chain", coords, conns)
	if err != nil {
		tst.Fatalf("cannot create network: %v\n", err)
	}
	net.SetConst(nwk.ThroatKey("diameter"), 2*r)
	net.SetConst(nwk.PoreKey("diameter"), 2*r)
	ph := phase.New("water", net)
	ph.SetConst(nwk.PoreKey("surface_tension"), sigma)
	ph.SetConst(nwk.PoreKey("contact_angle"), theta)
	p, err := phys.New("phys", ph, utl.IntRange(n), utl.IntRange(n-1))
	if err != nil {
		tst.Fatalf("cannot create physics: %v\n", err)
	}
	return p
}

// calc allocates, initialises and computes model
func calc(tst *testing.T, name string, prms dbf.Params, p *phys.Physics) []float64 {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	if err = mdl.Init(prms); err != nil {
		tst.Fatalf("%v\n", err)
	}
	res, err := mdl.Calc(p)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	return res
}

func Test_washburn01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("washburn01. sign convention")

	r, σ := 5e-6, 0.072
	pc := calc(tst, "washburn", nil, chain(tst, 3, r, σ, 0))
	chk.Array(tst, "θ=0", 1e-8, pc, []float64{-2 * σ / r, -2 * σ / r})
	pc = calc(tst, "washburn", nil, chain(tst, 3, r, σ, 90))
	chk.Array(tst, "θ=90", 1e-8, pc, []float64{0, 0})
	pc = calc(tst, "washburn", nil, chain(tst, 3, r, σ, 180))
	chk.Array(tst, "θ=180", 1e-8, pc, []float64{2 * σ / r, 2 * σ / r})
	if pc[0] <= 0 {
		tst.Errorf("non-wetting entry pressure must be positive\n")
	}

	_, err := New("laplace")
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("unknown model should fail with ErrConfig; got %v\n", err)
	}
	mdl, _ := New("washburn")
	err = mdl.Init(dbf.Params{&dbf.P{N: "rtoroid", V: 1}})
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("unknown parameter should fail with ErrConfig; got %v\n", err)
	}
}

func Test_washburn02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("washburn02. zero radii and scope")

	p := chain(tst, 4, 1e-5, 0.072, 180)
	p.Net.Set(nwk.ThroatKey("diameter"), []float64{0, 2e-5, 4e-5})

	// zeros take the largest radius
	pc := calc(tst, "washburn", nil, p)
	chk.Array(tst, "max", 1e-8, pc, []float64{2 * 0.072 / 2e-5, 2 * 0.072 / 1e-5, 2 * 0.072 / 2e-5})

	// explicit value
	pc = calc(tst, "washburn", dbf.Params{&dbf.P{N: "zeros", V: 3}, &dbf.P{N: "zeroval", V: 4e-5}}, p)
	chk.Float64(tst, "value", 1e-8, pc[0], 2*0.072/4e-5)

	// scope
	sub, err := phys.New("sub", p.Phase, nil, []int{2})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	pc = calc(tst, "washburn", nil, sub)
	chk.Array(tst, "sub", 1e-8, pc, []float64{2 * 0.072 / 2e-5})

	// pore target with throat contact angle
	mdl, _ := New("washburn")
	keyed := mdl.(phys.Keyed)
	if err = keyed.SetKey("diameter", nwk.PoreKey("diameter")); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	p.Phase.SetConst(nwk.ThroatKey("contact_angle"), 0)
	keyed.SetKey("contact_angle", nwk.ThroatKey("contact_angle"))
	pc, err = mdl.Calc(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "pores", 1e-8, pc, []float64{-0.072 / 0.5e-5, -0.072 / 0.5e-5, -0.072 / 0.5e-5, -0.072 / 0.5e-5})

	err = keyed.SetKey("radius", nwk.PoreKey("radius"))
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("unknown key should fail with ErrConfig; got %v\n", err)
	}

	// missing diameter
	p.Net.Set(nwk.ThroatKey("diameter"), []float64{0, 0, 0})
	mdl, _ = New("washburn")
	_, err = mdl.Calc(p)
	if !errors.Is(err, nwk.ErrGeometry) {
		tst.Errorf("all-zero radii should fail with ErrGeometry; got %v\n", err)
	}
	mdl.(phys.Keyed).SetKey("diameter", nwk.ThroatKey("size"))
	_, err = mdl.Calc(p)
	if !errors.Is(err, nwk.ErrDataMissing) {
		tst.Errorf("missing diameter should fail with ErrDataMissing; got %v\n", err)
	}
}

func Test_purcell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("purcell01. parameters and domain")

	mdl, _ := New("purcell")
	err := mdl.Init(nil)
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("missing rtoroid should fail with ErrConfig; got %v\n", err)
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "rtoroid", V: -1}})
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("negative rtoroid should fail with ErrConfig; got %v\n", err)
	}
	chk.Float64(tst, "example rtoroid", 1e-17, mdl.GetPrms(true)[0].V, 1e-5)

	// non-wetting: entry pressure exceeds Washburn's
	r, R, σ := 5e-6, 5e-6, 0.072
	p := chain(tst, 2, r, σ, 140)
	pc := calc(tst, "purcell", dbf.Params{&dbf.P{N: "rtoroid", V: R}}, p)
	w := calc(tst, "washburn", nil, p)
	if pc[0] <= w[0] {
		tst.Errorf("toroidal entry pressure %g should exceed cylindrical %g\n", pc[0], w[0])
	}

	// same filling angle computed in radians throughout
	θ := 140 * math.Pi / 180
	α := θ - math.Pi + math.Asin(math.Sin(θ)/(1+r/R))
	correct := (-2 * σ / r) * math.Cos(θ-α) / (1 + R/r*(1-math.Cos(α)))
	chk.Array(tst, "pc", 1e-8, pc, []float64{correct})

	// negative radius makes the asin argument larger than one
	p.Net.Set(nwk.ThroatKey("diameter"), []float64{-1.5 * R})
	p.Phase.SetConst(nwk.PoreKey("contact_angle"), 90)
	mdl, _ = New("purcell")
	mdl.Init(dbf.Params{&dbf.P{N: "rtoroid", V: R}})
	_, err = mdl.Calc(p)
	if !errors.Is(err, nwk.ErrGeometry) {
		tst.Errorf("asin domain violation should fail with ErrGeometry; got %v\n", err)
	}
}

func Test_purcell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("purcell02. Washburn limit")

	p := chain(tst, 2, 1e-5, 0.072, 180)
	wash, _ := New("washburn")
	purc, _ := New("purcell")

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("R = 1e6 r reduces to Washburn for θ in [100,180]", prop.ForAll(
		func(r, σ, θ float64) bool {
			p.Net.SetConst(nwk.ThroatKey("diameter"), 2*r)
			p.Phase.SetConst(nwk.PoreKey("surface_tension"), σ)
			p.Phase.SetConst(nwk.PoreKey("contact_angle"), θ)
			if err := purc.Init(dbf.Params{&dbf.P{N: "rtoroid", V: 1e6 * r}}); err != nil {
				return false
			}
			a, err := purc.Calc(p)
			if err != nil {
				return false
			}
			b, err := wash.Calc(p)
			if err != nil {
				return false
			}
			return math.Abs(a[0]-b[0]) <= 1e-4*math.Abs(b[0])
		},
		gen.Float64Range(1e-7, 1e-4),
		gen.Float64Range(0.01, 0.1),
		gen.Float64Range(100, 180),
	))

	properties.TestingRun(tst)
}

func Test_cuboid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cuboid01. shape factor")

	chk.Float64(tst, "Θ(0)", 1e-15, ShapeFactor(0), (1-math.Pi/4)/(1-math.Sqrt(math.Pi/4)))

	r, σ := 1e-5, 0.072
	pc := calc(tst, "cuboid", nil, chain(tst, 3, r, σ, 0))
	chk.Array(tst, "pc", 1e-8, pc, []float64{σ * ShapeFactor(0) / r, σ * ShapeFactor(0) / r})

	// π/4 - θ + sinθcosθ < 0
	mdl, _ := New("cuboid")
	_, err := mdl.Calc(chain(tst, 3, r, σ, 120))
	if !errors.Is(err, nwk.ErrGeometry) {
		tst.Errorf("undefined shape factor should fail with ErrGeometry; got %v\n", err)
	}
}

func Test_kelvin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvin01. condensation pressure")

	r := 1e-8
	p := chain(tst, 2, r, 0.072, 0)
	if err := p.Phase.Init(p.Phase.GetPrms(true)); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	pv := calc(tst, "kelvin", nil, p)
	correct := 3141.0 * math.Exp(2*0.0181*0.072/(997.0*GasConstant*298.0*r))
	chk.Array(tst, "pv", 1e-9, pv, []float64{correct, correct})

	mdl, _ := New("kelvin")
	err := mdl.(phys.Keyed).SetKey("contact_angle", nwk.PoreKey("contact_angle"))
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("contact angle key should fail with ErrConfig; got %v\n", err)
	}
	mdl.(phys.Keyed).SetKey("temperature", nwk.PoreKey("T"))
	_, err = mdl.Calc(p)
	if !errors.Is(err, nwk.ErrDataMissing) {
		tst.Errorf("missing temperature should fail with ErrDataMissing; got %v\n", err)
	}
}

func Test_isolated01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isolated01. throat properties on an isolated pore")

	// pore 2 has no throats; its surface tension reduced from throats is undefined
	net, err := nwk.New("net", [][3]float64{{0, 0, 0}, {1, 0, 0}, {5, 0, 0}}, [][2]int{{0, 1}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := 1e-5
	net.SetConst(nwk.PoreKey("diameter"), 2*r)
	ph := phase.New("water", net)
	if err = ph.Init(ph.GetPrms(true)); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ph.SetConst(nwk.ThroatKey("surface_tension"), 0.072)

	alloc := func(name string) phys.Model {
		mdl, err := New(name)
		if err != nil {
			tst.Fatalf("%v\n", err)
		}
		keyed := mdl.(phys.Keyed)
		if err = keyed.SetKey("diameter", nwk.PoreKey("diameter")); err != nil {
			tst.Fatalf("%v\n", err)
		}
		if err = keyed.SetKey("surface_tension", nwk.ThroatKey("surface_tension")); err != nil {
			tst.Fatalf("%v\n", err)
		}
		return mdl
	}

	all, _ := phys.New("all", ph, []int{0, 1, 2}, nil)
	for _, name := range []string{"washburn", "kelvin"} {
		_, err = alloc(name).Calc(all)
		if !errors.Is(err, nwk.ErrGeometry) {
			tst.Errorf("%s: undefined surface tension should fail with ErrGeometry; got %v\n", name, err)
		}
	}

	// connected pores only
	conn, _ := phys.New("conn", ph, []int{0, 1}, nil)
	pc, err := alloc("washburn").Calc(conn)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	correct := -2 * 0.072 * math.Cos(110*math.Pi/180) / r
	chk.Array(tst, "washburn", 1e-8, pc, []float64{correct, correct})
	pv, err := alloc("kelvin").Calc(conn)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	correct = 3141.0 * math.Exp(2*0.0181*0.072/(997.0*GasConstant*298.0*r))
	chk.Array(tst, "kelvin", 1e-9, pv, []float64{correct, correct})
}

func Test_fromthroat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fromthroat01. reduction of incident throats")

	// isolated pore 3
	net, err := nwk.New("net", [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {5, 0, 0}}, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ph := phase.New("water", net)
	ph.Set(nwk.ThroatKey("capillary_pressure"), []float64{100, 300})
	p, _ := phys.New("phys", ph, []int{0, 1, 2, 3}, nil)

	pc := calc(tst, "fromthroat", nil, p)
	chk.Array(tst, "default", 1e-17, pc, []float64{100, 100, 300, 0})
	pc = calc(tst, "fromthroat", dbf.Params{&dbf.P{N: "op", V: 1}}, p)
	chk.Array(tst, "max", 1e-17, pc, []float64{100, 300, 300, 0})
	pc = calc(tst, "fromthroat", dbf.Params{&dbf.P{N: "op", V: 2}}, p)
	chk.Array(tst, "mean", 1e-17, pc, []float64{100, 200, 300, 0})
	pc = calc(tst, "fromthroat", dbf.Params{&dbf.P{N: "op", V: 7}}, p)
	chk.Array(tst, "invalid => mean", 1e-17, pc, []float64{100, 200, 300, 0})

	mdl, _ := New("fromthroat")
	err = mdl.(phys.Keyed).SetKey("capillary_pressure", nwk.PoreKey("capillary_pressure"))
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("pore key should fail with ErrConfig; got %v\n", err)
	}
}

func Test_zeros01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zeros01. fill zero radii")

	r := []float64{0, 1, 3, 0, 2}
	res, err := FillZeroRadii(r, ZeroMax, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "max", 1e-17, res, []float64{3, 1, 3, 3, 2})
	chk.Array(tst, "input unchanged", 1e-17, r, []float64{0, 1, 3, 0, 2})
	res, _ = FillZeroRadii(r, ZeroMin, 0)
	chk.Array(tst, "min", 1e-17, res, []float64{1, 1, 3, 1, 2})
	res, _ = FillZeroRadii(r, ZeroMean, 0)
	chk.Array(tst, "mean", 1e-17, res, []float64{2, 1, 3, 2, 2})
	res, _ = FillZeroRadii(r, ZeroValue, 7)
	chk.Array(tst, "value", 1e-17, res, []float64{7, 1, 3, 7, 2})

	_, err = FillZeroRadii([]float64{0, 0}, ZeroMax, 0)
	if !errors.Is(err, nwk.ErrGeometry) {
		tst.Errorf("all zeros should fail with ErrGeometry; got %v\n", err)
	}
	res, err = FillZeroRadii([]float64{0, 0}, ZeroValue, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "all zeros with value", 1e-17, res, []float64{1, 1})
	_, err = FillZeroRadii([]float64{0, 1}, ZeroMode(9), 0)
	if !errors.Is(err, nwk.ErrConfig) {
		tst.Errorf("bad mode should fail with ErrConfig; got %v\n", err)
	}

	// undefined radii are ignored by min, max and mean
	r = []float64{0, math.NaN(), 1, 3}
	for _, c := range []struct {
		mode ZeroMode
		fill float64
	}{{ZeroMax, 3}, {ZeroMin, 1}, {ZeroMean, 2}} {
		res, err = FillZeroRadii(r, c.mode, 0)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("NaN skipped by %s", c.mode), 1e-17, res[0], c.fill)
		chk.Array(tst, io.Sf("NaN skipped by %s: others", c.mode), 1e-17, res[2:], []float64{1, 3})
		if !math.IsNaN(res[1]) {
			tst.Errorf("undefined radius must be kept\n")
		}
	}
	_, err = FillZeroRadii([]float64{0, math.NaN()}, ZeroMax, 0)
	if !errors.Is(err, nwk.ErrGeometry) {
		tst.Errorf("zeros and undefined radii only should fail with ErrGeometry; got %v\n", err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("max policy leaves no zeros and keeps non-zero entries", prop.ForAll(
		func(r []float64, mask []bool) bool {
			for i := range r {
				if mask[i%len(mask)] {
					r[i] = 0
				}
			}
			r = append(r, 1e-6) // at least one non-zero
			res, err := FillZeroRadii(r, ZeroMax, 0)
			if err != nil {
				return false
			}
			for i := range r {
				if res[i] == 0 || (r[i] != 0 && res[i] != r[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(1e-7, 1e-4)),
		gen.SliceOfN(8, gen.Bool()),
	))

	properties.TestingRun(tst)
}

func Test_clamp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clamp01. infinite values")

	v := []float64{1, math.Inf(1), -2, math.Inf(-1), math.NaN(), math.MaxFloat64}
	n := ClampInf(v)
	chk.Int(tst, "n", n, 2)
	chk.Array(tst, "finite", 1e-17, []float64{v[0], v[1], v[2], v[3], v[5]}, []float64{1, 0, -2, 0, math.MaxFloat64})
	if !math.IsNaN(v[4]) {
		tst.Errorf("NaN must not be clamped\n")
	}
	chk.Int(tst, "n again", ClampInf(v), 0)

	// zero contact angle and zero-valued replacement radius give -Inf
	p := chain(tst, 2, 1e-5, 0.072, 0)
	p.Net.SetConst(nwk.ThroatKey("diameter"), 0)
	pc := calc(tst, "washburn", dbf.Params{&dbf.P{N: "zeros", V: 3}, &dbf.P{N: "zeroval", V: 0}}, p)
	chk.Array(tst, "clamped", 1e-17, pc, []float64{0})
}
