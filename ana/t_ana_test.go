// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func Test_colpresfluid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid01. pressure on fluid along column")

	R0, p0, C, g, H := 1.0, 0.0, 1e-2, 10.0, 10.0

	var col ColumnFluidPressure
	col.Init(R0, p0, C, g, H)

	// dp/dz = -R g
	h := 1e-5
	for _, z := range utl.LinSpace(0.5, H-0.5, 7) {
		pa, _ := col.Calc(z - h)
		pb, _ := col.Calc(z + h)
		_, R := col.Calc(z)
		io.Pf("z = %6.3f  dp/dz = %g\n", z, (pb-pa)/(2*h))
		chk.Float64(tst, io.Sf("dp/dz @ %g", z), 1e-6, (pb-pa)/(2*h), -R*g)
	}
	p, R := col.Calc(H)
	chk.Float64(tst, "p(H)", 1e-15, p, p0)
	chk.Float64(tst, "R(H)", 1e-15, R, R0)

	// incompressible
	col.Init(1000, 0, 0, 9.81, 1)
	p, R = col.Calc(0)
	chk.Float64(tst, "p(0)", 1e-10, p, 9810)
	chk.Float64(tst, "R(0)", 1e-15, R, 1000)

	// small compressibility approaches the incompressible solution
	col.Init(1000, 0, 1e-12, 9.81, 1)
	p, _ = col.Calc(0)
	chk.Float64(tst, "p(0) with small C", 1e-4, p, 9810)
}

func Test_tubebundle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tubebundle01. drainage of parallel tubes")

	b := TubeBundle{Radii: []float64{1, 2, 3}, Sigma: 0.5, Theta: 180}
	chk.Float64(tst, "entry", 1e-15, b.Entry(2), 0.5)
	chk.Float64(tst, "Snw(0)", 1e-15, b.Snw(0), 0)
	chk.Float64(tst, "Snw(0.4)", 1e-15, b.Snw(0.4), 9.0/14.0)
	chk.Float64(tst, "Snw(0.5)", 1e-15, b.Snw(0.5), 13.0/14.0)
	chk.Float64(tst, "Snw(1)", 1e-15, b.Snw(1), 1)
	if math.IsNaN(TubeBundle{}.Snw(1)) {
		tst.Errorf("empty bundle must give zero saturation\n")
	}
}
