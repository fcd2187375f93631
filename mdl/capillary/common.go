// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"
	"strings"

	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phase"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// ZeroMode selects the value replacing zero radii
type ZeroMode int

const (
	ZeroMax   ZeroMode = iota // maximum of non-zero radii (default)
	ZeroMin                   // minimum of non-zero radii
	ZeroMean                  // mean of non-zero radii
	ZeroValue                 // given constant
)

// FillZeroRadii returns a copy of r with zero entries replaced according to mode
//  Zero radii belong to boundary elements without geometry. The default (ZeroMax) gives
//  them the lowest entry pressure so that they are invaded with ease.
func FillZeroRadii(r []float64, mode ZeroMode, value float64) (res []float64, err error) {
	res = make([]float64, len(r))
	nzero, nnz := 0, 0
	sum, rmin, rmax := 0.0, math.Inf(1), math.Inf(-1)
	for i, v := range r {
		res[i] = v
		if v == 0 {
			nzero++
			continue
		}
		if math.IsNaN(v) {
			continue
		}
		nnz++
		sum += v
		rmin = math.Min(rmin, v)
		rmax = math.Max(rmax, v)
	}
	if nzero == 0 {
		return
	}
	var fill float64
	switch mode {
	case ZeroMax:
		fill = rmax
	case ZeroMin:
		fill = rmin
	case ZeroMean:
		fill = sum / float64(nnz)
	case ZeroValue:
		fill = value
	default:
		return nil, chk.Err("zero-radius mode %d is incorrect; options are 0 (max), 1 (min), 2 (mean) and 3 (value): %w", mode, nwk.ErrConfig)
	}
	if mode != ZeroValue && nnz == 0 {
		return nil, chk.Err("all %d radii are zero or undefined; cannot replace zeros by the %s of the others: %w", len(r), mode, nwk.ErrGeometry)
	}
	for i, v := range res {
		if v == 0 {
			res[i] = fill
		}
	}
	return
}

// String returns the name of the mode
func (o ZeroMode) String() string {
	switch o {
	case ZeroMin:
		return "min"
	case ZeroMean:
		return "mean"
	case ZeroValue:
		return "value"
	}
	return "max"
}

// ClampInf sets entries with infinite magnitude to zero and returns how many were changed
//  NaN entries are left untouched.
func ClampInf(v []float64) (n int) {
	for i, x := range v {
		if math.IsInf(x, 0) {
			v[i] = 0
			n++
		}
	}
	return
}

// ResolveInterfacial returns surface tension and contact angle aligned with the target entity
//  Arrays stored on the other entity are interpolated with red.
func ResolveInterfacial(ph *phase.Phase, target nwk.Entity, sigma, theta nwk.Key, red nwk.Reduction) (s, t []float64, err error) {
	if s, err = ph.Resolve(sigma, target, red); err != nil {
		return
	}
	t, err = ph.Resolve(theta, target, red)
	return
}

// interfacial holds keys and settings shared by models based on interfacial properties
type interfacial struct {
	Diameter       nwk.Key       // element diameter on the network; selects the target entity
	SurfaceTension nwk.Key       // surface tension on the phase
	ContactAngle   nwk.Key       // contact angle [deg] on the phase
	Red            nwk.Reduction // reduction used to interpolate between entities
	Zeros          ZeroMode      // replacement of zero radii
	ZeroVal        float64       // replacement value if Zeros == ZeroValue
}

// setDefault sets default keys
func (o *interfacial) setDefault() {
	o.Diameter = nwk.ThroatKey("diameter")
	o.SurfaceTension = nwk.PoreKey("surface_tension")
	o.ContactAngle = nwk.PoreKey("contact_angle")
}

// setPrm sets one shared parameter
func (o *interfacial) setPrm(model string, p *dbf.P) error {
	switch strings.ToLower(p.N) {
	case "zeros":
		m := ZeroMode(p.V)
		if float64(m) != p.V || m < ZeroMax || m > ZeroValue {
			return chk.Err("%s: zeros = %g is incorrect; options are 0, 1, 2 and 3: %w", model, p.V, nwk.ErrConfig)
		}
		o.Zeros = m
	case "zeroval":
		o.ZeroVal = p.V
	case "red":
		r := nwk.Reduction(p.V)
		if float64(r) != p.V || r < nwk.Mean || r > nwk.Max {
			return chk.Err("%s: red = %g is incorrect; options are 0 (mean), 1 (min) and 2 (max): %w", model, p.V, nwk.ErrConfig)
		}
		o.Red = r
	default:
		return chk.Err("%s: parameter named %q is incorrect: %w", model, p.N, nwk.ErrConfig)
	}
	return nil
}

// getPrms returns the shared parameters
func (o interfacial) getPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "zeros", V: float64(o.Zeros)},
		&dbf.P{N: "zeroval", V: o.ZeroVal},
		&dbf.P{N: "red", V: float64(o.Red)},
	}
}

// SetKey replaces the key of an input array
//  name -- "diameter", "surface_tension" or "contact_angle"
func (o *interfacial) SetKey(name string, k nwk.Key) error {
	switch name {
	case "diameter":
		o.Diameter = k
	case "surface_tension":
		o.SurfaceTension = k
	case "contact_angle":
		o.ContactAngle = k
	default:
		return chk.Err("key named %q is incorrect; options are \"diameter\", \"surface_tension\" and \"contact_angle\": %w", name, nwk.ErrConfig)
	}
	return nil
}

// radii returns the radii of all target elements with zeros replaced
func (o interfacial) radii(net *nwk.Network) ([]float64, error) {
	d, err := net.Get(o.Diameter)
	if err != nil {
		return nil, err
	}
	r := make([]float64, len(d))
	for i, v := range d {
		r[i] = v / 2
	}
	return FillZeroRadii(r, o.Zeros, o.ZeroVal)
}

// resolve returns radii, surface tension and contact angle of all target elements
func (o interfacial) resolve(p *phys.Physics) (r, sigma, theta []float64, err error) {
	if r, err = o.radii(p.Net); err != nil {
		return
	}
	sigma, theta, err = ResolveInterfacial(p.Phase, o.Diameter.Ent, o.SurfaceTension, o.ContactAngle, o.Red)
	return
}

// finish clamps infinite values and slices the full array to the scope of p
func finish(p *phys.Physics, model string, ent nwk.Entity, full []float64) []float64 {
	if n := ClampInf(full); n > 0 && p.Verbose {
		io.Pfyel("%s: %d infinite values set to zero in physics %q\n", model, n, p.Name)
	}
	return p.Slice(ent, full)
}

// checkNaN returns an error naming the first element in the scope with undefined value
func checkNaN(p *phys.Physics, model string, ent nwk.Entity, vals []float64) error {
	for j, i := range p.Scope(ent) {
		if math.IsNaN(vals[j]) {
			return chk.Err("%s: value at %s %d is undefined: %w", model, ent, i, nwk.ErrGeometry)
		}
	}
	return nil
}

// rad converts degrees to radians
func rad(x float64) float64 { return x * math.Pi / 180 }

// deg converts radians to degrees
func deg(x float64) float64 { return x * 180 / math.Pi }
