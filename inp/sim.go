// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"sort"

	"github.com/harlinb/gopnm/alg"
	"github.com/harlinb/gopnm/mdl/capillary"
	"github.com/harlinb/gopnm/mdl/conduct"
	"github.com/harlinb/gopnm/mdl/retention"
	"github.com/harlinb/gopnm/metrics"
	"github.com/harlinb/gopnm/nwk"
	"github.com/harlinb/gopnm/phase"
	"github.com/harlinb/gopnm/phys"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Verbose bool   `json:"verbose"` // show messages while building and running
}

// NetworkData holds data for generating the network and its geometry
type NetworkData struct {
	Name     string     `json:"name"`     // name of network
	Shape    [3]int     `json:"shape"`    // number of pores along x, y and z
	Spacing  float64    `json:"spacing"`  // lattice spacing
	Geometry dbf.Params `json:"geometry"` // stick-and-ball parameters; spacing defaults to the lattice spacing
}

// PhaseData holds phase data
type PhaseData struct {
	Name string     `json:"name"` // name of phase. ex: water, air
	Gas  bool       `json:"gas"`  // gas phase; selects example parameters
	Prms dbf.Params `json:"prms"` // parameters; example parameters are used if empty
}

// ModelData holds the definition of one pore-scale model
type ModelData struct {
	Prop  string            `json:"prop"`  // computed property. ex: throat.capillary_pressure
	Type  string            `json:"type"`  // database: "capillary" or "conduct"
	Model string            `json:"model"` // name of model. ex: washburn, purcell, hagenpoiseuille
	Prms  dbf.Params        `json:"prms"`  // parameters
	Keys  map[string]string `json:"keys"`  // replaced input keys. ex: {"diameter": "throat.size"}
}

// PhysicsData holds physics data
type PhysicsData struct {
	Name    string       `json:"name"`    // name of physics
	Phase   string       `json:"phase"`   // name of phase
	Pores   []string     `json:"pores"`   // pore labels of the scope; empty means all and ["none"] means none
	Throats []string     `json:"throats"` // throat labels of the scope; empty means all and ["none"] means none
	Post    bool         `json:"post"`    // regenerate only after occupancies are updated
	Models  []*ModelData `json:"models"`  // models in order of evaluation
}

// PercData holds data for one ordinary percolation run
type PercData struct {
	Desc      string    `json:"desc"`      // description of run
	Invading  string    `json:"invading"`  // name of invading phase
	Defending string    `json:"defending"` // name of defending phase
	Inlets    []string  `json:"inlets"`    // pore labels of inlets
	Outlets   []string  `json:"outlets"`   // pore labels of outlets; trapping is evaluated if given
	Key       string    `json:"key"`       // thresholds on the invading phase; default throat.capillary_pressure
	Npts      *int      `json:"npts"`      // number of pressure points; default is 20 unless points are given
	Points    []float64 `json:"points"`    // pressure points; override npts
	Update    bool      `json:"update"`    // write occupancies at the largest pressure to both phases
	Retention *LrmData  `json:"retention"` // closed-form retention model compared with the drainage curve
}

// LrmData holds data for a liquid retention model
type LrmData struct {
	Model string     `json:"model"` // name of model; e.g. "bc", "vg" or "lin"
	Prms  dbf.Params `json:"prms"`  // parameters
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data        Data           `json:"data"`        // stores global simulation data
	Network     NetworkData    `json:"network"`     // network and geometry
	Phases      []*PhaseData   `json:"phases"`      // phases
	Physics     []*PhysicsData `json:"physics"`     // physics objects
	Percolation []*PercData    `json:"percolation"` // percolation runs

	// derived
	Key    string                  `json:"-"` // simulation key; e.g. mysim01.sim => mysim01
	Net    *nwk.Network            `json:"-"` // network
	Fluids map[string]*phase.Phase `json:"-"` // phases by name
	Phys   []*phys.Physics         `json:"-"` // physics objects; aligned with Physics
	Jobs   []alg.Job               `json:"-"` // percolation jobs; aligned with Percolation
	Lrms   []retention.Model       `json:"-"` // retention models; aligned with Percolation; nil if not given
}

// ReadSim reads all simulation data from a .sim JSON file and builds network, phases,
// physics and percolation jobs
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q: %v: %w", simfilepath, err, nwk.ErrConfig)
	}

	// set default values
	o = new(Simulation)
	o.Network.SetDefault()

	// decode
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q: %v: %w", simfilepath, err, nwk.ErrConfig)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	for _, perc := range o.Percolation {
		perc.PostProcess()
	}

	// build
	if err = o.buildNetwork(); err != nil {
		return nil, err
	}
	if err = o.buildPhases(); err != nil {
		return nil, err
	}
	if err = o.buildPhysics(); err != nil {
		return nil, err
	}
	if err = o.buildJobs(); err != nil {
		return nil, err
	}
	return
}

// SetRecorder sets the recorder of all percolation jobs
func (o *Simulation) SetRecorder(rec *metrics.Recorder) {
	for _, job := range o.Jobs {
		job.Alg.Rec = rec
	}
}

// Finish writes occupancies of runs marked with "update" and regenerates "post" physics
//  res -- results aligned with Jobs
func (o *Simulation) Finish(res []*alg.Results) (err error) {
	if len(res) != len(o.Jobs) {
		return chk.Err("Finish: %d results given for %d jobs: %w", len(res), len(o.Jobs), nwk.ErrConfig)
	}
	for i, perc := range o.Percolation {
		if !perc.Update {
			continue
		}
		job, r := o.Jobs[i], res[i]
		if err = alg.Update(job.Inv, job.Def, r, r.Pc[len(r.Pc)-1]); err != nil {
			return
		}
	}
	for i, dat := range o.Physics {
		if dat.Post {
			if err = o.Phys[i].Regenerate(); err != nil {
				return
			}
		}
	}
	return
}

// Retention compares the drainage curve of run i with its closed-form retention model
//  pc   -- pressure points of the run
//  sl   -- liquid saturation of the tabulated curve
//  slm  -- liquid saturation of the model; nil if the run has no retention model
func (o *Simulation) Retention(i int, r *alg.Results) (pc, sl, slm []float64, err error) {
	if i < 0 || i >= len(o.Lrms) {
		return nil, nil, nil, chk.Err("Retention: run index %d is out of range [0, %d): %w", i, len(o.Lrms), nwk.ErrConfig)
	}
	tab, err := r.Retention()
	if err != nil {
		return
	}
	pc = r.Pc
	sl = make([]float64, len(pc))
	for k, x := range pc {
		sl[k] = tab.Sl(x)
	}
	if o.Lrms[i] == nil {
		return
	}
	slm = make([]float64, len(pc))
	for k, x := range pc {
		slm[k] = o.Lrms[i].Sl(x)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// buildNetwork generates the cubic network and its stick-and-ball geometry
func (o *Simulation) buildNetwork() (err error) {
	dat := o.Network
	o.Net, err = nwk.NewCubic(dat.Name, dat.Shape, dat.Spacing)
	if err != nil {
		return
	}
	var geo nwk.StickAndBall
	prms := append(dbf.Params{&dbf.P{N: "spacing", V: dat.Spacing}}, dat.Geometry...)
	if err = geo.Init(prms); err != nil {
		return
	}
	if err = geo.Generate(o.Net); err != nil {
		return
	}
	if o.Data.Verbose {
		io.Pf("network %q: %d pores, %d throats, labels %v\n", o.Net.Name, o.Net.Np(), o.Net.Nt(), o.Net.LabelNames())
	}
	return
}

// buildPhases allocates and initialises all phases
func (o *Simulation) buildPhases() (err error) {
	o.Fluids = make(map[string]*phase.Phase)
	for _, dat := range o.Phases {
		if _, ok := o.Fluids[dat.Name]; ok || dat.Name == "" {
			return chk.Err("phase name %q is empty or repeated: %w", dat.Name, nwk.ErrConfig)
		}
		ph := phase.New(dat.Name, o.Net)
		ph.Gas = dat.Gas
		prms := dat.Prms
		if len(prms) == 0 {
			prms = ph.GetPrms(true)
		}
		if err = ph.Init(prms); err != nil {
			return
		}
		o.Fluids[dat.Name] = ph
	}
	return
}

// buildPhysics allocates physics objects and models and regenerates all but "post" physics
func (o *Simulation) buildPhysics() (err error) {
	for _, dat := range o.Physics {
		ph, err := o.phase(dat.Phase, "physics "+dat.Name)
		if err != nil {
			return err
		}
		pores, err := o.scope(nwk.Pore, dat.Pores)
		if err != nil {
			return chk.Err("physics %q: %w", dat.Name, err)
		}
		throats, err := o.scope(nwk.Throat, dat.Throats)
		if err != nil {
			return chk.Err("physics %q: %w", dat.Name, err)
		}
		p, err := phys.New(dat.Name, ph, pores, throats)
		if err != nil {
			return err
		}
		p.Verbose = o.Data.Verbose
		for _, m := range dat.Models {
			prop, mdl, err := m.alloc()
			if err != nil {
				return chk.Err("physics %q: %w", dat.Name, err)
			}
			p.Add(prop, mdl)
		}
		if !dat.Post {
			if err = p.Regenerate(); err != nil {
				return err
			}
		}
		o.Phys = append(o.Phys, p)
	}
	return
}

// buildJobs sets the percolation jobs
func (o *Simulation) buildJobs() (err error) {
	for i, dat := range o.Percolation {
		where := io.Sf("percolation %d", i)
		inv, err := o.phase(dat.Invading, where)
		if err != nil {
			return err
		}
		def, err := o.phase(dat.Defending, where)
		if err != nil {
			return err
		}
		if len(dat.Inlets) == 0 {
			return chk.Err("%s: inlet labels are required: %w", where, nwk.ErrConfig)
		}
		inlets, err := o.Net.Pores(dat.Inlets...)
		if err != nil {
			return chk.Err("%s: %w", where, err)
		}
		var outlets []int
		if len(dat.Outlets) > 0 {
			if outlets, err = o.Net.Pores(dat.Outlets...); err != nil {
				return chk.Err("%s: %w", where, err)
			}
		}
		perc := alg.NewOrdinaryPercolation(o.Net)
		perc.Verbose = o.Data.Verbose
		perc.Points = dat.Points
		if dat.Key != "" {
			if perc.Key, err = nwk.ParseKey(dat.Key); err != nil {
				return chk.Err("%s: %w", where, err)
			}
		}
		var npts int
		if dat.Npts != nil {
			npts = *dat.Npts
		}
		var lrm retention.Model
		if dat.Retention != nil {
			if lrm, err = retention.New(dat.Retention.Model); err != nil {
				return chk.Err("%s: %w", where, err)
			}
			if err = lrm.Init(dat.Retention.Prms); err != nil {
				return chk.Err("%s: %w", where, err)
			}
		}
		o.Jobs = append(o.Jobs, alg.Job{Alg: perc, Inv: inv, Def: def, Inlets: inlets, Outlets: outlets, Npts: npts})
		o.Lrms = append(o.Lrms, lrm)
	}
	return
}

// phase returns the phase with given name
func (o *Simulation) phase(name, where string) (*phase.Phase, error) {
	ph, ok := o.Fluids[name]
	if !ok {
		return nil, chk.Err("%s: cannot find phase named %q: %w", where, name, nwk.ErrConfig)
	}
	return ph, nil
}

// scope returns the elements with any of the given labels or all elements if none is given
func (o *Simulation) scope(ent nwk.Entity, labels []string) ([]int, error) {
	if len(labels) == 0 {
		return utl.IntRange(o.Net.Size(ent)), nil
	}
	if len(labels) == 1 && labels[0] == "none" {
		return nil, nil
	}
	if ent == nwk.Throat {
		return o.Net.Throats(labels...)
	}
	return o.Net.Pores(labels...)
}

// alloc allocates and initialises the model
func (o *ModelData) alloc() (prop nwk.Key, mdl phys.Model, err error) {
	if prop, err = nwk.ParseKey(o.Prop); err != nil {
		return
	}
	switch o.Type {
	case "capillary":
		mdl, err = capillary.New(o.Model)
	case "conduct":
		mdl, err = conduct.New(o.Model)
	default:
		err = chk.Err("model type %q is incorrect; options are \"capillary\" and \"conduct\": %w", o.Type, nwk.ErrConfig)
	}
	if err != nil {
		return
	}
	if err = mdl.Init(o.Prms); err != nil {
		return
	}
	if len(o.Keys) == 0 {
		return
	}
	keyed, ok := mdl.(phys.Keyed)
	if !ok {
		err = chk.Err("model %q does not accept keys: %w", o.Model, nwk.ErrConfig)
		return
	}
	names := make([]string, 0, len(o.Keys))
	for name := range o.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k, err := nwk.ParseKey(o.Keys[name])
		if err != nil {
			return prop, nil, err
		}
		if err = keyed.SetKey(name, k); err != nil {
			return prop, nil, err
		}
	}
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *NetworkData) SetDefault() {
	o.Name = "net"
	o.Shape = [3]int{10, 10, 10}
	o.Spacing = 1e-4
}

// PostProcess performs a post-processing of the just read json file
func (o *PercData) PostProcess() {
	if o.Npts == nil && len(o.Points) == 0 {
		o.Npts = new(int)
		*o.Npts = 20
	}
}
