// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package metrics records statistics of percolation runs
package metrics

import (
	"errors"
	"sort"
	"time"

	"github.com/harlinb/gopnm/nwk"

	"github.com/cpmech/gosl/io"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Recorder holds collectors of percolation runs. A nil Recorder records nothing
type Recorder struct {
	Runs           *prometheus.CounterVec // runs by status
	Duration       prometheus.Histogram   // duration of runs
	Steps          prometheus.Counter     // pressure steps computed
	InvadedThroats prometheus.Histogram   // throats invaded at the end of a run
	TrappedPores   prometheus.Histogram   // pores trapped at the end of a run
	Clusters       prometheus.Histogram   // defending clusters found while evaluating trapping
}

// NewRecorder creates and registers all collectors
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	sizes := []float64{1, 10, 100, 1000, 10000, 100000}
	return &Recorder{
		Runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gopnm_percolation_runs_total",
				Help: "Total number of percolation runs",
			},
			[]string{"status"},
		),
		Duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gopnm_percolation_duration_seconds",
				Help:    "Percolation run duration in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 1.0, 10.0, 100.0},
			},
		),
		Steps: f.NewCounter(
			prometheus.CounterOpts{
				Name: "gopnm_percolation_steps_total",
				Help: "Total number of pressure steps",
			},
		),
		InvadedThroats: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gopnm_percolation_invaded_throats",
				Help:    "Number of invaded throats per run",
				Buckets: sizes,
			},
		),
		TrappedPores: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gopnm_percolation_trapped_pores",
				Help:    "Number of trapped pores per run",
				Buckets: sizes,
			},
		),
		Clusters: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gopnm_defending_clusters",
				Help:    "Number of defending clusters per trapping step",
				Buckets: sizes,
			},
		),
	}
}

// Status returns the label of a run finished with err
func Status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, nwk.ErrConfig):
		return "config"
	case errors.Is(err, nwk.ErrGeometry):
		return "geometry"
	case errors.Is(err, nwk.ErrDataMissing):
		return "missing"
	}
	return "error"
}

// Run records a finished run
func (o *Recorder) Run(elapsed time.Duration, steps, invaded, trapped int, err error) {
	if o == nil {
		return
	}
	o.Runs.WithLabelValues(Status(err)).Inc()
	o.Duration.Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	o.Steps.Add(float64(steps))
	o.InvadedThroats.Observe(float64(invaded))
	o.TrappedPores.Observe(float64(trapped))
}

// DefendingClusters records the number of defending clusters of one trapping step
func (o *Recorder) DefendingClusters(n int) {
	if o == nil {
		return
	}
	o.Clusters.Observe(float64(n))
}

// Print prints counters and histogram summaries
func Print(g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	sort.Slice(mfs, func(i, j int) bool { return mfs[i].GetName() < mfs[j].GetName() })
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			io.Pf("%-42s%s %s\n", mf.GetName(), labels(m.GetLabel()), value(mf.GetType(), m))
		}
	}
	return nil
}

// labels formats label pairs
func labels(pairs []*dto.LabelPair) (l string) {
	for i, p := range pairs {
		if i == 0 {
			l = "{"
		} else {
			l += ","
		}
		l += p.GetName() + "=" + p.GetValue()
	}
	if l != "" {
		l += "}"
	}
	return
}

// value formats the value of a metric
func value(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return io.Sf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return io.Sf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		mean := 0.0
		if h.GetSampleCount() > 0 {
			mean = h.GetSampleSum() / float64(h.GetSampleCount())
		}
		return io.Sf("count=%d mean=%g", h.GetSampleCount(), mean)
	}
	return ""
}
