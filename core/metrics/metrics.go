package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lynx-bridge/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "lynx_bridge"
	subsystem = "update"
)

// Config holds configuration for metrics export.
type Config struct {
	// Textfile is the node-exporter textfile the last update is written to.
	// Empty disables the export.
	Textfile string `mapstructure:"textfile" default:""`
}

// Recorder collects the gauges describing the last update run.
type Recorder struct {
	registry *prometheus.Registry

	races           *prometheus.GaugeVec
	lastRunUnix     prometheus.Gauge
	durationSeconds prometheus.Gauge
	dryRun          prometheus.Gauge
	backupCreated   prometheus.Gauge
}

// New creates a Recorder on its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		races: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "races",
			Help:      "Races in the last update by outcome.",
		}, []string{"result"}),
		lastRunUnix: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last update finished.",
		}),
		durationSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time of the last update.",
		}),
		dryRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dry_run",
			Help:      "1 when the last update only planned changes.",
		}),
		backupCreated: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "backup_created",
			Help:      "1 when the last update backed up the event database.",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveUpdate records the outcome of one update run.
func (r *Recorder) ObserveUpdate(summary reconcile.PlanSummary, dryRun, backupCreated bool, took time.Duration, finished time.Time) {
	r.races.WithLabelValues("added").Set(float64(summary.Added))
	r.races.WithLabelValues("updated").Set(float64(summary.Updated))
	r.races.WithLabelValues("unchanged").Set(float64(summary.Unchanged))
	r.races.WithLabelValues("total").Set(float64(summary.Total))

	r.lastRunUnix.Set(float64(finished.Unix()))
	r.durationSeconds.Set(took.Seconds())
	r.dryRun.Set(boolValue(dryRun))
	r.backupCreated.Set(boolValue(backupCreated))
}

// WriteTextfile writes every gauge to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to '%s': %w", path, err)
	}
	return nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
