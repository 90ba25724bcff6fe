package update

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"lynx-bridge/core/backup"
	"lynx-bridge/core/history"
	"lynx-bridge/core/laps"
	"lynx-bridge/core/logger"
	"lynx-bridge/core/metrics"
	"lynx-bridge/core/race"
	"lynx-bridge/core/reconcile"
	"lynx-bridge/core/textenc"
	"lynx-bridge/feature/evt"
	"lynx-bridge/feature/gcpv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options carries the configuration an update runs with.
type Options struct {
	// Encoding is the default output encoding.
	Encoding string
	// Backup controls automatic backups.
	Backup backup.Config
	// Races holds suffix trimming, the lap table and the configured override.
	Races race.Config
	// MetricsTextfile receives the run gauges when non-empty.
	MetricsTextfile string
}

// Request describes one update.
type Request struct {
	// EVTPath is the event database to update. It may not exist yet.
	EVTPath string
	// CSVPaths are GCPV exports read in order and merged as one source.
	CSVPaths []string
	// Sources are already extracted races, merged after those read from CSVPaths.
	Sources []race.Source
	// LapOverride replaces every lap count; nil falls back to the configured override.
	LapOverride *float64
	// Backup forces a backup even when automatic backups are off.
	Backup bool
	// DryRun plans the update without touching any file.
	DryRun bool
	// Encoding overrides the configured output encoding when non-empty.
	Encoding string
}

// Service runs updates.
type Service struct {
	opts     Options
	logger   *zap.Logger
	journal  history.Store
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService creates a new update service. journal and recorder are optional.
func NewService(opts Options, logger *zap.Logger, journal history.Store, recorder *metrics.Recorder) *Service {
	return &Service{
		opts:     opts,
		logger:   logger,
		journal:  journal,
		recorder: recorder,
		now:      time.Now,
	}
}

// Update merges the requested sources into the event database.
//
// Configuration is checked before any file is touched. A requested backup
// that cannot be made aborts the update. Read and write failures are
// returned as *Error. Journal and metrics failures are only logged.
func (s *Service) Update(ctx context.Context, req Request) (*Result, error) {
	started := s.now()
	runID := uuid.NewString()
	l := logger.WithRun(s.logger, runID).With(zap.String("evt", req.EVTPath))

	encName := req.Encoding
	if strings.TrimSpace(encName) == "" {
		encName = s.opts.Encoding
	}
	enc, err := textenc.Parse(encName)
	if err != nil {
		return nil, err
	}

	table, err := laps.Parse(s.opts.Races.DistanceLaps)
	if err != nil {
		return nil, err
	}

	override := req.LapOverride
	if override == nil {
		if override, err = s.opts.Races.Override(); err != nil {
			return nil, err
		}
	}

	sources, err := s.loadSources(req)
	if err != nil {
		return nil, err
	}
	derived := table.Apply(sources)
	l.Debug("Sources loaded",
		zap.Int("races", len(sources)),
		zap.Int("laps_from_table", derived),
	)

	result := &Result{RunID: runID, DryRun: req.DryRun}

	if !req.DryRun && (s.opts.Backup.Enabled || req.Backup) {
		path, err := s.backup(req.EVTPath, started)
		if err != nil {
			l.Error("Backup failed, EVT file left untouched", zap.Error(err))
			return nil, err
		}
		if path != "" {
			result.BackupCreated = true
			result.BackupPath = path
			l.Info("Backup created", zap.String("backup", path))
		}
	}

	existing, err := evt.ReadFile(req.EVTPath)
	if err != nil {
		return nil, &Error{Path: req.EVTPath, Err: err}
	}

	plan := reconcile.Merge(existing, sources, reconcile.ReconcileOptions{
		LapOverride:  override,
		TrimSuffixes: s.opts.Races.TrimSuffixes,
	})

	if !req.DryRun {
		if err := evt.WriteFile(req.EVTPath, plan.Races, enc); err != nil {
			return nil, &Error{Path: req.EVTPath, Err: err}
		}
	}

	result.Added = plan.Summary.Added
	result.Updated = plan.Summary.Updated
	result.Unchanged = plan.Summary.Unchanged
	result.Total = plan.Summary.Total
	result.Actions = plan.Actions

	l.Info("Update finished",
		zap.Int("added", result.Added),
		zap.Int("updated", result.Updated),
		zap.Int("unchanged", result.Unchanged),
		zap.Int("total", result.Total),
		zap.Bool("dry_run", req.DryRun),
		zap.String("encoding", string(enc)),
	)

	finished := s.now()
	s.record(ctx, l, req, result, finished)
	s.observe(l, plan.Summary, result, finished.Sub(started), finished)

	return result, nil
}

func (s *Service) loadSources(req Request) ([]race.Source, error) {
	var parsed []race.Source
	if len(req.CSVPaths) > 0 {
		var err error
		if parsed, err = gcpv.ParseFiles(req.CSVPaths...); err != nil {
			return nil, err
		}
	}
	// Combine copies, so lap derivation never writes into the caller's slice.
	return gcpv.Combine(parsed, req.Sources), nil
}

// backup copies the target when it exists. A missing target yields no backup
// and no error.
func (s *Service) backup(target string, now time.Time) (string, error) {
	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	dir := s.opts.Backup.Directory
	if strings.TrimSpace(dir) == "" {
		dir = "backups"
	}
	return backup.Create(target, dir, now)
}

func (s *Service) record(ctx context.Context, l *zap.Logger, req Request, result *Result, at time.Time) {
	if s.journal == nil {
		return
	}

	rec := &history.UpdateRecord{
		ID:         result.RunID,
		RunAt:      at.UTC(),
		EVTPath:    req.EVTPath,
		Sources:    strings.Join(req.CSVPaths, ","),
		Added:      result.Added,
		Updated:    result.Updated,
		Unchanged:  result.Unchanged,
		Total:      result.Total,
		DryRun:     result.DryRun,
		BackupPath: result.BackupPath,
	}
	if err := s.journal.Record(ctx, rec); err != nil {
		l.Warn("Failed to record update history", zap.Error(err))
	}
}

func (s *Service) observe(l *zap.Logger, summary reconcile.PlanSummary, result *Result, took time.Duration, at time.Time) {
	if s.recorder == nil {
		return
	}

	s.recorder.ObserveUpdate(summary, result.DryRun, result.BackupCreated, took, at)
	if s.opts.MetricsTextfile == "" {
		return
	}
	if err := s.recorder.WriteTextfile(s.opts.MetricsTextfile); err != nil {
		l.Warn("Failed to write metrics textfile", zap.Error(err))
	}
}
