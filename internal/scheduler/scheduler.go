package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"ChartScout/internal/recorder"
	"ChartScout/internal/scanner"
)

// Scheduler manages the recurring scan task.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Recorder recorder.Recorder
	Ctx      context.Context
	log      zerolog.Logger
}

// New creates a Scheduler around the given scanner and recorder.
func New(ctx context.Context, sc *scanner.Scanner, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Recorder: rec,
		Ctx:      ctx,
		log:      log,
	}
}

// Register wires the scan task onto its cron expression.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the scan task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	runID := uuid.NewString()
	start := time.Now()
	log := s.log.With().Str("run_id", runID).Logger()
	log.Info().Int("universe", s.Scanner.Universe()).Msg("scan started")

	signals, err := s.Scanner.ScanUniverse(s.Ctx, func(p scanner.Progress) {
		log.Debug().Str("symbol", p.Symbol).
			Int("index", p.Index).Int("total", p.Total).
			Bool("matched", p.Matched).Msg("scan progress")
	})
	if err != nil {
		log.Error().Err(err).Msg("scan aborted")
		return
	}

	elapsed := time.Since(start)
	for _, sig := range signals {
		log.Info().Str("symbol", sig.Symbol).
			Str("pattern", string(sig.Detection.Pattern)).
			Int("score", sig.Score).
			Str("action", string(sig.Action)).
			Str("stage", sig.Stage).
			Msg("signal")
	}
	log.Info().Int("matched", len(signals)).Dur("elapsed", elapsed).Msg("scan finished")

	if err := s.Recorder.RecordScan(&recorder.ScanRecord{
		ID:        runID,
		StartedAt: start,
		Duration:  elapsed,
		Universe:  s.Scanner.Universe(),
		Signals:   signals,
	}); err != nil {
		log.Error().Err(err).Msg("record scan")
	}
}
