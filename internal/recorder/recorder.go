package recorder

import (
	"time"

	"ChartScout/internal/model"
)

// ScanRecord holds everything worth keeping from one completed scan run.
type ScanRecord struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	Universe  int
	Signals   []model.StockSignal
}

// Recorder persists scan history for later analysis.
type Recorder interface {
	RecordScan(rec *ScanRecord) error
	Close() error
}
