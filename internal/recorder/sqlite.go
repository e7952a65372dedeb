package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log zerolog.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while scans write.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id         TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER,
			universe   INTEGER,
			matched    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS scan_signals (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL REFERENCES scan_runs(id),
			symbol       TEXT NOT NULL,
			pattern      TEXT,
			base_score   INTEGER,
			score        INTEGER,
			action       TEXT,
			setup        TEXT,
			price        REAL,
			change_pct   REAL,
			stage        TEXT,
			high_52      REAL,
			low_52       REAL,
			proximity    REAL,
			rel_volume   REAL,
			momentum_h1  INTEGER,
			momentum_h4  INTEGER,
			momentum_d1  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_run ON scan_signals(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON scan_signals(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan writes the run row and its signals in one transaction.
func (r *SQLiteRecorder) RecordScan(rec *ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO scan_runs (id, started_at, duration_ms, universe, matched)
		VALUES (?,?,?,?,?)`,
		rec.ID, rec.StartedAt.Unix(), rec.Duration.Milliseconds(),
		rec.Universe, len(rec.Signals),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, sig := range rec.Signals {
		_, err = tx.Exec(`INSERT INTO scan_signals
			(run_id, symbol, pattern, base_score, score, action, setup,
			 price, change_pct, stage, high_52, low_52, proximity, rel_volume,
			 momentum_h1, momentum_h4, momentum_d1)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			rec.ID, sig.Symbol, string(sig.Detection.Pattern), sig.Detection.BaseScore,
			sig.Score, string(sig.Action), sig.Setup,
			sig.Price, sig.ChangePct, sig.Stage,
			sig.High52, sig.Low52, sig.ProximityPct, sig.RelativeVolume,
			sig.Momentum.H1, sig.Momentum.H4, sig.Momentum.D1,
		)
		if err != nil {
			return fmt.Errorf("insert signal %s: %w", sig.Symbol, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
