package scanner

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"ChartScout/internal/model"
)

// Default thresholds for mapping scores onto actions.
const (
	DefaultBuyThreshold  = 80
	DefaultSellThreshold = 30
)

// Analyzer classifies a single symbol. A nil signal with a nil error means
// no pattern fired.
type Analyzer interface {
	AnalyzeSymbol(symbol string, tf model.Timeframe) (*model.StockSignal, error)
}

// Config describes one scan universe.
type Config struct {
	Symbols       []string
	Timeframe     model.Timeframe
	BuyThreshold  int
	SellThreshold int
}

// Progress is reported after each symbol, matched or not.
type Progress struct {
	Symbol  string
	Index   int
	Total   int
	Matched bool
}

// Scanner walks a symbol universe through an Analyzer and collects the
// signals, highest score first.
type Scanner struct {
	analyzer Analyzer
	cfg      Config
	log      zerolog.Logger
}

// New creates a Scanner. Missing config fields take the defaults: daily
// timeframe, buy at 80, sell at 30.
func New(analyzer Analyzer, cfg Config, log zerolog.Logger) *Scanner {
	if cfg.Timeframe == "" {
		cfg.Timeframe = model.Daily
	}
	if cfg.BuyThreshold == 0 {
		cfg.BuyThreshold = DefaultBuyThreshold
	}
	if cfg.SellThreshold == 0 {
		cfg.SellThreshold = DefaultSellThreshold
	}
	return &Scanner{analyzer: analyzer, cfg: cfg, log: log}
}

// Universe returns the number of symbols the scanner covers.
func (s *Scanner) Universe() int { return len(s.cfg.Symbols) }

// ScanUniverse analyzes every configured symbol in order. Per-symbol
// failures are logged and skipped so one bad symbol cannot sink the run.
// onProgress, when non-nil, is invoked after each symbol. The returned
// slice is sorted by descending score; ties keep universe order.
func (s *Scanner) ScanUniverse(ctx context.Context, onProgress func(Progress)) ([]model.StockSignal, error) {
	signals := make([]model.StockSignal, 0, len(s.cfg.Symbols))
	for i, symbol := range s.cfg.Symbols {
		if err := ctx.Err(); err != nil {
			return signals, fmt.Errorf("scan interrupted at %s: %w", symbol, err)
		}

		sig, err := s.analyzer.AnalyzeSymbol(symbol, s.cfg.Timeframe)
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("symbol analysis failed, skipping")
		}
		if sig != nil {
			sig.Action = s.label(sig.Score)
			sig.Setup = setupLabel(sig.Detection.Pattern)
			signals = append(signals, *sig)
		}
		if onProgress != nil {
			onProgress(Progress{Symbol: symbol, Index: i + 1, Total: len(s.cfg.Symbols), Matched: sig != nil})
		}
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Score > signals[j].Score
	})
	return signals, nil
}

func (s *Scanner) label(score int) model.Action {
	switch {
	case score >= s.cfg.BuyThreshold:
		return model.ActionBuy
	case score <= s.cfg.SellThreshold:
		return model.ActionSell
	default:
		return model.ActionNeutral
	}
}

// setupLabel is the human-readable setup column; symbols without a named
// formation show a dash.
func setupLabel(p model.PatternType) string {
	if p == model.PatternNone {
		return "-"
	}
	return string(p)
}
