package analyzer

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"ChartScout/internal/collector"
	"ChartScout/internal/indicator"
	"ChartScout/internal/momentum"
	"ChartScout/internal/model"
	"ChartScout/internal/pattern"
	"ChartScout/internal/stage"
)

// momentumPeriod is the delta window of the composite momentum score.
const momentumPeriod = 14

// Analyzer runs the full per-symbol classification pipeline.
type Analyzer struct {
	fetcher  collector.Fetcher
	momentum *momentum.Tracker
	log      zerolog.Logger
}

// New creates an Analyzer over the given data provider.
func New(fetcher collector.Fetcher, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		fetcher:  fetcher,
		momentum: momentum.NewTracker(fetcher, log),
		log:      log,
	}
}

// AnalyzeSymbol classifies one symbol's recent history. It returns nil when
// no pattern fires; an error is returned only when the primary series
// cannot be fetched at all. Every other fault degrades to the documented
// default of the failing sub-computation.
func (a *Analyzer) AnalyzeSymbol(symbol string, tf model.Timeframe) (*model.StockSignal, error) {
	primary, err := a.fetcher.FetchSeries(symbol, tf)
	if err != nil {
		return nil, fmt.Errorf("fetch %s series for %s: %w", tf, symbol, err)
	}
	if len(primary.Bars) == 0 {
		return nil, fmt.Errorf("no %s bars for %s", tf, symbol)
	}

	// The weekly series backs the base detectors and the stage classifier;
	// when it cannot be fetched the primary bars stand in.
	weekly := primary.Bars
	if tf != model.Weekly {
		ws, err := a.fetcher.FetchSeries(symbol, model.Weekly)
		if err != nil {
			a.log.Warn().Err(err).Str("symbol", symbol).
				Msg("weekly fetch failed, reusing primary bars")
		} else if len(ws.Bars) > 0 {
			weekly = ws.Bars
		}
	}

	detection := a.detect(pattern.Context{
		Bars:        primary.Bars,
		Timeframe:   tf,
		Weekly:      weekly,
		WeeklySnap:  indicator.Snapshot(weekly),
		Compression: indicator.VolatilityCompression(weekly),
	}, symbol)
	if detection.Pattern == model.PatternNone {
		return nil, nil
	}

	bars := primary.Bars
	last := bars[len(bars)-1]
	sig := &model.StockSignal{
		Symbol:         symbol,
		Price:          last.Close,
		Detection:      detection,
		Score:          compositeScore(momentumScore(primary.Closes()), detection.BaseScore),
		Chart:          primary,
		Momentum:       a.momentum.Alignment(symbol),
		Stage:          stage.Classify(weekly),
		RelativeVolume: indicator.RelativeVolume(bars),
	}
	if len(bars) >= 2 && bars[len(bars)-2].Close != 0 {
		prev := bars[len(bars)-2].Close
		sig.ChangePct = (last.Close - prev) / prev * 100
	}
	sig.High52, sig.Low52 = indicator.RangeHighLow(bars, yearWindow(tf))
	if sig.High52 > 0 {
		sig.ProximityPct = (sig.High52 - last.Close) / sig.High52 * 100
	}
	return sig, nil
}

// detect runs the chain behind a panic guard: a detector fault degrades to
// no signal instead of escaping the per-symbol boundary.
func (a *Analyzer) detect(pctx pattern.Context, symbol string) (res model.DetectionResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Str("symbol", symbol).Interface("panic", r).
				Msg("detector chain fault, degrading to no signal")
			res = model.DetectionResult{}
		}
	}()
	return pattern.Detect(pctx)
}

// momentumScore maps the gain/loss ratio of the last 14 deltas onto
// [0,100]. No losses map to 100; too little history maps to neutral 50.
func momentumScore(closes []float64) int {
	if len(closes) < momentumPeriod {
		return 50
	}
	start := len(closes) - momentumPeriod
	if start < 1 {
		start = 1
	}
	var gain, loss float64
	for i := start; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	if loss == 0 {
		return 100
	}
	rs := gain / loss
	return int(math.Floor(100 - 100/(1+rs)))
}

// compositeScore averages the momentum score with the pattern's base
// score, capped at 99.
func compositeScore(momentum, base int) int {
	score := (momentum + base) / 2
	if score > 99 {
		score = 99
	}
	return score
}

// yearWindow is the bar count approximating 52 weeks per timeframe.
func yearWindow(tf model.Timeframe) int {
	switch tf {
	case model.Weekly:
		return 52
	case model.Yearly:
		return 12
	default:
		return 252
	}
}
