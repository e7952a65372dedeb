package stage

import (
	"ChartScout/internal/indicator"
	"ChartScout/internal/model"
)

// Stage labels for the four market-cycle phases.
const (
	Stage1 = "Stage 1 (Base)"
	Stage2 = "Stage 2 (Uptrend)"
	Stage3 = "Stage 3 (Top)"
	Stage4 = "Stage 4 (Downtrend)"
)

const (
	smaPeriod = 30
	slopeSpan = 5
	flatBand  = 0.005
	minBars   = 35
)

// Classify labels the market-cycle phase of a weekly series from the
// position of price against its 30-week moving average and the average's
// recent slope. Insufficient history defaults to Stage 1.
func Classify(weekly []model.Bar) string {
	if len(weekly) < minBars {
		return Stage1
	}
	closes := make([]float64, len(weekly))
	for i, b := range weekly {
		closes[i] = b.Close
	}
	sma := indicator.SMASeries(closes, smaPeriod)
	if len(sma) < slopeSpan {
		return Stage1
	}

	latest := sma[len(sma)-1]
	ref := sma[len(sma)-slopeSpan]
	if ref == 0 {
		return Stage1
	}
	slope := (latest - ref) / ref
	above := closes[len(closes)-1] > latest

	switch {
	case above && slope > flatBand:
		return Stage2
	case above && slope < -flatBand:
		return Stage3
	case above:
		return Stage1
	case slope < -flatBand:
		return Stage4
	case slope > flatBand:
		return Stage3
	default:
		return Stage1
	}
}
