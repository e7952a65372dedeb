package indicator

import (
	"math"

	"ChartScout/internal/model"
)

const (
	rsiPeriod = 14
	dmiPeriod = 14
	smiLength = 10
	smiSmooth = 3
	macdFast  = 12
	macdSlow  = 26

	// minSnapshotBars is the shortest series the snapshot is defined over.
	minSnapshotBars = 30
)

// Snapshot recomputes every indicator from scratch over bars; there is no
// incremental state. Fewer than 30 bars yields the zero snapshot.
func Snapshot(bars []model.Bar) model.IndicatorSnapshot {
	if len(bars) < minSnapshotBars {
		return model.IndicatorSnapshot{}
	}
	closes := extractCloses(bars)

	rsi := RSISeries(closes, rsiPeriod)
	fast := EMA(closes, macdFast)
	slow := EMA(closes, macdSlow)

	snap := model.IndicatorSnapshot{
		RSISMA3:  SMA(rsi, 3),
		RSISMA14: SMA(rsi, 14),
		MACD:     fast[len(fast)-1] - slow[len(slow)-1],
		SMI:      smi(bars, smiLength, smiSmooth),
	}
	snap.DIPlus, snap.DIMinus, snap.ADX = lastADX(bars, dmiPeriod)
	return snap
}

// smi computes the Stochastic Momentum Index: the distance of each close
// from the midpoint of the recent high/low range, double-EMA smoothed and
// normalized by half the smoothed range.
func smi(bars []model.Bar, length, smooth int) float64 {
	if len(bars) < length {
		return 0
	}
	diffs := make([]float64, 0, len(bars)-length+1)
	ranges := make([]float64, 0, len(bars)-length+1)
	for i := length - 1; i < len(bars); i++ {
		hh := math.Inf(-1)
		ll := math.Inf(1)
		for j := i - length + 1; j <= i; j++ {
			if bars[j].High > hh {
				hh = bars[j].High
			}
			if bars[j].Low < ll {
				ll = bars[j].Low
			}
		}
		diffs = append(diffs, bars[i].Close-(hh+ll)/2)
		ranges = append(ranges, hh-ll)
	}

	d := EMA(EMA(diffs, smooth), smooth)
	r := EMA(EMA(ranges, smooth), smooth)
	lastRange := r[len(r)-1]
	if lastRange == 0 {
		return 0
	}
	return 100 * d[len(d)-1] / (0.5 * lastRange)
}
