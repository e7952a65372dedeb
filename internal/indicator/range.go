package indicator

import (
	"math"

	"ChartScout/internal/model"
)

// RangeHighLow scans the most recent window bars and returns the high and
// low. Returns {0, 0} for an empty series.
func RangeHighLow(bars []model.Bar, window int) (high, low float64) {
	if len(bars) == 0 || window <= 0 {
		return 0, 0
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low
}

// relVolumeWindow is the trailing average window for relative volume.
const relVolumeWindow = 20

// RelativeVolume returns the last bar's volume over the trailing 20-bar
// average volume, or 0 when undefined.
func RelativeVolume(bars []model.Bar) float64 {
	if len(bars) < relVolumeWindow {
		return 0
	}
	sum := 0.0
	for i := len(bars) - relVolumeWindow; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	avg := sum / relVolumeWindow
	if avg == 0 {
		return 0
	}
	return bars[len(bars)-1].Volume / avg
}

// VolatilityCompression reports whether the recent 4-bar average true-range
// percentage has contracted to under 85% of the prior 8-bar average, or is
// below 3.5% outright.
func VolatilityCompression(bars []model.Bar) bool {
	const (
		recentWindow = 4
		priorWindow  = 8
	)
	n := len(bars)
	if n < recentWindow+priorWindow+1 {
		return false
	}

	trPct := func(i int) float64 {
		if bars[i].Close == 0 {
			return 0
		}
		tr, _, _ := directionalMovement(bars[i-1], bars[i])
		return tr / bars[i].Close
	}

	var recent, prior float64
	for i := n - recentWindow; i < n; i++ {
		recent += trPct(i)
	}
	recent /= recentWindow
	for i := n - recentWindow - priorWindow; i < n-recentWindow; i++ {
		prior += trPct(i)
	}
	prior /= priorWindow

	return recent < 0.85*prior || recent < 0.035
}
