package pattern

import (
	"math"

	"ChartScout/internal/model"
)

// pivotHighAt reports whether bars[i] carries the strictly highest high
// within w bars on each side.
func pivotHighAt(bars []model.Bar, i, w int) bool {
	if i-w < 0 || i+w >= len(bars) {
		return false
	}
	for j := i - w; j <= i+w; j++ {
		if j != i && bars[j].High >= bars[i].High {
			return false
		}
	}
	return true
}

// pivotLowAt reports whether bars[i] carries the strictly lowest low
// within w bars on each side.
func pivotLowAt(bars []model.Bar, i, w int) bool {
	if i-w < 0 || i+w >= len(bars) {
		return false
	}
	for j := i - w; j <= i+w; j++ {
		if j != i && bars[j].Low <= bars[i].Low {
			return false
		}
	}
	return true
}

// lowestIdx returns the index of the lowest low in bars[from:to),
// or -1 when the range is empty.
func lowestIdx(bars []model.Bar, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(bars) {
		to = len(bars)
	}
	if from >= to {
		return -1
	}
	idx := from
	for i := from + 1; i < to; i++ {
		if bars[i].Low < bars[idx].Low {
			idx = i
		}
	}
	return idx
}

// rangeOf returns the highest high and lowest low across bars.
func rangeOf(bars []model.Bar) (high, low float64) {
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low
}

func avgVolume(bars []model.Bar) float64 {
	if len(bars) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bars {
		sum += b.Volume
	}
	return sum / float64(len(bars))
}
