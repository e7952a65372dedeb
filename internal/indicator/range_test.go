package indicator

import (
	"math"
	"testing"
)

func TestRangeHighLow(t *testing.T) {
	bars := trendBars(300, 100, 1) // closes 100..399
	high, low := RangeHighLow(bars, 252)
	// Window covers the last 252 bars: closes 148..399, ±1 intrabar range.
	if math.Abs(high-400) > 1e-9 {
		t.Errorf("expected high 400, got %v", high)
	}
	if math.Abs(low-147) > 1e-9 {
		t.Errorf("expected low 147, got %v", low)
	}

	if h, l := RangeHighLow(nil, 252); h != 0 || l != 0 {
		t.Errorf("expected {0,0} for empty series, got {%v,%v}", h, l)
	}
}

func TestRelativeVolume(t *testing.T) {
	bars := trendBars(19, 100, 1)
	if got := RelativeVolume(bars); got != 0 {
		t.Errorf("expected 0 for fewer than 20 bars, got %v", got)
	}

	bars = trendBars(40, 100, 1)
	if got := RelativeVolume(bars); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected 1.0 for uniform volume, got %v", got)
	}

	bars[len(bars)-1].Volume = 2000
	// avg = (19*1000 + 2000)/20 = 1050
	if got := RelativeVolume(bars); math.Abs(got-2000.0/1050.0) > 1e-9 {
		t.Errorf("expected %v, got %v", 2000.0/1050.0, got)
	}
}

func TestVolatilityCompression(t *testing.T) {
	// Wide prior ranges, narrow recent ranges.
	bars := flatBars(13, 100)
	for i := 0; i < 9; i++ {
		bars[i].High = 110
		bars[i].Low = 90
	}
	if !VolatilityCompression(bars) {
		t.Error("expected compression when recent ranges contract")
	}

	// Uniformly wide ranges: no contraction and above the absolute floor.
	wide := flatBars(13, 100)
	for i := range wide {
		wide[i].High = 110
		wide[i].Low = 90
	}
	if VolatilityCompression(wide) {
		t.Error("expected no compression for uniformly wide ranges")
	}

	if VolatilityCompression(flatBars(12, 100)) {
		t.Error("expected false for insufficient history")
	}
}
