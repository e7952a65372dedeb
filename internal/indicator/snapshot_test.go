package indicator

import (
	"testing"
	"time"

	"ChartScout/internal/model"
)

func TestSnapshot_InsufficientBars(t *testing.T) {
	snap := Snapshot(trendBars(29, 100, 1))
	if snap != (model.IndicatorSnapshot{}) {
		t.Errorf("expected zero snapshot for fewer than 30 bars, got %+v", snap)
	}
}

func TestSnapshot_AcceleratingUptrend(t *testing.T) {
	bars := make([]model.Bar, 60)
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	c := 100.0
	for i := range bars {
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   c * 0.995,
			High:   c * 1.005,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
		c *= 1.02
	}

	snap := Snapshot(bars)
	if snap.MACD <= 0 {
		t.Errorf("expected positive MACD in an uptrend, got %v", snap.MACD)
	}
	if snap.DIPlus <= snap.DIMinus {
		t.Errorf("expected DI+ > DI-, got DI+=%v DI-=%v", snap.DIPlus, snap.DIMinus)
	}
	if snap.SMI <= 0 {
		t.Errorf("expected positive SMI when closes hug the range top, got %v", snap.SMI)
	}
	if snap.RSISMA3 <= snap.RSISMA14 {
		t.Errorf("expected short RSI average above long in accelerating trend, got %v vs %v",
			snap.RSISMA3, snap.RSISMA14)
	}
	if snap.ADX <= 0 {
		t.Errorf("expected positive ADX for a persistent trend, got %v", snap.ADX)
	}
}
