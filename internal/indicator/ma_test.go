package indicator

import (
	"math"
	"testing"
)

func TestSMA_InsufficientData(t *testing.T) {
	if got := SMA([]float64{1, 2, 3}, 4); got != 0 {
		t.Errorf("expected 0 for insufficient data, got %v", got)
	}
	if got := SMA(nil, 1); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
}

func TestSMA_ExactPeriod(t *testing.T) {
	if got := SMA([]float64{2, 4, 6}, 3); got != 4 {
		t.Errorf("expected mean 4, got %v", got)
	}
	// Only the trailing window counts.
	if got := SMA([]float64{100, 2, 4, 6}, 3); got != 4 {
		t.Errorf("expected trailing mean 4, got %v", got)
	}
}

func TestEMA_SeedAndRecursion(t *testing.T) {
	out := EMA([]float64{10, 13}, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 values, got %d", len(out))
	}
	if out[0] != 10 {
		t.Errorf("expected seed 10, got %v", out[0])
	}
	// k = 2/3: 13*2/3 + 10*1/3 = 12
	if math.Abs(out[1]-12) > 1e-9 {
		t.Errorf("expected 12, got %v", out[1])
	}
}

func TestEMA_NaNFallsBackToPrevious(t *testing.T) {
	out := EMA([]float64{10, math.NaN(), 10}, 2)
	for i, v := range out {
		if math.IsNaN(v) {
			t.Fatalf("NaN leaked to output at %d", i)
		}
	}
	if math.Abs(out[2]-10) > 1e-9 {
		t.Errorf("expected recursion to stay at 10, got %v", out[2])
	}
}

func TestSMASeries_WindowCount(t *testing.T) {
	out := SMASeries([]float64{1, 2, 3, 4, 5}, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 points, got %d", len(out))
	}
	want := []float64{2, 3, 4}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("point %d: expected %v, got %v", i, want[i], out[i])
		}
	}
	if SMASeries([]float64{1, 2}, 3) != nil {
		t.Error("expected nil for input shorter than period")
	}
}
