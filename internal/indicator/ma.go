package indicator

import (
	"math"

	"ChartScout/internal/model"
)

// EMA computes the exponential moving average of values, seeded with the
// first value. NaN inputs fall back to the previous defined value so gaps
// do not poison the recursion. The output has the same length as the input.
func EMA(values []float64, period int) []float64 {
	if len(values) == 0 || period <= 0 {
		return nil
	}
	k := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(values))
	prev := values[0]
	if math.IsNaN(prev) {
		prev = 0
	}
	out[0] = prev
	for i := 1; i < len(values); i++ {
		v := values[i]
		if math.IsNaN(v) {
			v = prev
		}
		prev = v*k + prev*(1-k)
		out[i] = prev
	}
	return out
}

// SMA returns the mean of the last period values.
// Returns 0 when fewer than period values exist.
func SMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return 0
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period)
}

// SMASeries returns the sliding period-SMA over values, one point per full
// window. Returns nil when no full window fits.
func SMASeries(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}
	out := make([]float64, 0, len(values)-period+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}

func extractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
