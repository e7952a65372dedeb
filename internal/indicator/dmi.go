package indicator

import (
	"math"

	"ChartScout/internal/model"
)

// LastDMI returns the final Wilder-smoothed DI+/DI- pair for bars.
// Requires at least 2*period bars; returns {0, 0} otherwise.
func LastDMI(bars []model.Bar, period int) (diPlus, diMinus float64) {
	if period <= 0 || len(bars) < 2*period {
		return 0, 0
	}
	trs, plus, minus := movements(bars)

	// Seed sums over the first period movements, then Wilder smoothing:
	// s = s - s/period + new.
	var trS, plusS, minusS float64
	for i := 0; i < period; i++ {
		trS += trs[i]
		plusS += plus[i]
		minusS += minus[i]
	}
	for i := period; i < len(trs); i++ {
		trS = trS - trS/float64(period) + trs[i]
		plusS = plusS - plusS/float64(period) + plus[i]
		minusS = minusS - minusS/float64(period) + minus[i]
	}
	if trS == 0 {
		return 0, 0
	}
	return 100 * plusS / trS, 100 * minusS / trS
}

// lastADX returns the final DI+/DI- pair and the Wilder-smoothed ADX.
// The first ADX value is the mean of the first period DX values; seeding
// indexes relatively into the movement arrays, gaps are treated as
// adjacent bars.
func lastADX(bars []model.Bar, period int) (diPlus, diMinus, adx float64) {
	if period <= 0 || len(bars) < 2*period {
		return 0, 0, 0
	}
	trs, plus, minus := movements(bars)

	var trS, plusS, minusS float64
	for i := 0; i < period; i++ {
		trS += trs[i]
		plusS += plus[i]
		minusS += minus[i]
	}

	dxs := make([]float64, 0, len(trs)-period+1)
	record := func() {
		var dp, dm float64
		if trS != 0 {
			dp = 100 * plusS / trS
			dm = 100 * minusS / trS
		}
		diPlus, diMinus = dp, dm
		if dp+dm == 0 {
			dxs = append(dxs, 0)
			return
		}
		dxs = append(dxs, 100*math.Abs(dp-dm)/(dp+dm))
	}
	record()
	for i := period; i < len(trs); i++ {
		trS = trS - trS/float64(period) + trs[i]
		plusS = plusS - plusS/float64(period) + plus[i]
		minusS = minusS - minusS/float64(period) + minus[i]
		record()
	}

	if len(dxs) < period {
		return diPlus, diMinus, 0
	}
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += dxs[i]
	}
	adx = sum / float64(period)
	for i := period; i < len(dxs); i++ {
		adx = (adx*float64(period-1) + dxs[i]) / float64(period)
	}
	return diPlus, diMinus, adx
}

// movements computes the per-bar true range and directional movement, one
// entry per consecutive bar pair.
func movements(bars []model.Bar) (trs, plus, minus []float64) {
	n := len(bars) - 1
	trs = make([]float64, n)
	plus = make([]float64, n)
	minus = make([]float64, n)
	for i := 1; i < len(bars); i++ {
		tr, p, m := directionalMovement(bars[i-1], bars[i])
		trs[i-1] = tr
		plus[i-1] = p
		minus[i-1] = m
	}
	return trs, plus, minus
}

func directionalMovement(prev, cur model.Bar) (tr, plusDM, minusDM float64) {
	up := cur.High - prev.High
	down := prev.Low - cur.Low
	if up > down && up > 0 {
		plusDM = up
	}
	if down > up && down > 0 {
		minusDM = down
	}
	hl := cur.High - cur.Low
	hc := math.Abs(cur.High - prev.Close)
	lc := math.Abs(cur.Low - prev.Close)
	tr = math.Max(hl, math.Max(hc, lc))
	return tr, plusDM, minusDM
}
