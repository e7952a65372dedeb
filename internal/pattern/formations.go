package pattern

import "math"

// ascendingTriangle detects a flat resistance line hit by three recent
// pivot highs while pivot lows keep rising, with price just over the line.
func ascendingTriangle(ctx Context) bool {
	bars := ctx.Bars
	if len(bars) < 30 {
		return false
	}
	start := len(bars) - 50
	if start < 0 {
		start = 0
	}

	const confirm = 5
	var highs, lows []float64
	for i := start; i < len(bars); i++ {
		if pivotHighAt(bars, i, confirm) {
			highs = append(highs, bars[i].High)
		}
		if pivotLowAt(bars, i, confirm) {
			lows = append(lows, bars[i].Low)
		}
	}
	if len(highs) < 3 || len(lows) < 3 {
		return false
	}
	h := highs[len(highs)-3:]
	l := lows[len(lows)-3:]

	hMax := math.Max(h[0], math.Max(h[1], h[2]))
	hMin := math.Min(h[0], math.Min(h[1], h[2]))
	if hMin == 0 || hMax > 1.02*hMin {
		return false
	}
	if l[1] < 0.995*l[0] || l[2] < 0.995*l[1] {
		return false
	}

	// Only the incipient breakout window counts; further along is chased.
	resistance := hMax
	price := bars[len(bars)-1].Close
	return price > resistance && price <= 1.035*resistance
}

// elliottWave3 detects the start of a third wave: an impulse off point0 to
// point1, a partial retracement into point2, and a fresh bounce.
func elliottWave3(ctx Context) bool {
	bars := ctx.Bars
	n := len(bars)
	if n < 50 {
		return false
	}
	recency := RecencyWindow(ctx.Timeframe) + 2

	// point2: the most recent confirmed local low near the end.
	const scanLimit = 15
	p2 := -1
	for i := n - 2; i >= n-1-scanLimit && i >= 2; i-- {
		if pivotLowAt(bars, i, 2) {
			p2 = i
			break
		}
	}
	if p2 < 0 || n-1-p2 > recency {
		return false
	}

	// point1: the swing high that preceded the retracement.
	p1 := -1
	for i := p2 - 1; i >= p2-30 && i >= 2; i-- {
		if pivotHighAt(bars, i, 2) {
			p1 = i
			break
		}
	}
	if p1 < 0 {
		return false
	}

	// point0: the low that launched wave one.
	p0 := -1
	for i := p1 - 1; i >= p1-30 && i >= 2; i-- {
		if pivotLowAt(bars, i, 2) {
			p0 = i
			break
		}
	}
	if p0 < 0 {
		return false
	}

	low0, high1, low2 := bars[p0].Low, bars[p1].High, bars[p2].Low
	if !(low0 < low2 && low2 < high1) {
		return false
	}
	wave1 := high1 - low0
	if wave1 <= 0 {
		return false
	}
	retrace := (high1 - low2) / wave1
	if retrace < 0.3 || retrace > 0.85 {
		return false
	}

	price := bars[n-1].Close
	depth := high1 - low2
	return price-low2 >= 0.03*depth && price <= 1.02*high1
}

// inverseHeadAndShoulders detects a three-trough reversal with price just
// breaking the neckline after having closed below it recently.
func inverseHeadAndShoulders(ctx Context) bool {
	bars := ctx.Bars
	n := len(bars)
	look := 150
	if n < look {
		look = n
	}
	w := bars[n-look:]
	m := len(w)
	if m < 11 {
		return false
	}

	head := 0
	for i := 1; i < m; i++ {
		if w[i].Low < w[head].Low {
			head = i
		}
	}
	if head < 5 || head > m-6 {
		return false
	}

	// Shoulders sit strictly outside a two-bar margin around the head.
	left := lowestIdx(w, 0, head-2)
	right := lowestIdx(w, head+3, m)
	if left < 0 || right < 0 {
		return false
	}
	if w[head].Low >= w[left].Low || w[head].Low >= w[right].Low {
		return false
	}

	neckline := math.Inf(-1)
	for i := left; i <= right; i++ {
		if w[i].High > neckline {
			neckline = w[i].High
		}
	}
	price := w[m-1].Close
	if !(price > neckline && price <= 1.03*neckline) {
		return false
	}

	// The breakout must be fresh: a close below the neckline inside the
	// recency window.
	recency := RecencyWindow(ctx.Timeframe)
	for i := m - 1 - recency; i < m-1; i++ {
		if i >= 0 && w[i].Close < 0.99*neckline {
			return true
		}
	}
	return false
}

// bullFlag detects a sharp pole followed by a shallow consolidation that
// holds 85% of the pole tip, with a close retaking the tip.
func bullFlag(ctx Context) bool {
	bars := ctx.Bars
	n := len(bars)
	if n < 25 {
		return false
	}

	end := n - RecencyWindow(ctx.Timeframe)
	start := end - 30
	if start < 0 {
		start = 0
	}
	if end <= start {
		return false
	}
	tip := start
	for i := start; i < end; i++ {
		if bars[i].High > bars[tip].High {
			tip = i
		}
	}
	poleHigh := bars[tip].High
	if tip-5 < 0 {
		return false
	}
	base := bars[tip-5].Close
	if base == 0 || (poleHigh-base)/base < 0.04 {
		return false
	}

	for i := tip + 1; i < n; i++ {
		if bars[i].Close < 0.85*poleHigh {
			return false
		}
	}
	for i := n - 3; i < n; i++ {
		if i >= 0 && bars[i].Close > 0.99*poleHigh {
			return true
		}
	}
	return false
}

// breakoutRetest detects a close over long-term resistance followed by
// price settling back to the broken level.
func breakoutRetest(ctx Context) bool {
	bars := ctx.Bars
	n := len(bars)
	if n < 50 {
		return false
	}

	trail := RecencyWindow(ctx.Timeframe) + 5
	end := n - trail
	start := end - 120
	if start < 0 {
		start = 0
	}
	if end <= start {
		return false
	}
	resistance := math.Inf(-1)
	for i := start; i < end; i++ {
		if bars[i].High > resistance {
			resistance = bars[i].High
		}
	}
	if resistance <= 0 {
		return false
	}

	broke := false
	for i := end; i < n; i++ {
		if bars[i].Close > 1.01*resistance {
			broke = true
			break
		}
	}
	if !broke {
		return false
	}
	price := bars[n-1].Close
	return price >= 0.98*resistance && price <= 1.03*resistance
}
