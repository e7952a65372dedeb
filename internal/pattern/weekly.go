package pattern

import "ChartScout/internal/indicator"

// longBaseBreakout detects a multi-week shallow base near the 52-week high
// resolving upward on expanding volume.
func longBaseBreakout(ctx Context) bool {
	w := ctx.Weekly
	if len(w) < 52 {
		return false
	}
	last := w[len(w)-1]
	high52, _ := indicator.RangeHighLow(w, 52)
	if high52 == 0 || last.Close < 0.85*high52 {
		return false
	}

	// The base is the prior eight weeks, excluding the breakout bar.
	base := w[len(w)-9 : len(w)-1]
	baseHigh, baseLow := rangeOf(base)
	if baseHigh == 0 || (baseHigh-baseLow)/baseHigh > 0.30 {
		return false
	}
	return last.Close > 0.98*baseHigh && last.Volume > 1.2*avgVolume(base)
}

// oneMonthBase detects a tight four-week consolidation right under the
// 52-week high, preceded by a sharp run-up.
func oneMonthBase(ctx Context) bool {
	w := ctx.Weekly
	if len(w) < 52 {
		return false
	}
	last := w[len(w)-1]
	high52, _ := indicator.RangeHighLow(w, 52)
	if high52 == 0 || last.Close < 0.90*high52 {
		return false
	}

	base := w[len(w)-5 : len(w)-1]
	baseHigh, baseLow := rangeOf(base)
	if baseHigh == 0 || (baseHigh-baseLow)/baseHigh > 0.15 {
		return false
	}
	if last.Close <= 0.99*baseHigh {
		return false
	}

	// The four weeks before the base must show a pole of at least 20%.
	if len(w) >= 9 {
		poleHigh, poleLow := rangeOf(w[len(w)-9 : len(w)-5])
		if poleLow == 0 || (poleHigh-poleLow)/poleLow < 0.20 {
			return false
		}
	}
	return true
}

// weeklyBreakoutVolume detects an eight-week consolidation resolving on a
// meaningful, but not chased, weekly move with heavy volume.
func weeklyBreakoutVolume(ctx Context) bool {
	w := ctx.Weekly
	if len(w) < 20 {
		return false
	}
	last := w[len(w)-1]
	prev := w[len(w)-2]

	cons := w[len(w)-9 : len(w)-1]
	consHigh, consLow := rangeOf(cons)
	if consHigh == 0 || (consHigh-consLow)/consHigh > 0.25 {
		return false
	}
	if last.Close <= 1.005*consHigh {
		return false
	}
	if prev.Close == 0 {
		return false
	}
	move := (last.Close - prev.Close) / prev.Close
	if move <= 0.02 || move > 0.15 { // beyond 15% the move is already chased
		return false
	}
	return last.Volume > 1.5*avgVolume(cons)
}

// strongBaseBreakout is the fallback: every weekly momentum indicator
// agrees and volatility has compressed, without a specific formation.
func strongBaseBreakout(ctx Context) bool {
	s := ctx.WeeklySnap
	return s.DIPlus > s.DIMinus &&
		s.DIPlus > s.ADX &&
		s.SMI > 0 &&
		s.MACD > 0 &&
		s.RSISMA3 > s.RSISMA14 &&
		ctx.Compression
}
