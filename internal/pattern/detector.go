package pattern

import "ChartScout/internal/model"

// Context carries everything one detector pass needs. Bars is the primary
// timeframe series; Weekly backs the base-breakout detectors and may alias
// Bars when no weekly data is available.
type Context struct {
	Bars        []model.Bar
	Timeframe   model.Timeframe
	Weekly      []model.Bar
	WeeklySnap  model.IndicatorSnapshot
	Compression bool
}

// Detector pairs a pattern with its fixed base score and predicate.
type Detector struct {
	Pattern   model.PatternType
	BaseScore int
	Match     func(Context) bool
}

// Chain returns the detectors in priority order. The order is part of the
// contract: the first match wins and suppresses everything after it.
func Chain() []Detector {
	return []Detector{
		{model.LongBaseBreakout, 98, longBaseBreakout},
		{model.OneMonthBase, 96, oneMonthBase},
		{model.WeeklyBreakoutVolume, 95, weeklyBreakoutVolume},
		{model.AscendingTriangle, 92, ascendingTriangle},
		{model.ElliottWave3, 90, elliottWave3},
		{model.InverseHeadAndShoulders, 85, inverseHeadAndShoulders},
		{model.BullFlag, 80, bullFlag},
		{model.BreakoutRetest, 75, breakoutRetest},
		{model.StrongBaseBreakout, 70, strongBaseBreakout},
	}
}

// Detect evaluates the chain in order and returns the first matching
// pattern, or the zero result when none fires.
func Detect(ctx Context) model.DetectionResult {
	for _, d := range Chain() {
		if d.Match(ctx) {
			return model.DetectionResult{Pattern: d.Pattern, BaseScore: d.BaseScore}
		}
	}
	return model.DetectionResult{}
}

// RecencyWindow returns how many trailing bars still count as recent for
// the given timeframe.
func RecencyWindow(tf model.Timeframe) int {
	switch tf {
	case model.Daily:
		return 10
	case model.Weekly:
		return 3
	case model.Yearly:
		return 1
	default:
		return 10
	}
}
