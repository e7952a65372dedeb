package model

// PatternType identifies a detected chart formation.
type PatternType string

const (
	PatternNone             PatternType = ""
	LongBaseBreakout        PatternType = "LONG_BASE_BREAKOUT"
	OneMonthBase            PatternType = "ONE_MONTH_BASE"
	WeeklyBreakoutVolume    PatternType = "WEEKLY_BREAKOUT_VOLUME"
	AscendingTriangle       PatternType = "ASCENDING_TRIANGLE"
	ElliottWave3            PatternType = "ELLIOTT_WAVE_3"
	InverseHeadAndShoulders PatternType = "INVERSE_HEAD_AND_SHOULDERS"
	BullFlag                PatternType = "BULL_FLAG"
	BreakoutRetest          PatternType = "BREAKOUT_RETEST"
	StrongBaseBreakout      PatternType = "STRONG_BASE_BREAKOUT"
)

// DetectionResult is the outcome of one detector-chain pass. At most one
// pattern wins per pass; the zero value means nothing fired.
type DetectionResult struct {
	Pattern   PatternType
	BaseScore int
}

// Action labels a scored signal for the scan UI.
type Action string

const (
	ActionBuy     Action = "BUY"
	ActionSell    Action = "SELL"
	ActionNeutral Action = "NEUTRAL"
)

// StockSignal is the per-symbol analysis result.
type StockSignal struct {
	Symbol         string
	Price          float64
	ChangePct      float64
	Detection      DetectionResult
	Score          int
	Chart          Series
	Momentum       MomentumAlignment
	Stage          string
	High52         float64
	Low52          float64
	ProximityPct   float64
	RelativeVolume float64
	Action         Action
	Setup          string
}
