package model

// IndicatorSnapshot holds the indicator values recomputed from one series.
type IndicatorSnapshot struct {
	ADX      float64
	DIPlus   float64
	DIMinus  float64
	SMI      float64
	MACD     float64
	RSISMA3  float64
	RSISMA14 float64
}

// MomentumAlignment records the directional bias per timeframe (DI+ > DI-).
type MomentumAlignment struct {
	H1 bool
	H4 bool
	D1 bool
}
