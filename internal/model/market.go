package model

import "time"

// Timeframe identifies the bar interval of a series.
type Timeframe string

const (
	Daily  Timeframe = "DAILY"
	Weekly Timeframe = "WEEKLY"
	Yearly Timeframe = "YEARLY"
)

// Bar represents a single candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds ordered bars for one symbol and timeframe.
type Series struct {
	Symbol    string
	Timeframe Timeframe
	Bars      []Bar
}

// Closes returns the closing prices of the series in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
