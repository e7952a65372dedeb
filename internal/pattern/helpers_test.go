package pattern

import (
	"time"

	"ChartScout/internal/model"
)

// uniformBars builds n identical bars; strict pivot checks never fire on
// them, so fixtures stay inert except where a test overrides a bar.
func uniformBars(n int, high, low, close, volume float64) []model.Bar {
	bars := make([]model.Bar, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   close,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: volume,
		}
	}
	return bars
}

// longBaseWeekly reproduces the canonical breakout: a 15%-deep eight-week
// base under a 52-week high of 105, closing at 99 on 1300 volume against a
// 1000 base average.
func longBaseWeekly() []model.Bar {
	bars := uniformBars(43, 95, 80, 90, 900)
	bars[10].High = 105
	base := uniformBars(8, 100, 85, 95, 1000)
	bars = append(bars, base...)
	bars = append(bars, model.Bar{
		Time: bars[len(bars)-1].Time.AddDate(0, 0, 7),
		Open: 96, High: 99.5, Low: 95, Close: 99, Volume: 1300,
	})
	return bars
}

// triangleDaily builds three pivot highs within 2% of each other, three
// ascending pivot lows, and a close just over the resistance line.
func triangleDaily() []model.Bar {
	bars := uniformBars(60, 95, 90, 92, 1000)
	bars[20].High = 100
	bars[30].High = 100.5
	bars[40].High = 99.8
	bars[25].Low = 85
	bars[35].Low = 86
	bars[45].Low = 87
	bars[59].High = 102
	bars[59].Close = 101.5
	return bars
}
