package indicator

import (
	"time"

	"ChartScout/internal/model"
)

// trendBars builds n bars whose closes move by step each bar, with a small
// intrabar range around the close.
func trendBars(n int, start, step float64) []model.Bar {
	bars := make([]model.Bar, n)
	t := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	c := start
	for i := 0; i < n; i++ {
		bars[i] = model.Bar{
			Time:   t.AddDate(0, 0, i),
			Open:   c - step/2,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
		c += step
	}
	return bars
}

func flatBars(n int, price float64) []model.Bar {
	return trendBars(n, price, 0)
}
