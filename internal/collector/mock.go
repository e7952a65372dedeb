package collector

import (
	"time"

	"ChartScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Series data is keyed by timeframe and raw bar data by interval; anything
// not configured falls back to generated bars around Price.
type MockFetcher struct {
	Price      float64
	SeriesData map[model.Timeframe][]model.Bar
	SeriesErr  map[model.Timeframe]error
	BarData    map[string][]model.Bar
	BarErr     map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(symbol string, tf model.Timeframe) (model.Series, error) {
	if err := m.SeriesErr[tf]; err != nil {
		return model.Series{}, err
	}
	if bars, ok := m.SeriesData[tf]; ok {
		return model.Series{Symbol: symbol, Timeframe: tf, Bars: bars}, nil
	}
	return model.Series{Symbol: symbol, Timeframe: tf, Bars: GenerateBars(m.Price, 60)}, nil
}

func (m *MockFetcher) FetchBars(_, interval, _ string) ([]model.Bar, error) {
	if err := m.BarErr[interval]; err != nil {
		return nil, err
	}
	if bars, ok := m.BarData[interval]; ok {
		return bars, nil
	}
	return GenerateBars(m.Price, 100), nil
}

// GenerateBars produces a gently trending series around basePrice.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
