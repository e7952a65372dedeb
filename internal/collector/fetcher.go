package collector

import "ChartScout/internal/model"

// Fetcher defines the market data provider seam.
type Fetcher interface {
	// FetchSeries fetches bars for the timeframe's default interval and range.
	FetchSeries(symbol string, tf model.Timeframe) (model.Series, error)
	// FetchBars fetches bars for an explicit interval and range, for the
	// hourly and short-daily lookups that fall outside the defaults.
	FetchBars(symbol, interval, rng string) ([]model.Bar, error)
	Name() string
}

// TimeframeParams maps a timeframe to its default chart interval and range.
func TimeframeParams(tf model.Timeframe) (interval, rng string) {
	switch tf {
	case model.Weekly:
		return "1wk", "2y"
	case model.Yearly:
		return "1mo", "5y"
	default:
		return "1d", "1y"
	}
}
