package momentum

import (
	"github.com/rs/zerolog"

	"ChartScout/internal/collector"
	"ChartScout/internal/indicator"
	"ChartScout/internal/model"
)

const (
	dmiPeriod = 14
	// minFourHourBars is the shortest aggregate the 4h DMI is computed on.
	minFourHourBars = 20
)

// Tracker computes cross-timeframe directional bias for a symbol.
type Tracker struct {
	fetcher collector.Fetcher
	log     zerolog.Logger
}

// NewTracker creates a momentum tracker over the given data provider.
func NewTracker(fetcher collector.Fetcher, log zerolog.Logger) *Tracker {
	return &Tracker{fetcher: fetcher, log: log}
}

// Alignment fetches recent daily and hourly history and reports whether
// DI+ leads DI- on each timeframe. A failed fetch clears only the flags
// derived from it; the call itself never fails.
func (t *Tracker) Alignment(symbol string) model.MomentumAlignment {
	var a model.MomentumAlignment

	daily, err := t.fetcher.FetchBars(symbol, "1d", "3mo")
	if err != nil {
		t.log.Warn().Err(err).Str("symbol", symbol).Msg("momentum daily fetch failed")
	} else {
		plus, minus := indicator.LastDMI(daily, dmiPeriod)
		a.D1 = plus > minus
	}

	hourly, err := t.fetcher.FetchBars(symbol, "1h", "25d")
	if err != nil {
		t.log.Warn().Err(err).Str("symbol", symbol).Msg("momentum hourly fetch failed")
		return a
	}
	plus, minus := indicator.LastDMI(hourly, dmiPeriod)
	a.H1 = plus > minus

	fourHour := AggregateFourHour(hourly)
	if len(fourHour) >= minFourHourBars {
		plus, minus = indicator.LastDMI(fourHour, dmiPeriod)
		a.H4 = plus > minus
	}
	return a
}

// AggregateFourHour folds hourly bars into synthetic 4-hour bars in fixed
// runs of four; a trailing partial run is dropped.
func AggregateFourHour(hourly []model.Bar) []model.Bar {
	out := make([]model.Bar, 0, len(hourly)/4)
	for i := 0; i+4 <= len(hourly); i += 4 {
		run := hourly[i : i+4]
		agg := model.Bar{
			Time:  run[0].Time,
			Open:  run[0].Open,
			High:  run[0].High,
			Low:   run[0].Low,
			Close: run[3].Close,
		}
		for _, b := range run {
			if b.High > agg.High {
				agg.High = b.High
			}
			if b.Low < agg.Low {
				agg.Low = b.Low
			}
			agg.Volume += b.Volume
		}
		out = append(out, agg)
	}
	return out
}
