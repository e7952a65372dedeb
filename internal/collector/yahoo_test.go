package collector

import (
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"

	"ChartScout/internal/model"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "TEST"},
      "timestamp": [1704171600, 1704258000, 1704344400],
      "indicators": {
        "quote": [{
          "open":   [100.0, null, 102.0],
          "high":   [101.0, null, 103.5],
          "low":    [99.0,  null, 101.0],
          "close":  [100.5, null, 103.0],
          "volume": [1000000, null, 1200000]
        }]
      }
    }],
    "error": null
  }
}`

func TestParseChart(t *testing.T) {
	bars, err := parseChart([]byte(chartFixture))
	assert.NoError(t, err)

	// The null bar is a market holiday and must be dropped.
	assert.Equal(t, len(bars), 2)
	assert.Equal(t, bars[0].Close, 100.5)
	assert.Equal(t, bars[0].Volume, 1000000.0)
	assert.Equal(t, bars[1].Close, 103.0)
	assert.Equal(t, bars[0].Time, time.Unix(1704171600, 0))
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not sorted by time")
	}
}

func TestParseChart_APIError(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`
	_, err := parseChart([]byte(body))
	assert.Error(t, err)
}

func TestParseChart_Empty(t *testing.T) {
	_, err := parseChart([]byte(`{"chart":{"result":[{"timestamp":[]}],"error":null}}`))
	assert.Error(t, err)

	_, err = parseChart([]byte(`{}`))
	assert.Error(t, err)
}

func TestTimeframeParams(t *testing.T) {
	cases := []struct {
		tf       model.Timeframe
		interval string
		rng      string
	}{
		{model.Daily, "1d", "1y"},
		{model.Weekly, "1wk", "2y"},
		{model.Yearly, "1mo", "5y"},
		{model.Timeframe("OTHER"), "1d", "1y"},
	}
	for _, c := range cases {
		interval, rng := TimeframeParams(c.tf)
		assert.Equal(t, interval, c.interval)
		assert.Equal(t, rng, c.rng)
	}
}

func TestYahooSymbolMapping(t *testing.T) {
	f := NewYahooFetcher("", zerolog.Nop())
	assert.Equal(t, f.yahooSymbol("SPX500"), "^GSPC")
	assert.Equal(t, f.yahooSymbol("AAPL"), "AAPL")
}
