package collector

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"ChartScout/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	log       zerolog.Logger
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string, log zerolog.Logger) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		log: log,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// FetchSeries fetches bars for the timeframe's default interval and range.
func (f *YahooFetcher) FetchSeries(symbol string, tf model.Timeframe) (model.Series, error) {
	interval, rng := TimeframeParams(tf)
	bars, err := f.FetchBars(symbol, interval, rng)
	if err != nil {
		return model.Series{}, err
	}
	return model.Series{Symbol: symbol, Timeframe: tf, Bars: bars}, nil
}

// FetchBars fetches bars for an explicit interval and range.
func (f *YahooFetcher) FetchBars(symbol, interval, rng string) ([]model.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), interval, rng)

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	f.log.Debug().Str("symbol", symbol).Str("interval", interval).Str("range", rng).
		Msg("fetched chart")
	return parseChart(body)
}

// parseChart extracts bars from a Yahoo chart API payload. Null bars
// (holidays, halts) are skipped; output is sorted by time.
func parseChart(body []byte) ([]model.Bar, error) {
	root := gjson.ParseBytes(body)
	if desc := root.Get("chart.error.description"); desc.Exists() && desc.String() != "" {
		return nil, fmt.Errorf("yahoo api error: %s", desc.String())
	}

	result := root.Get("chart.result.0")
	timestamps := result.Get("timestamp").Array()
	if !result.Exists() || len(timestamps) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	quote := result.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()

	at := func(vals []gjson.Result, i int) float64 {
		if i >= len(vals) {
			return 0
		}
		return vals[i].Float()
	}

	bars := make([]model.Bar, 0, len(timestamps))
	for i, ts := range timestamps {
		o := at(opens, i)
		h := at(highs, i)
		l := at(lows, i)
		c := at(closes, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts.Int(), 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: at(volumes, i),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
