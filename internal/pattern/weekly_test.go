package pattern

import (
	"testing"

	"ChartScout/internal/model"
)

// oneMonthWeekly builds a sharp four-week pole into a tight four-week base
// right under the 52-week high.
func oneMonthWeekly() []model.Bar {
	bars := uniformBars(43, 72, 68, 70, 1000)
	pole := []model.Bar{
		{Open: 70, High: 80, Low: 70, Close: 78, Volume: 1000},
		{Open: 78, High: 90, Low: 76, Close: 88, Volume: 1000},
		{Open: 88, High: 95, Low: 85, Close: 93, Volume: 1000},
		{Open: 93, High: 100, Low: 88, Close: 98, Volume: 1000},
	}
	bars = append(bars, pole...)
	bars = append(bars, uniformBars(4, 99, 93, 97, 1000)...)
	bars = append(bars, model.Bar{Open: 97, High: 100, Low: 96, Close: 99.5, Volume: 1000})
	return bars
}

func TestOneMonthBase(t *testing.T) {
	ctx := Context{Weekly: oneMonthWeekly(), Timeframe: model.Weekly}
	if !oneMonthBase(ctx) {
		t.Error("expected one-month base to match the fixture")
	}

	res := Detect(Context{
		Bars:      oneMonthWeekly(),
		Timeframe: model.Weekly,
		Weekly:    oneMonthWeekly(),
	})
	// The long base breakout is checked first but fails on flat volume.
	if res.Pattern != model.OneMonthBase {
		t.Errorf("expected %s, got %s", model.OneMonthBase, res.Pattern)
	}
}

func TestOneMonthBase_RequiresPole(t *testing.T) {
	bars := oneMonthWeekly()
	// Flatten the pole: the base alone is not enough.
	for i := 43; i < 47; i++ {
		bars[i] = model.Bar{Open: 97, High: 99, Low: 93, Close: 97, Volume: 1000}
	}
	if oneMonthBase(Context{Weekly: bars, Timeframe: model.Weekly}) {
		t.Error("expected no match without a preceding pole")
	}
}

func TestWeeklyBreakoutVolume(t *testing.T) {
	bars := uniformBars(29, 100, 90, 95, 1000)
	bars = append(bars, model.Bar{Open: 95, High: 101, Low: 95, Close: 100.6, Volume: 1600})

	ctx := Context{Weekly: bars, Timeframe: model.Weekly}
	if !weeklyBreakoutVolume(ctx) {
		t.Error("expected weekly breakout to match the fixture")
	}

	// An oversized weekly move is rejected as chased.
	chased := uniformBars(29, 100, 90, 95, 1000)
	chased = append(chased, model.Bar{Open: 95, High: 112, Low: 95, Close: 111, Volume: 1600})
	if weeklyBreakoutVolume(Context{Weekly: chased, Timeframe: model.Weekly}) {
		t.Error("expected no match for a move beyond 15%")
	}

	// Without a volume surge the breakout is unconfirmed.
	lowVol := uniformBars(29, 100, 90, 95, 1000)
	lowVol = append(lowVol, model.Bar{Open: 95, High: 101, Low: 95, Close: 100.6, Volume: 1200})
	if weeklyBreakoutVolume(Context{Weekly: lowVol, Timeframe: model.Weekly}) {
		t.Error("expected no match on thin volume")
	}
}

func TestStrongBaseBreakout(t *testing.T) {
	snap := model.IndicatorSnapshot{
		ADX: 20, DIPlus: 30, DIMinus: 10,
		SMI: 5, MACD: 1.2, RSISMA3: 62, RSISMA14: 55,
	}
	ctx := Context{WeeklySnap: snap, Compression: true}
	if !strongBaseBreakout(ctx) {
		t.Error("expected fallback detector to fire with aligned indicators")
	}

	ctx.Compression = false
	if strongBaseBreakout(ctx) {
		t.Error("expected no match without volatility compression")
	}

	bearish := snap
	bearish.DIMinus = 40
	if strongBaseBreakout(Context{WeeklySnap: bearish, Compression: true}) {
		t.Error("expected no match with DI- in control")
	}
}
