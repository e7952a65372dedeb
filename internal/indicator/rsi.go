package indicator

// RSISeries computes a Wilder-smoothed RSI value for every input position.
// The first period positions are padded with the neutral value 50 so the
// output aligns with the input.
//
// A zero average loss is treated as 1 rather than forcing RSI to 100; the
// resulting finite ceiling is part of the contract, since downstream
// trigger thresholds were tuned against it.
func RSISeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := 0; i < len(out) && i < period; i++ {
		out[i] = 50
	}
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	// Seed the averages from the first period deltas.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		avgLoss = 1
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
