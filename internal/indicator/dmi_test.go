package indicator

import "testing"

func TestLastDMI_InsufficientBars(t *testing.T) {
	plus, minus := LastDMI(trendBars(27, 100, 1), 14)
	if plus != 0 || minus != 0 {
		t.Errorf("expected {0,0} for fewer than 2*period bars, got {%v,%v}", plus, minus)
	}
}

func TestLastDMI_UptrendBias(t *testing.T) {
	plus, minus := LastDMI(trendBars(60, 100, 2), 14)
	if plus <= minus {
		t.Errorf("expected DI+ > DI- for an uptrend, got DI+=%v DI-=%v", plus, minus)
	}
	if plus <= 0 {
		t.Errorf("expected positive DI+ for an uptrend, got %v", plus)
	}
}

func TestLastDMI_DowntrendBias(t *testing.T) {
	plus, minus := LastDMI(trendBars(60, 300, -2), 14)
	if minus <= plus {
		t.Errorf("expected DI- > DI+ for a downtrend, got DI+=%v DI-=%v", plus, minus)
	}
}

func TestLastDMI_FlatSeriesIsNeutral(t *testing.T) {
	plus, minus := LastDMI(flatBars(60, 100), 14)
	if plus != 0 || minus != 0 {
		t.Errorf("expected no directional movement on a flat series, got {%v,%v}", plus, minus)
	}
}
