package session

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		name           string
		scrollTop      float32
		scrollHeight   float32
		viewportHeight float32
		want           int
	}{
		{"at top", 0, 2000, 500, 0},
		{"halfway", 750, 2000, 500, 50},
		{"at bottom", 1500, 2000, 500, 100},
		{"rounds up", 1426, 2000, 500, 95},
		{"fits without scrolling", 0, 400, 500, 100},
		{"exactly fills viewport", 0, 500, 500, 100},
		{"overscroll clamps", 1600, 2000, 500, 100},
		{"negative clamps", -10, 2000, 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.scrollTop, tt.scrollHeight, tt.viewportHeight)
			if got != tt.want {
				t.Errorf("Percent(%v, %v, %v) = %d, want %d",
					tt.scrollTop, tt.scrollHeight, tt.viewportHeight, got, tt.want)
			}
		})
	}
}

func TestReadThresholdBoundary(t *testing.T) {
	// 94.5 rounds to 95 and crosses the threshold; anything rounding to 94
	// does not.
	if got := Percent(1417, 2000, 500); got >= ReadThreshold {
		t.Errorf("Percent = %d, should stay below the threshold", got)
	}
	if got := Percent(1418, 2000, 500); got < ReadThreshold {
		t.Errorf("Percent = %d, should reach the threshold", got)
	}
}
