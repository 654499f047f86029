package types

import (
	"math"
	"testing"
	"time"
)

func TestConsoleConfig_Period(t *testing.T) {
	cases := []struct {
		iv   float64
		want time.Duration
	}{
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{1e-10, MinHeartbeat},
		{0.5, 500 * time.Millisecond},
		{2, 2 * time.Second},
		{1e12, MaxHeartbeat},
	}
	for _, c := range cases {
		if got := (ConsoleConfig{Interval: c.iv}).Period(); got != c.want {
			t.Errorf("Period(%v) = %v, want %v", c.iv, got, c.want)
		}
	}
}
