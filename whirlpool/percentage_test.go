package whirlpool

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercentageFromBps(t *testing.T) {
	p := PercentageFromBps(50)
	if p.Numerator.Int64() != 50 || p.Denominator.Int64() != 10_000 {
		t.Fatalf("PercentageFromBps(50) = %s", p)
	}
	if p.ToDecimal().String() != "0.005" {
		t.Fatalf("50 bps as decimal = %s, want 0.005", p.ToDecimal())
	}
}

func TestPercentageFromDecimal(t *testing.T) {
	p := PercentageFromDecimal(decimal.RequireFromString("0.01"))
	if p.ToDecimal().String() != "0.01" {
		t.Fatalf("round trip gave %s", p.ToDecimal())
	}
	n := big.NewInt(1000)
	if got := p.AdjustDown(n); got.Int64() != 990 {
		t.Fatalf("1%% down of 1000 = %s, want 990", got)
	}
}

func TestPercentageAdjust(t *testing.T) {
	p := PercentageFromBps(50)
	tests := []struct {
		n        int64
		up, down int64
	}{
		{10_000, 10_050, 9_950},
		{996, 1000, 991}, // both directions floor
		{0, 0, 0},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := p.AdjustUp(big.NewInt(tt.n)); got.Int64() != tt.up {
			t.Fatalf("AdjustUp(%d) = %s, want %d", tt.n, got, tt.up)
		}
		if got := p.AdjustDown(big.NewInt(tt.n)); got.Int64() != tt.down {
			t.Fatalf("AdjustDown(%d) = %s, want %d", tt.n, got, tt.down)
		}
	}
}

func TestZeroPercentageIsNeutral(t *testing.T) {
	p := PercentageFromBps(0)
	n := big.NewInt(12345)
	if p.AdjustUp(n).Cmp(n) != 0 || p.AdjustDown(n).Cmp(n) != 0 {
		t.Fatal("zero slippage must not move the amount")
	}
}
