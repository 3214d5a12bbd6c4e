package transmog

import (
	"testing"

	"github.com/udisondev/transmog/internal/model"
)

func TestLookPrice(t *testing.T) {
	tests := []struct {
		name      string
		sellPrice int64
		cfg       Config
		want      int64
	}{
		{
			name:      "plain sell price",
			sellPrice: 5000,
			cfg:       Config{CostMultiplier: 1.0},
			want:      5000,
		},
		{
			name:      "zero sell price falls back to default",
			sellPrice: 0,
			cfg:       Config{CostMultiplier: 1.0},
			want:      100,
		},
		{
			name:      "fee added before multiplier",
			sellPrice: 1000,
			cfg:       Config{CostMultiplier: 2.0, CostFee: 500},
			want:      3000,
		},
		{
			name:      "fractional multiplier truncates",
			sellPrice: 333,
			cfg:       Config{CostMultiplier: 0.5},
			want:      166,
		},
		{
			name:      "zero multiplier makes it free",
			sellPrice: 5000,
			cfg:       Config{CostMultiplier: 0},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := &model.ItemTemplate{Entry: 1, SellPrice: tt.sellPrice}
			if got := LookPrice(tmpl, tt.cfg); got != tt.want {
				t.Errorf("LookPrice() = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("nil template", func(t *testing.T) {
		if got := LookPrice(nil, Config{CostMultiplier: 1.0}); got != 0 {
			t.Errorf("LookPrice(nil) = %d, want 0", got)
		}
	})
}

// A pricier item never costs less to override.
func TestLookPrice_Monotonic(t *testing.T) {
	cfg := Config{CostMultiplier: 1.5, CostFee: 250}

	var prev int64 = -1
	for _, sell := range []int64{1, 100, 5000, 100000, 2500000} {
		tmpl := &model.ItemTemplate{Entry: 1, SellPrice: sell}
		price := LookPrice(tmpl, cfg)
		if price < prev {
			t.Errorf("LookPrice(sell=%d) = %d, less than previous %d", sell, price, prev)
		}
		prev = price
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		copper int64
		want   string
	}{
		{0, "0"},
		{-5, "0"},
		{7, "7c"},
		{130, "1s 30c"},
		{10000, "1g"},
		{12345, "1g 23s 45c"},
		{99999, "9g 99s 99c"},
		{100001, "10g"},       // copper suppressed from 10g
		{123456, "12g 34s"},   // silver still shown
		{501234, "50g"},       // silver suppressed from 50g
		{2553550, "255g"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPrice(tt.copper); got != tt.want {
				t.Errorf("FormatPrice(%d) = %q, want %q", tt.copper, got, tt.want)
			}
		})
	}
}
