package eval

import (
	"math"
	"testing"
)

func TestDrawOuts(t *testing.T) {
	tests := []struct {
		draw DrawCategory
		want int
	}{
		{ComboDraw, 15},
		{FlushDraw, 9},
		{OpenEndedStraightDraw, 8},
		{Gutshot, 4},
		{NoDraw, 0},
	}

	for _, tt := range tests {
		if got := DrawOuts(tt.draw); got != tt.want {
			t.Errorf("DrawOuts(%v) = %d, want %d", tt.draw, got, tt.want)
		}
	}
}

func TestImprovementOuts(t *testing.T) {
	tests := []struct {
		best HandCategory
		want int
	}{
		{HighCard, 6},
		{OnePair, 5},
		{TwoPair, 4},
		{ThreeOfAKind, 7},
		{FullHouse, 1},
		{Straight, 0},
		{Flush, 0},
		{FourOfAKind, 0},
		{StraightFlush, 0},
	}

	for _, tt := range tests {
		if got := ImprovementOuts(tt.best); got != tt.want {
			t.Errorf("ImprovementOuts(%v) = %d, want %d", tt.best, got, tt.want)
		}
	}
}

func TestEquityFromOuts(t *testing.T) {
	tests := []struct {
		outs int
		want int
	}{
		{0, 0},
		{4, 16},
		{8, 32},
		{9, 36},
		{15, 60},
		{25, 100},
		{30, 100},
	}

	for _, tt := range tests {
		if got := EquityFromOuts(tt.outs); got != tt.want {
			t.Errorf("EquityFromOuts(%d) = %d, want %d", tt.outs, got, tt.want)
		}
	}
}

func TestPotOddsPct(t *testing.T) {
	tests := []struct {
		name string
		pot  int
		call int
		want float64
	}{
		{"call 20 into 80", 80, 20, 20},
		{"call 20 into 60", 60, 20, 25},
		{"call 50 into 100", 100, 50, 100.0 / 3},
		{"no bet", 100, 0, 0},
		{"empty spot", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PotOddsPct(tt.pot, tt.call)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PotOddsPct(%d, %d) = %v, want %v", tt.pot, tt.call, got, tt.want)
			}
		})
	}
}
