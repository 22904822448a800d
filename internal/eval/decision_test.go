package eval

import (
	"strings"
	"testing"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name        string
		best        HandCategory
		outs        int
		requiredPct float64
		want        Decision
	}{
		{"two pair raises", TwoPair, 0, 25, Raise},
		{"three of a kind raises", ThreeOfAKind, 0, 25, Raise},
		{"straight raises", Straight, 0, 25, Raise},
		{"flush raises even at a bad price", Flush, 0, 99, Raise},
		{"full house raises", FullHouse, 0, 25, Raise},
		{"four of a kind raises", FourOfAKind, 0, 25, Raise},
		{"straight flush raises", StraightFlush, 0, 25, Raise},
		{"combo draw raises on outs", HighCard, 15, 25, Raise},
		{"flush draw calls a quarter pot price", HighCard, 9, 25, Call},
		{"open-ender calls when margin covers", OnePair, 8, 34, Call},
		{"open-ender folds past the margin", HighCard, 8, 34.1, Fold},
		{"gutshot folds at half pot price", HighCard, 4, 50, Fold},
		{"no outs calls a free price", HighCard, 0, 0, Call},
		{"one pair is not a raise", OnePair, 0, 25, Fold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, why := Recommend(tt.best, tt.outs, tt.requiredPct)
			if got != tt.want {
				t.Errorf("Recommend(%v, %d, %v) = %v, want %v", tt.best, tt.outs, tt.requiredPct, got, tt.want)
			}
			if why == "" {
				t.Error("empty rationale")
			}
		})
	}
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		in      string
		want    Decision
		wantErr bool
	}{
		{"fold", Fold, false},
		{"Call", Call, false},
		{"RAISE", Raise, false},
		{"check", Fold, true},
		{"shove", Fold, true},
		{"", Fold, true},
	}

	for _, tt := range tests {
		got, err := ParseDecision(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDecision(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecision(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDecision(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	d1, why1 := Recommend(HighCard, 9, 25)
	d2, why2 := Recommend(HighCard, 9, 25)
	if d1 != d2 || why1 != why2 {
		t.Errorf("Recommend not deterministic: (%v, %q) vs (%v, %q)", d1, why1, d2, why2)
	}
}

func TestRecommendRationaleNamesTheBranch(t *testing.T) {
	_, why := Recommend(Flush, 0, 25)
	if !strings.Contains(why, "Flush") {
		t.Errorf("raise rationale %q does not name the hand", why)
	}

	_, why = Recommend(HighCard, 9, 25)
	if !strings.Contains(why, "25.0%") || !strings.Contains(why, "36%") {
		t.Errorf("call rationale %q does not show the price and equity", why)
	}

	_, why = Recommend(HighCard, 4, 50)
	if !strings.Contains(why, "50.0%") || !strings.Contains(why, "16%") {
		t.Errorf("fold rationale %q does not show the price and equity", why)
	}
}
