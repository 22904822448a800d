package eval

import (
	"testing"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  HandCategory
	}{
		{"high card", "AsKh8d5c2s", HighCard},
		{"one pair", "AsAh8d5c2s", OnePair},
		{"pair on board", "AsKh8d8c2s", OnePair},
		{"two pair", "AsAh8d8c2s", TwoPair},
		{"three of a kind", "AsAhAd5c2s", ThreeOfAKind},
		{"straight", "9s8h7d6c5s", Straight},
		{"broadway straight", "AsKhQdJcTs", Straight},
		{"wheel straight", "As2h3d4c5s", Straight},
		{"flush", "As9s8s5s2s", Flush},
		{"full house", "AsAhAd2c2s", FullHouse},
		{"four of a kind", "AsAhAdAc2s", FourOfAKind},
		{"straight flush", "9s8s7s6s5s", StraightFlush},
		{"wheel straight flush", "As2s3s4s5s", StraightFlush},
		{"royal flush", "AsKsQsJsTs", StraightFlush},
		{"four to a straight is not a straight", "9s8h7d6cAs", HighCard},
		{"four to a flush is not a flush", "As9s8s5s2h", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(deck.MustParseCards(tt.cards))
			if got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestClassifyOrdering(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("Categories() has %d entries, want 9", len(cats))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i] <= cats[i-1] {
			t.Errorf("Categories()[%d] = %v not stronger than %v", i, cats[i], cats[i-1])
		}
	}
	if cats[0] != HighCard || cats[len(cats)-1] != StraightFlush {
		t.Errorf("Categories() bounds = %v..%v, want High Card..Straight Flush", cats[0], cats[len(cats)-1])
	}
}

func TestHandCategoryString(t *testing.T) {
	for _, cat := range Categories() {
		if s := cat.String(); s == "" || s == "Unknown" {
			t.Errorf("category %d has no display name", cat)
		}
	}
	if got := HandCategory(99).String(); got != "Unknown" {
		t.Errorf("out-of-range String() = %q, want Unknown", got)
	}
}

func TestParseHandCategory(t *testing.T) {
	for _, cat := range Categories() {
		got, err := ParseHandCategory(cat.String())
		if err != nil {
			t.Errorf("ParseHandCategory(%q) error: %v", cat.String(), err)
		}
		if got != cat {
			t.Errorf("ParseHandCategory(%q) = %v, want %v", cat.String(), got, cat)
		}
	}

	if got, err := ParseHandCategory("two pair"); err != nil || got != TwoPair {
		t.Errorf("ParseHandCategory(\"two pair\") = %v, %v, want Two Pair", got, err)
	}

	if _, err := ParseHandCategory("monster"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestHasStraightWheelMask(t *testing.T) {
	// A-2-3-4-5 sets the ace bit at the top of the mask, so the shift
	// cascade alone cannot see it.
	wheel := deck.MustParseCards("As2h3d4c5s")
	if !hasStraight(rankMask(wheel)) {
		t.Error("wheel not detected as straight")
	}

	almostWheel := deck.MustParseCards("As2h3d4c6s")
	if hasStraight(rankMask(almostWheel)) {
		t.Error("A-2-3-4-6 detected as straight")
	}
}
