package eval

import (
	"testing"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

func TestDetectDraw(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  DrawCategory
	}{
		{"combo draw", "AsKsQsJs2h", ComboDraw},
		{"flush draw only", "As5sKs8s2h", FlushDraw},
		{"open-ended straight draw", "9h8d7c6s2h", OpenEndedStraightDraw},
		{"gutshot", "9h8d6c5s2h", Gutshot},
		{"double gutshot still gutshot", "9h7d6c5s3h", Gutshot},
		{"no draw", "AsAh8d5c2s", NoDraw},
		{"flush draw with gutshot stays flush draw", "Ah5h4h2h9s", FlushDraw},
		{"wheel side open-ender via low ace", "Ah2d3c4s9h", OpenEndedStraightDraw},
		{"ace-high four in a row counts as open-ended", "AhKdQcJs4h", OpenEndedStraightDraw},
		{"pair with combo draw", "9d8d9c7d6d", ComboDraw},
		{"five of a suit is not a flush draw", "As9s8s5s2s", NoDraw},
		{"three of a suit is not a flush draw", "As9s8s5h2c", NoDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDraw(deck.MustParseCards(tt.cards))
			if got != tt.want {
				t.Errorf("DetectDraw(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestDetectDrawFlagsIndependent(t *testing.T) {
	// A flush draw and an open-ender detected together resolve to a combo
	// draw, but the underlying flags stay independent.
	f := detectDrawFlags(deck.MustParseCards("AsKsQsJs2h"))
	if !f.flushDraw {
		t.Error("flush draw flag not set")
	}
	if !f.openEnded {
		t.Error("open-ended flag not set")
	}
}

func TestDrawCategoriesOrdering(t *testing.T) {
	cats := DrawCategories()
	if len(cats) != 5 {
		t.Fatalf("DrawCategories() has %d entries, want 5", len(cats))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i] <= cats[i-1] {
			t.Errorf("DrawCategories()[%d] = %v not stronger than %v", i, cats[i], cats[i-1])
		}
	}
	for _, cat := range cats {
		if s := cat.String(); s == "" || s == "unknown" {
			t.Errorf("draw category %d has no display name", cat)
		}
	}
}
