package spot

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

func stepTitles(e Explainer) []string {
	titles := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		titles[i] = s.Title
	}
	return titles
}

func stepByTitle(t *testing.T, e Explainer, title string) Step {
	t.Helper()
	for _, s := range e.Steps {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("no step titled %q in %v", title, stepTitles(e))
	return Step{}
}

func workedExampleSpot() Spot {
	cards := deck.MustParseCards("AsKsQsJs2h")
	return FromCards([2]deck.Card{cards[0], cards[1]}, [3]deck.Card{cards[2], cards[3], cards[4]}, 60, 20)
}

func TestExplainerStepOrderWithDraw(t *testing.T) {
	e := workedExampleSpot().Solution.Explainer

	want := []string{"Best hand", "Draw", "Draw outs", "Pot odds", "Compare", "Decision"}
	if got := stepTitles(e); !reflect.DeepEqual(got, want) {
		t.Errorf("step titles = %v, want %v", got, want)
	}
}

func TestExplainerStepOrderNoDraw(t *testing.T) {
	cards := deck.MustParseCards("AhAdKc7s2d")
	s := FromCards([2]deck.Card{cards[0], cards[1]}, [3]deck.Card{cards[2], cards[3], cards[4]}, 0, 0)
	e := s.Solution.Explainer

	want := []string{"Best hand", "Improvement outs", "Pot odds", "Compare", "Decision"}
	if got := stepTitles(e); !reflect.DeepEqual(got, want) {
		t.Errorf("step titles = %v, want %v", got, want)
	}
	for _, step := range e.Steps {
		if strings.Contains(step.Title, "Draw") {
			t.Errorf("draw step %q present with no draw", step.Title)
		}
	}
}

func TestExplainerWorkedExampleNumbers(t *testing.T) {
	s := workedExampleSpot()
	e := s.Solution.Explainer

	odds := stepByTitle(t, e, "Pot odds")
	if !strings.Contains(odds.Text, "25.0%") {
		t.Errorf("pot odds text %q misses the 25.0%% price", odds.Text)
	}
	if !strings.Contains(odds.Text, "20 / (60 + 20)") {
		t.Errorf("pot odds text %q does not show the arithmetic", odds.Text)
	}

	compare := stepByTitle(t, e, "Compare")
	if !strings.Contains(compare.Text, "15 outs") || !strings.Contains(compare.Text, "60%") {
		t.Errorf("compare text %q misses outs or equity", compare.Text)
	}

	decision := stepByTitle(t, e, "Decision")
	if !strings.HasPrefix(decision.Text, "Raise.") {
		t.Errorf("decision text %q does not lead with the action", decision.Text)
	}
}

// The total out count is restated identically in the outs step and summary.
func TestExplainerTotalsConsistent(t *testing.T) {
	for _, code := range []string{"AsKsQsJs2h", "AhAdKc7s2d", "9h8d7c6s2h", "AsAh8d8c2s"} {
		cards := deck.MustParseCards(code)
		s := FromCards([2]deck.Card{cards[0], cards[1]}, [3]deck.Card{cards[2], cards[3], cards[4]}, 0, 0)
		e := s.Solution.Explainer
		total := fmt.Sprintf("%d", s.Solution.TotalOuts())

		var outsStep Step
		if s.Solution.Outs > 0 {
			outsStep = stepByTitle(t, e, "Draw outs")
		} else {
			outsStep = stepByTitle(t, e, "Improvement outs")
		}
		if !strings.Contains(outsStep.Text, total) {
			t.Errorf("%s: outs text %q does not restate total %s", code, outsStep.Text, total)
		}
		if !strings.Contains(e.Summary, total) {
			t.Errorf("%s: summary %q does not restate total %s", code, e.Summary, total)
		}
	}
}

func TestExplainerNoBetWording(t *testing.T) {
	cards := deck.MustParseCards("9h8d7c6s2h")
	s := FromCards([2]deck.Card{cards[0], cards[1]}, [3]deck.Card{cards[2], cards[3], cards[4]}, 0, 0)
	e := s.Solution.Explainer

	if text := stepByTitle(t, e, "Pot odds").Text; !strings.Contains(text, "no bet to face") {
		t.Errorf("pot odds text %q does not explain the missing bet", text)
	}
	if text := stepByTitle(t, e, "Decision").Text; !strings.Contains(text, "No betting decision") {
		t.Errorf("decision text %q should stay neutral", text)
	}
}

// The reminder list is fixed display data, identical for every spot.
func TestExplainerCommonMistakesFixed(t *testing.T) {
	a := workedExampleSpot().Solution.Explainer

	cards := deck.MustParseCards("AhAdKc7s2d")
	b := FromCards([2]deck.Card{cards[0], cards[1]}, [3]deck.Card{cards[2], cards[3], cards[4]}, 0, 0).Solution.Explainer

	if len(a.CommonMistakes) < 3 {
		t.Fatalf("only %d common mistakes listed", len(a.CommonMistakes))
	}
	if !reflect.DeepEqual(a.CommonMistakes, b.CommonMistakes) {
		t.Error("common mistakes differ between spots")
	}
}
