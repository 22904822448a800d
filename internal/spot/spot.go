// Package spot generates complete practice scenarios: a dealt flop, the
// evaluated solution, and the stepwise explanation a learner sees after
// answering. A Spot is assembled in one shot and never mutated; scoring
// layers only read it.
package spot

import (
	"fmt"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
	"github.com/ribhisaleh/poker-trainer/internal/eval"
)

// Mode selects what a practice spot trains
type Mode int

const (
	// HandRecognition asks for the made-hand category.
	HandRecognition Mode = iota
	// OutsPractice asks for the total out count.
	OutsPractice
	// DecisionLab prices a bet and asks for fold, call or raise.
	DecisionLab
)

// String returns the canonical mode token used by flags, config files and
// the wire protocol.
func (m Mode) String() string {
	switch m {
	case HandRecognition:
		return "hands"
	case OutsPractice:
		return "outs"
	case DecisionLab:
		return "decisions"
	default:
		return "unknown"
	}
}

// Title returns the mode name used in headings
func (m Mode) Title() string {
	switch m {
	case HandRecognition:
		return "Hand Recognition"
	case OutsPractice:
		return "Outs Practice"
	case DecisionLab:
		return "Decision Lab"
	default:
		return "Unknown"
	}
}

// Modes lists every practice mode
func Modes() []Mode {
	return []Mode{HandRecognition, OutsPractice, DecisionLab}
}

// ParseMode resolves a mode token as used on the command line
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want hands, outs or decisions)", s)
}

// Solution carries everything derived for a spot: the evaluation, the price,
// the recommended action and the walkthrough. Fields stay internally
// consistent; PotOddsPct always equals the pure function of pot and bet.
type Solution struct {
	eval.EvalResult
	PotOddsPct  float64
	Decision    eval.Decision
	DecisionWhy string
	Explainer   Explainer
}

// EquityPct estimates hit chance by the river from the draw outs, the same
// number the decision rules weigh against the price.
func (s Solution) EquityPct() int {
	return eval.EquityFromOuts(s.Outs)
}

// Spot is one complete practice scenario. It is immutable after
// construction and lives for a single practice round.
type Spot struct {
	Mode      Mode
	Hole      [2]deck.Card
	Flop      [3]deck.Card
	Pot       int
	BetToCall int
	Solution  Solution
}

// Cards returns the five known cards, hole first
func (s Spot) Cards() []deck.Card {
	return []deck.Card{s.Hole[0], s.Hole[1], s.Flop[0], s.Flop[1], s.Flop[2]}
}
