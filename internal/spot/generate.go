package spot

import (
	rand "math/rand/v2"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
	"github.com/ribhisaleh/poker-trainer/internal/eval"
)

// Pot and bet menus for priced spots. Small fixed amounts keep the pot-odds
// arithmetic mental-math friendly; 60/20 is the classic quarter-pot teaching
// example.
var (
	potSizes = []int{40, 60, 80, 100, 120, 150}
	betSizes = []int{10, 20, 25, 30, 50}
)

// Generator deals practice spots from an injected random source. One seed
// reproduces an entire session.
type Generator struct {
	rng  *rand.Rand
	deck *deck.Deck
}

// NewGenerator creates a spot generator around the given random source
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, deck: deck.New(rng)}
}

// Generate deals and fully solves one practice spot for the given mode.
// Only decision-lab spots price a bet; the other modes leave pot and bet at
// zero and record a neutral check that the UI never surfaces.
func (g *Generator) Generate(mode Mode) Spot {
	g.deck.Reset()

	var hole [2]deck.Card
	var flop [3]deck.Card
	copy(hole[:], g.deck.MustDeal(2))
	copy(flop[:], g.deck.MustDeal(3))

	pot, bet := 0, 0
	if mode == DecisionLab {
		pot = potSizes[g.rng.IntN(len(potSizes))]
		bet = betSizes[g.rng.IntN(len(betSizes))]
	}

	return build(mode, hole, flop, pot, bet)
}

// FromCards solves a user-supplied spot the same way Generate solves a dealt
// one. A priced spot is treated as a decision-lab scenario.
func FromCards(hole [2]deck.Card, flop [3]deck.Card, pot, bet int) Spot {
	mode := HandRecognition
	if bet > 0 {
		mode = DecisionLab
	}
	return build(mode, hole, flop, pot, bet)
}

// build assembles the immutable Spot: evaluation, price, decision, then the
// walkthrough. Construction is all-or-nothing; there are no partial spots.
func build(mode Mode, hole [2]deck.Card, flop [3]deck.Card, pot, bet int) Spot {
	result := eval.Evaluate(hole, flop)
	requiredPct := eval.PotOddsPct(pot, bet)

	decision := eval.Check
	why := "There is no bet to face."
	if mode == DecisionLab {
		decision, why = eval.Recommend(result.BestHand, result.Outs, requiredPct)
	}

	s := Spot{
		Mode:      mode,
		Hole:      hole,
		Flop:      flop,
		Pot:       pot,
		BetToCall: bet,
		Solution: Solution{
			EvalResult:  result,
			PotOddsPct:  requiredPct,
			Decision:    decision,
			DecisionWhy: why,
		},
	}
	s.Solution.Explainer = buildExplainer(s)
	return s
}
