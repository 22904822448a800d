package eval

import (
	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

// EvalResult captures everything the trainer derives from a hole/flop pair.
// Outs holds the draw table value when a draw is present; ImprovementOuts
// holds the upgrade table value when there is no draw. At most one of the
// two is non-zero.
type EvalResult struct {
	BestHand        HandCategory
	Draw            DrawCategory
	Outs            int
	ImprovementOuts int
}

// TotalOuts is the single number the trainer asks for in outs practice:
// draw outs plus improvement outs.
func (r EvalResult) TotalOuts() int {
	return r.Outs + r.ImprovementOuts
}

// Evaluate classifies the best made hand for two hole cards on a flop and
// attaches draw and outs information. A made straight or flush is not
// framed as a draw, so draw detection is skipped for those hands.
func Evaluate(hole [2]deck.Card, flop [3]deck.Card) EvalResult {
	cards := []deck.Card{hole[0], hole[1], flop[0], flop[1], flop[2]}

	result := EvalResult{BestHand: Classify(cards), Draw: NoDraw}
	if drawEligible(result.BestHand) {
		result.Draw = DetectDraw(cards)
	}

	if result.Draw != NoDraw {
		result.Outs = DrawOuts(result.Draw)
	} else {
		result.ImprovementOuts = ImprovementOuts(result.BestHand)
	}
	return result
}

func drawEligible(best HandCategory) bool {
	switch best {
	case Straight, Flush, StraightFlush:
		return false
	default:
		return true
	}
}
