package eval

// The out counts below are the fixed numbers the trainer teaches. They are
// table heuristics, not exact card-removal counts: a flush draw is "nine
// outs" even when some of those cards are gone, because that is the number
// a player should produce in the moment.

// DrawOuts returns the heuristic out count for a draw category.
func DrawOuts(draw DrawCategory) int {
	switch draw {
	case ComboDraw:
		return 15
	case FlushDraw:
		return 9
	case OpenEndedStraightDraw:
		return 8
	case Gutshot:
		return 4
	default:
		return 0
	}
}

// ImprovementOuts returns the heuristic count of cards that upgrade an
// already-made hand. It applies only when no draw was detected; hands that
// are a straight or better have nowhere meaningful to improve to.
func ImprovementOuts(best HandCategory) int {
	switch best {
	case HighCard:
		return 6
	case OnePair:
		return 5
	case TwoPair:
		return 4
	case ThreeOfAKind:
		return 7
	case FullHouse:
		return 1
	default:
		return 0
	}
}

// EquityFromOuts approximates equity by the river from an out count using
// the Rule of 4, clamped at 100.
func EquityFromOuts(outs int) int {
	equity := outs * 4
	if equity > 100 {
		return 100
	}
	return equity
}

// PotOddsPct returns the break-even percentage for calling a bet: the call
// amount as a share of the pot after calling. A spot with no bet to face
// prices at zero.
func PotOddsPct(pot, betToCall int) float64 {
	if betToCall <= 0 {
		return 0
	}
	return float64(betToCall*100) / float64(pot+betToCall)
}
