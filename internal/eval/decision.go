package eval

import (
	"fmt"
	"strings"
)

// Decision represents the recommended action for a spot. Check is the
// neutral decision recorded when there is no bet to face.
type Decision int

const (
	Check Decision = iota
	Fold
	Call
	Raise
)

// String returns the display name of a decision
func (d Decision) String() string {
	switch d {
	case Check:
		return "Check"
	case Fold:
		return "Fold"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	default:
		return "Unknown"
	}
}

// ParseDecision matches an answer to a decision, ignoring case. Only the
// three actions a player can choose when facing a bet are accepted.
func ParseDecision(s string) (Decision, error) {
	for _, d := range []Decision{Fold, Call, Raise} {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Fold, fmt.Errorf("unknown decision %q (want fold, call or raise)", s)
}

const (
	// raiseOutsThreshold is the out count from which a draw is raised
	// rather than called. Only a combo draw reaches it.
	raiseOutsThreshold = 15

	// callMargin biases close spots toward calling: a call is recommended
	// whenever estimated equity plus this margin meets the price.
	callMargin = 2
)

// Recommend returns the action for a spot and a one-line rationale, both
// deterministic in the inputs. First matching rule wins: raise two pair or
// better, raise monster draws, call when equity plus the margin covers the
// price, otherwise fold.
func Recommend(best HandCategory, outs int, requiredPct float64) (Decision, string) {
	if best >= TwoPair {
		return Raise, fmt.Sprintf("%s is strong enough to raise for value.", best)
	}
	if outs >= raiseOutsThreshold {
		return Raise, fmt.Sprintf("A draw with %d outs plays better as a raise; you are rarely a big underdog.", outs)
	}
	equity := EquityFromOuts(outs)
	if float64(equity)+callMargin >= requiredPct {
		return Call, fmt.Sprintf("Calling needs %.1f%% equity and your %d outs give about %d%%.", requiredPct, outs, equity)
	}
	return Fold, fmt.Sprintf("Calling needs %.1f%% equity but your %d outs give only about %d%%.", requiredPct, outs, equity)
}
