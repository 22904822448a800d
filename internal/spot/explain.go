package spot

import (
	"fmt"

	"github.com/ribhisaleh/poker-trainer/internal/eval"
)

// Step is one titled paragraph of the walkthrough
type Step struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Explainer is the ordered walkthrough shown after an answer, mirroring the
// reasoning order: hand, draw, outs, price, comparison, decision.
type Explainer struct {
	Steps          []Step   `json:"steps"`
	Summary        string   `json:"summary"`
	CommonMistakes []string `json:"common_mistakes"`
}

// mistakeReminders is the fixed list shown with every walkthrough
var mistakeReminders = []string{
	"Counting outs for cards already in your hand or on the board.",
	"Calling a big bet with a gutshot: four outs is only about 16% equity.",
	"Comparing equity to the pot instead of to the price percentage.",
	"Adding flush draw and straight draw outs as 9 + 8: the combo draw's 15 already removes the overlap.",
}

// buildExplainer renders the walkthrough for a solved spot. The text quotes
// the same numbers the solution carries; the total out count is restated
// identically in the outs step and the summary.
func buildExplainer(s Spot) Explainer {
	sol := s.Solution
	var steps []Step

	cards := fmt.Sprintf("%s %s on %s %s %s",
		s.Hole[0], s.Hole[1], s.Flop[0], s.Flop[1], s.Flop[2])
	steps = append(steps, Step{
		Title: "Best hand",
		Text:  fmt.Sprintf("%s makes %s.", cards, sol.BestHand),
	})

	if sol.Draw != eval.NoDraw {
		steps = append(steps,
			Step{Title: "Draw", Text: drawText(sol.Draw)},
			Step{
				Title: "Draw outs",
				Text: fmt.Sprintf("That %s is worth %d outs, for a total of %d.",
					sol.Draw, sol.Outs, sol.TotalOuts()),
			},
		)
	} else {
		steps = append(steps, Step{
			Title: "Improvement outs",
			Text:  improvementText(sol.BestHand, sol.ImprovementOuts, sol.TotalOuts()),
		})
	}

	if s.BetToCall > 0 {
		steps = append(steps,
			Step{
				Title: "Pot odds",
				Text: fmt.Sprintf("Pot %d and a bet of %d to call: %d / (%d + %d) = %.1f%% is the equity you need.",
					s.Pot, s.BetToCall, s.BetToCall, s.Pot, s.BetToCall, sol.PotOddsPct),
			},
			Step{
				Title: "Compare",
				Text: fmt.Sprintf("Rule of 4: %d outs is about %d%% equity, against the %.1f%% required.",
					sol.Outs, eval.EquityFromOuts(sol.Outs), sol.PotOddsPct),
			},
			Step{
				Title: "Decision",
				Text:  fmt.Sprintf("%s. %s", sol.Decision, sol.DecisionWhy),
			},
		)
	} else {
		steps = append(steps,
			Step{
				Title: "Pot odds",
				Text:  "There is no bet to face, so the price is 0%.",
			},
			Step{
				Title: "Compare",
				Text:  "With no price to beat, focus on reading the hand and counting cleanly.",
			},
			Step{
				Title: "Decision",
				Text:  "No betting decision in this drill.",
			},
		)
	}

	return Explainer{
		Steps:          steps,
		Summary:        summaryLine(s),
		CommonMistakes: mistakeReminders,
	}
}

// drawPhrase pairs the draw name with its article
func drawPhrase(d eval.DrawCategory) string {
	if d == eval.OpenEndedStraightDraw {
		return "an " + d.String()
	}
	return "a " + d.String()
}

func drawText(d eval.DrawCategory) string {
	switch d {
	case eval.ComboDraw:
		return "Four to a flush plus four connected ranks: a combo draw."
	case eval.FlushDraw:
		return "Four cards of one suit: a flush draw."
	case eval.OpenEndedStraightDraw:
		return "Four connected ranks: an open-ended straight draw."
	case eval.Gutshot:
		return "Four to a straight with one inside card missing: a gutshot."
	default:
		return ""
	}
}

func improvementText(best eval.HandCategory, outs, total int) string {
	if outs == 0 {
		return fmt.Sprintf("%s has no meaningful upgrade cards: 0 outs in total.", best)
	}
	return fmt.Sprintf("%s can still improve: %d upgrade outs, for a total of %d.", best, outs, total)
}

func summaryLine(s Spot) string {
	sol := s.Solution

	hand := fmt.Sprintf("%s with no draw", sol.BestHand)
	if sol.Draw != eval.NoDraw {
		hand = fmt.Sprintf("%s with %s", sol.BestHand, drawPhrase(sol.Draw))
	}

	if s.BetToCall > 0 {
		return fmt.Sprintf("%s: %d outs, about %d%% equity against a %.1f%% price. %s.",
			hand, sol.Outs, eval.EquityFromOuts(sol.Outs), sol.PotOddsPct, sol.Decision)
	}
	return fmt.Sprintf("%s: %d total outs, about %d%% equity by the river.",
		hand, sol.TotalOuts(), eval.EquityFromOuts(sol.TotalOuts()))
}
