package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
	"github.com/ribhisaleh/poker-trainer/internal/eval"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	raiseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// AnalyzeCmd explains a single user-supplied spot
type AnalyzeCmd struct {
	Hole    string `arg:"" help:"Your two hole cards, e.g. AsKs"`
	Flop    string `arg:"" help:"The three flop cards, e.g. QsJs2h"`
	Pot     int    `short:"p" help:"Pot size before the bet" default:"100"`
	Bet     int    `short:"b" help:"Bet you are facing (0 skips the decision)"`
	NoColor bool   `help:"Disable colored output"`
}

func (c *AnalyzeCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	hole, err := parseCardGroup(c.Hole, 2, "hole cards")
	if err != nil {
		return err
	}
	flop, err := parseCardGroup(c.Flop, 3, "flop")
	if err != nil {
		return err
	}
	if err := validateNoDuplicates(append(hole, flop...)); err != nil {
		return err
	}
	if c.Bet < 0 {
		return fmt.Errorf("bet cannot be negative")
	}
	if c.Bet > 0 && c.Pot <= 0 {
		return fmt.Errorf("a priced spot needs a positive pot")
	}

	sp := spot.FromCards(
		[2]deck.Card{hole[0], hole[1]},
		[3]deck.Card{flop[0], flop[1], flop[2]},
		c.Pot, c.Bet,
	)
	printAnalysis(sp)
	return nil
}

func parseCardGroup(s string, want int, what string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if err != nil {
		return nil, fmt.Errorf("%s: %v", what, err)
	}
	if len(cards) != want {
		return nil, fmt.Errorf("%s: must contain exactly %d cards, got %d", what, want, len(cards))
	}
	return cards, nil
}

func validateNoDuplicates(cards []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, card := range cards {
		if seen[card] {
			return fmt.Errorf("duplicate card found: %s", card)
		}
		seen[card] = true
	}
	return nil
}

func printAnalysis(sp spot.Spot) {
	sol := sp.Solution

	fmt.Printf("%s %s   %s %s\n",
		headerStyle.Render("hand"), handStyle.Render(formatCards(sp.Hole[:])),
		headerStyle.Render("flop"), handStyle.Render(formatCards(sp.Flop[:])))
	fmt.Printf("%s stronger than %.1f%% of starting hands preflop\n",
		headerStyle.Render("rank"), deck.HandPercentile(sp.Hole)*100)
	if sp.BetToCall > 0 {
		fmt.Printf("%s $%d pot, $%d to call\n",
			headerStyle.Render("price"), sp.Pot, sp.BetToCall)
	}
	fmt.Println()

	for i, step := range sol.Explainer.Steps {
		fmt.Printf("%d. %s\n", i+1, stepStyle.Render(step.Title))
		fmt.Printf("   %s\n", step.Text)
	}

	fmt.Println()
	fmt.Println(decisionStyle(sol.Decision).Render(sol.Explainer.Summary))
}

func decisionStyle(d eval.Decision) lipgloss.Style {
	switch d {
	case eval.Raise:
		return raiseStyle
	case eval.Call:
		return callStyle
	case eval.Fold:
		return foldStyle
	default:
		return handStyle
	}
}

func formatCards(cards []deck.Card) string {
	var parts []string
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
