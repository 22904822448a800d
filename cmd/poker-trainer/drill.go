package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ribhisaleh/poker-trainer/internal/config"
	"github.com/ribhisaleh/poker-trainer/internal/eval"
	"github.com/ribhisaleh/poker-trainer/internal/fileutil"
	"github.com/ribhisaleh/poker-trainer/internal/randutil"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

// DrillCmd prints a worksheet of practice problems to solve on paper
type DrillCmd struct {
	Mode        string `kong:"help='Drill mode: hands, outs or decisions'"`
	Count       int    `kong:"help='Number of problems'"`
	Seed        *int64 `kong:"help='Deterministic deal seed (optional)'"`
	ShowAnswers bool   `kong:"help='Append the answer key'"`
	Output      string `kong:"short='o',help='Write the worksheet to a file instead of stdout'"`
	NoColor     bool   `kong:"help='Disable colored output'"`
	Config      string `kong:"default='poker-trainer.hcl',help='Path to HCL config file'"`
}

func (c *DrillCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Mode != "" {
		cfg.Drill.Mode = c.Mode
	}
	if c.Count > 0 {
		cfg.Drill.Count = c.Count
	}
	if c.ShowAnswers {
		cfg.Drill.ShowAnswers = true
	}

	mode, err := spot.ParseMode(cfg.Drill.Mode)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	gen := spot.NewGenerator(randutil.New(seed))
	spots, err := gen.GenerateBatch(context.Background(), cfg.Drill.Count, mode)
	if err != nil {
		return err
	}

	if c.Output != "" {
		// Files get plain text regardless of terminal support
		lipgloss.SetColorProfile(termenv.Ascii)
		var buf bytes.Buffer
		renderWorksheet(&buf, mode, seed, spots, cfg.Drill.ShowAnswers)
		return fileutil.WriteFileAtomic(c.Output, buf.Bytes(), 0o644)
	}

	renderWorksheet(os.Stdout, mode, seed, spots, cfg.Drill.ShowAnswers)
	return nil
}

// renderWorksheet writes the problem table and optional answer key. The seed
// line lets the same sheet be regenerated later with --show-answers.
func renderWorksheet(out io.Writer, mode spot.Mode, seed int64, spots []spot.Spot, showAnswers bool) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render(fmt.Sprintf("%s drill", mode.Title())))
	fmt.Fprintf(out, "%d problems, seed %d. %s\n\n", len(spots), seed, drillPrompt(mode))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if mode == spot.DecisionLab {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			headerStyle.Render("#"),
			headerStyle.Render("hand"),
			headerStyle.Render("flop"),
			headerStyle.Render("pot"),
			headerStyle.Render("bet"))
		for i, sp := range spots {
			fmt.Fprintf(w, "%d.\t%s\t%s\t$%d\t$%d\n",
				i+1,
				handStyle.Render(formatCards(sp.Hole[:])),
				handStyle.Render(formatCards(sp.Flop[:])),
				sp.Pot, sp.BetToCall)
		}
	} else {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			headerStyle.Render("#"),
			headerStyle.Render("hand"),
			headerStyle.Render("flop"))
		for i, sp := range spots {
			fmt.Fprintf(w, "%d.\t%s\t%s\n",
				i+1,
				handStyle.Render(formatCards(sp.Hole[:])),
				handStyle.Render(formatCards(sp.Flop[:])))
		}
	}
	w.Flush()

	if showAnswers {
		fmt.Fprintf(out, "\n%s\n", headerStyle.Render("answer key"))
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for i, sp := range spots {
			fmt.Fprintf(w, "%d.\t%s\n", i+1, stepStyle.Render(drillAnswer(sp)))
		}
		w.Flush()
	}
}

func drillPrompt(mode spot.Mode) string {
	switch mode {
	case spot.OutsPractice:
		return "Count the total outs for each spot."
	case spot.DecisionLab:
		return "Decide fold, call or raise for each spot."
	default:
		return "Name the best made hand for each spot."
	}
}

func drillAnswer(sp spot.Spot) string {
	sol := sp.Solution
	switch sp.Mode {
	case spot.OutsPractice:
		if sol.Draw != eval.NoDraw {
			return fmt.Sprintf("%d (%s)", sol.TotalOuts(), sol.Draw)
		}
		return fmt.Sprintf("%d (improvement only)", sol.TotalOuts())
	case spot.DecisionLab:
		return fmt.Sprintf("%s (about %d%% equity vs %.1f%% required)",
			sol.Decision, sol.EquityPct(), sol.PotOddsPct)
	default:
		return sol.BestHand.String()
	}
}
