package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ribhisaleh/poker-trainer/internal/config"
	"github.com/ribhisaleh/poker-trainer/internal/randutil"
	"github.com/ribhisaleh/poker-trainer/internal/session"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
	"github.com/ribhisaleh/poker-trainer/internal/tui"
)

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Bold(true)
)

// PlayCmd runs an interactive practice session in the terminal
type PlayCmd struct {
	Mode   string `kong:"help='Practice mode: hands, outs or decisions'"`
	Hands  int    `kong:"help='Number of hands in the session'"`
	Seed   *int64 `kong:"help='Deterministic deal seed (optional)'"`
	Config string `kong:"default='poker-trainer.hcl',help='Path to HCL config file'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Mode != "" {
		cfg.Play.Mode = c.Mode
	}
	if c.Hands > 0 {
		cfg.Play.Hands = c.Hands
	}

	mode, err := spot.ParseMode(cfg.Play.Mode)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	// The TUI owns the terminal, so logs go to a file
	debugFile, err := os.OpenFile(cfg.Play.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level, _ := log.ParseLevel(cfg.Play.LogLevel)
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "PLAY",
		Level:           level,
	})
	logger.Info("Starting practice session", "mode", mode, "hands", cfg.Play.Hands, "seed", seed)

	fmt.Print(titleStyle.Render(" ♠ ♥ Poker Trainer ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	model := tui.NewTUIModel(mode, cfg.Play.Hands, randutil.New(seed), logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(*tui.TUIModel); ok {
		printSummary(m.Summary())
	}
	return nil
}

// printSummary repeats the result on the normal screen after the alt screen
// is torn down, so it survives in the scrollback.
func printSummary(s session.Summary) {
	if s.Rounds == 0 {
		return
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(" %s ", s.Mode.Title())))
	fmt.Printf("Hands:       %d\n", s.Rounds)
	fmt.Printf("Correct:     %d (%.0f%%)\n", s.Correct, s.Accuracy)
	fmt.Printf("XP earned:   %d\n", s.XP)
	fmt.Printf("Best streak: %d\n", s.BestStreak)
	fmt.Printf("Time:        %s\n", s.Duration.Truncate(time.Second))
	if s.MeanAnswer > 0 {
		fmt.Printf("Per answer:  %s ± %s\n",
			s.MeanAnswer.Truncate(10*time.Millisecond),
			s.StdevAnswer.Truncate(10*time.Millisecond))
	}
}
