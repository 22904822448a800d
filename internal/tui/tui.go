// Package tui is the interactive practice loop: deal a spot, take the answer
// with a single keypress or a short entry, reveal the walkthrough, repeat.
// Every state transition happens inside Update; there is no game loop outside
// the program.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
	"github.com/ribhisaleh/poker-trainer/internal/eval"
	"github.com/ribhisaleh/poker-trainer/internal/session"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

// phase tracks where the current round is
type phase int

const (
	phaseAsking   phase = iota // waiting for the answer
	phaseRevealed              // showing the walkthrough
	phaseSummary               // session over, showing totals
)

// TUIModel represents the Bubble Tea model for a practice session
type TUIModel struct {
	logger *log.Logger

	gen   *spot.Generator
	sess  *session.Session
	hands int

	round   int
	current spot.Spot
	phase   phase
	last    session.Result

	// UI components
	outsInput   textinput.Model
	explainView viewport.Model

	// Dimensions
	width  int
	height int

	errText  string
	quitting bool
}

// NewTUIModel creates a practice session model. The rng drives every deal, so
// a fixed seed replays the same session.
func NewTUIModel(mode spot.Mode, hands int, rng *rand.Rand, logger *log.Logger) *TUIModel {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "outs"
	ti.CharLimit = 2
	ti.Width = 6
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "
	if mode == spot.OutsPractice {
		ti.Focus()
	}

	m := &TUIModel{
		logger:      logger.WithPrefix("tui"),
		gen:         spot.NewGenerator(rng),
		sess:        session.New(mode, nil),
		hands:       hands,
		outsInput:   ti,
		explainView: vp,
	}
	m.deal()
	return m
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}

		switch m.phase {
		case phaseAsking:
			if model, cmd, handled := m.handleAskingKey(msg); handled {
				return model, cmd
			}
		case phaseRevealed:
			switch msg.String() {
			case "enter", "n":
				m.next()
				return m, nil
			case "q", "esc":
				m.phase = phaseSummary
				return m, nil
			}
		case phaseSummary:
			switch msg.String() {
			case "enter", "q", "esc":
				m.quitting = true
				return m, tea.Sequence(tea.ClearScreen, tea.Quit)
			}
			return m, nil
		}
	}

	// Forward whatever is left to the focused component
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.phase == phaseAsking && m.sess.Mode() == spot.OutsPractice {
		m.outsInput, cmd = m.outsInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.phase == phaseRevealed {
		m.explainView, cmd = m.explainView.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleAskingKey consumes answer keys for the current mode. It reports
// whether the key was handled; unhandled keys flow on to the text input.
func (m *TUIModel) handleAskingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	if key == "esc" {
		m.phase = phaseSummary
		return m, nil, true
	}

	switch m.sess.Mode() {
	case spot.HandRecognition:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			cats := eval.Categories()
			m.reveal(m.sess.GradeHand(m.current, cats[key[0]-'1']))
		}
		return m, nil, true

	case spot.DecisionLab:
		switch key {
		case "f":
			m.reveal(m.sess.GradeDecision(m.current, eval.Fold))
		case "c":
			m.reveal(m.sess.GradeDecision(m.current, eval.Call))
		case "r":
			m.reveal(m.sess.GradeDecision(m.current, eval.Raise))
		}
		return m, nil, true

	case spot.OutsPractice:
		if key == "enter" {
			outs, err := strconv.Atoi(strings.TrimSpace(m.outsInput.Value()))
			if err != nil {
				m.errText = "enter a number of outs"
				return m, nil, true
			}
			m.reveal(m.sess.GradeOuts(m.current, outs))
			return m, nil, true
		}
		// Keep the entry numeric; everything else reaches the input.
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if r < '0' || r > '9' {
					return m, nil, true
				}
			}
		}
	}
	return m, nil, false
}

// reveal stores the grade and switches to the walkthrough
func (m *TUIModel) reveal(res session.Result) {
	m.last = res
	m.errText = ""
	m.phase = phaseRevealed
	m.explainView.SetContent(m.renderExplainer())
	m.explainView.GotoTop()
	m.logger.Debug("Answer graded", "round", m.round, "answer", res.Answer, "correct", res.Correct)
}

// next deals another spot or ends the session after the last hand
func (m *TUIModel) next() {
	if m.round >= m.hands {
		m.phase = phaseSummary
		return
	}
	m.deal()
}

// deal starts a round: fresh spot, cleared entry, answer timer running
func (m *TUIModel) deal() {
	m.current = m.gen.Generate(m.sess.Mode())
	m.round++
	m.phase = phaseAsking
	m.outsInput.SetValue("")
	m.errText = ""
	m.sess.StartRound()
	m.logger.Debug("Dealt spot", "round", m.round,
		"hole", deck.CardsString(m.current.Hole[:]), "flop", deck.CardsString(m.current.Flop[:]))
}

// Summary exposes the session totals, for printing after the program exits
func (m *TUIModel) Summary() session.Summary {
	return m.sess.Summarize()
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.phase == phaseSummary {
		return m.renderSummary()
	}

	sections := []string{m.renderHeader(), "", m.renderCards(), ""}
	if m.phase == phaseAsking {
		sections = append(sections, m.renderPrompt())
	} else {
		sections = append(sections, m.renderReveal())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title bar and the running score
func (m *TUIModel) renderHeader() string {
	title := HeaderStyle.Render(" ♠ ♥ " + m.sess.Mode().Title() + " ♦ ♣ ")
	stats := InfoStyle.Render(fmt.Sprintf("  hand %d/%d   XP %d   streak %d   accuracy %.0f%%",
		m.round, m.hands, m.sess.XP(), m.sess.Streak(), m.sess.Accuracy()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, stats)
}

// renderCards renders the dealt cards and, in the decision lab, the price
func (m *TUIModel) renderCards() string {
	line := HandInfoStyle.Render("Your hand:") + " " + m.formatCards(m.current.Hole[:]) +
		"   " + HandInfoStyle.Render("Flop:") + " " + m.formatCards(m.current.Flop[:])

	if m.current.BetToCall > 0 {
		line += "\n" + WarningStyle.Render(
			fmt.Sprintf("Pot: $%d   Bet to call: $%d", m.current.Pot, m.current.BetToCall))
	}
	return line
}

// renderPrompt renders the answer prompt for the current mode
func (m *TUIModel) renderPrompt() string {
	var content strings.Builder

	switch m.sess.Mode() {
	case spot.HandRecognition:
		content.WriteString(ActionsStyle.Render("Which hand have you made?"))
		content.WriteString("\n")
		cats := eval.Categories()
		for i := 0; i < len(cats); i += 3 {
			for j := i; j < i+3 && j < len(cats); j++ {
				content.WriteString(fmt.Sprintf("  %d. %-17s", j+1, cats[j]))
			}
			content.WriteString("\n")
		}
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render("Press 1-9 to answer • Esc to finish • Ctrl+C to quit"))

	case spot.OutsPractice:
		content.WriteString(ActionsStyle.Render("How many outs improve your hand?"))
		content.WriteString("\n")
		content.WriteString(m.outsInput.View())
		content.WriteString("\n")
		if m.errText != "" {
			content.WriteString(ErrorStyle.Render(m.errText))
			content.WriteString("\n")
		}
		content.WriteString(InfoStyle.Render("Enter to submit • Esc to finish • Ctrl+C to quit"))

	case spot.DecisionLab:
		content.WriteString(ActionsStyle.Render("Your move: "))
		content.WriteString(ErrorStyle.Render("[f]old"))
		content.WriteString(" ")
		content.WriteString(SuccessStyle.Render("[c]all"))
		content.WriteString(" ")
		content.WriteString(WarningStyle.Render("[r]aise"))
		content.WriteString("\n\n")
		content.WriteString(InfoStyle.Render("Press f, c or r • Esc to finish • Ctrl+C to quit"))
	}

	return content.String()
}

// renderReveal renders the grade banner and the scrollable walkthrough
func (m *TUIModel) renderReveal() string {
	var banner string
	if m.last.Correct {
		text := fmt.Sprintf("Correct! +%d XP", m.last.XPEarned)
		if m.last.XPEarned > session.XPPerCorrect {
			text += " (streak bonus)"
		}
		banner = SuccessStyle.Render(text)
	} else {
		banner = ErrorStyle.Render(fmt.Sprintf("Not quite. The answer was %s.", m.last.Expected))
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Render(m.explainView.View())

	hint := "Enter for the next hand • ↑↓ scroll • q to finish"
	if m.round >= m.hands {
		hint = "Enter to see your results • ↑↓ scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left, banner, pane, InfoStyle.Render(hint))
}

// renderExplainer lays out the walkthrough steps for the viewport
func (m *TUIModel) renderExplainer() string {
	wrap := lipgloss.NewStyle().Width(m.explainView.Width)
	expl := m.current.Solution.Explainer

	var content strings.Builder
	for i, step := range expl.Steps {
		content.WriteString(HandInfoStyle.Render(fmt.Sprintf("%d. %s", i+1, step.Title)))
		content.WriteString("\n")
		content.WriteString(wrap.Render(step.Text))
		content.WriteString("\n\n")
	}

	content.WriteString(wrap.Render(expl.Summary))
	content.WriteString("\n\n")
	content.WriteString(WarningStyle.Render("Common mistakes"))
	content.WriteString("\n")
	for _, mistake := range expl.CommonMistakes {
		content.WriteString(wrap.Render("• " + mistake))
		content.WriteString("\n")
	}
	return content.String()
}

// renderSummary renders the end-of-session totals
func (m *TUIModel) renderSummary() string {
	sum := m.Summary()

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(" Session Summary "))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("  Mode:         %s\n", sum.Mode.Title()))
	content.WriteString(fmt.Sprintf("  Hands:        %d\n", sum.Rounds))
	content.WriteString(fmt.Sprintf("  Correct:      %d (%.0f%%)\n", sum.Correct, sum.Accuracy))
	content.WriteString(fmt.Sprintf("  XP earned:    %d\n", sum.XP))
	content.WriteString(fmt.Sprintf("  Best streak:  %d\n", sum.BestStreak))
	if sum.Rounds > 0 {
		content.WriteString(fmt.Sprintf("  Time:         %s (%s per answer)\n",
			sum.Duration.Round(time.Second), sum.MeanAnswer.Round(time.Second)))
	}
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("  Press Enter to exit"))
	return content.String()
}

// formatCards formats cards with colors
func (m *TUIModel) formatCards(cards []deck.Card) string {
	var formatted []string
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// updateDimensions updates component dimensions based on terminal size
func (m *TUIModel) updateDimensions() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	vw := m.width - 6
	if vw < 20 {
		vw = 20
	}

	// Header, cards, price, banner, hints and the pane border all sit
	// around the viewport.
	vh := m.height - 10
	if vh < 3 {
		vh = 3
	}

	m.explainView.Width = vw
	m.explainView.Height = vh

	if m.phase == phaseRevealed {
		m.explainView.SetContent(m.renderExplainer())
	}
}
