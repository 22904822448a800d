package tui

import (
	"fmt"
	"io"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribhisaleh/poker-trainer/internal/eval"
	"github.com/ribhisaleh/poker-trainer/internal/randutil"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

func newTestModel(t *testing.T, mode spot.Mode, hands int, seed int64) *TUIModel {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	m := NewTUIModel(mode, hands, randutil.New(seed), logger)
	return resize(t, m, 100, 40)
}

func resize(t *testing.T, m *TUIModel, w, h int) *TUIModel {
	t.Helper()
	model, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return model.(*TUIModel)
}

func press(t *testing.T, m *TUIModel, key string) *TUIModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	model, _ := m.Update(msg)
	return model.(*TUIModel)
}

// sameSpot regenerates the deals the model will see, so tests know the
// solutions in advance.
func sameSpot(seed int64, mode spot.Mode, n int) spot.Spot {
	gen := spot.NewGenerator(randutil.New(seed))
	sp := gen.Generate(mode)
	for i := 1; i < n; i++ {
		sp = gen.Generate(mode)
	}
	return sp
}

func TestHandRecognitionFlow(t *testing.T) {
	const seed = 42
	m := newTestModel(t, spot.HandRecognition, 2, seed)

	want := sameSpot(seed, spot.HandRecognition, 1)
	view := m.View()
	assert.Contains(t, view, "Hand Recognition")
	assert.Contains(t, view, "hand 1/2")
	assert.Contains(t, view, "Which hand have you made?")

	// Category keys are 1 through 9, weakest first.
	correctKey := strconv.Itoa(int(want.Solution.BestHand) + 1)
	m = press(t, m, correctKey)

	require.Equal(t, phaseRevealed, m.phase)
	assert.True(t, m.last.Correct)
	assert.Equal(t, 10, m.last.XPEarned)
	assert.Contains(t, m.View(), "Correct! +10 XP")
	assert.Contains(t, m.renderExplainer(), "Best hand")

	// Next hand, answered wrong on purpose.
	m = press(t, m, "enter")
	require.Equal(t, phaseAsking, m.phase)
	assert.Contains(t, m.View(), "hand 2/2")

	want2 := sameSpot(seed, spot.HandRecognition, 2)
	wrongKey := strconv.Itoa((int(want2.Solution.BestHand)+1)%9 + 1)
	m = press(t, m, wrongKey)

	require.Equal(t, phaseRevealed, m.phase)
	assert.False(t, m.last.Correct)
	assert.Contains(t, m.View(), "Not quite")
	assert.Contains(t, m.View(), want2.Solution.BestHand.String())

	// Last hand answered, so enter goes to the summary.
	m = press(t, m, "enter")
	require.Equal(t, phaseSummary, m.phase)
	view = m.View()
	assert.Contains(t, view, "Session Summary")
	assert.Contains(t, view, "Correct:      1 (50%)")

	sum := m.Summary()
	assert.Equal(t, 2, sum.Rounds)
	assert.Equal(t, 10, sum.XP)

	m = press(t, m, "enter")
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}

func TestOutsEntryFlow(t *testing.T) {
	const seed = 7
	m := newTestModel(t, spot.OutsPractice, 1, seed)
	want := sameSpot(seed, spot.OutsPractice, 1)

	assert.Contains(t, m.View(), "How many outs")

	// Letters never reach the entry field.
	m = press(t, m, "x")
	assert.Equal(t, "", m.outsInput.Value())

	// Submitting nothing shows a nudge instead of grading.
	m = press(t, m, "enter")
	require.Equal(t, phaseAsking, m.phase)
	assert.Contains(t, m.View(), "enter a number of outs")

	for _, digit := range strconv.Itoa(want.Solution.TotalOuts()) {
		m = press(t, m, string(digit))
	}
	m = press(t, m, "enter")

	require.Equal(t, phaseRevealed, m.phase)
	assert.True(t, m.last.Correct, "answered %d outs for %v", want.Solution.TotalOuts(), want.Cards())
}

func TestDecisionKeys(t *testing.T) {
	const seed = 11
	m := newTestModel(t, spot.DecisionLab, 1, seed)
	want := sameSpot(seed, spot.DecisionLab, 1)

	view := m.View()
	assert.Contains(t, view, fmt.Sprintf("Pot: $%d", want.Pot))
	assert.Contains(t, view, fmt.Sprintf("Bet to call: $%d", want.BetToCall))
	assert.Contains(t, view, "[f]old")

	m = press(t, m, "c")
	require.Equal(t, phaseRevealed, m.phase)
	assert.Equal(t, "Call", m.last.Answer)
	assert.Equal(t, want.Solution.Decision == eval.Call, m.last.Correct)
}

func TestEscFinishesEarly(t *testing.T) {
	m := newTestModel(t, spot.HandRecognition, 10, 3)

	m = press(t, m, "esc")
	require.Equal(t, phaseSummary, m.phase)
	assert.Contains(t, m.View(), "Session Summary")

	sum := m.Summary()
	assert.Equal(t, 0, sum.Rounds)
}

func TestViewBeforeSizing(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	m := NewTUIModel(spot.HandRecognition, 1, randutil.New(1), logger)
	assert.Equal(t, "Loading...", m.View())
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	m := newTestModel(t, spot.DecisionLab, 3, 5)
	m = press(t, m, "ctrl+c")
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}
