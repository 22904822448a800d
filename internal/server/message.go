package server

import (
	"encoding/json"
	"time"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
	"github.com/ribhisaleh/poker-trainer/internal/session"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type StartData struct {
	Mode string `json:"mode"`
	Seed int64  `json:"seed,omitempty"` // 0 means the server picks one
}

type AnswerData struct {
	Answer string `json:"answer"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SpotData is a dealt spot with the solution withheld. The client sees the
// cards and the price and has to work out the rest.
type SpotData struct {
	Mode      string   `json:"mode"`
	Round     int      `json:"round"`
	Hole      []string `json:"hole"`
	Flop      []string `json:"flop"`
	Pot       int      `json:"pot,omitempty"`
	BetToCall int      `json:"betToCall,omitempty"`
}

type SolutionData struct {
	BestHand        string  `json:"bestHand"`
	Draw            string  `json:"draw"`
	Outs            int     `json:"outs"`
	ImprovementOuts int     `json:"improvementOuts"`
	TotalOuts       int     `json:"totalOuts"`
	EquityPct       int     `json:"equityPct"`
	PotOddsPct      float64 `json:"potOddsPct"`
	Decision        string  `json:"decision"`
	Rationale       string  `json:"rationale"`
}

type ResultData struct {
	Correct    bool           `json:"correct"`
	Expected   string         `json:"expected"`
	Answer     string         `json:"answer"`
	XPEarned   int            `json:"xpEarned"`
	XP         int            `json:"xp"`
	Streak     int            `json:"streak"`
	BestStreak int            `json:"bestStreak"`
	Solution   SolutionData   `json:"solution"`
	Explainer  spot.Explainer `json:"explainer"`
}

type SummaryData struct {
	Mode       string  `json:"mode"`
	Rounds     int     `json:"rounds"`
	Correct    int     `json:"correct"`
	Accuracy   float64 `json:"accuracy"`
	XP         int     `json:"xp"`
	BestStreak int     `json:"bestStreak"`
}

// Helper functions to convert between internal types and message types

func SpotDataFrom(sp spot.Spot, round int) SpotData {
	return SpotData{
		Mode:      sp.Mode.String(),
		Round:     round,
		Hole:      cardCodes(sp.Hole[:]),
		Flop:      cardCodes(sp.Flop[:]),
		Pot:       sp.Pot,
		BetToCall: sp.BetToCall,
	}
}

func SolutionDataFrom(sol spot.Solution) SolutionData {
	return SolutionData{
		BestHand:        sol.BestHand.String(),
		Draw:            sol.Draw.String(),
		Outs:            sol.Outs,
		ImprovementOuts: sol.ImprovementOuts,
		TotalOuts:       sol.TotalOuts(),
		EquityPct:       sol.EquityPct(),
		PotOddsPct:      sol.PotOddsPct,
		Decision:        sol.Decision.String(),
		Rationale:       sol.DecisionWhy,
	}
}

func SummaryDataFrom(sum session.Summary) SummaryData {
	return SummaryData{
		Mode:       sum.Mode.String(),
		Rounds:     sum.Rounds,
		Correct:    sum.Correct,
		Accuracy:   sum.Accuracy,
		XP:         sum.XP,
		BestStreak: sum.BestStreak,
	}
}

func cardCodes(cards []deck.Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}
