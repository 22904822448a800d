// Package session tracks one practice run: rounds, grading, XP, streaks and
// answer timing. Answers are graded by exact comparison of closed enumerated
// values, never by matching answer text.
package session

import (
	"math"
	"strconv"
	"time"

	"github.com/coder/quartz"

	"github.com/ribhisaleh/poker-trainer/internal/eval"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

// XP rules, surfaced so UIs can explain scoring.
const (
	// XPPerCorrect is awarded for every correct answer.
	XPPerCorrect = 10
	// StreakBonusXP is added on top at every StreakBonusEvery-th
	// consecutive correct answer.
	StreakBonusXP    = 5
	StreakBonusEvery = 5
)

// Result is the graded outcome of one answered spot
type Result struct {
	Correct  bool
	Expected string
	Answer   string
	XPEarned int
	Streak   int
	Elapsed  time.Duration
}

// Session accumulates scoring state across practice rounds. It is not safe
// for concurrent use; each UI loop or connection owns its own.
type Session struct {
	mode  spot.Mode
	clock quartz.Clock

	started   time.Time
	askedAt   time.Time
	rounds    int
	correct   int
	xp        int
	streak    int
	best      int
	durations []time.Duration
}

// New starts a session for the given mode. A nil clock falls back to the
// real one; tests inject a mock.
func New(mode spot.Mode, clock quartz.Clock) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{
		mode:    mode,
		clock:   clock,
		started: clock.Now(),
	}
}

// Mode returns the practice mode this session grades
func (s *Session) Mode() spot.Mode {
	return s.mode
}

// StartRound stamps the moment a spot was shown, so the next graded answer
// carries its thinking time.
func (s *Session) StartRound() {
	s.askedAt = s.clock.Now()
}

// GradeHand grades a hand-recognition answer by exact category match
func (s *Session) GradeHand(sp spot.Spot, answer eval.HandCategory) Result {
	want := sp.Solution.BestHand
	return s.grade(answer == want, want.String(), answer.String())
}

// GradeOuts grades the total out count, draw outs plus improvement outs,
// by exact match.
func (s *Session) GradeOuts(sp spot.Spot, answer int) Result {
	want := sp.Solution.TotalOuts()
	return s.grade(answer == want, strconv.Itoa(want), strconv.Itoa(answer))
}

// GradeDecision grades a fold/call/raise answer by exact match
func (s *Session) GradeDecision(sp spot.Spot, answer eval.Decision) Result {
	want := sp.Solution.Decision
	return s.grade(answer == want, want.String(), answer.String())
}

func (s *Session) grade(correct bool, expected, answer string) Result {
	s.rounds++

	var elapsed time.Duration
	if !s.askedAt.IsZero() {
		elapsed = s.clock.Now().Sub(s.askedAt)
		s.durations = append(s.durations, elapsed)
		s.askedAt = time.Time{}
	}

	earned := 0
	if correct {
		s.correct++
		s.streak++
		if s.streak > s.best {
			s.best = s.streak
		}
		earned = XPPerCorrect
		if s.streak%StreakBonusEvery == 0 {
			earned += StreakBonusXP
		}
		s.xp += earned
	} else {
		s.streak = 0
	}

	return Result{
		Correct:  correct,
		Expected: expected,
		Answer:   answer,
		XPEarned: earned,
		Streak:   s.streak,
		Elapsed:  elapsed,
	}
}

// Rounds returns how many answers have been graded
func (s *Session) Rounds() int { return s.rounds }

// Correct returns how many answers were right
func (s *Session) Correct() int { return s.correct }

// XP returns the total experience earned
func (s *Session) XP() int { return s.xp }

// Streak returns the current run of consecutive correct answers
func (s *Session) Streak() int { return s.streak }

// BestStreak returns the longest run seen this session
func (s *Session) BestStreak() int { return s.best }

// Accuracy returns the share of correct answers as a percentage
func (s *Session) Accuracy() float64 {
	if s.rounds == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.rounds) * 100
}

// Summary is the end-of-session report
type Summary struct {
	Mode        spot.Mode
	Rounds      int
	Correct     int
	XP          int
	BestStreak  int
	Accuracy    float64
	Duration    time.Duration
	MeanAnswer  time.Duration
	StdevAnswer time.Duration
}

// Summarize closes out the bookkeeping without mutating it
func (s *Session) Summarize() Summary {
	mean, stdev := answerStats(s.durations)
	return Summary{
		Mode:        s.mode,
		Rounds:      s.rounds,
		Correct:     s.correct,
		XP:          s.xp,
		BestStreak:  s.best,
		Accuracy:    s.Accuracy(),
		Duration:    s.clock.Now().Sub(s.started),
		MeanAnswer:  mean,
		StdevAnswer: stdev,
	}
}

// answerStats returns the mean and sample standard deviation of the
// recorded thinking times.
func answerStats(durations []time.Duration) (mean, stdev time.Duration) {
	if len(durations) == 0 {
		return 0, 0
	}

	var sum float64
	for _, d := range durations {
		sum += d.Seconds()
	}
	m := sum / float64(len(durations))

	var sq float64
	for _, d := range durations {
		diff := d.Seconds() - m
		sq += diff * diff
	}
	variance := 0.0
	if len(durations) > 1 {
		variance = sq / float64(len(durations)-1)
	}

	return time.Duration(m * float64(time.Second)), time.Duration(math.Sqrt(variance) * float64(time.Second))
}
