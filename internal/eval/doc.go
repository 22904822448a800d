// Package eval implements the flop analysis the trainer teaches: made-hand
// classification, draw detection, heuristic outs and equity, pot odds, and
// the fold/call/raise recommendation.
//
// # Heuristics
//
// Out counts come from fixed lookup tables (a combo draw is 15 outs, a flush
// draw 9, and so on) and equity uses the "Rule of 4" approximation, clamped
// at 100%. These are the round numbers players memorise at the table. They
// are deliberately not exact card-removal combinatorics; the trainer grades
// against the numbers it teaches.
//
// # Scope
//
// Only the five flop-street cards are analysed. Turn and river play, kicker
// comparison between hands, and multi-way equity are out of scope.
package eval
