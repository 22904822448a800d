package eval

import (
	"slices"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

// DrawCategory represents the displayed draw label for a spot, strongest last
type DrawCategory int

const (
	NoDraw DrawCategory = iota
	Gutshot
	OpenEndedStraightDraw
	FlushDraw
	ComboDraw
)

// String returns the display name of a draw category
func (d DrawCategory) String() string {
	switch d {
	case NoDraw:
		return "no draw"
	case Gutshot:
		return "gutshot"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case FlushDraw:
		return "flush draw"
	case ComboDraw:
		return "combo draw"
	default:
		return "unknown"
	}
}

// DrawCategories lists every draw category from weakest to strongest, for
// menus and exhaustive tests.
func DrawCategories() []DrawCategory {
	return []DrawCategory{NoDraw, Gutshot, OpenEndedStraightDraw, FlushDraw, ComboDraw}
}

// drawFlags are the independent detections before display precedence
// resolves them to a single category.
type drawFlags struct {
	flushDraw bool
	openEnded bool
	gutshot   bool
}

// DetectDraw reports the draw category for the five known cards. Callers
// gate it on the made hand: a completed straight or flush is never framed
// as a draw. Precedence when several detections fire: a flush draw plus an
// open-ender is a combo draw, a flush draw beats straight draws, and an
// open-ender beats a gutshot.
func DetectDraw(cards []deck.Card) DrawCategory {
	f := detectDrawFlags(cards)
	switch {
	case f.flushDraw && f.openEnded:
		return ComboDraw
	case f.flushDraw:
		return FlushDraw
	case f.openEnded:
		return OpenEndedStraightDraw
	case f.gutshot:
		return Gutshot
	default:
		return NoDraw
	}
}

func detectDrawFlags(cards []deck.Card) drawFlags {
	var f drawFlags

	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		suitCounts[c.Suit]++
	}
	for _, n := range suitCounts {
		if n == 4 {
			f.flushDraw = true
			break
		}
	}

	// Judge every four-value subset of the distinct rank values by its
	// span. Four distinct values spanning 3 are consecutive, an open-ender.
	// Four distinct values spanning 4 leave exactly one interior gap, a
	// gutshot. Any qualifying subset sets its flag.
	values := straightValues(cards)
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			for k := j + 1; k < len(values); k++ {
				for l := k + 1; l < len(values); l++ {
					switch values[l] - values[i] {
					case 3:
						f.openEnded = true
					case 4:
						f.gutshot = true
					}
				}
			}
		}
	}

	return f
}

// straightValues returns the sorted distinct rank values used for straight
// math. An ace contributes a low value as well, so wheel draws are seen.
func straightValues(cards []deck.Card) []int {
	present := make(map[int]bool)
	for _, c := range cards {
		present[c.Rank.Index()] = true
		if c.Rank == deck.Ace {
			present[-1] = true
		}
	}

	values := make([]int, 0, len(present))
	for v := range present {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
