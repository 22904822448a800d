package eval

import (
	"fmt"
	"strings"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

// HandCategory represents the tier of a made hand, strongest last
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of a hand category
func (h HandCategory) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Categories lists every hand category from weakest to strongest, for menus
// and exhaustive tests.
func Categories() []HandCategory {
	return []HandCategory{
		HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush,
	}
}

// ParseHandCategory matches a display name back to its category,
// ignoring case.
func ParseHandCategory(s string) (HandCategory, error) {
	for _, h := range Categories() {
		if strings.EqualFold(s, h.String()) {
			return h, nil
		}
	}
	return HighCard, fmt.Errorf("unknown hand category %q", s)
}

// wheelMask is A-5-4-3-2, the only straight where the ace plays low.
// Bit 12 is the ace, bits 0-3 are 2 through 5.
const wheelMask = 0x100F

// Classify labels the best made hand in the given cards. It inspects only
// rank and suit multiplicities plus straight runs, so it works for any hand
// of five or more cards. No kicker comparison happens here; the trainer only
// needs the category name.
func Classify(cards []deck.Card) HandCategory {
	rankCounts := make(map[deck.Rank]int)
	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	pairs, trips, quads := 0, 0, 0
	for _, n := range rankCounts {
		switch {
		case n >= 4:
			quads++
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}

	flush := false
	for _, n := range suitCounts {
		if n >= 5 {
			flush = true
			break
		}
	}

	straight := hasStraight(rankMask(cards))

	switch {
	case straight && flush:
		return StraightFlush
	case quads > 0:
		return FourOfAKind
	case trips > 0 && (pairs > 0 || trips > 1):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips > 0:
		return ThreeOfAKind
	case pairs >= 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}

// rankMask returns a bitmask of the distinct ranks present,
// bit 0 = Two through bit 12 = Ace.
func rankMask(cards []deck.Card) uint16 {
	var mask uint16
	for _, c := range cards {
		mask |= 1 << c.Rank.Index()
	}
	return mask
}

// hasStraight reports whether five consecutive ranks are present. The shift
// cascade finds any ace-high-or-lower run; the wheel needs its own check
// because the ace bit sits at the top of the mask.
func hasStraight(mask uint16) bool {
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return true
	}
	return mask&wheelMask == wheelMask
}
