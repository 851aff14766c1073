package game

import "github.com/terminal-games/blackjack/domain/cards"

// Total computes the blackjack value of a hand. Number cards count face
// value, faces count 10 and aces start at 11; while the total exceeds 21,
// aces are demoted to 1 one at a time. The result is the best total not
// above 21 when one exists, otherwise the all-aces-demoted minimum, which
// may still be a bust.
//
// Callers pass whichever subsequence is relevant, so the same function
// scores full hands and the dealer's visible cards.
func Total(hand []cards.Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		switch {
		case c.Rank() == cards.Ace:
			aces++
			total += 11
		case c.Rank() >= 10:
			total += 10
		default:
			total += int(c.Rank())
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBust reports whether the hand exceeds 21.
func IsBust(hand []cards.Card) bool {
	return Total(hand) > 21
}

// IsNatural reports whether the hand is a natural blackjack: exactly two
// cards totaling 21.
func IsNatural(hand []cards.Card) bool {
	return len(hand) == 2 && Total(hand) == 21
}
