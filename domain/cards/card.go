package cards

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Rank constants for face cards and ace
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// FaceDown is the display character for hidden cards
const FaceDown = "░"

// Card represents a playing card with suit and rank. Cards are immutable
// values; a card has no identity beyond its suit and rank.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// IsRed reports whether the card's suit is printed in red (♦ or ♥).
func (c Card) IsRed() bool {
	return c.suit == Diamond || c.suit == Heart
}

// SuitSymbol returns the plain suit symbol without any styling.
func (c Card) SuitSymbol() string {
	switch c.suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// RankLabel returns the rank abbreviation (A, 2-10, J, Q, K).
func (c Card) RankLabel() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", c.rank)
	}
}

// Label returns the unstyled rank+suit form used in log entries, e.g. "A♠".
func (c Card) Label() string {
	return c.RankLabel() + c.SuitSymbol()
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) colored the way they appear on the table.
func (c Card) String() string {
	if c.rank == 0 {
		return FaceDown
	}
	suit := c.SuitSymbol()
	if c.IsRed() {
		suit = pterm.LightRed(suit)
	} else {
		suit = pterm.Black(suit)
	}
	return c.RankLabel() + suit
}
