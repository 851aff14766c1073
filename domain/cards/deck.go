package cards

import "math/rand"

// Deck is an ordered sequence of cards dealt from the end. Each round owns
// a fresh deck; a depleted deck is discarded, never reshuffled.
type Deck []Card

// Hand is the ordered sequence of cards held by one participant for the
// duration of a round. Hands only grow.
type Hand []Card

// NewDeck returns the full 52-card deck in a fixed order: suit-major,
// rank-minor (all clubs ace through king, then diamonds, and so on).
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for suit := uint8(Club); suit <= Spade; suit++ {
		for rank := uint8(Ace); rank <= King; rank++ {
			deck = append(deck, Card{suit: suit, rank: rank})
		}
	}
	return deck
}

// Shuffle permutes the deck in place with a Fisher-Yates walk from the last
// index down, so every permutation is equally likely given a sound rng.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw deals the top card by popping from the deck's end. Drawing from an
// empty deck is a logic bug (52 cards always suffice for one round with no
// splits), so it panics rather than failing silently.
func (d *Deck) Draw() Card {
	if len(*d) == 0 {
		panic("cards: draw from empty deck")
	}
	card := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return card
}
