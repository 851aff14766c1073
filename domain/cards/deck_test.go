package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cardCounts(d Deck) map[Card]int {
	counts := make(map[Card]int, len(d))
	for _, c := range d {
		counts[c]++
	}
	return counts
}

func TestNewDeck_AllFiftyTwoUnique(t *testing.T) {
	deck := NewDeck()
	assert.Len(t, deck, 52)

	counts := cardCounts(deck)
	assert.Len(t, counts, 52)
	for card, n := range counts {
		assert.Equal(t, 1, n, "card %s appears %d times", card.Label(), n)
	}
}

func TestNewDeck_FixedOrder(t *testing.T) {
	deck := NewDeck()
	// Suit-major, rank-minor: the deck starts with the ace of clubs and
	// ends with the king of spades.
	assert.Equal(t, uint8(Club), deck[0].Suit())
	assert.Equal(t, uint8(Ace), deck[0].Rank())
	assert.Equal(t, uint8(Spade), deck[51].Suit())
	assert.Equal(t, uint8(King), deck[51].Rank())
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	deck := NewDeck()
	before := cardCounts(deck)

	deck.Shuffle(rand.New(rand.NewSource(42)))

	assert.Len(t, deck, 52)
	assert.Equal(t, before, cardCounts(deck))
}

func TestShuffle_ChangesOrder(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(42)))
	assert.NotEqual(t, NewDeck(), deck)
}

func TestDraw_PopsFromEnd(t *testing.T) {
	deck := NewDeck()
	top := deck[len(deck)-1]

	card := deck.Draw()

	assert.Equal(t, top, card)
	assert.Len(t, deck, 51)
}

func TestDraw_EmptyDeckPanics(t *testing.T) {
	deck := Deck{}
	assert.Panics(t, func() { deck.Draw() })
}
