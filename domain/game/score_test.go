package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminal-games/blackjack/domain/cards"
)

// handOf builds a hand from ranks, cycling suits. Scoring never looks at
// suits.
func handOf(t *testing.T, ranks ...uint8) []cards.Card {
	t.Helper()
	hand := make([]cards.Card, len(ranks))
	for i, r := range ranks {
		c, err := cards.NewCard(uint8(i%4), r)
		require.NoError(t, err)
		hand[i] = c
	}
	return hand
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		ranks []uint8
		want  int
	}{
		{"two aces demote one", []uint8{cards.Ace, cards.Ace, 9}, 21},
		{"two faces", []uint8{cards.King, cards.Queen}, 20},
		{"ace demoted after draw", []uint8{cards.Ace, cards.King, 5}, 16},
		{"natural", []uint8{cards.Ace, cards.King}, 21},
		{"soft twenty", []uint8{cards.Ace, 9}, 20},
		{"three aces with eight", []uint8{cards.Ace, cards.Ace, cards.Ace, 8}, 21},
		{"low hand", []uint8{2, 3}, 5},
		{"bust with no aces", []uint8{cards.King, cards.Queen, 5}, 25},
		{"bust with demoted ace", []uint8{cards.Ace, cards.King, cards.Queen, 5}, 26},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(handOf(t, tt.ranks...)))
		})
	}
}

func TestTotal_VisibleSubsequence(t *testing.T) {
	dealer := handOf(t, cards.King, 7, 4)
	assert.Equal(t, 21, Total(dealer))
	assert.Equal(t, 11, Total(dealer[1:])) // hole card hidden
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural(handOf(t, cards.Ace, cards.King)))
	assert.True(t, IsNatural(handOf(t, 10, cards.Ace)))
	assert.False(t, IsNatural(handOf(t, cards.King, cards.Queen)))
	// 21 made with three cards is not a natural.
	assert.False(t, IsNatural(handOf(t, 7, 7, 7)))
}

func TestIsBust(t *testing.T) {
	assert.True(t, IsBust(handOf(t, cards.King, cards.Queen, 5)))
	assert.False(t, IsBust(handOf(t, cards.Ace, cards.King, cards.Queen)))
	assert.False(t, IsBust(handOf(t, cards.King, cards.Queen)))
}
