package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettleNatural_PlayerBlackjack(t *testing.T) {
	st := SettleNatural(21, 20, 100)
	assert.Equal(t, OutcomeBlackjack, st.Outcome)
	// The bet comes back plus a 3:2 payout: 100 + floor(150).
	assert.Equal(t, 250, st.Delta)
	assert.True(t, st.Outcome.IsWin())
}

func TestSettleNatural_OddBetFloorsPayout(t *testing.T) {
	st := SettleNatural(21, 19, 75)
	assert.Equal(t, OutcomeBlackjack, st.Outcome)
	assert.Equal(t, 75+112, st.Delta) // floor(75 * 1.5) = 112
}

func TestSettleNatural_BothBlackjack(t *testing.T) {
	st := SettleNatural(21, 21, 100)
	assert.Equal(t, OutcomeTie, st.Outcome)
	assert.Equal(t, 0, st.Delta)
}

func TestSettleNatural_DealerBlackjack(t *testing.T) {
	st := SettleNatural(19, 21, 100)
	assert.Equal(t, OutcomeLoss, st.Outcome)
	assert.Equal(t, -100, st.Delta)
}

func TestSettleStandard(t *testing.T) {
	tests := []struct {
		name        string
		player      int
		dealer      int
		bet         int
		wantOutcome Outcome
		wantDelta   int
	}{
		{"player bust loses regardless of dealer", 24, 3, 50, OutcomeLoss, -50},
		{"player bust loses even against dealer bust", 24, 22, 50, OutcomeLoss, -50},
		{"dealer bust", 20, 24, 50, OutcomeWin, 50},
		{"player higher", 20, 19, 50, OutcomeWin, 50},
		{"push", 18, 18, 50, OutcomeTie, 0},
		{"dealer higher", 18, 19, 50, OutcomeLoss, -50},
		{"dealer twenty-one", 20, 21, 75, OutcomeLoss, -75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := SettleStandard(tt.player, tt.dealer, tt.bet)
			assert.Equal(t, tt.wantOutcome, st.Outcome)
			assert.Equal(t, tt.wantDelta, st.Delta)
		})
	}
}

func TestOutcomeIsWin(t *testing.T) {
	assert.True(t, OutcomeWin.IsWin())
	assert.True(t, OutcomeBlackjack.IsWin())
	assert.False(t, OutcomeLoss.IsWin())
	assert.False(t, OutcomeTie.IsWin())
}
