package game

// Outcome categorizes a settled round.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLoss      Outcome = "loss"
	OutcomeTie       Outcome = "tie"
	OutcomeBlackjack Outcome = "blackjack"
)

// IsWin reports whether the outcome counts as a won game. A natural
// blackjack counts as a win.
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// Settlement is the pure result of a round: the delta applied to the chip
// balance and the outcome category.
type Settlement struct {
	Delta   int
	Outcome Outcome
}

// SettleNatural settles a round in which either side was dealt 21 on the
// initial two cards, before any hit. A player natural pays 3:2 on top of
// the returned bet.
func SettleNatural(playerTotal, dealerTotal, bet int) Settlement {
	switch {
	case playerTotal == 21 && dealerTotal == 21:
		return Settlement{Delta: 0, Outcome: OutcomeTie}
	case playerTotal == 21:
		return Settlement{Delta: bet + bet*3/2, Outcome: OutcomeBlackjack}
	default:
		return Settlement{Delta: -bet, Outcome: OutcomeLoss}
	}
}

// SettleStandard settles a round after the player stood, auto-stood at 21
// or busted. A player bust is final regardless of the dealer's hand; the
// dealer never draws in that path.
func SettleStandard(playerTotal, dealerTotal, bet int) Settlement {
	switch {
	case playerTotal > 21:
		return Settlement{Delta: -bet, Outcome: OutcomeLoss}
	case dealerTotal > 21 || playerTotal > dealerTotal:
		return Settlement{Delta: bet, Outcome: OutcomeWin}
	case dealerTotal == playerTotal:
		return Settlement{Delta: 0, Outcome: OutcomeTie}
	default:
		return Settlement{Delta: -bet, Outcome: OutcomeLoss}
	}
}
