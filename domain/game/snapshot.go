package game

import "github.com/terminal-games/blackjack/domain/cards"

// Snapshot is the render-state handed to the presentation adapter. It is a
// pure function of the session: re-taking a snapshot without an intervening
// command yields an identical value.
type Snapshot struct {
	Chips       int
	Bet         int
	Phase       Phase
	Player      []cards.Card
	Dealer      []cards.Card
	HideHole    bool
	PlayerTotal int
	DealerTotal int // visible cards only while the hole card is hidden
	Outcome     Outcome
	Message     string
	Prompt      string
}

// Snapshot captures the current render-state. Hands are copied so the
// adapter can never reach back into the round context.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Chips:   s.prof.Chips,
		Bet:     s.bet,
		Phase:   s.phase,
		Outcome: s.result.Outcome,
		Message: s.message,
	}
	if len(s.player) > 0 {
		snap.Player = append([]cards.Card(nil), s.player...)
		snap.Dealer = append([]cards.Card(nil), s.dealer...)
		snap.PlayerTotal = Total(s.player)
		// A bust settles the round before the dealer acts, so the hole
		// card stays down on the result screen.
		snap.HideHole = s.phase == PhaseDealing || s.phase == PhasePlayerTurn ||
			(s.phase == PhaseSettled && snap.PlayerTotal > 21)
		if snap.HideHole {
			snap.DealerTotal = Total(s.dealer[1:])
		} else {
			snap.DealerTotal = Total(s.dealer)
		}
	}
	snap.Prompt = promptFor(snap.Phase, snap.PlayerTotal)
	return snap
}

func promptFor(phase Phase, playerTotal int) string {
	switch phase {
	case PhaseBetting:
		return "Use ↑/↓ to adjust, Enter to confirm"
	case PhaseConfirmed:
		return "Press Backspace to change bet or Enter to start."
	case PhasePlayerTurn:
		switch {
		case playerTotal > 21:
			return ""
		case playerTotal == 21:
			return "21! Standing automatically..."
		default:
			return "Press (h) to Hit, (s) to Stand"
		}
	case PhaseNaturalCheck, PhaseDealerTurn:
		return "Dealer's turn..."
	case PhaseSettled:
		return "Press (r) to restart, (q) to quit."
	}
	return ""
}
