package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/terminal-games/blackjack/domain/cards"
	"github.com/terminal-games/blackjack/profile"
)

// Phase tags the state the session is currently in. Every command is routed
// to the current phase's handler; commands that mean nothing in the current
// phase are no-ops.
type Phase string

const (
	PhaseBetting      Phase = "betting"
	PhaseConfirmed    Phase = "confirmed"
	PhaseDealing      Phase = "dealing"
	PhaseNaturalCheck Phase = "natural-check"
	PhasePlayerTurn   Phase = "player-turn"
	PhaseDealerTurn   Phase = "dealer-turn"
	PhaseSettled      Phase = "settled"
)

// Command is the closed vocabulary the presentation adapter feeds into the
// session.
type Command string

const (
	CmdBetUp      Command = "adjustBetUp"
	CmdBetDown    Command = "adjustBetDown"
	CmdConfirmBet Command = "confirmBet"
	CmdChangeBet  Command = "changeBet"
	CmdStartRound Command = "startRound"
	CmdHit        Command = "hit"
	CmdStand      Command = "stand"
	CmdRestart    Command = "restart"
	CmdQuit       Command = "quit"
)

const (
	startingBet = 50
	betStep     = 25
)

// Presentation pauses between dealer draws and reveals. These pace the UI
// for readability and carry no correctness: tests run with a zero
// scheduler.
const (
	pauseNaturalReveal = 2 * time.Second
	pausePlayerAction  = 1500 * time.Millisecond
	pauseDealerDraw    = 2 * time.Second
	pauseFinalReveal   = 2500 * time.Millisecond
)

// Scheduler is the presentation-delay hook the session calls between dealer
// draws and before reveals. The rules engine stays synchronous; only the
// scheduler knows about real time.
type Scheduler interface {
	Pause(d time.Duration)
}

// SleepScheduler pauses in real time, scaled by Scale (0 disables pacing
// entirely).
type SleepScheduler struct {
	Scale float64
}

func (s SleepScheduler) Pause(d time.Duration) {
	time.Sleep(time.Duration(float64(d) * s.Scale))
}

type stillScheduler struct{}

func (stillScheduler) Pause(time.Duration) {}

// Saver persists the player profile. The profile is rewritten in full
// immediately after every settlement.
type Saver interface {
	Save(profile.Profile) error
}

// Session is the game state machine. It owns the round context (deck,
// hands, bet, phase) and the player profile, and is advanced exclusively by
// HandleCommand. Commands are processed to completion before the next one
// is dequeued, so exactly one transition is ever in flight and no separate
// re-entrancy flag is needed.
type Session struct {
	prof  *profile.Profile
	store Saver
	rng   *rand.Rand
	sched Scheduler
	view  func(Snapshot)
	log   *slog.Logger

	phase   Phase
	deck    cards.Deck
	player  cards.Hand
	dealer  cards.Hand
	bet     int
	result  Settlement
	message string
}

// NewSession creates a session around the given profile and store. The rng
// drives the shuffle, the scheduler paces dealer draws, and view receives a
// fresh snapshot after every visible state change; nil view, scheduler, rng
// and logger get working defaults.
func NewSession(prof *profile.Profile, store Saver, rng *rand.Rand, sched Scheduler, view func(Snapshot), logger *slog.Logger) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sched == nil {
		sched = stillScheduler{}
	}
	if view == nil {
		view = func(Snapshot) {}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		prof:  prof,
		store: store,
		rng:   rng,
		sched: sched,
		view:  view,
		log:   logger,
		phase: PhaseBetting,
		bet:   startingBet,
	}
}

// Phase returns the session's current phase tag.
func (s *Session) Phase() Phase {
	return s.phase
}

// Bet returns the chip amount currently staked.
func (s *Session) Bet() int {
	return s.bet
}

// Start enters the first betting phase and renders it.
func (s *Session) Start() {
	s.reset()
}

// HandleCommand advances the state machine with one command and reports
// whether the player quit. Quit is honored in every phase; any other
// unrecognized or out-of-phase command is a no-op.
func (s *Session) HandleCommand(cmd Command) (quit bool) {
	if cmd == CmdQuit {
		s.log.Warn("player quit", "phase", string(s.phase))
		return true
	}
	switch s.phase {
	case PhaseBetting:
		switch cmd {
		case CmdBetUp:
			// A bankrupt profile can still stake the 50 floor, as the
			// table minimum never drops below it.
			s.bet = min(s.bet+betStep, max(s.prof.Chips, startingBet))
			s.log.Debug("bet increased", "bet", s.bet)
			s.render()
		case CmdBetDown:
			s.bet = max(s.bet-betStep, startingBet)
			s.log.Debug("bet decreased", "bet", s.bet)
			s.render()
		case CmdConfirmBet:
			s.log.Debug("bet confirmed", "bet", s.bet)
			s.phase = PhaseConfirmed
			s.render()
		}
	case PhaseConfirmed:
		switch cmd {
		case CmdChangeBet:
			s.log.Debug("bet change requested")
			s.phase = PhaseBetting
			s.render()
		case CmdStartRound:
			s.startRound()
		}
	case PhasePlayerTurn:
		switch cmd {
		case CmdHit:
			s.hit()
		case CmdStand:
			s.stand()
		}
	case PhaseSettled:
		if cmd == CmdRestart {
			s.log.Info("player chose to restart")
			s.reset()
		}
	}
	return false
}

// reset discards the previous round context and re-enters betting.
func (s *Session) reset() {
	s.phase = PhaseBetting
	s.bet = startingBet
	s.deck = nil
	s.player = nil
	s.dealer = nil
	s.result = Settlement{}
	s.message = ""
	s.log.Info("betting phase started", "chips", s.prof.Chips)
	s.render()
}

// startRound creates a fresh shuffled deck, deals the opening hands in
// alternating order and either settles naturals immediately or hands
// control to the player.
func (s *Session) startRound() {
	if s.bet < startingBet || s.bet > max(s.prof.Chips, startingBet) {
		panic(fmt.Sprintf("game: bet %d outside [%d, %d]", s.bet, startingBet, max(s.prof.Chips, startingBet)))
	}
	s.log.Info("round starting", "bet", s.bet, "chips", s.prof.Chips)

	s.phase = PhaseDealing
	s.deck = cards.NewDeck()
	s.deck.Shuffle(s.rng)
	s.player = nil
	s.dealer = nil
	for i := 0; i < 2; i++ {
		s.player = append(s.player, s.deck.Draw())
		s.dealer = append(s.dealer, s.deck.Draw())
	}

	playerTotal := Total(s.player)
	dealerTotal := Total(s.dealer)
	s.log.Info("initial cards dealt",
		"player", handLabels(s.player),
		"dealer", handLabels(s.dealer),
		"playerTotal", playerTotal,
		"dealerVisible", Total(s.dealer[1:]))

	if playerTotal == 21 || dealerTotal == 21 {
		s.naturalCheck(playerTotal, dealerTotal)
		return
	}

	s.phase = PhasePlayerTurn
	s.render()
}

// naturalCheck settles the round under natural-blackjack rules, skipping
// the player and dealer turns entirely.
func (s *Session) naturalCheck(playerTotal, dealerTotal int) {
	s.phase = PhaseNaturalCheck
	s.log.Info("natural blackjack scenario",
		"playerTotal", playerTotal,
		"dealerTotal", dealerTotal)
	s.render() // both hands revealed
	s.sched.Pause(pauseNaturalReveal)

	st := SettleNatural(playerTotal, dealerTotal, s.bet)
	var msg string
	switch {
	case st.Outcome == OutcomeTie:
		msg = "Both have Blackjack! Push (Tie)."
	case st.Outcome == OutcomeBlackjack:
		msg = fmt.Sprintf("Blackjack! You win %d chips!", st.Delta)
	default:
		msg = "Dealer has Blackjack! You lose."
	}
	s.settle(st, msg)
}

// hit deals one card to the player. A bust ends the round without a dealer
// turn; reaching 21 stands automatically.
func (s *Session) hit() {
	card := s.deck.Draw()
	s.player = append(s.player, card)
	total := Total(s.player)
	s.log.Info("player hit", "card", card.Label(), "total", total, "cards", len(s.player))

	switch {
	case total > 21:
		s.log.Info("player busted", "total", total)
		s.render()
		s.sched.Pause(pausePlayerAction)
		s.settle(SettleStandard(total, Total(s.dealer), s.bet), "Bust! You lose.")
	case total == 21:
		s.log.Info("player reached 21, standing automatically")
		s.render()
		s.sched.Pause(pausePlayerAction)
		s.dealerTurn()
	default:
		s.render()
	}
}

func (s *Session) stand() {
	s.log.Info("player stands", "total", Total(s.player), "cards", len(s.player))
	s.dealerTurn()
}

// dealerTurn reveals the hole card, then draws until the dealer's total
// reaches 17. The dealer stands on every 17, soft included.
func (s *Session) dealerTurn() {
	s.phase = PhaseDealerTurn
	total := Total(s.dealer)
	s.log.Info("dealer turn started", "dealerTotal", total)
	s.render() // hole card revealed

	for total < 17 {
		s.sched.Pause(pauseDealerDraw)
		card := s.deck.Draw()
		s.dealer = append(s.dealer, card)
		total = Total(s.dealer)
		s.log.Info("dealer drew card", "card", card.Label(), "total", total)
		s.render()
	}
	s.sched.Pause(pauseFinalReveal)

	st := SettleStandard(Total(s.player), total, s.bet)
	var msg string
	switch st.Outcome {
	case OutcomeWin:
		msg = "You won!"
	case OutcomeTie:
		msg = "Push (Tie)."
	default:
		msg = "You lost."
	}
	s.settle(st, msg)
}

// settle applies the settlement to the profile, persists it and presents
// the result. A failed save is reported to the log sink only; the in-memory
// outcome stands for the rest of the process.
func (s *Session) settle(st Settlement, msg string) {
	s.prof.Chips += st.Delta
	s.prof.GamesPlayed++
	switch {
	case st.Outcome.IsWin():
		s.prof.GamesWon++
	case st.Outcome == OutcomeTie:
		s.prof.GamesTied++
	default:
		s.prof.GamesLost++
	}

	s.result = st
	s.message = msg
	s.phase = PhaseSettled
	s.log.Info("round settled",
		"outcome", string(st.Outcome),
		"delta", st.Delta,
		"bet", s.bet,
		"chips", s.prof.Chips)

	if err := s.store.Save(*s.prof); err != nil {
		s.log.Error("saving profile failed", "err", err)
	}
	s.render()
}

func (s *Session) render() {
	s.view(s.Snapshot())
}

func handLabels(hand cards.Hand) []string {
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = c.Label()
	}
	return labels
}
