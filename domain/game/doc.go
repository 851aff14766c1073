// Package game implements the blackjack rules engine and the session state
// machine that drives a single-player round.
//
// # Core Types
//
// Session: owns the authoritative round state (deck, hands, bet, phase) and
// the player profile, and advances exclusively through HandleCommand.
//
// Settlement: the pure result of a round, a chip delta plus an outcome
// category, produced by SettleNatural and SettleStandard.
//
// Snapshot: the render-state handed to the presentation adapter.
//
// # Game Flow
//
// A round progresses betting → confirmed → dealing → natural-check →
// player-turn → dealer-turn → settled, then restarts or quits. The dealer
// draws to 17 and stands on every 17, soft or hard. Pacing between dealer
// draws is a presentation concern behind the Scheduler interface; the
// engine itself is synchronous.
package game
