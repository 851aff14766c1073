package main

import (
	"sync/atomic"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"

	"github.com/terminal-games/blackjack/domain/game"
)

// keyListener captures raw keypresses and forwards them to the dispatcher.
// Sends are non-blocking: a key pressed while a prior command's transition
// is still completing is dropped, not queued, so exactly one command is
// ever being handled.
type keyListener struct {
	pressed  chan keys.Key
	quitting atomic.Bool
}

func newKeyListener() *keyListener {
	return &keyListener{pressed: make(chan keys.Key)}
}

// listen blocks reading the keyboard until a Ctrl-C is delivered to the
// dispatcher, or until stop is called. A Ctrl-C that arrives while the
// dispatcher is busy is dropped like any other key and must not end the
// listener: the dispatcher would then wait forever on a channel nothing
// feeds.
func (l *keyListener) listen() error {
	return keyboard.Listen(func(key keys.Key) (bool, error) {
		stop := false
		select {
		case l.pressed <- key:
			stop = key.Code == keys.CtrlC
		default:
			stop = l.quitting.Load() && key.Code == keys.CtrlC
		}
		return stop, nil
	})
}

// stop unwinds the keyboard listener so the terminal is restored before the
// process exits. The dispatcher is gone at this point, so the wind-down
// Ctrl-C is accepted even though nothing receives it.
func (l *keyListener) stop() {
	l.quitting.Store(true)
	keyboard.SimulateKeyPress(keys.CtrlC)
}

// commandFor translates a named key event into a state machine command.
// Enter confirms the bet while betting and starts the round once the bet is
// confirmed; every other key has one meaning.
func commandFor(key keys.Key, phase game.Phase) (game.Command, bool) {
	switch key.Code {
	case keys.CtrlC:
		return game.CmdQuit, true
	case keys.Up:
		return game.CmdBetUp, true
	case keys.Down:
		return game.CmdBetDown, true
	case keys.Backspace:
		return game.CmdChangeBet, true
	case keys.Enter:
		if phase == game.PhaseConfirmed {
			return game.CmdStartRound, true
		}
		return game.CmdConfirmBet, true
	case keys.RuneKey:
		switch key.String() {
		case "h":
			return game.CmdHit, true
		case "s":
			return game.CmdStand, true
		case "r":
			return game.CmdRestart, true
		case "q":
			return game.CmdQuit, true
		}
	}
	return "", false
}
