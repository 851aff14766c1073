package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/terminal-games/blackjack/domain/game"
	"github.com/terminal-games/blackjack/profile"
)

func main() {
	cfg := loadConfig()
	logger := newLogger(cfg.logPath)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print("\n" + title)

	store := profile.Store{Path: cfg.profilePath}
	player, err := store.Load(cfg.startingChips)
	if err != nil {
		pterm.Error.Printfln("Could not load player profile: %v", err)
		os.Exit(1)
	}
	logger.Info("blackjack game initialized",
		"chips", player.Chips,
		"gamesPlayed", player.GamesPlayed)

	renderWelcome(player)

	listener := newKeyListener()
	go func() {
		if err := listener.listen(); err != nil {
			logger.Error("keyboard listener failed", "err", err)
			os.Exit(1)
		}
	}()

	// Any key continues past the welcome screen.
	if key := <-listener.pressed; key.Code == keys.CtrlC {
		renderGoodbye(cfg.profilePath)
		return
	}

	view, err := newRenderer()
	if err != nil {
		pterm.Error.Printfln("Could not start the renderer: %v", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(
		&player,
		store,
		rng,
		game.SleepScheduler{Scale: cfg.delayScale},
		view.Render,
		logger,
	)
	session.Start()

	for key := range listener.pressed {
		cmd, ok := commandFor(key, session.Phase())
		if !ok {
			continue
		}
		if session.HandleCommand(cmd) {
			// Ctrl-C already stopped the listener on its own.
			if key.Code != keys.CtrlC {
				listener.stop()
			}
			break
		}
	}

	view.Stop()
	renderGoodbye(cfg.profilePath)
}

// newLogger writes structured JSON entries to the session log file, which
// is cleared at startup. When the file cannot be opened the logger falls
// back to pterm's terminal handler.
func newLogger(path string) *slog.Logger {
	f, err := os.Create(path)
	if err != nil {
		pterm.Warning.Printfln("Could not open log file %s: %v", path, err)
		return slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
