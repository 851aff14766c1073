package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

const (
	defaultProfilePath   = "player.json"
	defaultLogPath       = "blackjack.log"
	defaultStartingChips = 1000
)

type config struct {
	profilePath   string
	logPath       string
	delayScale    float64
	startingChips int
}

// loadConfig reads the optional .env file and the BLACKJACK_* environment
// variables, falling back to defaults for anything unset.
func loadConfig() config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		pterm.Warning.Printfln("Error loading .env file: %v", err)
	}

	cfg := config{
		profilePath:   envOr("BLACKJACK_PROFILE", defaultProfilePath),
		logPath:       envOr("BLACKJACK_LOG", defaultLogPath),
		delayScale:    1,
		startingChips: defaultStartingChips,
	}
	if v := os.Getenv("BLACKJACK_DELAY"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale < 0 {
			pterm.Warning.Printfln("Ignoring invalid BLACKJACK_DELAY %q", v)
		} else {
			cfg.delayScale = scale
		}
	}
	if v := os.Getenv("BLACKJACK_CHIPS"); v != "" {
		chips, err := strconv.Atoi(v)
		if err != nil || chips <= 0 {
			pterm.Warning.Printfln("Ignoring invalid BLACKJACK_CHIPS %q", v)
		} else {
			cfg.startingChips = chips
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
