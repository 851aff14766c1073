// Package profile holds the persistent player record and its JSON file
// store. The record is loaded once at startup and rewritten in full after
// every settlement, so a crash mid-round loses at most the round in
// progress, never a settled one.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Profile is the persistent player record. After every completed
// settlement GamesPlayed equals GamesWon+GamesLost+GamesTied.
type Profile struct {
	Chips       int `json:"chips"`
	GamesPlayed int `json:"gamesPlayed"`
	GamesWon    int `json:"gamesWon"`
	GamesLost   int `json:"gamesLost"`
	GamesTied   int `json:"gamesTied"`
}

// Store reads and rewrites the profile at a fixed path.
type Store struct {
	Path string
}

// Load reads the profile from disk. A missing file yields a fresh profile
// with startingChips so a first run works without setup.
func (s Store) Load(startingChips int) (Profile, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Profile{Chips: startingChips}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", s.Path, err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", s.Path, err)
	}
	return p, nil
}

// Save rewrites the profile file in full, never patching it.
func (s Store) Save(p Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", s.Path, err)
	}
	return nil
}
