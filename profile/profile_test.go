package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "player.json")}
	p := Profile{Chips: 850, GamesPlayed: 7, GamesWon: 3, GamesLost: 3, GamesTied: 1}

	require.NoError(t, store.Save(p))

	got, err := store.Load(1000)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestStore_MissingFileYieldsFreshProfile(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "player.json")}

	got, err := store.Load(1000)
	require.NoError(t, err)
	assert.Equal(t, Profile{Chips: 1000}, got)
}

func TestStore_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player.json")
	require.NoError(t, os.WriteFile(path, []byte("{chips:"), 0o644))

	_, err := Store{Path: path}.Load(1000)
	assert.Error(t, err)
}

func TestStore_WritesExpectedShape(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "player.json")}
	require.NoError(t, store.Save(Profile{Chips: 500, GamesPlayed: 2, GamesWon: 1, GamesLost: 1}))

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)

	var raw map[string]int
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"chips", "gamesPlayed", "gamesWon", "gamesLost", "gamesTied"} {
		assert.Contains(t, raw, key)
	}
}

func TestStore_SaveRewritesInFull(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "player.json")}
	require.NoError(t, store.Save(Profile{Chips: 999, GamesPlayed: 9, GamesWon: 9}))
	require.NoError(t, store.Save(Profile{Chips: 100}))

	got, err := store.Load(0)
	require.NoError(t, err)
	assert.Equal(t, Profile{Chips: 100}, got)
}
