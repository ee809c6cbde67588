package score

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadstep/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testResults(score int) Results {
	return Results{
		SongID:     "song-1",
		Title:      "Test",
		Difficulty: game.Hard,
		Level:      9,
		Score:      score,
		Grade:      "AA",
		MaxCombo:   120,
		Counts:     countsOf(game.Marvelous, game.Perfect, game.Great),
		TotalNotes: 3,
		Percentage: 87.67,
		FullCombo:  true,
	}
}

func TestStoreBestEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("song-1", game.Hard)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestStoreSaveAndBest(t *testing.T) {
	store := openTestStore(t)

	r := testResults(876700)
	require.NoError(t, store.Save(r))

	best, err := store.Best("song-1", game.Hard)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, r, *best)
}

func TestStoreBestPicksHighestScore(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testResults(500000)))
	require.NoError(t, store.Save(testResults(910000)))
	require.NoError(t, store.Save(testResults(700000)))

	best, err := store.Best("song-1", game.Hard)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 910000, best.Score)
}

func TestStoreBestIsKeyedBySongAndDifficulty(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testResults(500000)))

	best, err := store.Best("song-1", game.Easy)
	require.NoError(t, err)
	assert.Nil(t, best, "a different difficulty is a different key")

	best, err = store.Best("song-2", game.Hard)
	require.NoError(t, err)
	assert.Nil(t, best, "a different song is a different key")
}
