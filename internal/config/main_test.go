package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadstep/internal/game"
	"quadstep/internal/score"
)

func TestLoadSettingsEmptyPath(t *testing.T) {
	health, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, score.DefaultHealth(), health)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
keys: arst
health:
  miss: -20
  boo: -10
  marvelous: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	health, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, -20, health[game.Miss])
	assert.Equal(t, -10, health[game.Boo])
	assert.Equal(t, 3, health[game.Marvelous])
	// Untouched grades keep their defaults.
	assert.Equal(t, score.DefaultHealth()[game.Perfect], health[game.Perfect])

	dir, ok := KeyDirection('a')
	require.True(t, ok)
	assert.Equal(t, game.Left, dir)
	dir, ok = KeyDirection('t')
	require.True(t, ok)
	assert.Equal(t, game.Right, dir)
	_, ok = KeyDirection('q')
	assert.False(t, ok)
}

func TestLoadSettingsUnknownGrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("health:\n  excellent: 5\n"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "excellent")
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys: [broken\n"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
