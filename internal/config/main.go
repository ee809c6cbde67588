package config

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"quadstep/internal/game"
	"quadstep/internal/score"
)

var (
	Directory     = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Offset        = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("1ms").Short('p').Duration()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	RefreshRate   = kingpin.Flag("refresh-rate", "Monitor refresh rate").Default("240.0").Short('R').Float()
	BarRow        = kingpin.Flag("bar-row", "Console row to render hit bar").Default("8").Uint()
	DBPath        = kingpin.Flag("db", "Score database path").Default("scores.db").String()
	Settings      = kingpin.Flag("settings", "Gameplay settings file").Short('c').String()

	scrollSpeedModifier = kingpin.Flag("scroll-speed", "Scroll speed, lower is faster").Default("3").Short('s').Uint()
	keys                = kingpin.Flag("keys", "Lane keys, left to right").Default("dfjk").Short('k').String()

	ScrollSpeed float64
)

// GameSettings is the optional YAML tuning file. Absent fields keep their
// defaults.
type GameSettings struct {
	Keys   string         `yaml:"keys"`
	Health map[string]int `yaml:"health"`
}

func Keys() []rune {
	return []rune(*keys)
}

// KeyDirection maps a pressed rune to its lane.
func KeyDirection(r rune) (game.Direction, bool) {
	for i, c := range Keys() {
		if r == c && i < game.NumDirections {
			return game.Direction(i), true
		}
	}
	return 0, false
}

// Parse reads the command line and derives the scroll factors. Called once
// from main, not from init, so tests can import this package.
func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
	ScrollSpeed = float64(*scrollSpeedModifier) * 1000 / *RefreshRate
}

// LoadSettings reads the optional gameplay tuning file and returns the
// health delta table, defaulted and then overridden per grade name. An empty
// path is not an error.
func LoadSettings(path string) (score.HealthTable, error) {
	health := score.DefaultHealth()
	if path == "" {
		return health, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return health, fmt.Errorf("unable to read settings file: %w", err)
	}
	var s GameSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return health, fmt.Errorf("unable to parse settings file: %w", err)
	}
	if s.Keys != "" {
		*keys = s.Keys
	}
	for name, delta := range s.Health {
		g, ok := game.ParseGrade(name)
		if !ok {
			return health, fmt.Errorf("unknown grade %q in settings file", name)
		}
		health[g] = delta
	}
	return health, nil
}
