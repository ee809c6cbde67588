package game

import "strings"

// Difficulty names the fixed set of chart difficulties.
type Difficulty uint8

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Challenge
)

// Level bounds for a chart; parsed levels are clamped into this range.
const (
	MinLevel = 1
	MaxLevel = 20
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Challenge:
		return "Challenge"
	}
	return "unknown"
}

// ParseDifficulty matches a difficulty name case-insensitively. Unrecognized
// names are rejected rather than defaulted.
func ParseDifficulty(name string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "beginner":
		return Beginner, true
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "challenge":
		return Challenge, true
	}
	return Beginner, false
}
