package game

import "strings"

// Grade is the closed set of judgement outcomes, best to worst.
type Grade uint8

const (
	Marvelous Grade = iota
	Perfect
	Great
	Good
	Boo
	Miss
)

// NumGrades sizes per-grade count tables.
const NumGrades = 6

func (g Grade) String() string {
	switch g {
	case Marvelous:
		return "marvelous"
	case Perfect:
		return "perfect"
	case Great:
		return "great"
	case Good:
		return "good"
	case Boo:
		return "boo"
	case Miss:
		return "miss"
	}
	return "unknown"
}

// BreaksCombo reports whether this grade resets the combo. Great and better
// keep it alive; good keeps it alive too but does break a full combo.
func (g Grade) BreaksCombo() bool {
	switch g {
	case Marvelous, Perfect, Great, Good:
		return false
	case Boo, Miss:
		return true
	}
	return true
}

// ParseGrade maps a grade name back to its value, for settings files and
// stored rows.
func ParseGrade(name string) (Grade, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "marvelous":
		return Marvelous, true
	case "perfect":
		return Perfect, true
	case "great":
		return Great, true
	case "good":
		return Good, true
	case "boo":
		return Boo, true
	case "miss":
		return Miss, true
	}
	return Miss, false
}
