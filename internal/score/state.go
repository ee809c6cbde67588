package score

import (
	"quadstep/internal/game"
)

const (
	maxHealth     = 100
	startHealth   = 50
	maxMultiplier = 4
)

// gradeWeight is the per-note percentage value of a grade. The running score
// multiplies it by the combo multiplier; the final score does not. Both
// paths share this table so the weights cannot drift apart.
func gradeWeight(g game.Grade) int {
	switch g {
	case game.Marvelous:
		return 100
	case game.Perfect:
		return 98
	case game.Great:
		return 65
	case game.Good:
		return 25
	case game.Boo, game.Miss:
		return 0
	}
	return 0
}

// Multiplier returns the combo multiplier for the combo held before the
// current judgement is applied.
func Multiplier(combo int) int {
	switch {
	case combo < 10:
		return 1
	case combo < 20:
		return 2
	case combo < 30:
		return 3
	}
	return maxMultiplier
}

// HealthTable holds the health delta applied per grade. The deltas are
// gameplay tuning, not a structural contract; the settings file can replace
// them (see internal/config).
type HealthTable [game.NumGrades]int

func DefaultHealth() HealthTable {
	var t HealthTable
	t[game.Marvelous] = 2
	t[game.Perfect] = 1
	t[game.Great] = 1
	t[game.Good] = 0
	t[game.Boo] = -4
	t[game.Miss] = -8
	return t
}

// State is the running score of one play session. It is a plain value: Apply
// returns a new State and never writes through the receiver, so replaying
// the same judgement sequence always lands on the same result.
type State struct {
	Score       int // running score, combo-multiplied
	MaxScore    int // best case for the notes judged so far
	Combo       int
	MaxCombo    int
	Counts      [game.NumGrades]int
	TotalJudged int
	TotalNotes  int
	Health      int
	Failed      bool // sticky once health touches 0
}

func NewState(totalNotes int) State {
	return State{TotalNotes: totalNotes, Health: startHealth}
}

// Apply folds one judgement into the state.
func (s State) Apply(j game.Judgement, health HealthTable) State {
	mult := Multiplier(s.Combo)
	if j.Grade.BreaksCombo() {
		s.Combo = 0
	} else {
		s.Combo++
	}
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.Score += gradeWeight(j.Grade) * mult
	s.MaxScore += 100 * maxMultiplier
	s.Counts[j.Grade]++
	s.Health += health[j.Grade]
	if s.Health > maxHealth {
		s.Health = maxHealth
	}
	if s.Health <= 0 {
		s.Health = 0
		s.Failed = true
	}
	s.TotalJudged++
	return s
}
