package judge

import (
	"time"

	"quadstep/internal/game"
)

// Timing windows on the absolute signed difference between input time and
// note time, strictest first. Symmetric around the target: +x and -x grade
// the same for |x| within the boo window.
const (
	MarvelousWindow = 22500 * time.Microsecond
	PerfectWindow   = 45 * time.Millisecond
	GreatWindow     = 90 * time.Millisecond
	GoodWindow      = 135 * time.Millisecond
	BooWindow       = 180 * time.Millisecond
)

// GradeFor maps a signed timing difference (input time minus note time,
// negative = early) to a grade. ok is false when the input is more than the
// boo window early, meaning the note cannot be resolved yet. Past the boo
// window on the late side the result is a miss.
func GradeFor(diff time.Duration) (game.Grade, bool) {
	if diff < -BooWindow {
		return game.Miss, false
	}
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs <= MarvelousWindow:
		return game.Marvelous, true
	case abs <= PerfectWindow:
		return game.Perfect, true
	case abs <= GreatWindow:
		return game.Great, true
	case abs <= GoodWindow:
		return game.Good, true
	case abs <= BooWindow:
		return game.Boo, true
	}
	return game.Miss, true
}

// IsMissed is the authoritative rule for promoting an un-hit note to a miss
// as time advances, independent of input.
func IsMissed(noteTime, now time.Duration) bool {
	return now-noteTime > BooWindow
}

// IsJudgeable gates whether a note is even considered for input matching.
func IsJudgeable(noteTime, now time.Duration) bool {
	d := now - noteTime
	return d >= -BooWindow && d <= BooWindow
}

// FindMatch scans the not-yet-judged notes for the given lane and returns
// the judgeable one closest to now. Equidistant candidates resolve to the
// lowest note id, which is also chart order. Returns nil when the press
// lands on nothing; that is not a judgement and has no side effects.
func FindMatch(notes []*game.Note, direction game.Direction, now time.Duration) *game.Note {
	var closest *game.Note
	var best time.Duration
	for _, n := range notes {
		if n.Judged || n.Direction != direction {
			continue
		}
		if n.Type == game.Hold && n.HoldStarted {
			continue
		}
		if !IsJudgeable(n.Time, now) {
			continue
		}
		d := now - n.Time
		if d < 0 {
			d = -d
		}
		if closest == nil || d < best || (d == best && n.ID < closest.ID) {
			closest, best = n, d
		}
	}
	return closest
}

// Judge grades a note against an input time. A too-early difference falls
// through to a miss; FindMatch never hands such a note over, so that path
// only matters for callers that skip the judgeable gate.
func Judge(n *game.Note, inputTime time.Duration) game.Judgement {
	diff := inputTime - n.Time
	grade, ok := GradeFor(diff)
	if !ok {
		grade = game.Miss
	}
	return game.Judgement{
		NoteID: n.ID,
		Diff:   diff,
		Grade:  grade,
		Time:   inputTime,
	}
}
