package game

import (
	"time"
)

// Judgement is the graded outcome of resolving one note, either against a
// player input or by timing out into a miss.
type Judgement struct {
	NoteID int
	Diff   time.Duration // input time minus note time, negative = early
	Grade  Grade
	Time   time.Duration // play clock time the judgement happened
}
