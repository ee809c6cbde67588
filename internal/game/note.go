package game

import (
	"time"
)

// NoteType tags a note. Only taps come out of the parser; holds are a
// reserved extension carried in the model so charts round-trip if they ever
// appear.
type NoteType uint8

const (
	Tap NoteType = iota
	Hold
)

type Note struct {
	ID        int           // unique within the chart, assigned in playback order
	Time      time.Duration // the time the note should be hit
	Direction Direction
	Denom     int // the beat length, as a denominator, 4 = 1/4 beat
	Type      NoteType
	TimeEnd   time.Duration // hold tail time, reserved

	// Play state. The parsed chart is never written to; sessions work on
	// clones (see CloneNotes).
	Row         int // the terminal row this note was last rendered on
	HoldStarted bool
	Judged      bool
	Judgement   *Judgement
}
