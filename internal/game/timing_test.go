package game

import (
	"math"
	"testing"
	"time"
)

func TestBeatToTime(t *testing.T) {
	// 120 BPM: one beat is 500ms
	if got := BeatToTime(2, 120, 0); got != time.Second {
		t.Log("got     ", got)
		t.Log("expected", time.Second)
		t.Fail()
	}
	// The first beat lands on the offset, which may be negative
	if got := BeatToTime(0, 120, -20*time.Millisecond); got != -20*time.Millisecond {
		t.Log("got     ", got)
		t.Log("expected", -20*time.Millisecond)
		t.Fail()
	}
	if got := BeatToTime(4, 60, time.Second); got != 5*time.Second {
		t.Log("got     ", got)
		t.Log("expected", 5*time.Second)
		t.Fail()
	}
}

func TestBeatTimeRoundTrip(t *testing.T) {
	offsets := []time.Duration{-220 * time.Millisecond, 0, 1500 * time.Millisecond}
	bpms := []float64{60, 120, 174.5, 200, 321.25}
	for _, offset := range offsets {
		for _, bpm := range bpms {
			for beat := -4.0; beat <= 64.0; beat += 0.25 {
				got := TimeToBeat(BeatToTime(beat, bpm, offset), bpm, offset)
				if math.Abs(got-beat) > 1e-6 {
					t.Log("beat  ", beat)
					t.Log("bpm   ", bpm)
					t.Log("offset", offset)
					t.Log("got   ", got)
					t.Fail()
				}
			}
		}
	}
}

func TestCloneNotes(t *testing.T) {
	orig := []*Note{
		{ID: 0, Time: 0, Direction: Left},
		{ID: 1, Time: time.Second, Direction: Right},
	}
	clone := CloneNotes(orig)
	clone[0].Judged = true
	clone[1].Time = 2 * time.Second
	if orig[0].Judged || orig[1].Time != time.Second {
		t.Log("clone mutation leaked into the original notes")
		t.Fail()
	}
}
