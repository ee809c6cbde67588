package game

import "time"

// BeatToTime converts a beat position into chart time: the first beat lands
// at offset, and each beat spans 60/bpm seconds.
func BeatToTime(beat float64, bpm float64, offset time.Duration) time.Duration {
	return offset + time.Duration(beat*60.0/bpm*float64(time.Second))
}

// TimeToBeat is the inverse of BeatToTime.
func TimeToBeat(t time.Duration, bpm float64, offset time.Duration) float64 {
	return float64(t-offset) / float64(time.Second) * bpm / 60.0
}
