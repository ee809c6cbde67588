package game

import "time"

// Song is the parsed form of one chart file. Immutable once parsed.
type Song struct {
	ID           string
	Title        string
	Artist       string
	BPM          float64       // beats per minute, always > 0 after parsing
	Offset       time.Duration // time of the first beat relative to audio start
	MusicFile    string        // relative path from the chart file
	PreviewStart float64       // seconds
	Charts       []*Chart
}
