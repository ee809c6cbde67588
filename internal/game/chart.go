package game

// Chart is one difficulty's worth of notes, sorted ascending by time.
// Ties are allowed for jumps/hands/quads across different lanes.
type Chart struct {
	Difficulty Difficulty
	Level      int
	Notes      []*Note
}

// CloneNotes deep-copies a note list for a play session, so the parsed
// chart stays replayable.
func CloneNotes(notes []*Note) []*Note {
	nn := make([]*Note, len(notes))
	for i, n := range notes {
		nnn := *n
		nn[i] = &nnn
	}
	return nn
}
