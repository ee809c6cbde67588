package parser

import (
	"fmt"

	"quadstep/internal/game"
)

// Error is one structured parse problem. Line is 1-based; 0 marks a
// file-level error. Advisory messages (unusual measure lengths) use the same
// shape and never drop data.
type Error struct {
	Line    int
	Message string
}

func (e Error) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parser turns chart text into a Song. It never fails hard: malformed input
// is reported through the error list, and the song is nil only when a
// required header is missing or no chart produced any notes.
type Parser interface {
	Parse(text string, songID string) (*game.Song, []Error)
}
