package theme

import "quadstep/internal/game"

// Color is a truecolor value for the terminal escape sequences.
type Color struct {
	R, G, B uint8
}

type Theme interface {
	RenderNote(direction game.Direction, denom int) string
	RenderHitField(direction game.Direction) string
	RenderGrade(grade game.Grade) string
}
