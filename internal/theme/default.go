package theme

import (
	"fmt"

	"quadstep/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(direction game.Direction, denom int) string {
	color := getNoteColor(denom)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, arrowSyms[direction])
}

func (t *DefaultTheme) RenderHitField(direction game.Direction) string {
	return barSyms[direction]
}

func (t *DefaultTheme) RenderGrade(grade game.Grade) string {
	color := getGradeColor(grade)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, grade)
}

var (
	arrowSyms = [game.NumDirections]string{"←", "↓", "↑", "→"}
	barSyms   = [game.NumDirections]string{"-", "-", "-", "-"}

	// Keyed by beat-length denominator, 4 = 1/4 beat.
	noteColors = map[int]Color{
		1:  {236, 30, 0},    // 1/4 red
		2:  {0, 118, 236},   // 1/8 blue
		3:  {106, 0, 236},   // 1/12 purple
		4:  {236, 195, 0},   // 1/16 yellow
		6:  {236, 0, 106},   // 1/24 pink
		8:  {236, 128, 0},   // 1/32 orange
		12: {173, 236, 236}, // 1/48 light blue
		16: {0, 236, 128},   // 1/64 green
		48: {110, 147, 89},  // 1/192 olive
		-1: {255, 255, 255}, // other white
	}
)

func getNoteColor(d int) Color {
	col, ok := noteColors[d]
	if !ok {
		return noteColors[-1]
	}
	return col
}

func getGradeColor(g game.Grade) Color {
	switch g {
	case game.Marvelous:
		return Color{173, 236, 236}
	case game.Perfect:
		return Color{236, 195, 0}
	case game.Great:
		return Color{0, 236, 128}
	case game.Good:
		return Color{0, 118, 236}
	case game.Boo:
		return Color{236, 128, 0}
	case game.Miss:
		return Color{236, 30, 0}
	}
	return Color{255, 255, 255}
}
