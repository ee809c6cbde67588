package game

// Direction is the lane a note sits in, left to right.
type Direction uint8

const (
	Left Direction = iota
	Down
	Up
	Right
)

// NumDirections is the lane count of a chart.
const NumDirections = 4

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	}
	return "unknown"
}
