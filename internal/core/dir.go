package core

// Dir is one of the four grid directions a wire segment can run in.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Letter returns the single-letter wire notation for the direction (U, R, D, L).
func (d Dir) Letter() byte {
	switch d {
	case DirUp:
		return 'U'
	case DirRight:
		return 'R'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	default:
		return '?'
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up increases Y, Down decreases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four known directions.
func (d Dir) Valid() bool {
	return d <= DirLeft
}
