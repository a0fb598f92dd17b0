package anim

// Direction is one of the four axis-aligned grid steps.
type Direction int

const (
	North Direction = iota // -z
	South                  // +z
	East                   // +x
	West                   // -x
)

// Delta returns the grid cell delta for the direction.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// ParseDirection maps a script character to a direction. The second return
// is false for unrecognized characters, which callers ignore.
func ParseDirection(c rune) (Direction, bool) {
	switch c {
	case 'n', 'N':
		return North, true
	case 's', 'S':
		return South, true
	case 'e', 'E':
		return East, true
	case 'w', 'W':
		return West, true
	}
	return 0, false
}
