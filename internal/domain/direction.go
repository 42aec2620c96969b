package domain

// Direction says which side of a pair is shown and which is expected
type Direction int

const (
	// Forward shows side 0 and expects side 1
	Forward Direction = iota
	// Reverse shows side 1 and expects side 0
	Reverse
)

// DirectionFromIndex maps a shown index to a Direction
func DirectionFromIndex(shown int) Direction {
	if shown == 1 {
		return Reverse
	}
	return Forward
}

// Shown returns the index of the prompted side
func (d Direction) Shown() int {
	if d == Reverse {
		return 1
	}
	return 0
}

// Expected returns the index of the side the user has to type
func (d Direction) Expected() int {
	return 1 - d.Shown()
}

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}
