package structs

// Direction is the binary ordering target alternated between runs.
type Direction string

const (
	DirectionDescending Direction = "descending"
	DirectionAscending  Direction = "ascending"
)

// Before reports whether a belongs ahead of b under d.
func (d Direction) Before(a, b int) bool {
	if d == DirectionAscending {
		return a < b
	}

	return a > b
}

func (d Direction) Toggle() Direction {
	if d == DirectionAscending {
		return DirectionDescending
	}

	return DirectionAscending
}
