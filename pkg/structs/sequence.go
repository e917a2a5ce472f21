package structs

// Sequence is the mutable ordered collection of integers being visualized.
// Indices are stable identifiers; position i always reflects the same cell
// in whatever view renders it.
type Sequence []int

func (s Sequence) Copy() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// Ordered reports whether the sequence already satisfies the ordering d
// targets. Equal neighbors are fine in either direction.
func (s Sequence) Ordered(d Direction) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != s[i+1] && d.Before(s[i+1], s[i]) {
			return false
		}
	}

	return true
}
