package structs

import (
	"time"
)

// Run describes one animated sort over the session's sequence.
type Run struct {
	Id        string    `json:"id"`
	Direction Direction `json:"direction"`
	Started   time.Time `json:"started"`
}

func NewRun(d Direction) *Run {
	return &Run{
		Id:        id("S", 10),
		Direction: d,
		Started:   time.Now(),
	}
}

type SortOptions struct {
	Delay *time.Duration `flag:"delay,d" param:"delay"`
}

// Swap reports one element exchange. Sequence is a snapshot taken right
// after the exchange; the backing array keeps mutating once the callback
// returns. The terminal event of a run has Done set and Index holding the
// total number of swaps performed.
type Swap struct {
	Run      string   `json:"run"`
	Index    int      `json:"index"`
	I        int      `json:"i"`
	J        int      `json:"j"`
	Sequence Sequence `json:"sequence"`
	Done     bool     `json:"done"`
}

// State is the view a UI binds to: the current sequence, the direction the
// next run will use, and whether a run is in flight.
type State struct {
	Sequence  Sequence  `json:"sequence"`
	Direction Direction `json:"direction"`
	Running   bool      `json:"running"`
}
