package generator

import (
	"math/rand"
	"time"

	"github.com/freshhuk/numbersort/pkg/structs"
	"github.com/pkg/errors"
)

const (
	MaxValue        = 1000
	ReseedThreshold = 30
)

var ErrInvalidCount = errors.New("count must be a positive integer")

type Generator struct {
	rand *rand.Rand
}

func New() *Generator {
	return NewSource(rand.NewSource(time.Now().UTC().UnixNano()))
}

func NewSource(src rand.Source) *Generator {
	return &Generator{rand: rand.New(src)}
}

// Generate draws count independent uniform values in [1, MaxValue]. Every
// returned sequence contains at least one value at or below ReseedThreshold
// so a reseed trigger is always present.
func (g *Generator) Generate(count int) (structs.Sequence, error) {
	if count < 1 {
		return nil, errors.WithStack(ErrInvalidCount)
	}

	seq := make(structs.Sequence, count)

	for i := range seq {
		seq[i] = g.rand.Intn(MaxValue) + 1
	}

	g.ensureReseedable(seq)

	return seq, nil
}

// ensureReseedable overwrites one random index with a value in
// [1, ReseedThreshold] when no drawn value landed there.
func (g *Generator) ensureReseedable(seq structs.Sequence) {
	for _, v := range seq {
		if v <= ReseedThreshold {
			return
		}
	}

	seq[g.rand.Intn(len(seq))] = g.rand.Intn(ReseedThreshold) + 1
}
