package generator

import (
	"github.com/freshhuk/numbersort/pkg/structs"
)

func (g *Generator) EnsureReseedable(seq structs.Sequence) {
	g.ensureReseedable(seq)
}
