package sdk

import (
	"io"

	"github.com/freshhuk/numbersort/pkg/structs"
)

type Interface interface {
	SequenceCreate(count int) (*structs.State, error)
	SequenceGet() (*structs.State, error)
	SequenceReseed(value int) (*structs.State, error)
	SortCreate(opts structs.SortOptions) (*structs.Run, error)
	SortStream() (io.ReadCloser, error)
}
