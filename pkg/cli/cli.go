package cli

import (
	"github.com/convox/stdcli"
	"github.com/freshhuk/numbersort/sdk"
)

type HandlerFunc func(sdk.Interface, *stdcli.Context) error

var (
	flagAscending = stdcli.BoolFlag("ascending", "a", "sort ascending instead of descending")
	flagEndpoint  = stdcli.StringFlag("endpoint", "e", "server endpoint")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
