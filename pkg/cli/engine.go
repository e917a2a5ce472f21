package cli

import (
	"os"

	"github.com/convox/stdcli"
	"github.com/freshhuk/numbersort/sdk"
)

type Engine struct {
	*stdcli.Engine
	Client sdk.Interface
}

func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(e.currentClient(c), c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) CommandWithoutClient(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(nil, c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		if c.Client {
			e.Command(c.Command, c.Description, c.Handler, c.Opts)
		} else {
			e.CommandWithoutClient(c.Command, c.Description, c.Handler, c.Opts)
		}
	}
}

func (e *Engine) currentClient(c *stdcli.Context) sdk.Interface {
	if e.Client != nil {
		return e.Client
	}

	sc, err := sdk.New(currentEndpoint(c))
	if err != nil {
		c.Fail(err)
	}

	return sc
}

func currentEndpoint(c *stdcli.Context) string {
	if e := c.String("endpoint"); e != "" {
		return e
	}

	if e := os.Getenv("NUMBERSORT_URL"); e != "" {
		return e
	}

	return "https://localhost:3000"
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
	Client      bool
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Client:      true,
	})
}

func registerWithoutClient(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Client:      false,
	})
}
