package cli

import (
	"fmt"
	"strconv"

	"github.com/convox/stdcli"
	"github.com/freshhuk/numbersort/pkg/generator"
	"github.com/freshhuk/numbersort/sdk"
)

func init() {
	registerWithoutClient("generate", "generate a random sequence", Generate, stdcli.CommandOptions{
		Usage:    "<count>",
		Validate: stdcli.Args(1),
	})
}

func Generate(_ sdk.Interface, c *stdcli.Context) error {
	count, err := strconv.Atoi(c.Arg(0))
	if err != nil {
		return fmt.Errorf("count must be a positive integer")
	}

	seq, err := generator.New().Generate(count)
	if err != nil {
		return err
	}

	renderSequence(c, seq, -1, -1)

	return nil
}
