package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/convox/stdcli"
	"github.com/dustin/go-humanize"
	"github.com/freshhuk/numbersort/pkg/generator"
	"github.com/freshhuk/numbersort/pkg/sorter"
	"github.com/freshhuk/numbersort/pkg/structs"
	"github.com/freshhuk/numbersort/sdk"
)

func init() {
	registerWithoutClient("sort", "generate a sequence and animate sorting it", Sort, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			flagAscending,
			stdcli.DurationFlag("delay", "d", "pause between swaps"),
		},
		Usage:    "<count>",
		Validate: stdcli.Args(1),
	})
}

func Sort(_ sdk.Interface, c *stdcli.Context) error {
	count, err := strconv.Atoi(c.Arg(0))
	if err != nil {
		return fmt.Errorf("count must be a positive integer")
	}

	seq, err := generator.New().Generate(count)
	if err != nil {
		return err
	}

	dir := structs.DirectionDescending

	if c.Bool("ascending") {
		dir = structs.DirectionAscending
	}

	st := sorter.New()

	if d, ok := c.Value("delay").(time.Duration); ok {
		st.Delay = d
	}

	st.Notify = func(sw structs.Swap) {
		renderSequence(c, sw.Sequence, sw.I, sw.J)
	}

	renderSequence(c, seq, -1, -1)

	n, err := st.Run(context.Background(), seq, dir)
	if err != nil {
		return err
	}

	c.Writef("%s swaps\n", humanize.Comma(int64(n)))

	return nil
}
