package cli

import (
	"encoding/json"
	"io"

	"github.com/convox/stdcli"
	"github.com/dustin/go-humanize"
	"github.com/freshhuk/numbersort/pkg/structs"
	"github.com/freshhuk/numbersort/sdk"
	"github.com/pkg/errors"
)

func init() {
	register("watch", "render the next sort run of a server", Watch, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagEndpoint},
		Validate: stdcli.Args(0),
	})
}

func Watch(client sdk.Interface, c *stdcli.Context) error {
	r, err := client.SortStream()
	if err != nil {
		return err
	}
	defer r.Close()

	d := json.NewDecoder(r)

	for {
		var sw structs.Swap

		if err := d.Decode(&sw); err == io.EOF {
			return nil
		} else if err != nil {
			return errors.WithStack(err)
		}

		if sw.Done {
			c.Writef("%s swaps\n", humanize.Comma(int64(sw.Index)))
			return nil
		}

		renderSequence(c, sw.Sequence, sw.I, sw.J)
	}
}
