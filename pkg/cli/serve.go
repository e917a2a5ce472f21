package cli

import (
	"fmt"

	"github.com/convox/stdcli"
	"github.com/freshhuk/numbersort/pkg/api"
	"github.com/freshhuk/numbersort/pkg/options"
	"github.com/freshhuk/numbersort/pkg/session"
	"github.com/freshhuk/numbersort/pkg/settings"
	"github.com/freshhuk/numbersort/sdk"
)

func init() {
	registerWithoutClient("serve", "run the api server", Serve, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.IntFlag("port", "p", "listen port"),
			stdcli.StringFlag("settings", "s", "settings file"),
		},
		Validate: stdcli.Args(0),
	})
}

func Serve(_ sdk.Interface, c *stdcli.Context) error {
	file := c.String("settings")
	if file == "" {
		file = "numbersort.yml"
	}

	st, err := settings.Load(file)
	if err != nil {
		return err
	}

	port := st.Port

	if p := c.Int("port"); p > 0 {
		port = p
	}

	s := api.NewWithSession(session.New(session.Options{
		Delay: options.Duration(st.Delay.Duration()),
	}))

	c.Writef("listening on :%d\n", port)

	return s.Listen("https", fmt.Sprintf(":%d", port))
}
