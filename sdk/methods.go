package sdk

import (
	"io"

	"github.com/convox/stdsdk"
	"github.com/freshhuk/numbersort/pkg/structs"
)

func (c *Client) SequenceCreate(count int) (*structs.State, error) {
	ro := stdsdk.RequestOptions{Params: stdsdk.Params{"count": count}}

	var v structs.State

	if err := c.Post("/sequences", ro, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (c *Client) SequenceGet() (*structs.State, error) {
	var v structs.State

	if err := c.Get("/sequence", stdsdk.RequestOptions{}, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (c *Client) SequenceReseed(value int) (*structs.State, error) {
	ro := stdsdk.RequestOptions{Params: stdsdk.Params{"value": value}}

	var v structs.State

	if err := c.Post("/sequences/reseed", ro, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (c *Client) SortCreate(opts structs.SortOptions) (*structs.Run, error) {
	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.Run

	if err := c.Post("/sort", ro, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

// SortStream attaches to the server's swap stream. The stream carries one
// JSON-encoded swap per line and ends after a run's terminal event.
func (c *Client) SortStream() (io.ReadCloser, error) {
	return c.Websocket("/sort/stream", stdsdk.RequestOptions{})
}
