package sdk

import (
	"github.com/convox/stdsdk"
)

type Client struct {
	*stdsdk.Client
}

// ensure interface parity
var _ Interface = &Client{}

func New(endpoint string) (*Client, error) {
	s, err := stdsdk.New(endpoint)
	if err != nil {
		return nil, err
	}

	return &Client{Client: s}, nil
}
