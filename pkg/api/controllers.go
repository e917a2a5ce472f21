package api

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/convox/stdapi"
	"github.com/freshhuk/numbersort/pkg/generator"
	"github.com/freshhuk/numbersort/pkg/session"
	"github.com/freshhuk/numbersort/pkg/structs"
	"github.com/pkg/errors"
)

func (s *Server) SequenceCreate(c *stdapi.Context) error {
	count, err := strconv.Atoi(c.Value("count"))
	if err != nil {
		return stdapi.Errorf(403, "count must be a positive integer")
	}

	if _, err := s.Session.Generate(count); err != nil {
		return coerceError(err)
	}

	return c.RenderJSON(s.Session.State())
}

func (s *Server) SequenceGet(c *stdapi.Context) error {
	return c.RenderJSON(s.Session.State())
}

func (s *Server) SequenceReseed(c *stdapi.Context) error {
	value, err := strconv.Atoi(c.Value("value"))
	if err != nil {
		return stdapi.Errorf(403, "value must be an integer")
	}

	if _, err := s.Session.Reseed(value); err != nil {
		return coerceError(err)
	}

	return c.RenderJSON(s.Session.State())
}

func (s *Server) SortCreate(c *stdapi.Context) error {
	var opts structs.SortOptions

	if err := stdapi.UnmarshalOptions(c.Request(), &opts); err != nil {
		return err
	}

	// the run outlives the request
	r, err := s.Session.Sort(context.Background(), opts)
	if err != nil {
		return coerceError(err)
	}

	return c.RenderJSON(r)
}

// SortStream writes each swap of the next run as a JSON line over the
// websocket and closes after the terminal event.
func (s *Server) SortStream(c *stdapi.Context) error {
	ctx, cancel := context.WithCancel(c.Context())
	defer cancel()

	ch := make(chan structs.Swap)

	s.Session.Subscribe(ctx, ch)

	e := json.NewEncoder(c)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sw := <-ch:
			if err := e.Encode(sw); err != nil {
				return errors.WithStack(err)
			}

			if sw.Done {
				return nil
			}
		}
	}
}

func coerceError(err error) error {
	switch errors.Cause(err) {
	case generator.ErrInvalidCount:
		return stdapi.Errorf(403, "count must be a positive integer")
	case session.ErrNoSequence:
		return stdapi.Errorf(404, "no sequence generated")
	case session.ErrSelectionTooLarge:
		return stdapi.Errorf(403, "selection must be %d or less", generator.ReseedThreshold)
	case session.ErrSortRunning:
		return stdapi.Errorf(409, "sort in progress")
	}

	return err
}
