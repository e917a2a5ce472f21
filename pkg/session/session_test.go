package session_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/convox/logger"
	"github.com/freshhuk/numbersort/pkg/generator"
	"github.com/freshhuk/numbersort/pkg/options"
	"github.com/freshhuk/numbersort/pkg/session"
	"github.com/freshhuk/numbersort/pkg/structs"
	"github.com/stretchr/testify/require"
)

func testSession(seed int64) *session.Session {
	return session.New(session.Options{
		Delay:     options.Duration(0),
		Generator: generator.NewSource(rand.NewSource(seed)),
		Logger:    logger.Discard,
	})
}

func drain(t *testing.T, ch chan structs.Swap) ([]structs.Swap, structs.Swap) {
	swaps := []structs.Swap{}

	for {
		select {
		case sw := <-ch:
			if sw.Done {
				return swaps, sw
			}
			swaps = append(swaps, sw)
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for run to finish")
		}
	}
}

func TestGenerate(t *testing.T) {
	s := testSession(1)

	seq, err := s.Generate(8)
	require.NoError(t, err)
	require.Len(t, seq, 8)
	require.Equal(t, seq, s.Sequence())
	require.Equal(t, structs.DirectionDescending, s.Direction())
	require.False(t, s.Running())

	// replaced wholesale
	seq2, err := s.Generate(3)
	require.NoError(t, err)
	require.Len(t, seq2, 3)
	require.Equal(t, seq2, s.Sequence())
}

func TestReseed(t *testing.T) {
	s := testSession(2)

	_, err := s.Generate(40)
	require.NoError(t, err)

	_, err = s.Reseed(generator.ReseedThreshold + 1)
	require.EqualError(t, err, "selection must be 30 or less")
	require.Len(t, s.Sequence(), 40)

	seq, err := s.Reseed(generator.ReseedThreshold)
	require.NoError(t, err)
	require.Len(t, seq, 30)

	_, err = s.Reseed(0)
	require.EqualError(t, err, "count must be a positive integer")
}

func TestSortNoSequence(t *testing.T) {
	s := testSession(3)

	_, err := s.Sort(context.Background(), structs.SortOptions{})
	require.EqualError(t, err, "no sequence generated")
}

func TestSortAlternatesDirection(t *testing.T) {
	s := testSession(4)

	_, err := s.Generate(8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan structs.Swap)
	s.Subscribe(ctx, ch)

	time.Sleep(50 * time.Millisecond)

	r, err := s.Sort(context.Background(), structs.SortOptions{})
	require.NoError(t, err)
	require.Equal(t, structs.DirectionDescending, r.Direction)
	require.NotEmpty(t, r.Id)

	swaps, done := drain(t, ch)
	require.True(t, len(swaps) >= 1)
	require.Equal(t, len(swaps), done.Index)
	require.Equal(t, r.Id, done.Run)
	require.True(t, done.Sequence.Ordered(structs.DirectionDescending))

	for _, sw := range swaps {
		require.Equal(t, r.Id, sw.Run)
	}

	require.Equal(t, structs.DirectionAscending, s.Direction())
	require.False(t, s.Running())

	r, err = s.Sort(context.Background(), structs.SortOptions{})
	require.NoError(t, err)
	require.Equal(t, structs.DirectionAscending, r.Direction)

	_, done = drain(t, ch)
	require.True(t, done.Sequence.Ordered(structs.DirectionAscending))
	require.Equal(t, structs.DirectionDescending, s.Direction())
}

func TestSortBlocksReseed(t *testing.T) {
	s := testSession(5)

	_, err := s.Generate(8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan structs.Swap)
	s.Subscribe(ctx, ch)

	time.Sleep(50 * time.Millisecond)

	// slow the run down so it is still in flight below
	_, err = s.Sort(context.Background(), structs.SortOptions{Delay: options.Duration(50 * time.Millisecond)})
	require.NoError(t, err)
	require.True(t, s.Running())

	_, err = s.Generate(5)
	require.EqualError(t, err, "sort in progress")

	_, err = s.Reseed(5)
	require.EqualError(t, err, "sort in progress")

	_, err = s.Sort(context.Background(), structs.SortOptions{})
	require.EqualError(t, err, "sort in progress")

	_, done := drain(t, ch)
	require.True(t, done.Sequence.Ordered(structs.DirectionDescending))

	// the sequence is free again
	_, err = s.Generate(5)
	require.NoError(t, err)
}

func TestSortCancel(t *testing.T) {
	s := testSession(6)

	_, err := s.Generate(8)
	require.NoError(t, err)

	rctx, rcancel := context.WithCancel(context.Background())
	rcancel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan structs.Swap)
	s.Subscribe(ctx, ch)

	time.Sleep(50 * time.Millisecond)

	_, err = s.Sort(rctx, structs.SortOptions{})
	require.NoError(t, err)

	_, done := drain(t, ch)
	require.True(t, done.Done)

	// a cancelled run does not flip the direction
	require.Equal(t, structs.DirectionDescending, s.Direction())
	require.False(t, s.Running())
}

func TestSubscribeStalledReceiver(t *testing.T) {
	s := testSession(8)

	_, err := s.Generate(8)
	require.NoError(t, err)

	// a subscriber that never drains its channel
	sctx, scancel := context.WithCancel(context.Background())
	stale := make(chan structs.Swap)
	s.Subscribe(sctx, stale)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan structs.Swap)
	s.Subscribe(ctx, ch)

	time.Sleep(50 * time.Millisecond)

	_, err = s.Sort(context.Background(), structs.SortOptions{})
	require.NoError(t, err)

	// going away must unblock delivery instead of wedging the run
	time.Sleep(20 * time.Millisecond)
	scancel()

	_, done := drain(t, ch)
	require.True(t, done.Done)
	require.True(t, done.Sequence.Ordered(structs.DirectionDescending))
	require.False(t, s.Running())
}

func TestState(t *testing.T) {
	s := testSession(7)

	st := s.State()
	require.Empty(t, st.Sequence)
	require.Equal(t, structs.DirectionDescending, st.Direction)
	require.False(t, st.Running)

	seq, err := s.Generate(4)
	require.NoError(t, err)

	st = s.State()
	require.Equal(t, seq, st.Sequence)
}
