package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/convox/logger"
	"github.com/freshhuk/numbersort/pkg/generator"
	"github.com/freshhuk/numbersort/pkg/sorter"
	"github.com/freshhuk/numbersort/pkg/structs"
	"github.com/pkg/errors"
)

var (
	ErrNoSequence        = errors.New("no sequence generated")
	ErrSelectionTooLarge = errors.New(fmt.Sprintf("selection must be %d or less", generator.ReseedThreshold))
	ErrSortRunning       = errors.New("sort in progress")
)

// Session owns the live sequence, the direction that alternates between
// runs, and the single in-flight sort. The first run sorts descending.
type Session struct {
	delay         time.Duration
	direction     structs.Direction
	generator     *generator.Generator
	lock          sync.Mutex
	logger        *logger.Logger
	running       bool
	seq           structs.Sequence
	subscriptions subscriptions
}

type Options struct {
	Delay     *time.Duration
	Generator *generator.Generator
	Logger    *logger.Logger
}

func New(opts Options) *Session {
	s := &Session{
		delay:     sorter.DefaultDelay,
		direction: structs.DirectionDescending,
		generator: generator.New(),
		logger:    logger.New("ns=session"),
	}

	if opts.Delay != nil {
		s.delay = *opts.Delay
	}

	if opts.Generator != nil {
		s.generator = opts.Generator
	}

	if opts.Logger != nil {
		s.logger = opts.Logger
	}

	return s
}

func (s *Session) Direction() structs.Direction {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.direction
}

// Generate replaces the sequence wholesale. Regeneration is refused while a
// run is in flight; the run owns the backing array until it finishes.
func (s *Session) Generate(count int) (structs.Sequence, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.running {
		return nil, errors.WithStack(ErrSortRunning)
	}

	seq, err := s.generator.Generate(count)
	if err != nil {
		return nil, err
	}

	s.seq = seq

	return seq.Copy(), nil
}

// Reseed regenerates using a clicked value as the new count. Values above
// the reseed threshold are rejected.
func (s *Session) Reseed(value int) (structs.Sequence, error) {
	if value > generator.ReseedThreshold {
		return nil, errors.WithStack(ErrSelectionTooLarge)
	}

	return s.Generate(value)
}

func (s *Session) Running() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.running
}

func (s *Session) Sequence() structs.Sequence {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Copy()
}

// Sort starts an animated run over the current sequence on a background
// goroutine and returns its descriptor immediately. One run at a time; the
// direction flips after the run completes.
func (s *Session) Sort(ctx context.Context, opts structs.SortOptions) (*structs.Run, error) {
	s.lock.Lock()

	if s.running {
		s.lock.Unlock()
		return nil, errors.WithStack(ErrSortRunning)
	}

	if len(s.seq) == 0 {
		s.lock.Unlock()
		return nil, errors.WithStack(ErrNoSequence)
	}

	r := structs.NewRun(s.direction)

	delay := s.delay

	if opts.Delay != nil {
		delay = *opts.Delay
	}

	s.running = true
	seq := s.seq

	s.lock.Unlock()

	go s.run(ctx, r, seq, delay)

	return r, nil
}

func (s *Session) State() *structs.State {
	s.lock.Lock()
	defer s.lock.Unlock()

	return &structs.State{
		Direction: s.direction,
		Running:   s.running,
		Sequence:  s.seq.Copy(),
	}
}

// Subscribe registers ch to receive the swaps of every subsequent run until
// ctx is done. Each run ends with a terminal event whose Done flag is set.
func (s *Session) Subscribe(ctx context.Context, ch chan structs.Swap) {
	s.subscriptions.add(ctx, ch)
}

func (s *Session) run(ctx context.Context, r *structs.Run, seq structs.Sequence, delay time.Duration) {
	log := s.logger.At("run").Namespace("id=%s direction=%s count=%d", r.Id, r.Direction, len(seq)).Start()

	st := sorter.New()
	st.Delay = delay
	st.Notify = func(sw structs.Swap) {
		sw.Run = r.Id
		s.subscriptions.send(sw)
	}

	n, err := st.Run(ctx, seq, r.Direction)

	s.lock.Lock()

	s.running = false

	// a cancelled run does not count as a completed invocation
	if err == nil {
		s.direction = s.direction.Toggle()
	}

	final := s.seq.Copy()

	s.lock.Unlock()

	if err != nil {
		log.Error(err)
	} else {
		log.Successf("swaps=%d", n)
	}

	s.subscriptions.send(structs.Swap{Run: r.Id, Index: n, Sequence: final, Done: true})
}
